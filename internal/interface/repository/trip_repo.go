package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
)

// MongoTripRepository implements the TripRepository interface
type MongoTripRepository struct {
	collection *mongo.Collection
}

// NewMongoTripRepository creates a new MongoDB trip repository
func NewMongoTripRepository(db *mongo.Database) repository.TripRepository {
	collection := db.Collection("trips")

	// Index on userId for per-user listings
	ctx := context.Background()
	collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "startDate", Value: -1},
		},
	})

	return &MongoTripRepository{collection: collection}
}

// Create saves a trip and fills in its generated ID
func (r *MongoTripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		trip.ID = id
	}
	return nil
}

// FindByID finds a trip by ID. Returns nil, nil when no trip exists.
func (r *MongoTripRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Trip, error) {
	var trip entity.Trip
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// FindByUser finds all trips for a user, newest start date first
func (r *MongoTripRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Trip, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, &options.FindOptions{
		Sort: bson.D{{Key: "startDate", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trips := []*entity.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Update rewrites the mutable fields of a trip
func (r *MongoTripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	trip.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"destination": trip.Destination,
		"startDate":   trip.StartDate,
		"endDate":     trip.EndDate,
		"review":      trip.Review,
		"updatedAt":   trip.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": trip.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no trip found with id: %s", trip.ID.Hex())
	}
	return nil
}

// Delete removes a trip
func (r *MongoTripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no trip found with id: %s", id.Hex())
	}
	return nil
}
