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

// MongoItineraryRepository implements the ItineraryRepository interface
type MongoItineraryRepository struct {
	collection *mongo.Collection
}

// NewMongoItineraryRepository creates a new MongoDB itinerary repository
func NewMongoItineraryRepository(db *mongo.Database) repository.ItineraryRepository {
	collection := db.Collection("itineraries")

	ctx := context.Background()

	// Unique compound index: at most one itinerary per (tripId, type). This
	// closes the check-then-insert race at the storage layer.
	tripTypeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "tripId", Value: 1},
			{Key: "type", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}

	// Index on userId for per-user listings
	userIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{tripTypeIndex, userIndex})

	return &MongoItineraryRepository{collection: collection}
}

// Create saves an itinerary and fills in its generated ID
func (r *MongoItineraryRepository) Create(ctx context.Context, itinerary *entity.Itinerary) error {
	now := time.Now()
	itinerary.CreatedAt = now
	itinerary.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, itinerary)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		itinerary.ID = id
	}
	return nil
}

// FindByID finds an itinerary by ID. Returns nil, nil when none exists.
func (r *MongoItineraryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Itinerary, error) {
	var itinerary entity.Itinerary
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&itinerary)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

// FindByUser finds a user's itineraries, newest first, optionally filtered
// by trip and type
func (r *MongoItineraryRepository) FindByUser(ctx context.Context, userID string, filter repository.ItineraryFilter) ([]*entity.Itinerary, error) {
	query := bson.M{"userId": userID}
	if filter.TripID != nil {
		query["tripId"] = *filter.TripID
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	cursor, err := r.collection.Find(ctx, query, &options.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	itineraries := []*entity.Itinerary{}
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

// FindByTripAndType finds the itinerary for a (tripId, type) pair. Returns
// nil, nil when none exists.
func (r *MongoItineraryRepository) FindByTripAndType(ctx context.Context, tripID primitive.ObjectID, itineraryType string) (*entity.Itinerary, error) {
	var itinerary entity.Itinerary
	err := r.collection.FindOne(ctx, bson.M{"tripId": tripID, "type": itineraryType}).Decode(&itinerary)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

// Update rewrites the mutable fields of an itinerary
func (r *MongoItineraryRepository) Update(ctx context.Context, itinerary *entity.Itinerary) error {
	itinerary.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"type":      itinerary.Type,
		"content":   itinerary.Content,
		"updatedAt": itinerary.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": itinerary.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no itinerary found with id: %s", itinerary.ID.Hex())
	}
	return nil
}

// Delete removes an itinerary
func (r *MongoItineraryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no itinerary found with id: %s", id.Hex())
	}
	return nil
}

// IsDuplicateKey reports whether err is the unique-index violation on
// (tripId, type)
func (r *MongoItineraryRepository) IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
