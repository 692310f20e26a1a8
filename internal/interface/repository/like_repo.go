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

// MongoLikeRepository implements the LikeRepository interface
type MongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new MongoDB itinerary-like repository
func NewMongoLikeRepository(db *mongo.Database) repository.LikeRepository {
	collection := db.Collection("itineraryLikes")

	// One reaction per (user, itinerary, day)
	ctx := context.Background()
	collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "itineraryId", Value: 1},
			{Key: "dayNumber", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})

	return &MongoLikeRepository{collection: collection}
}

// Create saves a like and fills in its generated ID
func (r *MongoLikeRepository) Create(ctx context.Context, like *entity.ItineraryLike) error {
	now := time.Now()
	like.CreatedAt = now
	like.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, like)
	if err != nil {
		return fmt.Errorf("failed to insert itinerary like: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		like.ID = id
	}
	return nil
}

// FindByID finds a like by ID. Returns nil, nil when none exists.
func (r *MongoLikeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.ItineraryLike, error) {
	var like entity.ItineraryLike
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&like)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// FindOne finds the user's reaction for an (itinerary, day) pair. Returns
// nil, nil when none exists.
func (r *MongoLikeRepository) FindOne(ctx context.Context, userID string, itineraryID primitive.ObjectID, dayNumber int) (*entity.ItineraryLike, error) {
	var like entity.ItineraryLike
	err := r.collection.FindOne(ctx, bson.M{
		"userId":      userID,
		"itineraryId": itineraryID,
		"dayNumber":   dayNumber,
	}).Decode(&like)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// FindByUser finds a user's likes, newest first, optionally filtered by
// itinerary
func (r *MongoLikeRepository) FindByUser(ctx context.Context, userID string, itineraryID *primitive.ObjectID) ([]*entity.ItineraryLike, error) {
	query := bson.M{"userId": userID}
	if itineraryID != nil {
		query["itineraryId"] = *itineraryID
	}

	cursor, err := r.collection.Find(ctx, query, &options.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	likes := []*entity.ItineraryLike{}
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// UpdateLiked flips the liked flag and returns the updated record
func (r *MongoLikeRepository) UpdateLiked(ctx context.Context, id primitive.ObjectID, liked bool) (*entity.ItineraryLike, error) {
	update := bson.M{"$set": bson.M{
		"liked":     liked,
		"updatedAt": time.Now(),
	}}

	var like entity.ItineraryLike
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&like)
	if err != nil {
		return nil, fmt.Errorf("failed to update itinerary like: %w", err)
	}
	return &like, nil
}

// Delete removes a like
func (r *MongoLikeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete itinerary like: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("no itinerary like found with id: %s", id.Hex())
	}
	return nil
}
