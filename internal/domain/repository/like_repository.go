package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tripwise-service/internal/domain/entity"
)

// LikeRepository defines the interface for itinerary-like storage
// operations.
type LikeRepository interface {
	Create(ctx context.Context, like *entity.ItineraryLike) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.ItineraryLike, error)
	// FindOne returns nil, nil when the user has no reaction for the
	// (itinerary, day) pair.
	FindOne(ctx context.Context, userID string, itineraryID primitive.ObjectID, dayNumber int) (*entity.ItineraryLike, error)
	FindByUser(ctx context.Context, userID string, itineraryID *primitive.ObjectID) ([]*entity.ItineraryLike, error)
	UpdateLiked(ctx context.Context, id primitive.ObjectID, liked bool) (*entity.ItineraryLike, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
