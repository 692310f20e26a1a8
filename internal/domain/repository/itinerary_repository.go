package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tripwise-service/internal/domain/entity"
)

// ItineraryFilter narrows itinerary listings. Zero values mean "any".
type ItineraryFilter struct {
	TripID *primitive.ObjectID
	Type   string
}

// ItineraryRepository defines the interface for itinerary storage
// operations. Create must fail with a duplicate-key error when an itinerary
// already exists for the same (tripId, type).
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *entity.Itinerary) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Itinerary, error)
	FindByUser(ctx context.Context, userID string, filter ItineraryFilter) ([]*entity.Itinerary, error)
	// FindByTripAndType returns nil, nil when no itinerary exists.
	FindByTripAndType(ctx context.Context, tripID primitive.ObjectID, itineraryType string) (*entity.Itinerary, error)
	Update(ctx context.Context, itinerary *entity.Itinerary) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// IsDuplicateKey reports whether err is the storage-level uniqueness
	// violation on (tripId, type).
	IsDuplicateKey(err error) bool
}
