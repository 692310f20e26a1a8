package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tripwise-service/internal/domain/entity"
)

// TripRepository defines the interface for trip storage operations.
type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Trip, error)
	FindByUser(ctx context.Context, userID string) ([]*entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
