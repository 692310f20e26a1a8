package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItineraryLike records a per-day like or dislike of an itinerary. A user
// may have at most one reaction per (itinerary, day).
type ItineraryLike struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	ItineraryID primitive.ObjectID `json:"itineraryId" bson:"itineraryId"`
	DayNumber   int                `json:"dayNumber" bson:"dayNumber"`
	Liked       bool               `json:"liked" bson:"liked"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
