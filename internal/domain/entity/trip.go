package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is a user-owned trip record. Itineraries reference trips by ID.
type Trip struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	Destination string             `json:"destination" bson:"destination"`
	StartDate   string             `json:"startDate" bson:"startDate"`
	EndDate     string             `json:"endDate" bson:"endDate"`
	Review      string             `json:"review,omitempty" bson:"review,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
