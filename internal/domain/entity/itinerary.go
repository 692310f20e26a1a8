package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a single scheduled activity within a day plan.
type Activity struct {
	Time          string  `json:"time" bson:"time"`
	Description   string  `json:"description" bson:"description"`
	Cost          float64 `json:"cost" bson:"cost"`
	CostPerPerson float64 `json:"costPerPerson" bson:"costPerPerson"`
	Location      string  `json:"location" bson:"location"`
}

// Accommodation is the suggested stay for one day.
type Accommodation struct {
	Name          string  `json:"name" bson:"name"`
	Cost          float64 `json:"cost" bson:"cost"`
	CostPerPerson float64 `json:"costPerPerson" bson:"costPerPerson"`
	Address       string  `json:"address" bson:"address"`
}

// DayWeatherEcho is the weather block the model echoes back per day.
type DayWeatherEcho struct {
	AvgTemperature float64 `json:"avgTemperature" bson:"avgTemperature"`
	Precipitation  float64 `json:"precipitation" bson:"precipitation"`
	Condition      string  `json:"condition" bson:"condition"`
}

// DayPlan is one day of the generated itinerary.
type DayPlan struct {
	DayNumber               int            `json:"dayNumber" bson:"dayNumber"`
	Weather                 DayWeatherEcho `json:"weather" bson:"weather"`
	Activities              []Activity     `json:"activities" bson:"activities"`
	Accommodation           Accommodation  `json:"accommodation" bson:"accommodation"`
	TotalDailyCost          float64        `json:"totalDailyCost" bson:"totalDailyCost"`
	TotalDailyCostPerPerson float64        `json:"totalDailyCostPerPerson" bson:"totalDailyCostPerPerson"`
}

// TransportationOption is a trip-level transport suggestion.
type TransportationOption struct {
	Type          string  `json:"type" bson:"type"`
	Cost          float64 `json:"cost" bson:"cost"`
	CostPerPerson float64 `json:"costPerPerson" bson:"costPerPerson"`
	Duration      string  `json:"duration" bson:"duration"`
}

// ItineraryContent is the typed shape the generative model must produce. The
// parser only checks that the output is valid JSON of this shape; field
// values are taken as-is.
type ItineraryContent struct {
	Days                  []DayPlan              `json:"days" bson:"days"`
	TotalCost             float64                `json:"totalCost" bson:"totalCost"`
	TotalCostPerPerson    float64                `json:"totalCostPerPerson" bson:"totalCostPerPerson"`
	TransportationOptions []TransportationOption `json:"transportationOptions" bson:"transportationOptions"`
	Summary               string                 `json:"summary" bson:"summary"`
}

// PlannedItinerary is the pipeline result before persistence: the parsed
// content wrapped with the request metadata it was generated for.
type PlannedItinerary struct {
	Type           string           `json:"type"`
	NumberOfPeople int              `json:"numberOfPeople"`
	Content        ItineraryContent `json:"content"`
}

// Itinerary is a persisted itinerary. At most one itinerary may exist per
// (tripId, type) pair; the collection enforces this with a unique index.
type Itinerary struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         string             `json:"userId" bson:"userId"`
	TripID         primitive.ObjectID `json:"tripId" bson:"tripId"`
	Type           string             `json:"type" bson:"type"`
	NumberOfPeople int                `json:"numberOfPeople" bson:"numberOfPeople"`
	Content        ItineraryContent   `json:"content" bson:"content"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
