package entity

// Itinerary types accepted by the planner.
const (
	TypeBudget = "budget"
	TypeLuxury = "luxury"
)

// PlanRequest is the raw itinerary-generation request as received from the
// client. Fields are validated by the request validator before any external
// call is made.
type PlanRequest struct {
	Destination    string   `json:"destination"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Preferences    []string `json:"preferences"`
	Type           string   `json:"type"`
	NumberOfPeople int      `json:"numberOfPeople"`
}

// ApplyDefaults fills the optional fields the same way the API contract
// documents them: type defaults to budget, party size to one.
func (r *PlanRequest) ApplyDefaults() {
	if r.Type == "" {
		r.Type = TypeBudget
	}
	if r.NumberOfPeople == 0 {
		r.NumberOfPeople = 1
	}
}
