package usecase

import (
	"fmt"
	"time"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/pkg/utils"
)

// RequestValidator checks an itinerary request before any external call is
// made. Checks run in a fixed order and stop at the first failure; each
// failure carries a distinct user-facing message.
type RequestValidator struct {
	referenceDate time.Time
	horizonDays   int
}

// NewRequestValidator creates a validator anchored at the given reference
// date with the given forecast horizon.
func NewRequestValidator(referenceDate time.Time, horizonDays int) *RequestValidator {
	return &RequestValidator{
		referenceDate: referenceDate,
		horizonDays:   horizonDays,
	}
}

// ValidatedRequest is the outcome of a successful validation: the original
// request plus its parsed dates and derived day count.
type ValidatedRequest struct {
	Request  entity.PlanRequest
	Start    time.Time
	End      time.Time
	DayCount int
}

// Validate runs the ordered check sequence and derives the trip day count.
func (v *RequestValidator) Validate(req entity.PlanRequest) (*ValidatedRequest, error) {
	if req.Destination == "" || req.StartDate == "" || req.EndDate == "" || req.Preferences == nil {
		return nil, entity.NewValidationError("Missing required fields: destination, startDate, endDate, or preferences")
	}

	start, okStart := utils.ParseDate(req.StartDate)
	end, okEnd := utils.ParseDate(req.EndDate)
	if !okStart || !okEnd {
		return nil, entity.NewValidationError("Invalid date format. Use YYYY-MM-DD")
	}

	if !end.After(start) {
		return nil, entity.NewValidationError("End date must be after start date")
	}

	if len(req.Preferences) == 0 {
		return nil, entity.NewValidationError("Preferences must be a non-empty array")
	}

	if req.Type != entity.TypeBudget && req.Type != entity.TypeLuxury {
		return nil, entity.NewValidationError(`Type must be "budget" or "luxury"`)
	}

	if req.NumberOfPeople < 1 {
		return nil, entity.NewValidationError("Number of people must be a positive integer")
	}

	maxForecastDate := v.referenceDate.AddDate(0, 0, v.horizonDays)
	if start.After(maxForecastDate) || end.After(maxForecastDate) {
		return nil, entity.NewValidationError(fmt.Sprintf(
			"Weather forecast unavailable for dates beyond %s", utils.FormatDate(maxForecastDate)))
	}

	return &ValidatedRequest{
		Request:  req,
		Start:    start,
		End:      end,
		DayCount: utils.DayCount(start, end),
	}, nil
}
