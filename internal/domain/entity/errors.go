package entity

import "errors"

// Error kinds the HTTP layer maps to status codes. Upstream hotel/weather
// failures are absorbed by the resolvers and never reach this taxonomy.
var (
	// ErrModelInvocation means the generative capability itself failed to
	// respond. Terminal; no retry.
	ErrModelInvocation = errors.New("model invocation failed")

	// ErrModelOutputMalformed means the generative output did not parse as
	// the expected JSON shape. Terminal; no synthetic itinerary is
	// substituted.
	ErrModelOutputMalformed = errors.New("model output malformed")

	// ErrNotFound covers missing records and records the caller does not
	// own when hiding existence is the right answer.
	ErrNotFound = errors.New("not found")

	// ErrForbidden covers records that exist but belong to another user.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a request field that failed validation. The
// message is user-facing and distinct per failing rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given user-facing
// message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ConflictError reports a duplicate (tripId, type) itinerary. The existing
// record is attached so the client can show what it conflicts with.
type ConflictError struct {
	Message  string
	Existing *Itinerary
}

func (e *ConflictError) Error() string {
	return e.Message
}
