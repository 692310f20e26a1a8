package repository

import (
	"context"
	"time"

	"tripwise-service/internal/domain/entity"
)

// HotelRepository performs the two-phase hotel lookup: destination name to
// city identifier, then city search over the stay dates. Implementations
// return raw candidates; rating filtering and the fallback policy live in
// the resolver.
type HotelRepository interface {
	SearchHotels(ctx context.Context, destination string, checkin, checkout time.Time) ([]entity.HotelCandidate, error)
}
