package usecase

import (
	"context"
	"time"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/metrics"
)

const (
	minHotelRating = 4.5
	maxHotelNames  = 5
)

// HotelResolver turns a destination and stay dates into an ordered list of
// hotel names for the prompt. Any lookup failure or empty result is replaced
// with the fixed fallback list; hotel names are advisory context, so
// availability wins over accuracy here.
type HotelResolver struct {
	hotelRepo repository.HotelRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewHotelResolver creates a new hotel resolver
func NewHotelResolver(hotelRepo repository.HotelRepository, metrics *metrics.Metrics, logger logger.Logger) *HotelResolver {
	return &HotelResolver{
		hotelRepo: hotelRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// Resolve returns at most five hotel names rated 4.5 or better, in source
// order, or the fallback list. It never fails.
func (r *HotelResolver) Resolve(ctx context.Context, destination string, checkin, checkout time.Time) []string {
	candidates, err := r.hotelRepo.SearchHotels(ctx, destination, checkin, checkout)
	if err != nil {
		r.logger.Warn("Hotel lookup failed, using fallback list",
			"destination", destination,
			"error", err)
		r.metrics.HotelFallbacks.Inc()
		return entity.FallbackHotelNames()
	}

	names := make([]string, 0, maxHotelNames)
	for _, c := range candidates {
		if c.Rating < minHotelRating {
			continue
		}
		names = append(names, c.Name)
		if len(names) == maxHotelNames {
			break
		}
	}

	if len(names) == 0 {
		r.logger.Warn("Hotel lookup returned no rated candidates, using fallback list",
			"destination", destination)
		r.metrics.HotelFallbacks.Inc()
		return entity.FallbackHotelNames()
	}

	return names
}
