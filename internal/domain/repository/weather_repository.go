package repository

import (
	"context"
	"time"

	"tripwise-service/internal/domain/entity"
)

// WeatherRepository fetches hourly weather for a destination one day at a
// time. Implementations geocode the destination and pick the forecast or
// archive source based on the day's date.
type WeatherRepository interface {
	// HourlyForDay returns the hourly temperature and precipitation series
	// for a single calendar day.
	HourlyForDay(ctx context.Context, destination string, date time.Time) (*entity.HourlySeries, error)

	// DayReport returns the full hourly report with geocoding metadata, as
	// served by the standalone weather endpoint.
	DayReport(ctx context.Context, destination string, date time.Time) (*entity.WeatherReport, error)
}
