package usecase

import (
	"context"
	"fmt"
	"time"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/metrics"
	"tripwise-service/pkg/utils"
)

// WeatherResolver produces one DayWeather per trip day. Days are fetched
// sequentially in ascending date order to stay inside upstream rate limits.
// If any day fails, all partial results are discarded and every day gets the
// uniform fallback record: mixing real and synthetic weather would feed the
// generative step an internally inconsistent narrative.
type WeatherResolver struct {
	weatherRepo repository.WeatherRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewWeatherResolver creates a new weather resolver
func NewWeatherResolver(weatherRepo repository.WeatherRepository, metrics *metrics.Metrics, logger logger.Logger) *WeatherResolver {
	return &WeatherResolver{
		weatherRepo: weatherRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Resolve returns exactly dayCount records in ascending date order. It
// never fails.
func (r *WeatherResolver) Resolve(ctx context.Context, destination string, start time.Time, dayCount int) []entity.DayWeather {
	days := make([]entity.DayWeather, 0, dayCount)

	for i := 0; i < dayCount; i++ {
		date := start.AddDate(0, 0, i)

		day, err := r.resolveDay(ctx, destination, i+1, date)
		if err != nil {
			r.logger.Warn("Weather lookup failed, using uniform fallback for all days",
				"destination", destination,
				"date", utils.FormatDate(date),
				"error", err)
			r.metrics.WeatherFallbacks.Inc()
			return fallbackDays(start, dayCount)
		}
		days = append(days, day)
	}

	return days
}

func (r *WeatherResolver) resolveDay(ctx context.Context, destination string, dayNumber int, date time.Time) (entity.DayWeather, error) {
	series, err := r.weatherRepo.HourlyForDay(ctx, destination, date)
	if err != nil {
		return entity.DayWeather{}, err
	}
	if len(series.Temperatures) == 0 {
		return entity.DayWeather{}, fmt.Errorf("empty hourly series for %s", utils.FormatDate(date))
	}

	var tempSum, precipSum float64
	for _, t := range series.Temperatures {
		tempSum += t
	}
	for _, p := range series.Precipitation {
		precipSum += p
	}

	avg := entity.RoundTemperature(tempSum / float64(len(series.Temperatures)))

	return entity.DayWeather{
		DayNumber:      dayNumber,
		Date:           utils.FormatDate(date),
		AvgTemperature: avg,
		Precipitation:  precipSum,
		Condition:      entity.ClassifyCondition(avg, precipSum),
	}, nil
}

func fallbackDays(start time.Time, dayCount int) []entity.DayWeather {
	days := make([]entity.DayWeather, dayCount)
	for i := range days {
		days[i] = entity.FallbackDayWeather(i+1, utils.FormatDate(start.AddDate(0, 0, i)))
	}
	return days
}
