package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/utils"
)

const geocodeUserAgent = "tripwise-service/1.0"

// OpenMeteoWeatherRepository fetches per-day hourly weather: Nominatim
// geocodes the destination, then Open-Meteo serves the hourly series. Days
// on or after the reference date hit the forecast endpoint, strictly past
// days the archive endpoint.
type OpenMeteoWeatherRepository struct {
	logger        logger.Logger
	geocodeURL    string
	forecastURL   string
	archiveURL    string
	referenceDate time.Time
	client        *http.Client
}

// NewOpenMeteoWeatherRepository creates a new Open-Meteo weather repository
func NewOpenMeteoWeatherRepository(geocodeURL, forecastURL, archiveURL string, referenceDate time.Time, timeout time.Duration, logger logger.Logger) repository.WeatherRepository {
	return &OpenMeteoWeatherRepository{
		logger:        logger,
		geocodeURL:    geocodeURL,
		forecastURL:   forecastURL,
		archiveURL:    archiveURL,
		referenceDate: referenceDate,
		client:        &http.Client{Timeout: timeout},
	}
}

type geocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type openMeteoResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature2M []float64 `json:"temperature_2m"`
		Precipitation []float64 `json:"precipitation"`
	} `json:"hourly"`
}

// HourlyForDay returns the hourly temperature and precipitation series for
// one calendar day at the destination.
func (r *OpenMeteoWeatherRepository) HourlyForDay(ctx context.Context, destination string, date time.Time) (*entity.HourlySeries, error) {
	loc, err := r.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	data, err := r.fetchHourly(ctx, loc, date)
	if err != nil {
		return nil, err
	}

	return &entity.HourlySeries{
		Times:         data.Hourly.Time,
		Temperatures:  data.Hourly.Temperature2M,
		Precipitation: data.Hourly.Precipitation,
	}, nil
}

// DayReport returns the full hourly report with geocoding metadata.
func (r *OpenMeteoWeatherRepository) DayReport(ctx context.Context, destination string, date time.Time) (*entity.WeatherReport, error) {
	loc, err := r.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	data, err := r.fetchHourly(ctx, loc, date)
	if err != nil {
		return nil, err
	}

	report := &entity.WeatherReport{
		Location: destination,
		Country:  countryFromDisplayName(loc.DisplayName),
		Date:     utils.FormatDate(date),
	}
	for i, t := range data.Hourly.Time {
		if i >= len(data.Hourly.Temperature2M) || i >= len(data.Hourly.Precipitation) {
			break
		}
		report.Hourly = append(report.Hourly, entity.HourlyPoint{
			Time:          t,
			Hour:          hourFromISOTime(t),
			Temperature:   strconv.FormatFloat(data.Hourly.Temperature2M[i], 'f', -1, 64),
			Precipitation: strconv.FormatFloat(data.Hourly.Precipitation[i], 'f', -1, 64),
		})
	}
	return report, nil
}

// geocode resolves the destination to coordinates via the first Nominatim
// result.
func (r *OpenMeteoWeatherRepository) geocode(ctx context.Context, destination string) (*geocodeResult, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", r.geocodeURL, url.QueryEscape(destination))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", geocodeUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("could not geocode location %q", destination)
	}
	return &results[0], nil
}

func (r *OpenMeteoWeatherRepository) fetchHourly(ctx context.Context, loc *geocodeResult, date time.Time) (*openMeteoResponse, error) {
	base := r.archiveURL
	if !date.Before(r.referenceDate) {
		base = r.forecastURL
	}

	dateStr := utils.FormatDate(date)
	q := url.Values{}
	q.Set("latitude", loc.Lat)
	q.Set("longitude", loc.Lon)
	q.Set("start_date", dateStr)
	q.Set("end_date", dateStr)
	q.Set("hourly", "temperature_2m,precipitation")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var data openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(data.Hourly.Time) == 0 {
		return nil, fmt.Errorf("weather API returned no hourly data for %s", dateStr)
	}
	return &data, nil
}

// countryFromDisplayName takes the last comma-separated segment of a
// Nominatim display name.
func countryFromDisplayName(displayName string) string {
	parts := strings.Split(displayName, ", ")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "Unknown"
	}
	return parts[len(parts)-1]
}

// hourFromISOTime extracts HH:MM from an ISO timestamp like
// "2025-04-26T13:00".
func hourFromISOTime(t string) string {
	if i := strings.Index(t, "T"); i >= 0 && len(t) >= i+6 {
		return t[i+1 : i+6]
	}
	return ""
}
