package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/utils"
)

// cityPlacetype is the Makcorps place-type code for a city-level GEO entry,
// the only mapping result specific enough to key a hotel search.
const cityPlacetype = 10009

// MakcorpsHotelRepository resolves hotels through the Makcorps API: a
// mapping lookup turns the destination name into a city identifier, then a
// city search returns hotels for the stay dates.
type MakcorpsHotelRepository struct {
	logger   logger.Logger
	baseURL  string
	apiKey   string
	currency string
	client   *http.Client
}

// NewMakcorpsHotelRepository creates a new Makcorps hotel repository
func NewMakcorpsHotelRepository(baseURL, apiKey, currency string, timeout time.Duration, logger logger.Logger) repository.HotelRepository {
	return &MakcorpsHotelRepository{
		logger:   logger,
		baseURL:  baseURL,
		apiKey:   apiKey,
		currency: currency,
		client:   &http.Client{Timeout: timeout},
	}
}

type mappingEntry struct {
	Type    string `json:"type"`
	Details struct {
		Placetype int `json:"placetype"`
	} `json:"details"`
	DocumentID string `json:"document_id"`
}

type cityHotel struct {
	Name    string `json:"name"`
	Reviews struct {
		Rating float64 `json:"rating"`
	} `json:"reviews"`
}

// SearchHotels performs the two-phase lookup and returns raw candidates in
// source order. Rating filtering and the fallback policy belong to the
// caller.
func (r *MakcorpsHotelRepository) SearchHotels(ctx context.Context, destination string, checkin, checkout time.Time) ([]entity.HotelCandidate, error) {
	cityID, err := r.fetchCityID(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mapping data: %w", err)
	}

	hotels, err := r.fetchCityHotels(ctx, cityID, checkin, checkout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch city data: %w", err)
	}

	return hotels, nil
}

// fetchCityID resolves a destination name to a Makcorps city identifier.
func (r *MakcorpsHotelRepository) fetchCityID(ctx context.Context, destination string) (string, error) {
	q := url.Values{}
	q.Set("api_key", r.apiKey)
	q.Set("name", destination)

	var entries []mappingEntry
	if err := r.getJSON(ctx, r.baseURL+"/mapping?"+q.Encode(), &entries); err != nil {
		return "", err
	}

	for _, e := range entries {
		if e.Type == "GEO" && e.Details.Placetype == cityPlacetype {
			return e.DocumentID, nil
		}
	}
	return "", fmt.Errorf("no suitable city-level entry found in mapping data")
}

// fetchCityHotels fetches hotels for a city over the stay dates. Rooms and
// adults are pinned to 1/2 regardless of party size; the upstream quote is
// advisory context only.
func (r *MakcorpsHotelRepository) fetchCityHotels(ctx context.Context, cityID string, checkin, checkout time.Time) ([]entity.HotelCandidate, error) {
	q := url.Values{}
	q.Set("cityid", cityID)
	q.Set("pagination", "0")
	q.Set("cur", r.currency)
	q.Set("rooms", "1")
	q.Set("adults", "2")
	q.Set("checkin", utils.FormatDate(checkin))
	q.Set("checkout", utils.FormatDate(checkout))
	q.Set("api_key", r.apiKey)

	// The city endpoint returns a mixed array: hotel objects plus a trailing
	// pagination element. Decode elements individually and keep the hotels.
	var raw []json.RawMessage
	if err := r.getJSON(ctx, r.baseURL+"/city?"+q.Encode(), &raw); err != nil {
		return nil, err
	}

	var hotels []entity.HotelCandidate
	for _, item := range raw {
		var h cityHotel
		if err := json.Unmarshal(item, &h); err != nil || h.Name == "" {
			continue
		}
		hotels = append(hotels, entity.HotelCandidate{Name: h.Name, Rating: h.Reviews.Rating})
	}
	return hotels, nil
}

func (r *MakcorpsHotelRepository) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("makcorps returned status %d: %v", resp.StatusCode, errorBody)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
