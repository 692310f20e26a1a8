package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripwise-service/pkg/logger"
)

const geocodeResponse = `[
  {"lat": "48.8566", "lon": "2.3522", "display_name": "Paris, Île-de-France, France"}
]`

const hourlyResponse = `{
  "hourly": {
    "time": ["2025-04-26T00:00", "2025-04-26T01:00", "2025-04-26T02:00"],
    "temperature_2m": [12.5, 12.1, 11.8],
    "precipitation": [0, 0.2, 0]
  }
}`

func newWeatherTestServer(t *testing.T, onForecast, onArchive *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "tripwise-service/1.0" {
			t.Errorf("geocode User-Agent = %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("geocode limit = %q, want 1", got)
		}
		w.Write([]byte(geocodeResponse))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		*onForecast++
		if got := r.URL.Query().Get("latitude"); got != "48.8566" {
			t.Errorf("latitude = %q, want geocoded value", got)
		}
		if got := r.URL.Query().Get("hourly"); got != "temperature_2m,precipitation" {
			t.Errorf("hourly = %q", got)
		}
		w.Write([]byte(hourlyResponse))
	})
	mux.HandleFunc("/archive", func(w http.ResponseWriter, r *http.Request) {
		*onArchive++
		w.Write([]byte(hourlyResponse))
	})
	return httptest.NewServer(mux)
}

func TestOpenMeteoHourlyForDay(t *testing.T) {
	var forecastHits, archiveHits int
	srv := newWeatherTestServer(t, &forecastHits, &archiveHits)
	defer srv.Close()

	reference := mustTestDate(t, "2025-04-25")
	repo := NewOpenMeteoWeatherRepository(srv.URL, srv.URL+"/forecast", srv.URL+"/archive",
		reference, 5*time.Second, logger.NewNop())

	series, err := repo.HourlyForDay(context.Background(), "Paris", mustTestDate(t, "2025-04-26"))
	if err != nil {
		t.Fatalf("HourlyForDay() error = %v", err)
	}
	if len(series.Temperatures) != 3 || series.Temperatures[0] != 12.5 {
		t.Errorf("temperatures = %v", series.Temperatures)
	}
	if len(series.Precipitation) != 3 || series.Precipitation[1] != 0.2 {
		t.Errorf("precipitation = %v", series.Precipitation)
	}
	if forecastHits != 1 || archiveHits != 0 {
		t.Errorf("endpoint hits forecast=%d archive=%d, want 1/0 for a future date", forecastHits, archiveHits)
	}
}

func TestOpenMeteoEndpointSplit(t *testing.T) {
	tests := []struct {
		name         string
		date         string
		wantForecast int
		wantArchive  int
	}{
		{"past date uses archive", "2025-04-24", 0, 1},
		{"reference date uses forecast", "2025-04-25", 1, 0},
		{"future date uses forecast", "2025-05-01", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var forecastHits, archiveHits int
			srv := newWeatherTestServer(t, &forecastHits, &archiveHits)
			defer srv.Close()

			repo := NewOpenMeteoWeatherRepository(srv.URL, srv.URL+"/forecast", srv.URL+"/archive",
				mustTestDate(t, "2025-04-25"), 5*time.Second, logger.NewNop())

			if _, err := repo.HourlyForDay(context.Background(), "Paris", mustTestDate(t, tt.date)); err != nil {
				t.Fatalf("HourlyForDay() error = %v", err)
			}
			if forecastHits != tt.wantForecast || archiveHits != tt.wantArchive {
				t.Errorf("hits forecast=%d archive=%d, want %d/%d",
					forecastHits, archiveHits, tt.wantForecast, tt.wantArchive)
			}
		})
	}
}

func TestOpenMeteoDayReport(t *testing.T) {
	var forecastHits, archiveHits int
	srv := newWeatherTestServer(t, &forecastHits, &archiveHits)
	defer srv.Close()

	repo := NewOpenMeteoWeatherRepository(srv.URL, srv.URL+"/forecast", srv.URL+"/archive",
		mustTestDate(t, "2025-04-25"), 5*time.Second, logger.NewNop())

	report, err := repo.DayReport(context.Background(), "Paris", mustTestDate(t, "2025-04-26"))
	if err != nil {
		t.Fatalf("DayReport() error = %v", err)
	}
	if report.Location != "Paris" || report.Country != "France" || report.Date != "2025-04-26" {
		t.Errorf("report header = %+v", report)
	}
	if len(report.Hourly) != 3 {
		t.Fatalf("hourly points = %d, want 3", len(report.Hourly))
	}
	first := report.Hourly[0]
	if first.Hour != "00:00" || first.Temperature != "12.5" || first.Precipitation != "0" {
		t.Errorf("hourly[0] = %+v", first)
	}
}

func TestOpenMeteoGeocodeMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	repo := NewOpenMeteoWeatherRepository(srv.URL, srv.URL+"/forecast", srv.URL+"/archive",
		mustTestDate(t, "2025-04-25"), 5*time.Second, logger.NewNop())

	if _, err := repo.HourlyForDay(context.Background(), "Nowhere", mustTestDate(t, "2025-04-26")); err == nil {
		t.Fatal("HourlyForDay() error = nil, want geocode failure")
	}
}

func TestOpenMeteoEmptySeries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geocodeResponse))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly": {"time": [], "temperature_2m": [], "precipitation": []}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := NewOpenMeteoWeatherRepository(srv.URL, srv.URL+"/forecast", srv.URL+"/archive",
		mustTestDate(t, "2025-04-25"), 5*time.Second, logger.NewNop())

	if _, err := repo.HourlyForDay(context.Background(), "Paris", mustTestDate(t, "2025-04-26")); err == nil {
		t.Fatal("HourlyForDay() error = nil, want empty-series failure")
	}
}

func TestCountryFromDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paris, Île-de-France, France", "France"},
		{"Monaco", "Monaco"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		if got := countryFromDisplayName(tt.in); got != tt.want {
			t.Errorf("countryFromDisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
