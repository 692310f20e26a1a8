package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"tripwise-service/pkg/utils"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI string
	MongoDB  string

	// PostgreSQL (generation audit log)
	PostgresURI string

	// Auth
	JWTSecret string

	// Makcorps hotel API
	MakcorpsAPIKey  string
	MakcorpsBaseURL string
	HotelCurrency   string

	// Geocoding and weather
	GeocodeBaseURL  string
	ForecastBaseURL string
	ArchiveBaseURL  string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Planning
	// ReferenceDate is the date treated as "today" for the forecast horizon
	// and the forecast/archive source split. Defaults to the real current
	// date; REFERENCE_DATE pins it for reproducible runs.
	ReferenceDate       time.Time
	ForecastHorizonDays int

	UpstreamTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 60)) * time.Second,

		MongoURI:    getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "tripwise"),
		PostgresURI: getEnv("POSTGRES_DSN", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		MakcorpsAPIKey:  getEnv("MAKCORPS_API_KEY", ""),
		MakcorpsBaseURL: getEnv("MAKCORPS_BASE_URL", "https://api.makcorps.com"),
		HotelCurrency:   getEnv("HOTEL_CURRENCY", "USD"),

		GeocodeBaseURL:  getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		ForecastBaseURL: getEnv("FORECAST_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
		ArchiveBaseURL:  getEnv("ARCHIVE_BASE_URL", "https://archive-api.open-meteo.com/v1/archive"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		ForecastHorizonDays: getEnvAsInt("FORECAST_HORIZON_DAYS", 16),
		UpstreamTimeout:     time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT", 30)) * time.Second,
	}

	config.ReferenceDate = utils.DateOnly(time.Now())
	if v := os.Getenv("REFERENCE_DATE"); v != "" {
		d, ok := utils.ParseDate(v)
		if !ok {
			return nil, fmt.Errorf("invalid REFERENCE_DATE %q, want YYYY-MM-DD", v)
		}
		config.ReferenceDate = d
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
