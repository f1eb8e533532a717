package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the OpenWeatherMap REST root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

type Config struct {
	// APIKey authorizes calls to the weather provider. It may be empty:
	// the client reports the missing credential as a user-visible answer
	// instead of failing at startup.
	APIKey      string
	Units       string
	BaseURL     string
	HTTPTimeout time.Duration
}

// Load merges a .env file (when present) into the environment and reads the
// settings from it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIKey:      os.Getenv("OPENWEATHERMAP_API_KEY"),
		Units:       getEnv("NIMBUS_UNITS", "imperial"),
		BaseURL:     getEnv("NIMBUS_BASE_URL", DefaultBaseURL),
		HTTPTimeout: getDuration("NIMBUS_HTTP_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
