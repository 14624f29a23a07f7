package datasource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"globe-weather/models"

	"github.com/joho/godotenv"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a city
	GetWeather(ctx context.Context, city models.CityEntry) (models.WeatherResult, error)

	// Name returns the provider's name
	Name() string
}

// Config represents the application configuration
type Config struct {
	// OpenWeatherMap settings. APIKey is not validated here; a missing key
	// surfaces as a failed fetch.
	OpenWeatherMap struct {
		APIKey  string
		BaseURL string
	}

	// Rate limiting of outbound requests
	RateLimit bool

	// City fetched on activation
	DefaultCity models.CityEntry

	HTTPPort string
	LogLevel string
	Env      string
}

// LoadConfig reads configuration from the environment after loading the given
// .env files. A missing .env file is not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	config := DefaultConfig()
	config.OpenWeatherMap.APIKey = os.Getenv("OPENWEATHERMAP_API_KEY")
	config.OpenWeatherMap.BaseURL = getEnv("OPENWEATHERMAP_BASE_URL", config.OpenWeatherMap.BaseURL)
	config.RateLimit = getEnvBool("RATE_LIMIT", config.RateLimit)
	config.HTTPPort = getEnv("HTTP_PORT", config.HTTPPort)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.Env = getEnv("ENV", config.Env)

	if raw := os.Getenv("DEFAULT_CITY"); raw != "" {
		city, err := ParseCity(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_CITY: %w", err)
		}
		config.DefaultCity = city
	}

	return config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenWeatherMap.BaseURL = DefaultOpenWeatherMapURL
	config.RateLimit = true
	config.DefaultCity = models.CityEntry{Name: "Karachi", CountryCode: "PK"}
	config.HTTPPort = "8080"
	config.LogLevel = "info"
	config.Env = "development"
	return config
}

// ParseCity parses a "Name,CC" pair
func ParseCity(raw string) (models.CityEntry, error) {
	name, country, ok := strings.Cut(raw, ",")
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)
	if !ok || name == "" || country == "" {
		return models.CityEntry{}, fmt.Errorf("expected \"Name,CC\", got %q", raw)
	}
	return models.CityEntry{Name: name, CountryCode: strings.ToUpper(country)}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
