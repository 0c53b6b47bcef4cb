package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"weather-dashboard/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current conditions for a query
	GetWeather(ctx context.Context, q Query) (models.WeatherData, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the 3-hour forecast samples for a query
	FetchForecast(ctx context.Context, q Query) (models.ForecastData, error)

	// Name returns the source's name
	Name() string
}

// OpenWeatherMapConfig configures the OpenWeatherMap client
type OpenWeatherMapConfig struct {
	APIKey         string `json:"apiKey"`
	BaseURL        string `json:"baseUrl"`
	Lang           string `json:"lang"`
	TimeoutSeconds int    `json:"timeoutSeconds"` // 0 means no client timeout
}

// Timeout returns the configured client timeout
func (c OpenWeatherMapConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GeolocationConfig configures the IP geolocation client
type GeolocationConfig struct {
	BaseURL        string `json:"baseUrl"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// Timeout returns the configured client timeout
func (c GeolocationConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Config represents the application configuration
type Config struct {
	OpenWeatherMap OpenWeatherMapConfig `json:"openWeatherMap"`
	Geolocation    GeolocationConfig    `json:"geolocation"`

	// City used when a selection does not name one
	DefaultCity string `json:"defaultCity"`

	// IANA zone used to split forecasts into days; empty means the process zone
	Timezone string `json:"timezone"`

	// Sessions idle longer than this are forgotten
	SessionMaxAgeMinutes int `json:"sessionMaxAgeMinutes"`
}

// Location returns the time zone used for daily grouping
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SessionMaxAge returns the session idle limit
func (c *Config) SessionMaxAge() time.Duration {
	return time.Duration(c.SessionMaxAgeMinutes) * time.Minute
}

// LoadConfig loads configuration from a JSON file. A missing file yields the
// defaults. Environment variables override values from the file.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, err
	default:
		defer file.Close()
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	}

	config.applyEnv()
	return config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenWeatherMap.BaseURL = "https://api.openweathermap.org/data/2.5"
	config.OpenWeatherMap.Lang = "kr"
	config.Geolocation.BaseURL = "http://ip-api.com"
	config.Geolocation.TimeoutSeconds = 5
	config.DefaultCity = "Seoul"
	config.SessionMaxAgeMinutes = 24 * 60
	return config
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		c.OpenWeatherMap.APIKey = v
	}
	if v := os.Getenv("OPENWEATHER_LANG"); v != "" {
		c.OpenWeatherMap.Lang = v
	}
	if v := os.Getenv("DEFAULT_CITY"); v != "" {
		c.DefaultCity = v
	}
	if v := os.Getenv("DASHBOARD_TIMEZONE"); v != "" {
		c.Timezone = v
	}
}
