package models

import (
	"time"
)

// WeatherData represents the current conditions reported by a provider
type WeatherData struct {
	Provider    string    `json:"provider"`
	Location    string    `json:"location"`
	Country     string    `json:"country"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"lon"`
	Temperature float64   `json:"temperature"` // in Celsius
	FeelsLike   float64   `json:"feelsLike"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"` // in m/s
	WindDeg     int       `json:"windDeg"`
	Pressure    float64   `json:"pressure"`   // in hPa
	Visibility  float64   `json:"visibility"` // in meters
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
	Timestamp   time.Time `json:"timestamp"`
}

// VisibilityKm returns the visibility in kilometers
func (w WeatherData) VisibilityKm() float64 {
	return w.Visibility / 1000
}

// Location is a position resolved from the caller's IP address
type Location struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Timezone  string  `json:"timezone"`
}
