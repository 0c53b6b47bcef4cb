package models

import (
	"time"
)

// Forecast represents a single 3-hour forecast sample
type Forecast struct {
	Temperature float64   `json:"temperature"` // in Celsius
	TempMin     float64   `json:"tempMin"`
	TempMax     float64   `json:"tempMax"`
	Humidity    float64   `json:"humidity"`    // percentage
	WindSpeed   float64   `json:"windSpeed"`   // in m/s
	WindDeg     int       `json:"windDeg"`     // wind direction in degrees
	Pressure    float64   `json:"pressure"`    // in hPa
	PrecipProb  float64   `json:"precipProb"`  // probability of precipitation, 0..1
	Description string    `json:"description"` // short text description
	Icon        string    `json:"icon"`        // icon code
	Timestamp   time.Time `json:"timestamp"`   // time this forecast is for
}

// ForecastData represents the forecast samples returned by a provider
type ForecastData struct {
	Provider  string     `json:"provider"`  // weather data provider name
	Location  string     `json:"location"`  // location name
	Forecasts []Forecast `json:"forecasts"` // samples in chronological order
	Updated   time.Time  `json:"updated"`   // when this forecast was fetched
}

// DailySummary aggregates all forecast samples that share a calendar date
type DailySummary struct {
	Date          time.Time `json:"date"`
	MinTemp       float64   `json:"minTemp"`
	MaxTemp       float64   `json:"maxTemp"`
	MeanTemp      float64   `json:"meanTemp"`
	MeanHumidity  float64   `json:"meanHumidity"`
	MeanWindSpeed float64   `json:"meanWindSpeed"`
	Description   string    `json:"description"` // from the first sample of the day
	Icon          string    `json:"icon"`        // from the first sample of the day
	Samples       int       `json:"samples"`
}
