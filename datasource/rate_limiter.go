package datasource

import (
	"context"
	"fmt"

	"weather-dashboard/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider paces calls to a Source so a free-tier call budget is
// not exceeded. It only waits; it never retries or inspects responses.
type RateLimitedProvider struct {
	source          Source
	weatherLimiter  *rate.Limiter
	forecastLimiter *rate.Limiter
	name            string
}

// NewRateLimitedProvider wraps source with separate limiters for the weather and forecast APIs.
// weatherRPS and forecastRPS are the maximum requests per second and may be fractional.
func NewRateLimitedProvider(source Source, weatherRPS, forecastRPS float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		source:          source,
		weatherLimiter:  rate.NewLimiter(rate.Limit(weatherRPS), burst),
		forecastLimiter: rate.NewLimiter(rate.Limit(forecastRPS), burst),
		name:            fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// GetWeather implements WeatherProvider interface with rate limiting
func (r *RateLimitedProvider) GetWeather(ctx context.Context, q Query) (models.WeatherData, error) {
	if err := r.weatherLimiter.Wait(ctx); err != nil {
		return models.WeatherData{}, &models.NetworkError{Op: "rate limit wait", Err: err}
	}
	return r.source.GetWeather(ctx, q)
}

// FetchForecast implements ForecastSource interface with rate limiting
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, q Query) (models.ForecastData, error) {
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return models.ForecastData{}, &models.NetworkError{Op: "rate limit wait", Err: err}
	}
	return r.source.FetchForecast(ctx, q)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

// Verify that the rate limited provider implements the required interfaces
var (
	_ WeatherProvider = (*RateLimitedProvider)(nil)
	_ ForecastSource  = (*RateLimitedProvider)(nil)
	_ Source          = (*RateLimitedProvider)(nil)
)
