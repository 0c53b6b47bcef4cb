package datasource

import (
	"context"
	"errors"
	"testing"

	"weather-dashboard/models"
)

// stubSource records calls and returns canned results
type stubSource struct {
	weatherCalls  int
	forecastCalls int
	lastQuery     Query
	err           error
}

func (s *stubSource) GetWeather(ctx context.Context, q Query) (models.WeatherData, error) {
	s.weatherCalls++
	s.lastQuery = q
	if s.err != nil {
		return models.WeatherData{}, s.err
	}
	return models.WeatherData{Location: q.City, Temperature: 18}, nil
}

func (s *stubSource) FetchForecast(ctx context.Context, q Query) (models.ForecastData, error) {
	s.forecastCalls++
	s.lastQuery = q
	if s.err != nil {
		return models.ForecastData{}, s.err
	}
	return models.ForecastData{Location: q.City, Forecasts: []models.Forecast{{Temperature: 1}}}, nil
}

func (s *stubSource) Name() string { return "Stub" }

func TestRateLimitedProvider_Forwards(t *testing.T) {
	stub := &stubSource{}
	p := NewRateLimitedProvider(stub, 100, 100, 5)

	if got := p.Name(); got != "Stub [Rate Limited]" {
		t.Errorf("Expected wrapped name, got %q", got)
	}

	data, err := p.GetWeather(context.Background(), CityQuery("Daegu"))
	if err != nil {
		t.Fatalf("GetWeather failed: %v", err)
	}
	if data.Location != "Daegu" || stub.weatherCalls != 1 {
		t.Errorf("Expected one forwarded call for Daegu, got %d calls and %+v", stub.weatherCalls, data)
	}

	forecast, err := p.FetchForecast(context.Background(), CityQuery("Daegu"))
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}
	if len(forecast.Forecasts) != 1 || stub.forecastCalls != 1 {
		t.Errorf("Expected one forwarded forecast call, got %d", stub.forecastCalls)
	}
}

func TestRateLimitedProvider_PassesErrorsThrough(t *testing.T) {
	notFound := &models.NotFoundError{Kind: "city", Name: "Nowhere"}
	stub := &stubSource{err: notFound}
	p := NewRateLimitedProvider(stub, 100, 100, 5)

	_, err := p.GetWeather(context.Background(), CityQuery("Nowhere"))
	if !errors.Is(err, notFound) {
		t.Errorf("Expected the source error unchanged, got %v", err)
	}
	if stub.weatherCalls != 1 {
		t.Errorf("Expected a single attempt, got %d", stub.weatherCalls)
	}
}

func TestRateLimitedProvider_CancelledContext(t *testing.T) {
	stub := &stubSource{}
	p := NewRateLimitedProvider(stub, 1, 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetWeather(ctx, CityQuery("Seoul"))
	if !models.IsNetwork(err) {
		t.Fatalf("Expected NetworkError, got %v", err)
	}
	_, err = p.FetchForecast(ctx, CityQuery("Seoul"))
	if !models.IsNetwork(err) {
		t.Fatalf("Expected NetworkError, got %v", err)
	}
	if stub.weatherCalls != 0 || stub.forecastCalls != 0 {
		t.Errorf("Source should not be called after a failed wait")
	}
}
