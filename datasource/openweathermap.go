package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-dashboard/models"
)

// maxForecastSamples is five days of 3-hour steps
const maxForecastSamples = 40

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource interfaces
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	lang       string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(cfg OpenWeatherMapConfig) *OpenWeatherMapProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultConfig().OpenWeatherMap.BaseURL
	}
	return &OpenWeatherMapProvider{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		lang:    cfg.Lang,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// owmError is the body OpenWeatherMap sends with a non-200 status
type owmError struct {
	Message string `json:"message"`
}

// get performs a GET on an endpoint and returns the body of a 200 response
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint string, q Query) ([]byte, error) {
	params := url.Values{}
	if q.ByCoordinates {
		params.Add("lat", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
		params.Add("lon", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	} else {
		params.Add("q", q.City)
	}
	params.Add("appid", p.apiKey)
	params.Add("units", "metric") // Use metric units
	if p.lang != "" {
		params.Add("lang", p.lang)
	}

	op := "GET /" + endpoint

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Execute request
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.NetworkError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		reason := fmt.Sprintf("API error (status %d)", resp.StatusCode)
		var apiErr owmError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			reason = fmt.Sprintf("%s (status %d)", apiErr.Message, resp.StatusCode)
		}
		kind := "city"
		if q.ByCoordinates {
			kind = "location"
		}
		return nil, &models.NotFoundError{Kind: kind, Name: q.String(), Reason: reason}
	}

	return body, nil
}

type owmCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// firstCondition extracts the weather description and icon if available
func firstCondition(conditions []owmCondition) (string, string) {
	if len(conditions) == 0 {
		return "", ""
	}
	return conditions[0].Description, conditions[0].Icon
}

// GetWeather fetches current weather for a query
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, q Query) (models.WeatherData, error) {
	body, err := p.get(ctx, "weather", q)
	if err != nil {
		return models.WeatherData{}, err
	}

	// Parse response
	var response struct {
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Wind       owmWind        `json:"wind"`
		Weather    []owmCondition `json:"weather"`
		Visibility float64        `json:"visibility"`
		Name       string         `json:"name"`
		Dt         int64          `json:"dt"`
		Sys        struct {
			Country string `json:"country"`
			Sunrise int64  `json:"sunrise"`
			Sunset  int64  `json:"sunset"`
		} `json:"sys"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherData{}, &models.NetworkError{Op: "parse /weather response", Err: err}
	}

	description, icon := firstCondition(response.Weather)

	return models.WeatherData{
		Provider:    p.Name(),
		Location:    response.Name,
		Country:     response.Sys.Country,
		Latitude:    response.Coord.Lat,
		Longitude:   response.Coord.Lon,
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
		WindDeg:     response.Wind.Deg,
		Pressure:    response.Main.Pressure,
		Visibility:  response.Visibility,
		Description: description,
		Icon:        icon,
		Sunrise:     time.Unix(response.Sys.Sunrise, 0),
		Sunset:      time.Unix(response.Sys.Sunset, 0),
		Timestamp:   time.Unix(response.Dt, 0),
	}, nil
}

// FetchForecast fetches the 5-day / 3-hour forecast for a query
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, q Query) (models.ForecastData, error) {
	body, err := p.get(ctx, "forecast", q)
	if err != nil {
		return models.ForecastData{}, err
	}

	// Parse response
	var response struct {
		City struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"city"`
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp     float64 `json:"temp"`
				TempMin  float64 `json:"temp_min"`
				TempMax  float64 `json:"temp_max"`
				Humidity float64 `json:"humidity"`
				Pressure float64 `json:"pressure"`
			} `json:"main"`
			Wind    owmWind        `json:"wind"`
			Weather []owmCondition `json:"weather"`
			Pop     float64        `json:"pop"` // Probability of precipitation
		} `json:"list"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.ForecastData{}, &models.NetworkError{Op: "parse /forecast response", Err: err}
	}

	location := response.City.Name
	if response.City.Country != "" {
		location = fmt.Sprintf("%s,%s", response.City.Name, response.City.Country)
	}

	forecast := models.ForecastData{
		Provider:  p.Name(),
		Location:  location,
		Forecasts: []models.Forecast{},
		Updated:   time.Now(),
	}

	items := response.List
	if len(items) > maxForecastSamples {
		items = items[:maxForecastSamples]
	}

	// Convert response to our model
	for _, item := range items {
		description, icon := firstCondition(item.Weather)

		forecast.Forecasts = append(forecast.Forecasts, models.Forecast{
			Temperature: item.Main.Temp,
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			WindDeg:     item.Wind.Deg,
			Pressure:    item.Main.Pressure,
			PrecipProb:  item.Pop,
			Description: description,
			Icon:        icon,
			Timestamp:   time.Unix(item.Dt, 0),
		})
	}

	return forecast, nil
}

// Ensure OpenWeatherMapProvider implements Source
var _ Source = (*OpenWeatherMapProvider)(nil)
