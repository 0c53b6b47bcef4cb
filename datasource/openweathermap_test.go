package datasource

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weather-dashboard/models"
)

const currentBody = `{
	"coord": {"lon": 127.0495, "lat": 37.5145},
	"weather": [{"id": 800, "main": "Clear", "description": "맑음", "icon": "01d"}],
	"main": {"temp": 21.5, "feels_like": 20.9, "temp_min": 19, "temp_max": 23, "pressure": 1016, "humidity": 48},
	"visibility": 10000,
	"wind": {"speed": 3.6, "deg": 250},
	"dt": 1740000000,
	"sys": {"country": "KR", "sunrise": 1739990000, "sunset": 1740030000},
	"name": "Gangnam-gu",
	"cod": 200
}`

func forecastBody(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"dt": %d, "main": {"temp": %d, "temp_min": %d, "temp_max": %d, "pressure": 1012, "humidity": 60},
			"weather": [{"description": "구름조금", "icon": "02d"}], "wind": {"speed": 1.5, "deg": 90}, "pop": 0.2}`,
			1740000000+i*10800, i, i-1, i+1)
	}
	return `{"cod": "200", "city": {"name": "Seoul", "country": "KR"}, "list": [` + strings.Join(items, ",") + `]}`
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenWeatherMapProvider {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewOpenWeatherMapProvider(OpenWeatherMapConfig{
		APIKey:  "test-key",
		BaseURL: ts.URL,
		Lang:    "kr",
	})
}

func TestGetWeather_ByCity(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(currentBody))
	})

	data, err := p.GetWeather(context.Background(), CityQuery("Gangnam-gu"))
	if err != nil {
		t.Fatalf("GetWeather failed: %v", err)
	}

	if gotPath != "/weather" {
		t.Errorf("Expected path /weather, got %s", gotPath)
	}
	want := map[string]string{"q": "Gangnam-gu", "appid": "test-key", "units": "metric", "lang": "kr"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("Expected %s=%s, got %q", k, v, gotQuery[k])
		}
	}
	if _, ok := gotQuery["lat"]; ok {
		t.Error("City query should not send lat")
	}

	if data.Location != "Gangnam-gu" || data.Country != "KR" {
		t.Errorf("Unexpected location %s,%s", data.Location, data.Country)
	}
	if data.Temperature != 21.5 || data.FeelsLike != 20.9 {
		t.Errorf("Unexpected temperatures %v / %v", data.Temperature, data.FeelsLike)
	}
	if data.Humidity != 48 || data.Pressure != 1016 || data.WindSpeed != 3.6 {
		t.Errorf("Unexpected readings: %+v", data)
	}
	if data.VisibilityKm() != 10 {
		t.Errorf("Expected 10 km visibility, got %v", data.VisibilityKm())
	}
	if data.Description != "맑음" || data.Icon != "01d" {
		t.Errorf("Unexpected condition %q / %q", data.Description, data.Icon)
	}
	if !data.Timestamp.Equal(time.Unix(1740000000, 0)) {
		t.Errorf("Unexpected timestamp %v", data.Timestamp)
	}
}

func TestGetWeather_ByCoordinates(t *testing.T) {
	var lat, lon, q string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		lat = r.URL.Query().Get("lat")
		lon = r.URL.Query().Get("lon")
		q = r.URL.Query().Get("q")
		w.Write([]byte(currentBody))
	})

	if _, err := p.GetWeather(context.Background(), CoordinateQuery(37.5665, 126.978)); err != nil {
		t.Fatalf("GetWeather failed: %v", err)
	}
	if lat != "37.5665" || lon != "126.978" {
		t.Errorf("Unexpected coordinates lat=%s lon=%s", lat, lon)
	}
	if q != "" {
		t.Errorf("Coordinate query should not send q, got %q", q)
	}
}

func TestGetWeather_CityNotFound(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	})

	_, err := p.GetWeather(context.Background(), CityQuery("Atlantis"))
	if !models.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "city not found") {
		t.Errorf("Expected API message in error, got %q", err.Error())
	}
}

func TestGetWeather_NonSuccessStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	})

	_, err := p.GetWeather(context.Background(), CityQuery("Seoul"))
	if !models.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError for non-success status, got %v", err)
	}
}

func TestGetWeather_NetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := ts.URL
	ts.Close()

	p := NewOpenWeatherMapProvider(OpenWeatherMapConfig{APIKey: "k", BaseURL: baseURL})
	_, err := p.GetWeather(context.Background(), CityQuery("Seoul"))
	if !models.IsNetwork(err) {
		t.Fatalf("Expected NetworkError, got %v", err)
	}
}

func TestGetWeather_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.GetWeather(ctx, CityQuery("Seoul"))
	if !models.IsNetwork(err) {
		t.Fatalf("Expected NetworkError on timeout, got %v", err)
	}
}

func TestFetchForecast(t *testing.T) {
	var gotPath string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(forecastBody(40)))
	})

	data, err := p.FetchForecast(context.Background(), CityQuery("Seoul"))
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}

	if gotPath != "/forecast" {
		t.Errorf("Expected path /forecast, got %s", gotPath)
	}
	if data.Location != "Seoul,KR" {
		t.Errorf("Expected Seoul,KR, got %s", data.Location)
	}
	if len(data.Forecasts) != 40 {
		t.Fatalf("Expected 40 samples, got %d", len(data.Forecasts))
	}

	second := data.Forecasts[1]
	if second.Temperature != 1 || second.TempMin != 0 || second.TempMax != 2 {
		t.Errorf("Unexpected temperatures: %+v", second)
	}
	if second.Description != "구름조금" || second.Icon != "02d" || second.PrecipProb != 0.2 {
		t.Errorf("Unexpected condition: %+v", second)
	}
	if got := second.Timestamp.Sub(data.Forecasts[0].Timestamp); got != 3*time.Hour {
		t.Errorf("Expected 3h between samples, got %v", got)
	}
}

func TestFetchForecast_KeepsFirstFortySamples(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastBody(45)))
	})

	data, err := p.FetchForecast(context.Background(), CityQuery("Seoul"))
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}
	if len(data.Forecasts) != maxForecastSamples {
		t.Errorf("Expected %d samples, got %d", maxForecastSamples, len(data.Forecasts))
	}
	if data.Forecasts[0].Temperature != 0 {
		t.Errorf("Expected the first sample to be kept, got %+v", data.Forecasts[0])
	}
}

func TestFetchForecast_MalformedBody(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list": [`))
	})

	_, err := p.FetchForecast(context.Background(), CityQuery("Seoul"))
	if !models.IsNetwork(err) {
		t.Fatalf("Expected NetworkError for malformed body, got %v", err)
	}
}

func TestQueryString(t *testing.T) {
	if got := CityQuery("Busan").String(); got != "Busan" {
		t.Errorf("Expected Busan, got %s", got)
	}
	if got := CoordinateQuery(35.1796, 129.0756).String(); got != "35.1796,129.0756" {
		t.Errorf("Unexpected coordinate string %s", got)
	}
}
