package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-dashboard/models"
)

// DefaultTimeout bounds a single lookup
const DefaultTimeout = 5 * time.Second

// Locator resolves an IP address to an approximate position using ip-api.com
type Locator struct {
	baseURL    string
	httpClient *http.Client
}

// NewLocator creates a locator. A zero timeout uses DefaultTimeout.
func NewLocator(baseURL string, timeout time.Duration) *Locator {
	if baseURL == "" {
		baseURL = "http://ip-api.com"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Locator{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ipAPIResponse is the subset of the ip-api.com JSON we use
type ipAPIResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Country    string  `json:"country"`
	RegionName string  `json:"regionName"`
	City       string  `json:"city"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Timezone   string  `json:"timezone"`
}

// Locate looks up ip. An empty ip asks about the address the request comes from.
func (l *Locator) Locate(ctx context.Context, ip string) (models.Location, error) {
	endpoint := l.baseURL + "/json/"
	if ip != "" {
		endpoint += url.PathEscape(ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return models.Location{}, &models.NetworkError{Op: "geolocate", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Location{}, &models.NetworkError{Op: "geolocate", Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	name := ip
	if name == "" {
		name = "caller"
	}

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, &models.NotFoundError{
			Kind:   "location",
			Name:   name,
			Reason: fmt.Sprintf("geolocation error (status %d)", resp.StatusCode),
		}
	}

	var result ipAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return models.Location{}, &models.NetworkError{Op: "parse geolocation response", Err: err}
	}

	if result.Status != "success" {
		return models.Location{}, &models.NotFoundError{Kind: "location", Name: name, Reason: result.Message}
	}

	return models.Location{
		City:      result.City,
		Country:   result.Country,
		Region:    result.RegionName,
		Latitude:  result.Lat,
		Longitude: result.Lon,
		Timezone:  result.Timezone,
	}, nil
}
