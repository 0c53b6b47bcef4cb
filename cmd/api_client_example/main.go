package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"time"
)

func main() {
	baseURL := flag.String("server", "http://localhost:8080", "Base URL of the dashboard server")
	mode := flag.String("mode", "domestic", "Selection mode: current, domestic or foreign")
	province := flag.String("province", "서울특별시", "Province for domestic mode")
	city := flag.String("city", "강남구", "City for domestic mode")
	district := flag.String("district", "", "District for domestic mode (display only)")
	name := flag.String("name", "Tokyo", "City name for foreign mode")
	flag.Parse()

	fmt.Println("Weather Dashboard Client Example")
	fmt.Println("================================")

	// The jar keeps the session cookie between calls
	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar, Timeout: 30 * time.Second}

	// List provinces
	var provinces struct {
		Provinces []string `json:"provinces"`
	}
	if err := getJSON(client, *baseURL+"/api/regions", &provinces); err != nil {
		fmt.Printf("Error fetching regions: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Provinces: %v\n\n", provinces.Provinces)

	if *mode == "current" {
		fmt.Println("Locating this machine...")
		resp, err := client.Post(*baseURL+"/api/location", "application/json", nil)
		if err != nil {
			fmt.Printf("Error locating: %v\n", err)
			os.Exit(1)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("Location response (%d): %s\n", resp.StatusCode, body)
	}

	params := url.Values{}
	params.Set("mode", *mode)
	switch *mode {
	case "domestic":
		params.Set("province", *province)
		params.Set("city", *city)
		if *district != "" {
			params.Set("district", *district)
		}
	case "foreign":
		params.Set("name", *name)
	}

	var dash struct {
		Place   string `json:"place"`
		Query   string `json:"query"`
		Current struct {
			Temperature   float64 `json:"temperature"`
			Description   string  `json:"description"`
			Emoji         string  `json:"emoji"`
			HumidityLevel string  `json:"humidityLevel"`
			WindLevel     string  `json:"windLevel"`
		} `json:"current"`
		Daily []struct {
			Label   string  `json:"label"`
			Weekday string  `json:"weekday"`
			Emoji   string  `json:"emoji"`
			MinTemp float64 `json:"minTemp"`
			MaxTemp float64 `json:"maxTemp"`
		} `json:"daily"`
		ForecastError string `json:"forecastError"`
	}

	fmt.Printf("Fetching dashboard (%s)...\n", params.Encode())
	if err := getJSON(client, *baseURL+"/api/dashboard?"+params.Encode(), &dash); err != nil {
		fmt.Printf("Error fetching dashboard: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s (%s)\n", dash.Place, dash.Query)
	fmt.Printf("  %s %.1f°C %s, 습도 %s, 바람 %s\n",
		dash.Current.Emoji, dash.Current.Temperature, dash.Current.Description,
		dash.Current.HumidityLevel, dash.Current.WindLevel)

	if dash.ForecastError != "" {
		fmt.Printf("\nForecast unavailable: %s\n", dash.ForecastError)
		return
	}

	fmt.Println("\n5-day forecast:")
	for _, d := range dash.Daily {
		fmt.Printf("  %s(%s) %s %.1f° / %.1f°\n", d.Label, d.Weekday, d.Emoji, d.MinTemp, d.MaxTemp)
	}
}

// getJSON fetches target and decodes a 200 response into v
func getJSON(client *http.Client, target string, v interface{}) error {
	resp, err := client.Get(target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.Unmarshal(body, &apiErr)
		return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error)
	}

	return json.Unmarshal(body, v)
}
