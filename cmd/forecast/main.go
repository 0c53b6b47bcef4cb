package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"weather-dashboard/conditions"
	"weather-dashboard/datasource"
	"weather-dashboard/forecast"
	"weather-dashboard/region"

	"github.com/joho/godotenv"
)

func main() {
	province := flag.String("province", "", "Province, e.g. 서울특별시 (domestic lookup)")
	city := flag.String("city", "", "City within the province, e.g. 강남구")
	name := flag.String("name", "Seoul", "City name when no province is given, e.g. 부산 or Paris")
	timeout := flag.Duration("timeout", 15*time.Second, "Overall time limit")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file:", err)
	}

	config := datasource.DefaultConfig()
	config.OpenWeatherMap.APIKey = os.Getenv("OPENWEATHER_API_KEY")
	if config.OpenWeatherMap.APIKey == "" {
		log.Fatal("No API key provided (set OPENWEATHER_API_KEY)")
	}

	query := region.Translate(*name)
	place := query
	if *province != "" {
		resolved, err := region.Resolve(*province, *city)
		if err != nil {
			log.Fatalf("Cannot resolve region: %v", err)
		}
		query = resolved
		place = region.Address(*province, *city, "")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	source := datasource.NewOpenWeatherMapProvider(config.OpenWeatherMap)

	current, err := source.GetWeather(ctx, datasource.CityQuery(query))
	if err != nil {
		log.Fatalf("Error fetching weather for %s: %v", query, err)
	}

	fmt.Printf("=== %s (%s) ===\n", place, query)
	fmt.Printf("%s %.1f°C (체감 %.1f°C) %s\n",
		conditions.IconEmoji(current.Icon), current.Temperature, current.FeelsLike, current.Description)
	fmt.Printf("습도 %.0f%% (%s), 바람 %.1fm/s (%s), 기압 %.0fhPa (%s), 가시거리 %.1fkm (%s)\n",
		current.Humidity, conditions.HumidityLevel(current.Humidity),
		current.WindSpeed, conditions.WindLevel(current.WindSpeed),
		current.Pressure, conditions.PressureLevel(current.Pressure),
		current.VisibilityKm(), conditions.VisibilityLevel(current.VisibilityKm()))

	fc, err := source.FetchForecast(ctx, datasource.CityQuery(query))
	if err != nil {
		log.Fatalf("Error fetching forecast for %s: %v", query, err)
	}

	fmt.Println("\n5일 예보")
	for _, day := range forecast.Summarize(fc.Forecasts) {
		fmt.Printf("%s(%s) %s %5.1f°C / %5.1f°C  평균 %.1f°C  습도 %.0f%%  %s\n",
			day.Date.Format("01/02"), conditions.Weekday(day.Date), conditions.IconEmoji(day.Icon),
			day.MinTemp, day.MaxTemp, day.MeanTemp, day.MeanHumidity, day.Description)
	}
}
