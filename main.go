package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"weather-dashboard/api"
	"weather-dashboard/datasource"
	"weather-dashboard/geolocation"
	"weather-dashboard/session"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	port := flag.Int("port", 8080, "Port to run the server on")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if config.OpenWeatherMap.APIKey == "" {
		log.Fatal("No OpenWeatherMap API key provided (set OPENWEATHER_API_KEY)")
	}

	zone, err := config.Location()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var source datasource.Source = datasource.NewOpenWeatherMapProvider(config.OpenWeatherMap)

	// Apply rate limiting if enabled
	if *enableRateLimiting {
		// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
		// Allow bursts of up to 5 requests
		source = datasource.NewRateLimitedProvider(source, 1.0, 1.0, 5)
		log.Println("Applied rate limiting to OpenWeatherMap provider")
	}

	locator := geolocation.NewLocator(config.Geolocation.BaseURL, config.Geolocation.Timeout())
	sessions := session.NewStore(config.SessionMaxAge())

	// Create API server
	server := api.NewServer(source, locator, sessions, api.Settings{
		Port:        *port,
		DefaultCity: config.DefaultCity,
		Zone:        zone,
	})

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the API server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	log.Printf("Serving weather for %s (default city %s, zone %s)", source.Name(), config.DefaultCity, zone)

	// Wait for shutdown signal
	sig := <-shutdownChan
	fmt.Printf("Shutting down due to %s signal\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	fmt.Println("Shutdown complete")
}
