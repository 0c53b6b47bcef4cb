package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
	"weather-dashboard/region"
)

// MockSource simulates API latency and counts calls
type MockSource struct {
	callCount int
	mutex     sync.Mutex
	latency   time.Duration
}

func NewMockSource(latency time.Duration) *MockSource {
	return &MockSource{latency: latency}
}

func (m *MockSource) record(q datasource.Query) {
	m.mutex.Lock()
	m.callCount++
	n := m.callCount
	m.mutex.Unlock()

	fmt.Printf("%s - Processing request #%d for %s\n", time.Now().Format("15:04:05.000"), n, q)
}

func (m *MockSource) wait(ctx context.Context) error {
	select {
	case <-time.After(m.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MockSource) GetWeather(ctx context.Context, q datasource.Query) (models.WeatherData, error) {
	m.record(q)
	if err := m.wait(ctx); err != nil {
		return models.WeatherData{}, err
	}
	return models.WeatherData{
		Location:    q.String(),
		Provider:    m.Name(),
		Temperature: 22.5,
		Humidity:    60,
		WindSpeed:   5.5,
		Description: "Mocked weather data",
		Timestamp:   time.Now(),
	}, nil
}

func (m *MockSource) FetchForecast(ctx context.Context, q datasource.Query) (models.ForecastData, error) {
	m.record(q)
	if err := m.wait(ctx); err != nil {
		return models.ForecastData{}, err
	}
	return models.ForecastData{Location: q.String(), Provider: m.Name(), Updated: time.Now()}, nil
}

func (m *MockSource) Name() string {
	return "MockSource"
}

func (m *MockSource) GetCallCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.callCount
}

// cityQueries lists the weather API names of every city in a province
func cityQueries(province string) []string {
	cities, err := region.Cities(province)
	if err != nil {
		log.Fatalf("Unknown province: %v", err)
	}
	queries := make([]string, 0, len(cities))
	for _, c := range cities {
		queries = append(queries, c.Query())
	}
	return queries
}

func main() {
	// Parse command-line flags
	requestsPerSecond := flag.Float64("rps", 1.0, "Rate limit in requests per second")
	burstSize := flag.Int("burst", 5, "Maximum burst size")
	province := flag.String("province", "부산광역시", "Province whose cities are requested")
	concurrentRequests := flag.Int("concurrent", 4, "Number of concurrent workers")
	flag.Parse()

	queries := cityQueries(*province)
	totalRequests := len(queries)

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Create a mock source with 200ms response time
	mock := NewMockSource(200 * time.Millisecond)

	// Wrap with rate limiter
	limited := datasource.NewRateLimitedProvider(mock, *requestsPerSecond, *requestsPerSecond, *burstSize)

	fmt.Printf("Testing %s with:\n", limited.Name())
	fmt.Printf("- Rate limit: %.2f requests/second\n", *requestsPerSecond)
	fmt.Printf("- Burst size: %d\n", *burstSize)
	fmt.Printf("- Cities in %s: %d\n", *province, totalRequests)
	fmt.Printf("- Concurrent workers: %d\n", *concurrentRequests)
	fmt.Println("Starting test...")

	startTime := time.Now()
	jobs := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < *concurrentRequests; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for city := range jobs {
				before := time.Now()
				_, err := limited.GetWeather(ctx, datasource.CityQuery(city))
				if err != nil {
					log.Printf("Worker %d - %s failed: %v", workerID, city, err)
					continue
				}
				log.Printf("Worker %d - %s completed in %v", workerID, city, time.Since(before))
			}
		}(i)
	}

	for _, q := range queries {
		jobs <- q
	}
	close(jobs)
	wg.Wait()

	totalTime := time.Since(startTime)
	actualRPS := float64(totalRequests) / totalTime.Seconds()

	fmt.Println("\nTest completed!")
	fmt.Printf("Total time: %.2f seconds\n", totalTime.Seconds())
	fmt.Printf("Actual requests per second: %.2f\n", actualRPS)
	fmt.Printf("Total requests processed: %d\n", mock.GetCallCount())

	expectedMinTime := float64(totalRequests-*burstSize) / *requestsPerSecond
	if expectedMinTime < 0 {
		expectedMinTime = 0
	}
	fmt.Printf("Expected minimum time (theoretical): %.2f seconds\n", expectedMinTime)

	if actualRPS > *requestsPerSecond*1.5 && totalRequests > *burstSize {
		fmt.Println("\n⚠️ WARNING: Actual RPS significantly higher than configured rate limit!")
	} else {
		fmt.Println("\n✅ Rate limiting appears to be working correctly.")
	}
}
