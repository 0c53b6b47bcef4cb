package datasource

import (
	"fmt"
	"strconv"
)

// Query identifies the place to ask the weather API about, either by
// city name or by coordinates
type Query struct {
	City          string
	Latitude      float64
	Longitude     float64
	ByCoordinates bool
}

// CityQuery builds a query for a city name
func CityQuery(city string) Query {
	return Query{City: city}
}

// CoordinateQuery builds a query for a latitude/longitude pair
func CoordinateQuery(lat, lon float64) Query {
	return Query{Latitude: lat, Longitude: lon, ByCoordinates: true}
}

// String returns a printable form of the query for logs and error messages
func (q Query) String() string {
	if q.ByCoordinates {
		return fmt.Sprintf("%s,%s",
			strconv.FormatFloat(q.Latitude, 'f', 4, 64),
			strconv.FormatFloat(q.Longitude, 'f', 4, 64))
	}
	return q.City
}

// Source is a provider that serves both current conditions and forecasts
type Source interface {
	WeatherProvider
	ForecastSource
}
