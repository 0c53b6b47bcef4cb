// Package region resolves Korean administrative divisions to the English
// city names accepted by the weather API.
package region

import (
	"strings"

	"weather-dashboard/models"
)

// Province is a top-level division: a special city, metropolitan city or do
type Province struct {
	Name   string
	Cities []City
}

// City is a si/gun/gu entry with its English label and the dong/eup/myeon below it
type City struct {
	Name      string   `json:"name"`
	English   string   `json:"english"`
	Districts []string `json:"districts"`
}

// Query returns the string sent as the weather API's city parameter.
// It is the first component of the English label, e.g. "Gangnam-gu".
func (c City) Query() string {
	name, _, _ := strings.Cut(c.English, ",")
	return strings.TrimSpace(name)
}

type cityKey struct {
	province string
	city     string
}

// index is built once from the table and never modified
var index = buildIndex(provinces)

func buildIndex(ps []Province) map[cityKey]City {
	idx := make(map[cityKey]City)
	for _, p := range ps {
		for _, c := range p.Cities {
			idx[cityKey{p.Name, c.Name}] = c
		}
	}
	return idx
}

// Provinces returns the province names in picker order
func Provinces() []string {
	names := make([]string, 0, len(provinces))
	for _, p := range provinces {
		names = append(names, p.Name)
	}
	return names
}

// Cities returns the cities of a province in picker order
func Cities(province string) ([]City, error) {
	for _, p := range provinces {
		if p.Name != province {
			continue
		}
		cities := make([]City, len(p.Cities))
		for i, c := range p.Cities {
			cities[i] = copyCity(c)
		}
		return cities, nil
	}
	return nil, &models.NotFoundError{Kind: "province", Name: province}
}

// Lookup returns the full table entry for a (province, city) pair
func Lookup(province, city string) (City, error) {
	c, ok := index[cityKey{province, city}]
	if !ok {
		if !hasProvince(province) {
			return City{}, &models.NotFoundError{Kind: "province", Name: province}
		}
		return City{}, &models.NotFoundError{Kind: "city", Name: city, Reason: "not in " + province}
	}
	return copyCity(c), nil
}

// Resolve maps a (province, city) pair to the weather API's city name.
// Districts never refine the result; the API is queried at city granularity.
func Resolve(province, city string) (string, error) {
	c, ok := index[cityKey{province, city}]
	if !ok {
		_, err := Lookup(province, city)
		return "", err
	}
	return c.Query(), nil
}

// Address formats a selection for display, e.g. "서울특별시 강남구 역삼동"
func Address(province, city, district string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{province, city, district} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Translate maps a colloquial Korean city name such as "부산" to its English
// name. Names without a mapping are returned trimmed but otherwise unchanged.
func Translate(name string) string {
	name = strings.TrimSpace(name)
	if english, ok := shortNames[name]; ok {
		return english
	}
	return name
}

func hasProvince(name string) bool {
	for _, p := range provinces {
		if p.Name == name {
			return true
		}
	}
	return false
}

func copyCity(c City) City {
	c.Districts = append([]string(nil), c.Districts...)
	return c
}
