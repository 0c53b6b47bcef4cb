package region

// CityGroup is a set of quick-pick world cities
type CityGroup struct {
	Region string   `json:"region"`
	Cities []string `json:"cities"`
}

var foreignCities = []CityGroup{
	{Region: "North America", Cities: []string{"New York", "Los Angeles", "Chicago", "Toronto", "Vancouver"}},
	{Region: "Europe", Cities: []string{"London", "Paris", "Berlin", "Rome", "Madrid", "Amsterdam"}},
	{Region: "Asia", Cities: []string{"Tokyo", "Osaka", "Bangkok", "Singapore", "Hong Kong", "Mumbai"}},
	{Region: "Oceania", Cities: []string{"Sydney", "Melbourne", "Auckland"}},
	{Region: "Other", Cities: []string{"Dubai", "Cairo", "Moscow", "São Paulo"}},
}

// ForeignCities returns the quick-pick groups shown in foreign-city mode
func ForeignCities() []CityGroup {
	groups := make([]CityGroup, len(foreignCities))
	for i, g := range foreignCities {
		groups[i] = CityGroup{Region: g.Region, Cities: append([]string(nil), g.Cities...)}
	}
	return groups
}
