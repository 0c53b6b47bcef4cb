package models

import "fmt"

// Mode selects how the dashboard picks the place to report on
type Mode string

const (
	ModeCurrentLocation Mode = "current"
	ModeDomesticCity    Mode = "domestic"
	ModeForeignCity     Mode = "foreign"
)

// ParseMode converts a query value into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCurrentLocation, ModeDomesticCity, ModeForeignCity:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode: %q", s)
	}
}

// Selection is the user's latest choice in the location picker.
// Province, City and District are used in domestic mode, Name in foreign mode.
type Selection struct {
	Mode     Mode   `json:"mode"`
	Province string `json:"province,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Name     string `json:"name,omitempty"`
}
