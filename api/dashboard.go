package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"weather-dashboard/conditions"
	"weather-dashboard/datasource"
	"weather-dashboard/forecast"
	"weather-dashboard/models"
	"weather-dashboard/region"
)

// CurrentView is the current conditions with display labels attached
type CurrentView struct {
	models.WeatherData
	Emoji            string  `json:"emoji"`
	IconURL          string  `json:"iconUrl"`
	TemperatureEmoji string  `json:"temperatureEmoji"`
	VisibilityKm     float64 `json:"visibilityKm"`
	HumidityLevel    string  `json:"humidityLevel"`
	WindLevel        string  `json:"windLevel"`
	PressureLevel    string  `json:"pressureLevel"`
	VisibilityLevel  string  `json:"visibilityLevel"`
}

func newCurrentView(w models.WeatherData) CurrentView {
	km := w.VisibilityKm()
	return CurrentView{
		WeatherData:      w,
		Emoji:            conditions.IconEmoji(w.Icon),
		IconURL:          conditions.IconURL(w.Icon, 4),
		TemperatureEmoji: conditions.TemperatureEmoji(w.Temperature),
		VisibilityKm:     km,
		HumidityLevel:    conditions.HumidityLevel(w.Humidity),
		WindLevel:        conditions.WindLevel(w.WindSpeed),
		PressureLevel:    conditions.PressureLevel(w.Pressure),
		VisibilityLevel:  conditions.VisibilityLevel(km),
	}
}

// DailyView is one day of the forecast table
type DailyView struct {
	models.DailySummary
	Label   string `json:"label"`   // e.g. "03/01"
	Weekday string `json:"weekday"` // e.g. "토"
	Emoji   string `json:"emoji"`
	IconURL string `json:"iconUrl"`
}

func newDailyViews(days []models.DailySummary) []DailyView {
	views := make([]DailyView, 0, len(days))
	for _, d := range days {
		views = append(views, DailyView{
			DailySummary: d,
			Label:        d.Date.Format("01/02"),
			Weekday:      conditions.Weekday(d.Date),
			Emoji:        conditions.IconEmoji(d.Icon),
			IconURL:      conditions.IconURL(d.Icon, 2),
		})
	}
	return views
}

// Dashboard is the full payload for one page render
type Dashboard struct {
	Selection     models.Selection  `json:"selection"`
	Place         string            `json:"place"` // what the visitor picked, for display
	Query         string            `json:"query"` // what the weather API was asked
	Fallback      bool              `json:"fallback"`
	Current       CurrentView       `json:"current"`
	Hourly        []models.Forecast `json:"hourly"`
	Daily         []DailyView       `json:"daily"`
	ForecastError string            `json:"forecastError,omitempty"`
	Updated       time.Time         `json:"updated"`
}

// target is the resolved outcome of a selection
type target struct {
	query    datasource.Query
	place    string
	fallback bool
}

// selectionFromRequest reads the selection from the query string. Without a
// mode it reuses the session's last selection, else current location.
func (s *Server) selectionFromRequest(r *http.Request, id string) (models.Selection, error) {
	q := r.URL.Query()

	raw := q.Get("mode")
	if raw == "" {
		if st, ok := s.sessions.Get(id); ok && st.Selection.Mode != "" {
			return st.Selection, nil
		}
		return models.Selection{Mode: models.ModeCurrentLocation}, nil
	}

	mode, err := models.ParseMode(raw)
	if err != nil {
		return models.Selection{}, fmt.Errorf("%w: %v", errInvalidInput, err)
	}

	sel := models.Selection{Mode: mode}
	switch mode {
	case models.ModeDomesticCity:
		sel.Province = q.Get("province")
		sel.City = q.Get("city")
		sel.District = q.Get("district")
		if sel.Province == "" || sel.City == "" {
			return models.Selection{}, fmt.Errorf("%w: domestic mode needs province and city", errInvalidInput)
		}
	case models.ModeForeignCity:
		sel.Name = q.Get("name")
	}
	return sel, nil
}

// resolveTarget turns a selection into a weather API query
func (s *Server) resolveTarget(id string, sel models.Selection) (target, error) {
	switch sel.Mode {
	case models.ModeCurrentLocation:
		if st, ok := s.sessions.Get(id); ok && st.Location != nil {
			place := st.Location.City
			if place == "" {
				place = datasource.CoordinateQuery(st.Location.Latitude, st.Location.Longitude).String()
			}
			return target{
				query: datasource.CoordinateQuery(st.Location.Latitude, st.Location.Longitude),
				place: place,
			}, nil
		}
		return target{query: datasource.CityQuery(s.defaultCity), place: s.defaultCity, fallback: true}, nil

	case models.ModeDomesticCity:
		city, err := region.Resolve(sel.Province, sel.City)
		if err != nil {
			return target{}, err
		}
		return target{
			query: datasource.CityQuery(city),
			place: region.Address(sel.Province, sel.City, sel.District),
		}, nil

	case models.ModeForeignCity:
		name := region.Translate(sel.Name)
		if name == "" {
			return target{query: datasource.CityQuery(s.defaultCity), place: s.defaultCity, fallback: true}, nil
		}
		return target{query: datasource.CityQuery(name), place: name}, nil
	}

	return target{}, fmt.Errorf("%w: unknown mode %q", errInvalidInput, sel.Mode)
}

// handleDashboard resolves the selection and fetches current conditions and the forecast
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	sel, err := s.selectionFromRequest(r, id)
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := s.resolveTarget(id, sel)
	if err != nil {
		writeError(w, err)
		return
	}
	s.sessions.SaveSelection(id, sel)

	ctx := r.Context()
	current, err := s.source.GetWeather(ctx, t.query)
	if err != nil {
		log.Printf("Weather for %s failed: %v", t.query, err)
		writeError(w, err)
		return
	}

	dash := Dashboard{
		Selection: sel,
		Place:     t.place,
		Query:     t.query.String(),
		Fallback:  t.fallback,
		Current:   newCurrentView(current),
		Hourly:    []models.Forecast{},
		Daily:     []DailyView{},
		Updated:   time.Now(),
	}

	fc, err := s.source.FetchForecast(ctx, t.query)
	if err != nil {
		log.Printf("Forecast for %s failed: %v", t.query, err)
		dash.ForecastError = err.Error()
	} else {
		dash.Hourly = fc.Forecasts
		dash.Daily = newDailyViews(forecast.SummarizeIn(fc.Forecasts, s.zone))
	}

	writeJSON(w, http.StatusOK, dash)
}
