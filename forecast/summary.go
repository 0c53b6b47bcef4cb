// Package forecast reduces 3-hour forecast samples to per-day summaries.
package forecast

import (
	"time"

	"weather-dashboard/models"
)

// MaxDays is the number of daily summaries kept
const MaxDays = 5

type dayKey struct {
	year  int
	month time.Month
	day   int
}

type dayGroup struct {
	date    time.Time
	samples []models.Forecast
}

// Summarize groups samples by calendar date in the process's local time zone
func Summarize(samples []models.Forecast) []models.DailySummary {
	return SummarizeIn(samples, time.Local)
}

// SummarizeIn groups samples by their calendar date in loc. Days appear in
// the order their first sample appears in the input; they are not sorted.
// At most MaxDays summaries are returned.
func SummarizeIn(samples []models.Forecast, loc *time.Location) []models.DailySummary {
	if loc == nil {
		loc = time.Local
	}

	groups := make([]*dayGroup, 0, MaxDays)
	byDay := make(map[dayKey]*dayGroup)

	for _, s := range samples {
		t := s.Timestamp.In(loc)
		y, m, d := t.Date()
		key := dayKey{y, m, d}

		g, ok := byDay[key]
		if !ok {
			g = &dayGroup{date: time.Date(y, m, d, 0, 0, 0, 0, loc)}
			byDay[key] = g
			groups = append(groups, g)
		}
		g.samples = append(g.samples, s)
	}

	if len(groups) > MaxDays {
		groups = groups[:MaxDays]
	}

	summaries := make([]models.DailySummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, summarizeDay(g))
	}
	return summaries
}

func summarizeDay(g *dayGroup) models.DailySummary {
	first := g.samples[0]
	for _, s := range g.samples[1:] {
		if s.Timestamp.Before(first.Timestamp) {
			first = s
		}
	}

	summary := models.DailySummary{
		Date:        g.date,
		MinTemp:     first.Temperature,
		MaxTemp:     first.Temperature,
		Description: first.Description,
		Icon:        first.Icon,
		Samples:     len(g.samples),
	}

	var tempSum, humiditySum, windSum float64
	for _, s := range g.samples {
		if s.Temperature < summary.MinTemp {
			summary.MinTemp = s.Temperature
		}
		if s.Temperature > summary.MaxTemp {
			summary.MaxTemp = s.Temperature
		}
		tempSum += s.Temperature
		humiditySum += s.Humidity
		windSum += s.WindSpeed
	}

	n := float64(len(g.samples))
	summary.MeanTemp = tempSum / n
	summary.MeanHumidity = humiditySum / n
	summary.MeanWindSpeed = windSum / n

	return summary
}
