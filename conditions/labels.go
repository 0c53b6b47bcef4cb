// Package conditions turns raw readings into the labels shown on the dashboard.
package conditions

import (
	"fmt"
	"time"
)

var iconEmoji = map[string]string{
	"01d": "☀️", // clear sky
	"01n": "🌙",
	"02d": "⛅", // few clouds
	"02n": "☁️",
	"03d": "☁️", // scattered clouds
	"03n": "☁️",
	"04d": "☁️", // broken clouds
	"04n": "☁️",
	"09d": "🌧️", // shower rain
	"09n": "🌧️",
	"10d": "🌦️", // rain
	"10n": "🌧️",
	"11d": "⛈️", // thunderstorm
	"11n": "⛈️",
	"13d": "❄️", // snow
	"13n": "❄️",
	"50d": "🌫️", // mist
	"50n": "🌫️",
}

const defaultEmoji = "🌤️"

// IconEmoji returns the emoji for an OpenWeatherMap icon code
func IconEmoji(code string) string {
	if e, ok := iconEmoji[code]; ok {
		return e
	}
	return defaultEmoji
}

// IconURL returns the image URL for an icon code at the given scale (2 or 4)
func IconURL(code string, scale int) string {
	return fmt.Sprintf("https://openweathermap.org/img/wn/%s@%dx.png", code, scale)
}

// TemperatureEmoji picks an emoji for a temperature in Celsius
func TemperatureEmoji(celsius float64) string {
	switch {
	case celsius >= 30:
		return "🔥"
	case celsius >= 20:
		return "☀️"
	case celsius >= 10:
		return "🌤️"
	default:
		return "❄️"
	}
}

// HumidityLevel labels a relative humidity percentage
func HumidityLevel(pct float64) string {
	switch {
	case pct > 70:
		return "높음"
	case pct > 40:
		return "보통"
	default:
		return "낮음"
	}
}

// WindLevel labels a wind speed in m/s
func WindLevel(speed float64) string {
	switch {
	case speed > 10:
		return "강함"
	case speed > 5:
		return "보통"
	default:
		return "약함"
	}
}

// PressureLevel labels a pressure in hPa
func PressureLevel(hpa float64) string {
	switch {
	case hpa > 1013:
		return "높음"
	case hpa > 1000:
		return "보통"
	default:
		return "낮음"
	}
}

// VisibilityLevel labels a visibility in km
func VisibilityLevel(km float64) string {
	switch {
	case km > 10:
		return "좋음"
	case km > 5:
		return "보통"
	default:
		return "나쁨"
	}
}

var weekdays = [...]string{
	time.Monday:    "월",
	time.Tuesday:   "화",
	time.Wednesday: "수",
	time.Thursday:  "목",
	time.Friday:    "금",
	time.Saturday:  "토",
	time.Sunday:    "일",
}

// Weekday returns the one-character Korean weekday name
func Weekday(t time.Time) string {
	return weekdays[t.Weekday()]
}
