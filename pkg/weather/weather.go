// Package weather maps Open-Meteo forecasts into the portal's weather
// widget payload.
package weather

import "time"

type Condition string

const (
	Sunny  Condition = "sunny"
	Cloudy Condition = "cloudy"
	Rainy  Condition = "rainy"
	Snowy  Condition = "snowy"
	Stormy Condition = "stormy"
)

// CodeToCondition buckets WMO weather codes.
// See https://open-meteo.com/en/docs
func CodeToCondition(code int) Condition {
	switch {
	case code == 0:
		return Sunny
	case code >= 1 && code <= 3:
		return Cloudy
	case code >= 45 && code <= 48:
		return Cloudy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return Rainy
	case (code >= 71 && code <= 77) || (code >= 85 && code <= 86):
		return Snowy
	case code >= 95 && code <= 99:
		return Stormy
	default:
		return Cloudy
	}
}

func Label(c Condition) string {
	switch c {
	case Sunny:
		return "晴れ"
	case Cloudy:
		return "曇り"
	case Rainy:
		return "雨"
	case Snowy:
		return "雪"
	case Stormy:
		return "雷雨"
	default:
		return "曇り"
	}
}

var weekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDate renders M/D without zero padding.
func FormatDate(t time.Time) string {
	return t.Format("1/2")
}

// RelativeDay labels a forecast date 今日 or 明日 when it matches, else
// the Japanese weekday.
func RelativeDay(date, today time.Time) string {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case d.Equal(t):
		return "今日"
	case d.Equal(t.AddDate(0, 0, 1)):
		return "明日"
	default:
		return weekdays[date.Weekday()]
	}
}
