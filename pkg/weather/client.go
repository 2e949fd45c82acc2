package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Current struct {
	Temp      float64   `json:"temp"`
	Condition Condition `json:"condition"`
	Label     string    `json:"label"`
	Humidity  float64   `json:"humidity"`
	WindSpeed float64   `json:"wind_speed"`
}

type Day struct {
	Date          string    `json:"date"`
	FormattedDate string    `json:"formatted_date"`
	DayOfWeek     string    `json:"day_of_week"`
	Condition     Condition `json:"condition"`
	Label         string    `json:"label"`
	TempMax       float64   `json:"temp_max"`
	TempMin       float64   `json:"temp_min"`
}

type WeatherData struct {
	Current Current `json:"current"`
	Daily   []Day   `json:"daily"`
}

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: 10 * time.Second}}
}

type openMeteoResponse struct {
	Current struct {
		Temperature2m      float64 `json:"temperature_2m"`
		WeatherCode        int     `json:"weather_code"`
		RelativeHumidity2m float64 `json:"relative_humidity_2m"`
		WindSpeed10m       float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// Forecast fetches current conditions and the daily outlook. Upstream
// failures come back as plain errors; retrying is the caller's concern.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*WeatherData, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "Asia/Tokyo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch forecast: status %d", resp.StatusCode)
	}

	var om openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&om); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}
	return mapForecast(&om, time.Now()), nil
}

func mapForecast(om *openMeteoResponse, today time.Time) *WeatherData {
	cond := CodeToCondition(om.Current.WeatherCode)
	out := &WeatherData{
		Current: Current{
			Temp:      om.Current.Temperature2m,
			Condition: cond,
			Label:     Label(cond),
			Humidity:  om.Current.RelativeHumidity2m,
			WindSpeed: om.Current.WindSpeed10m,
		},
	}
	for i, ts := range om.Daily.Time {
		if i >= len(om.Daily.WeatherCode) || i >= len(om.Daily.Temperature2mMax) || i >= len(om.Daily.Temperature2mMin) {
			break
		}
		d, err := time.Parse("2006-01-02", ts)
		if err != nil {
			continue
		}
		dc := CodeToCondition(om.Daily.WeatherCode[i])
		out.Daily = append(out.Daily, Day{
			Date:          ts,
			FormattedDate: FormatDate(d),
			DayOfWeek:     RelativeDay(d, today),
			Condition:     dc,
			Label:         Label(dc),
			TempMax:       om.Daily.Temperature2mMax[i],
			TempMin:       om.Daily.Temperature2mMin[i],
		})
	}
	return out
}
