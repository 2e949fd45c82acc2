package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeToCondition(t *testing.T) {
	tests := []struct {
		code int
		want Condition
	}{
		{0, Sunny},
		{1, Cloudy}, {3, Cloudy},
		{45, Cloudy}, {48, Cloudy},
		{51, Rainy}, {67, Rainy}, {80, Rainy}, {82, Rainy},
		{71, Snowy}, {77, Snowy}, {85, Snowy}, {86, Snowy},
		{95, Stormy}, {99, Stormy},
		{42, Cloudy}, // unknown codes default to cloudy
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeToCondition(tt.code), "code %d", tt.code)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "晴れ", Label(Sunny))
	assert.Equal(t, "雷雨", Label(Stormy))
	assert.Equal(t, "曇り", Label(Condition("other")))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "9/1", FormatDate(d))
	assert.Equal(t, "12/25", FormatDate(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)))
}

func TestRelativeDay(t *testing.T) {
	today := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}
	assert.Equal(t, "今日", RelativeDay(day("2026-09-01"), today))
	assert.Equal(t, "明日", RelativeDay(day("2026-09-02"), today))
	assert.Equal(t, "木", RelativeDay(day("2026-09-03"), today)) // Thursday
	assert.Equal(t, "日", RelativeDay(day("2026-09-06"), today))
}

const fixture = `{
  "current": {"temperature_2m": 28.4, "weather_code": 61, "relative_humidity_2m": 72, "wind_speed_10m": 3.1},
  "daily": {
    "time": ["2026-09-01", "2026-09-02"],
    "weather_code": [0, 95],
    "temperature_2m_max": [30.1, 27.5],
    "temperature_2m_min": [22.0, 21.3]
  }
}`

func TestForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Asia/Tokyo", r.URL.Query().Get("timezone"))
		assert.NotEmpty(t, r.URL.Query().Get("latitude"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fixture))
	}))
	defer srv.Close()

	data, err := NewClient(srv.URL).Forecast(context.Background(), 35.5011, 134.2351)
	require.NoError(t, err)

	assert.InDelta(t, 28.4, data.Current.Temp, 1e-9)
	assert.Equal(t, Rainy, data.Current.Condition)
	assert.Equal(t, "雨", data.Current.Label)

	require.Len(t, data.Daily, 2)
	assert.Equal(t, Sunny, data.Daily[0].Condition)
	assert.Equal(t, "9/1", data.Daily[0].FormattedDate)
	assert.Equal(t, Stormy, data.Daily[1].Condition)
	assert.InDelta(t, 21.3, data.Daily[1].TempMin, 1e-9)
}

func TestForecastUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Forecast(context.Background(), 35.5, 134.2)
	assert.Error(t, err)
}
