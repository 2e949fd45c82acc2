package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agriportal/pkg/weather"
)

// Tottori city, the portal's home region.
const (
	defaultLat = 35.5011
	defaultLon = 134.2351
)

type WeatherCtrl struct{ client *weather.Client }

func New(client *weather.Client) *WeatherCtrl { return &WeatherCtrl{client: client} }

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	lat, lon := defaultLat, defaultLon
	if v, err := strconv.ParseFloat(c.QueryParam("lat"), 64); err == nil {
		lat = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("lon"), 64); err == nil {
		lon = v
	}
	data, err := h.client.Forecast(c.Request().Context(), lat, lon)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "weather service unavailable"})
	}
	return c.JSON(http.StatusOK, data)
}
