package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agriportal/pkg/convert"
)

// ConvertCtrl exposes the pure calculators over HTTP for the tools
// pages. Empty input is a normal request with an empty result, so the
// endpoints answer 200 for anything but an unknown domain or unit.
type ConvertCtrl struct{}

func New() *ConvertCtrl { return &ConvertCtrl{} }

func (h *ConvertCtrl) Convert(c echo.Context) error {
	lines, err := convert.Convert(
		convert.Domain(c.QueryParam("domain")),
		c.QueryParam("value"),
		convert.Unit(c.QueryParam("unit")),
	)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if lines == nil {
		lines = []convert.Line{}
	}
	return c.JSON(http.StatusOK, map[string]any{"lines": lines})
}

func (h *ConvertCtrl) Dilution(c echo.Context) error {
	res, ok := convert.Dilution(
		c.QueryParam("area"),
		c.QueryParam("amount"),
		c.QueryParam("ratio"),
	)
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"ok": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "result": res})
}
