package controller

import "github.com/labstack/echo/v4"

type ExpenseController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Export(c echo.Context) error
}
