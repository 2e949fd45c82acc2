package controller

import "github.com/labstack/echo/v4"

type PostController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Edit(c echo.Context) error
}
