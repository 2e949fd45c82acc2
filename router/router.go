package router

import (
	"github.com/labstack/echo/v4"

	"agriportal/pkg/middleware"
)

func New(
	e *echo.Echo,
	sessionSecret string,
	authCtrl interface {
		Login(echo.Context) error
		Logout(echo.Context) error
		Me(echo.Context) error
		Register(echo.Context) error
	},
	postCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Edit(echo.Context) error
	},
	imageCtrl interface{ Get(echo.Context) error },
	expenseCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Export(echo.Context) error
	},
	toolsCtrl interface {
		Convert(echo.Context) error
		Dilution(echo.Context) error
	},
	weatherCtrl interface{ Forecast(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Session(sessionSecret))

	e.GET("/health", healthCtrl.Health)

	e.POST("/auth/login", authCtrl.Login)
	e.POST("/auth/logout", authCtrl.Logout)
	e.GET("/auth/me", authCtrl.Me)
	e.POST("/auth/register", authCtrl.Register)

	e.GET("/posts", postCtrl.List)
	g := e.Group("/posts", middleware.RequireSession())
	g.POST("", postCtrl.Create)
	g.PUT("/:id", postCtrl.Edit)

	e.GET("/images/:key", imageCtrl.Get)

	e.GET("/expenses", expenseCtrl.List)
	e.POST("/expenses", expenseCtrl.Create)
	e.GET("/expenses/export", expenseCtrl.Export)

	e.GET("/tools/convert", toolsCtrl.Convert)
	e.GET("/tools/dilution", toolsCtrl.Dilution)

	e.GET("/weather", weatherCtrl.Forecast)

	return e
}
