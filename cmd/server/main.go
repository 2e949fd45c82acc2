package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agriportal/config"
	"agriportal/database"
	"agriportal/router"

	// Auth
	authCtrlImp "agriportal/pkg/auth/controllerImp"
	authSvcImp "agriportal/pkg/auth/serviceImp"

	// Posts
	postCtrlImp "agriportal/pkg/post/controllerImp"
	postRepoImp "agriportal/pkg/post/repositoryImp"
	postSvcImp "agriportal/pkg/post/serviceImp"

	// Images
	imageCtrlImp "agriportal/pkg/image/controllerImp"
	imageStoreImp "agriportal/pkg/image/storeImp"

	// Expenses
	expCtrlImp "agriportal/pkg/expense/controllerImp"
	expRepoImp "agriportal/pkg/expense/repositoryImp"

	// Tools
	toolsCtrlImp "agriportal/pkg/convert/controllerImp"

	// Weather
	"agriportal/pkg/weather"
	weatherCtrlImp "agriportal/pkg/weather/controllerImp"

	// Health
	healthCtrlImp "agriportal/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Blob store for post images
	blobs, err := imageStoreImp.New(cfg.ImageDir)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// Static front-end bundle, when present
	e.Static("/static", "static")
	if _, err := os.Stat("static/index.html"); err == nil {
		e.File("/", "static/index.html")
	}

	// 5) Repos/Services/Controllers
	authSvc := authSvcImp.New(db, authSvcImp.AdminConfig{
		Email:       cfg.AdminEmail,
		Password:    cfg.AdminPassword,
		RegisterKey: cfg.AdminRegisterKey,
	})
	authCtrl := authCtrlImp.New(authSvc, cfg.SessionSecret)

	postRepo := postRepoImp.New(db)
	postSvc := postSvcImp.New(postRepo, blobs)
	postCtrl := postCtrlImp.New(postSvc)

	imageCtrl := imageCtrlImp.New(blobs)

	expRepo := expRepoImp.New(db)
	expCtrl := expCtrlImp.New(expRepo)

	toolsCtrl := toolsCtrlImp.New()
	weatherCtrl := weatherCtrlImp.New(weather.NewClient(cfg.WeatherEndpoint))
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(
		e,
		cfg.SessionSecret,
		authCtrl,
		postCtrl,
		imageCtrl,
		expCtrl,
		toolsCtrl,
		weatherCtrl,
		healthCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
