package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	Timezone         string
	DBPath           string
	ImageDir         string
	SessionSecret    string
	AdminEmail       string
	AdminPassword    string
	AdminRegisterKey string
	WeatherEndpoint  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		Timezone:         get("TZ", "Asia/Tokyo"),
		DBPath:           get("DB_PATH", "portal.db"),
		ImageDir:         get("IMAGE_DIR", "images"),
		SessionSecret:    get("SESSION_SECRET", "s3cr3t"),
		AdminEmail:       get("ADMIN_EMAIL", ""),
		AdminPassword:    get("ADMIN_PASSWORD", ""),
		AdminRegisterKey: get("ADMIN_REGISTRATION_SECRET", "change-me-in-production"),
		WeatherEndpoint:  get("WEATHER_ENDPOINT", "https://api.open-meteo.com/v1/forecast"),
	}
	log.Printf("[cfg] port=%s db=%s images=%s tz=%s", cfg.Port, cfg.DBPath, cfg.ImageDir, cfg.Timezone)
	return cfg
}
