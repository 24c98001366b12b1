package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once in main and passed by value everywhere.
// Nothing mutates it after startup.
type Config struct {
	AppName     string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Port        string
	LogLevel    string
}

const defaultTokenTTLMinutes = 60 * 24 * 7 // 7 days

func Load() Config {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := Config{
		AppName:     "TricksPlanner API",
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    defaultTokenTTLMinutes * time.Minute,
		Port:        os.Getenv("PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "tricks_planner.db"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "change-me-in-prod"
		log.Println("WARNING: JWT_SECRET not set, using insecure default")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}

	return cfg
}
