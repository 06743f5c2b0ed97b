package config

import (
	"os"
	"strconv"
	"time"
)

func loadDevelopmentConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.CheckoutDelay = time.Second
	cfg.DatabaseDebug = true
	cfg.DatabaseFilePath = "./tmp/data.sqlite"
	cfg.FrontendURL = "http://localhost:6161"
	cfg.GenerationDelay = 2 * time.Second
	cfg.ServerHost = "127.0.0.1"

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "development-secret"
	}
}
