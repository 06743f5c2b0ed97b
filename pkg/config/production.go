package config

import (
	"os"
	"strconv"
	"time"
)

func loadProductionConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.CheckoutDelay = time.Second
	cfg.DatabaseFilePath = os.Getenv("DATABASE_FILE_PATH")
	if cfg.DatabaseFilePath == "" {
		cfg.DatabaseFilePath = "/data/panelpress.sqlite"
	}
	cfg.FrontendURL = os.Getenv("FRONTEND_URL")
	cfg.GenerationDelay = 2 * time.Second
	cfg.ServerHost = "0.0.0.0"
}
