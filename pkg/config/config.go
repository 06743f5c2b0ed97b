package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	CheckoutDelay             time.Duration
	DatabaseConnectRetryCount int
	DatabaseConnectRetryDelay time.Duration
	DatabaseDebug             bool
	DatabaseFilePath          string
	FrontendURL               string
	GenerationDelay           time.Duration
	GenerationRatePerSecond   float64
	Hostname                  string
	JWTSecret                 string
	ServerHost                string
	ServerPort                int
}

const environmentENV = "ENVIRONMENT"

func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		GenerationRatePerSecond:   4,
		Hostname:                  hostname,
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		ServerPort:                4312,
	}

	switch os.Getenv(environmentENV) {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("missing required config: JWT_SECRET")
	}

	return cfg, nil
}
