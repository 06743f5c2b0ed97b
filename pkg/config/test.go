package config

func loadTestConfig(cfg *Config) {
	cfg.DatabaseFilePath = ":memory:"
	cfg.FrontendURL = "http://localhost:6161"
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0

	// No artificial service latency in tests.
	cfg.CheckoutDelay = 0
	cfg.GenerationDelay = 0

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "test-secret"
	}
}
