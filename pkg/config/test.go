package config

func loadTestConfig(cfg *Config) {
	cfg.DatabaseDebug = false
	cfg.ServerHost = "127.0.0.1"
	// Port 0 lets the OS pick a free port when tests spin up a real server.
	cfg.ServerPort = 0
}
