package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by the client. A .env file in the
// working directory is merged in first; real environment variables win
// over it.
const (
	envBaseURL   = "QUIZCLI_BASE_URL"
	envTimeout   = "QUIZCLI_REQUEST_TIMEOUT"
	envStorePath = "QUIZCLI_STORE_PATH"
)

func parseEnv(cfg *Config) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(envBaseURL); ok && v != "" {
		cfg.ServerBaseURL = v
	}
	if v, ok := os.LookupEnv(envTimeout); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v, ok := os.LookupEnv(envStorePath); ok && v != "" {
		cfg.StorePath = v
	}
}
