package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = "8080"
	defaultDriver     = "http"
	defaultChannelID  = "MahfadhaApp"
	defaultChannelKey = "MahfadhaKey001"
)

type Config struct {
	Port string

	// BackendDriver selects how RPCs reach the backend: "http" for the
	// PostgREST surface, "postgres" for direct stored-procedure calls.
	BackendDriver     string
	BackendURL        string
	BackendServiceKey string
	DatabaseDSN       string

	ChannelID  string
	ChannelKey string

	// AdminKeyHash is a bcrypt hash of the admin API key; the plain key is
	// never stored server-side.
	AdminKeyHash string
}

func Load() (Config, error) {
	// .env is optional; production relies on real environment variables.
	_ = godotenv.Load()

	cfg := Config{
		Port:              envOr("PORT", defaultPort),
		BackendDriver:     strings.ToLower(envOr("BACKEND_DRIVER", defaultDriver)),
		BackendURL:        strings.TrimSpace(os.Getenv("BACKEND_URL")),
		BackendServiceKey: strings.TrimSpace(os.Getenv("BACKEND_SERVICE_KEY")),
		DatabaseDSN:       strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		ChannelID:         envOr("CHANNEL_ID", defaultChannelID),
		ChannelKey:        envOr("CHANNEL_KEY", defaultChannelKey),
		AdminKeyHash:      strings.TrimSpace(os.Getenv("ADMIN_API_KEY_HASH")),
	}

	switch cfg.BackendDriver {
	case "http":
		if cfg.BackendURL == "" {
			return Config{}, fmt.Errorf("BACKEND_URL is required for the http backend driver")
		}
		if cfg.BackendServiceKey == "" {
			return Config{}, fmt.Errorf("BACKEND_SERVICE_KEY is required for the http backend driver")
		}
	case "postgres":
		if cfg.DatabaseDSN == "" {
			return Config{}, fmt.Errorf("DATABASE_DSN is required for the postgres backend driver")
		}
	default:
		return Config{}, fmt.Errorf("unknown backend driver %q", cfg.BackendDriver)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
