package config

import (
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from the environment.
type Config struct {
	Port           string
	DatabaseURL    string
	SecretKey      []byte
	ModelDir       string
	LogLevel       string
	DebounceIDs    []string
	DebounceWindow time.Duration
}

// Load reads configuration from environment variables, applying defaults
// suitable for local development.
func Load() *Config {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    getenv("DATABASE_URL", "water.db"),
		SecretKey:      []byte(getenv("SECRET_KEY", "supersecretkey")),
		ModelDir:       getenv("MODEL_DIR", "models_data"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		DebounceWindow: time.Minute,
	}

	if ids := os.Getenv("ALERT_DEBOUNCE_IDS"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.DebounceIDs = append(cfg.DebounceIDs, id)
			}
		}
	}
	if w := os.Getenv("ALERT_DEBOUNCE_WINDOW"); w != "" {
		if d, err := time.ParseDuration(w); err == nil && d > 0 {
			cfg.DebounceWindow = d
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
