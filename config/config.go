package config

import "os"

type Config struct {
	AppPort string
	AppEnv  string

	// DatabaseURL is a full Postgres connection string. When empty the
	// process still serves static content, but every data endpoint
	// reports 503.
	DatabaseURL string

	// StaticDir holds the frontend build served behind the SPA fallback.
	StaticDir string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort:     get("PORT", "3000"),
		AppEnv:      get("APP_ENV", "dev"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StaticDir:   get("STATIC_DIR", "static"),
	}
}

// HasDatabase reports whether a store connection string was configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
