// README: Config loader with env defaults for HTTP, AI provider, share store, and maps settings.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type AIConfig struct {
	Provider  string // "grok" (default) or "gemini"
	GrokKey   string
	GrokModel string
	GeminiKey string
}

type StoreConfig struct {
	// Backend is "redis", "postgres" or "memory". Empty means auto-detect:
	// redis if RedisURL is set, postgres if PostgresDSN is set, else memory.
	Backend     string
	RedisURL    string
	PostgresDSN string
}

type Config struct {
	HTTP struct {
		Addr       string
		CORSOrigin string
	}
	BaseURL string
	AI      AIConfig
	Store   StoreConfig
	Maps    struct {
		APIKey string
	}
}

func Load() (Config, error) {
	// .env is optional; real deployments use process env vars.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPPER_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigin = envOrDefault("TRIPPER_CORS_ORIGIN", "*")
	cfg.BaseURL = envOrDefault("TRIPPER_BASE_URL", "http://localhost:3000")

	cfg.AI.Provider = envOrDefault("TRIPPER_AI_PROVIDER", "grok")
	cfg.AI.GrokKey = os.Getenv("GROK_API_KEY")
	cfg.AI.GrokModel = envOrDefault("GROK_MODEL", "grok-2")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")

	cfg.Store.Backend = os.Getenv("TRIPPER_STORE")
	cfg.Store.RedisURL = os.Getenv("TRIPPER_REDIS_URL")
	cfg.Store.PostgresDSN = os.Getenv("TRIPPER_DB_DSN")
	if cfg.Store.Backend == "" {
		switch {
		case cfg.Store.RedisURL != "":
			cfg.Store.Backend = "redis"
		case cfg.Store.PostgresDSN != "":
			cfg.Store.Backend = "postgres"
		default:
			cfg.Store.Backend = "memory"
		}
	}

	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
