package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Stream   StreamConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Path   string
	SeedDB bool
}

type SessionConfig struct {
	TokenTTL time.Duration
}

type StreamConfig struct {
	HeartbeatInterval time.Duration
}

func Load() *Config {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        "43210",
			Env:         "development",
			ReadTimeout: 10 * time.Second,
			// Zero: SSE and WebSocket connections outlive any fixed write deadline.
			WriteTimeout: 0,
		},
		Database: DatabaseConfig{
			Path: "data/app.db",
		},
		Session: SessionConfig{
			TokenTTL: 2 * time.Hour,
		},
		Stream: StreamConfig{
			HeartbeatInterval: 30 * time.Second,
		},
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("SEED_DB"); v == "1" || v == "true" {
		cfg.Database.SeedDB = true
	}
	return cfg
}
