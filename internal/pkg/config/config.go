// Package config loads runtime settings from environment variables.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration of the API process.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT, default=5000"`
	// Env selects the runtime profile; "development" enables pretty logs.
	Env string `env:"ENV, default=development"`
	// JWTSecret signs and verifies every bearer token. Tokens minted with a
	// different secret stop verifying the moment this changes.
	JWTSecret string `env:"ACCESS_TOKEN_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

// MongoConfig points at the document store holding all five collections.
type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB, default=manufacturer_website"`
}

// RedisConfig points at the instance backing the advisory dedup markers.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// Load reads the configuration from the process environment. Startup cannot
// proceed without it, so a failure panics.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
