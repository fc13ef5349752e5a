package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Credential store backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	// APIBaseURL is the backend base address, configuration-supplied at
	// startup.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:3000/api"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`

	Credentials CredentialsConfig
	Redis       RedisConfig
}

type CredentialsConfig struct {
	// Backend selects where the token slot lives: "file" or "redis".
	Backend string `env:"CRED_BACKEND, default=file"`
	// TokenPath overrides the token file location (file backend only).
	TokenPath string `env:"TOKEN_PATH"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
