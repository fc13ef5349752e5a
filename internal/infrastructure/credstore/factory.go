package credstore

import (
	"context"

	"github.com/bengalibowl/ordering-client/internal/core/ports"
	"github.com/bengalibowl/ordering-client/internal/infrastructure/config"
)

// FromConfig builds the credential store the configuration selects. The
// redis backend fails fast when the server is unreachable; the file backend
// only touches disk on first use.
func FromConfig(ctx context.Context, cfg *config.Config) (ports.CredentialStore, error) {
	switch cfg.Credentials.Backend {
	case config.BackendRedis:
		client, err := Connect(ctx, RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil
	default:
		return NewFileStore(cfg.Credentials.TokenPath)
	}
}
