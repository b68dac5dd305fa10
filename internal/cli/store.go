package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/collatz/internal/config"
	"github.com/aretw0/collatz/pkg/adapters/file"
	"github.com/aretw0/collatz/pkg/adapters/memory"
	"github.com/aretw0/collatz/pkg/adapters/redis"
	"github.com/aretw0/collatz/pkg/ports"
)

// newStore builds the configured result cache. A nil store means caching is off.
// The returned closer is always safe to call.
func newStore(cfg config.StoreConfig, logger *slog.Logger) (ports.ResultStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Kind {
	case config.StoreNone, "":
		return nil, noop, nil

	case config.StoreMemory:
		return memory.NewStore(), noop, nil

	case config.StoreFile:
		logger.Debug("Using file result store", "path", cfg.Path)
		return file.New(cfg.Path), noop, nil

	case config.StoreRedis:
		var opts []redis.Option
		if cfg.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.TTL))
		}
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts...)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("redis store unavailable at %s: %w", cfg.RedisAddr, err)
		}
		logger.Debug("Using redis result store", "addr", cfg.RedisAddr)
		return store, store.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown store kind %q", cfg.Kind)
}
