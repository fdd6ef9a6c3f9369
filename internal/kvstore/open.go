package kvstore

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/chronos-reading/internal/config"
)

// Open builds the store selected by s.KVDriver, wrapping it in a SealedStore
// when a crypto key is configured.
func Open(ctx context.Context, s config.Settings) (Store, error) {
	log := config.WithContext(ctx).WithField("kv_driver", s.KVDriver)

	var store Store
	switch s.KVDriver {
	case "", "memory":
		store = NewMemoryStore()
	case "postgres", "sqlite":
		if err := config.Connect(ctx, s.KVDriver, s.DatabaseDSN); err != nil {
			return nil, err
		}
		gs, err := NewGormStore(config.DB)
		if err != nil {
			return nil, fmt.Errorf("migrate kv_records: %w", err)
		}
		store = gs
	case "redis":
		rdb := goredis.NewClient(&goredis.Options{
			Addr:        s.RedisAddr,
			DialTimeout: 5 * time.Second,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		store = NewRedisStore(rdb, s.RedisPrefix)
	default:
		return nil, fmt.Errorf("unsupported KV_DRIVER: %s", s.KVDriver)
	}

	if s.CryptoKey != "" {
		c, err := config.NewCipher(s.CryptoKey)
		if err != nil {
			return nil, err
		}
		log.Info("Key-value store values are encrypted at rest")
		store = NewSealedStore(store, c)
	}

	log.Info("Key-value store ready")
	return store, nil
}
