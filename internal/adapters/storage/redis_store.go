package storage

import (
	"context"
	"time"

	"flosscast.app/internal/config"
	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"github.com/go-redis/redis/v8"
)

// RedisDocumentStore keeps cache documents in Redis so several service
// replicas share them. Each directory maps to one string key.
type RedisDocumentStore struct {
	client    *redis.Client
	keyPrefix string
	logger    ports.Logger
}

// NewRedisDocumentStore connects to Redis and verifies the connection
func NewRedisDocumentStore(cfg *config.RedisConfig, logger ports.Logger) (*RedisDocumentStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisDocumentStore{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		logger:    logger,
	}, nil
}

// Key returns the Redis key holding the document of dir.
func (r *RedisDocumentStore) Key(dir string) string {
	return r.keyPrefix + dir
}

func (r *RedisDocumentStore) Load(ctx context.Context, dir string) ([]byte, error) {
	key := r.Key(dir)

	val, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		return val, nil
	}
	if err != redis.Nil {
		return nil, errors.NewStorageError("redis get operation failed", err)
	}

	created, err := r.client.SetNX(ctx, key, emptyDocument, 0).Result()
	if err != nil {
		return nil, errors.NewStorageError("redis setnx operation failed", err)
	}
	if created {
		r.logger.Info("Created empty forecast cache document", ports.F("key", key))
		return append([]byte(nil), emptyDocument...), nil
	}

	val, err = r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, errors.NewStorageError("redis get operation failed", err)
	}
	return val, nil
}

func (r *RedisDocumentStore) Save(ctx context.Context, dir string, data []byte) error {
	if err := r.client.Set(ctx, r.Key(dir), data, 0).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisDocumentStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}

func (r *RedisDocumentStore) Name() string {
	return "redis"
}

// Close closes the Redis client connection
func (r *RedisDocumentStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}
