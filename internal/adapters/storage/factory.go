package storage

import (
	"fmt"

	"flosscast.app/internal/config"
	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
)

type DocumentStoreFactory struct {
	logger ports.Logger
}

func NewDocumentStoreFactory(logger ports.Logger) *DocumentStoreFactory {
	return &DocumentStoreFactory{logger: logger}
}

func (f *DocumentStoreFactory) CreateDocumentStore(cfg *config.CacheConfig) (ports.DocumentStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeFile:
		return NewFileDocumentStore(f.logger), nil
	case config.CacheTypeMemory:
		return NewMemoryDocumentStore(), nil
	case config.CacheTypeRedis:
		store, err := NewRedisDocumentStore(&cfg.Redis, f.logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
