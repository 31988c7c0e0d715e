package storage

import (
	"context"
	"fmt"

	"github.com/mango-abandoned/api-go/config"
	"github.com/mango-abandoned/api-go/logger"
)

// Open builds the store selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.Warn().Msg("using in-memory storage, data is lost on exit")
		return NewMemoryStore(), nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := config.OpenDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db)

	case config.DriverRedis:
		store := NewRedisStore(config.NewRedisClient(cfg.Redis))
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil

	case config.DriverR2:
		client := config.NewR2Client(cfg.R2)
		return NewObjectStore(client, cfg.R2.BucketName, cfg.R2.Prefix), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
