package kvstore

import (
	"context"
	"fmt"

	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/db"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
	"github.com/angelmondragon/opusclip-demo/pkg/migrate"
	"github.com/angelmondragon/opusclip-demo/pkg/redis"
)

// Open builds the backend selected by cfg.Storage.Backend, running migrations for
// the sql backends when enabled.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (Backend, error) {
	ctx = logg.WithField(ctx, "storage_backend", cfg.Storage.Backend)

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		logg.Warn(ctx, "using in-memory storage; state is lost on restart")
		return NewMemoryBackend(), nil

	case config.StorageFile:
		backend, err := NewFileBackend(cfg.Storage.FilePath)
		if err != nil {
			return nil, err
		}
		logg.Info(logg.WithField(ctx, "path", cfg.Storage.FilePath), "file storage ready")
		return backend, nil

	case config.StorageSQLite, config.StoragePostgres:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, err
		}
		if err := migrate.MaybeRun(ctx, cfg.DB, logg, client); err != nil {
			return nil, closeAll(func() error { return err }, client.Close)
		}
		return NewSQLBackend(client), nil

	case config.StorageRedis:
		client, err := redis.New(ctx, cfg.Redis, cfg.Storage.Namespace, logg)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client), nil

	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}
