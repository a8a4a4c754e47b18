// Package persistence contiene los drivers del repositorio de snapshot y la fábrica
// que elige uno según STORAGE_DRIVER.
package persistence

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/mm-inventario/pkg/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open construye el SnapshotRepository configurado. El io.Closer libera conexiones.
func Open(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, io.Closer, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile, "":
		r, err := NewFileRepository(cfg.Storage.Path)
		return r, nopCloser{}, err
	case config.DriverSQLite:
		r, err := NewSQLiteRepository(ctx, cfg.Storage.Path, cfg.Storage.Key)
		if err != nil {
			return nil, nil, err
		}
		return r, r, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		r, err := postgres.NewSnapshotRepository(ctx, pool, cfg.Storage.Key)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return r, r, nil
	case config.DriverRedis:
		r, err := NewRedisRepository(ctx, cfg.Redis, cfg.Storage.Key)
		if err != nil {
			return nil, nil, err
		}
		return r, r, nil
	case config.DriverS3:
		r, err := NewS3Repository(ctx, cfg.S3, cfg.Storage.Key)
		return r, nopCloser{}, err
	case config.DriverMemory:
		return NewMemoryRepository(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("persistence: driver desconocido %q", cfg.Storage.Driver)
	}
}

var (
	_ repository.SnapshotRepository = (*FileRepository)(nil)
	_ repository.SnapshotRepository = (*SQLiteRepository)(nil)
	_ repository.SnapshotRepository = (*RedisRepository)(nil)
	_ repository.SnapshotRepository = (*S3Repository)(nil)
	_ repository.SnapshotRepository = (*MemoryRepository)(nil)
)
