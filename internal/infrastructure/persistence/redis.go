package persistence

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence/codec"
	"github.com/jhoicas/mm-inventario/pkg/config"
)

// RedisRepository guarda el snapshot bajo una única clave (sin TTL).
type RedisRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRepository conecta y verifica con PING.
func NewRedisRepository(ctx context.Context, cfg config.RedisConfig, key string) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return &RedisRepository{client: client, key: key}, nil
}

// Load lee la clave; (nil, nil) si no existe.
func (r *RedisRepository) Load(ctx context.Context) (*entity.AppState, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get: %w", err)
	}
	return codec.Decode(data)
}

// Save escribe la clave completa; SET es atómico.
func (r *RedisRepository) Save(ctx context.Context, state *entity.AppState) error {
	data, err := codec.Encode(state)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis: set: %w", err)
	}
	return nil
}

// Close cierra el cliente.
func (r *RedisRepository) Close() error { return r.client.Close() }
