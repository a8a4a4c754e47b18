package persistence_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) (*persistence.RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	repo, err := persistence.NewRedisRepository(context.Background(), config.RedisConfig{Addr: srv.Addr()}, "mm-inventario")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo, srv
}

// ────────────────────────────── Redis ──────────────────────────────

func TestRedisRepository_RoundTrip(t *testing.T) {
	repo, srv := newRedisRepo(t)

	roundTrip(t, repo)

	assert.True(t, srv.Exists("mm-inventario"))
	assert.Zero(t, srv.TTL("mm-inventario"), "el snapshot no expira")
}

func TestRedisRepository_ClaveAusenteEsNil(t *testing.T) {
	repo, srv := newRedisRepo(t)
	require.NoError(t, srv.Set("otra-clave", "x"))

	got, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisRepository_ContenidoInvalido(t *testing.T) {
	repo, srv := newRedisRepo(t)
	require.NoError(t, srv.Set("mm-inventario", "{no es json"))

	_, err := repo.Load(context.Background())

	assert.Error(t, err)
}

func TestNewRedisRepository_SinServidor(t *testing.T) {
	_, err := persistence.NewRedisRepository(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"}, "mm-inventario")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: ping")
}
