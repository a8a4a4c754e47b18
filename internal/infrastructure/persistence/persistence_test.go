package persistence_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *entity.AppState {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &entity.AppState{
		Meta:  entity.Meta{CreatedAt: created, Version: entity.SchemaVersion},
		Users: []entity.User{{ID: "user_1", Name: "Admin", Email: "admin@mm.com", PasswordHash: "$2a$10$x", Role: entity.RoleAdmin, CreatedAt: created}},
		Settings: entity.Settings{
			BaseCurrency: "PEN",
			Currencies:   []entity.Currency{{Code: "PEN", Name: "Sol peruano", Symbol: "S/", RateToBase: decimal.NewFromInt(1)}},
		},
		Products: []entity.Product{{ID: "prd_1", SKU: "A", Name: "Hojas", SaleUnit: "paquete", Min: 1, Max: 5, Price: decimal.RequireFromString("18.5"), Currency: "PEN", Active: true}},
		Stock:    entity.Stock{"wh_1:prd_1": 45},
	}
}

// roundTrip verifica el contrato común de todos los drivers.
func roundTrip(t *testing.T, repo repository.SnapshotRepository) {
	t.Helper()
	ctx := context.Background()

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "sin datos Load devuelve nil")

	require.NoError(t, repo.Save(ctx, sampleState()))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 45, got.Stock[entity.StockKey("wh_1", "prd_1")])
	assert.Equal(t, "18.5", got.Products[0].Price.String())
	assert.Equal(t, "PEN", got.Settings.BaseCurrency)
	assert.NotNil(t, got.Movements)

	next := sampleState()
	next.Stock[entity.StockKey("wh_1", "prd_1")] = 55
	require.NoError(t, repo.Save(ctx, next))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 55, got.Stock[entity.StockKey("wh_1", "prd_1")])
}

func TestFileRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "state.json")
	repo, err := persistence.NewFileRepository(path)
	require.NoError(t, err)

	roundTrip(t, repo)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no deben quedar temporales tras Save")
}

func TestFileRepository_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{roto"), 0o600))
	repo, err := persistence.NewFileRepository(path)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	assert.Error(t, err)
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo, err := persistence.NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "mm.db"), "mm_librerias_app_v1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	roundTrip(t, repo)
}

func TestMemoryRepository_FalloInyectado(t *testing.T) {
	repo := persistence.NewMemoryRepository()
	roundTrip(t, repo)
	assert.Equal(t, 2, repo.Saves())

	repo.FailNextSave()
	err := repo.Save(context.Background(), sampleState())
	assert.ErrorIs(t, err, persistence.ErrInjected)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 55, got.Stock[entity.StockKey("wh_1", "prd_1")], "un Save fallido conserva el valor previo")
}

func TestOpen_SeleccionaDriver(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}
	repo, closer, err := persistence.Open(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &persistence.MemoryRepository{}, repo)
	assert.NoError(t, closer.Close())

	cfg = &config.Config{Storage: config.StorageConfig{Driver: config.DriverFile, Path: filepath.Join(t.TempDir(), "s.json")}}
	repo, _, err = persistence.Open(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &persistence.FileRepository{}, repo)

	cfg = &config.Config{Storage: config.StorageConfig{Driver: "mongo"}}
	_, _, err = persistence.Open(ctx, cfg)
	assert.Error(t, err)
}
