package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jhoicas/mm-inventario/internal/application/analytics"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/snapshot"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seededStore(t *testing.T) *snapshot.Store {
	t.Helper()
	n := map[string]int{}
	ids := func(prefix string) string {
		n[prefix]++
		return fmt.Sprintf("%s_%d", prefix, n[prefix])
	}
	state, err := seed.Build(seed.Options{Now: time.Now, NewID: ids, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	store := snapshot.New(persistence.NewMemoryRepository())
	require.NoError(t, store.Open(context.Background(), func() *entity.AppState { return state }))
	return store
}

// Seed: wh_1 = 45, 275, 110, 34, 34; wh_2 = 34, 207, 83, 26, 26.
func TestGetSummary_Seed(t *testing.T) {
	uc := analytics.NewDashboardUseCase(seededStore(t))

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, got.Stores)
	assert.Equal(t, 2, got.Warehouses)
	assert.Equal(t, 5, got.Products)
	assert.Equal(t, 3, got.Services)
	assert.Equal(t, 0, got.OpenInventories)
	assert.Equal(t, 874, got.TotalUnits)
	assert.Empty(t, got.LowStock)
	assert.Equal(t, "PEN", got.BaseCurrency)

	// 79*18.5 + 482*1.5 + 193*9.9 + 60*14 + 60*16
	want := decimal.RequireFromString("5895.2")
	assert.True(t, want.Equal(got.StockValue), "valor %s", got.StockValue)
	assert.Equal(t, "S/ 5,895.20", got.StockValueText)
}

func TestGetSummary_StockBajoYConversion(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	require.NoError(t, store.Run(ctx, "test", func(r repository.Repos) error {
		r.Stock.Set("wh_2", "prd_1", 3)
		r.Stock.Set("wh_fantasma", "prd_1", 100)
		p, err := r.Products.GetByID("prd_4")
		if err != nil {
			return err
		}
		p.Currency = "USD"
		return r.Products.Update(p)
	}))

	got, err := analytics.NewDashboardUseCase(store).GetSummary(ctx)
	require.NoError(t, err)

	require.Len(t, got.LowStock, 1)
	assert.Equal(t, "HB-A4-500", got.LowStock[0].SKU)
	assert.Equal(t, "Almacén Tienda", got.LowStock[0].WarehouseName)
	assert.Equal(t, 3, got.LowStock[0].Qty)
	assert.Equal(t, 874-34+3+100, got.TotalUnits, "las entradas huérfanas cuentan en el total")

	// HB: 48*18.5 = 888; COL en USD: 60*14*3.75 = 3150
	want := decimal.RequireFromString("888").
		Add(decimal.RequireFromString("723")).
		Add(decimal.RequireFromString("1910.7")).
		Add(decimal.RequireFromString("3150")).
		Add(decimal.RequireFromString("960"))
	assert.True(t, want.Equal(got.StockValue), "valor %s", got.StockValue)
}
