package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/snapshot"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

// fixture estado sembrado con ids legibles: wh_1, wh_2, prd_1 (HB-A4-500)...
type fixture struct {
	store *snapshot.Store
	seq   int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	n := map[string]int{}
	ids := func(prefix string) string {
		n[prefix]++
		return fmt.Sprintf("%s_%d", prefix, n[prefix])
	}
	state, err := seed.Build(seed.Options{Now: func() time.Time { return testNow }, NewID: ids, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	store := snapshot.New(persistence.NewMemoryRepository())
	require.NoError(t, store.Open(context.Background(), func() *entity.AppState { return state }))
	return &fixture{store: store}
}

func (f *fixture) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s_t%d", prefix, f.seq)
}

func (f *fixture) run(fn func(r repository.Repos) error) error {
	return f.store.Run(context.Background(), "test", fn)
}

func (f *fixture) qty(wh, prd string) int {
	return f.store.Snapshot().Stock[entity.StockKey(wh, prd)]
}

func (f *fixture) movements() []entity.Movement {
	return f.store.Snapshot().Movements
}
