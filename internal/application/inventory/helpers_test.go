package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	appinventory "github.com/jhoicas/mm-inventario/internal/application/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/snapshot"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return testNow }

// seededStore snapshot sembrado con ids legibles: wh_1, wh_2, prd_1 (HB-A4-500)...
func seededStore(t *testing.T) (*snapshot.Store, *persistence.MemoryRepository) {
	t.Helper()
	n := map[string]int{}
	ids := func(prefix string) string {
		n[prefix]++
		return fmt.Sprintf("%s_%d", prefix, n[prefix])
	}
	state, err := seed.Build(seed.Options{Now: clock, NewID: ids, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	mem := persistence.NewMemoryRepository()
	store := snapshot.New(mem)
	require.NoError(t, store.Open(context.Background(), func() *entity.AppState { return state }))
	return store, mem
}

// idSeq genera ids "<prefix>_tN" para lo que crean los casos de uso.
func idSeq() func(prefix string) string {
	seq := 0
	return func(prefix string) string {
		seq++
		return fmt.Sprintf("%s_t%d", prefix, seq)
	}
}

func qty(store *snapshot.Store, wh, prd string) int {
	return store.Snapshot().Stock[entity.StockKey(wh, prd)]
}

// sheetSpy captura la hoja recibida en lugar de generar un PDF.
type sheetSpy struct {
	got appinventory.CountSheet
}

func (s *sheetSpy) GenerateCountSheet(_ context.Context, sheet appinventory.CountSheet) ([]byte, error) {
	s.got = sheet
	return []byte("%PDF-spy"), nil
}
