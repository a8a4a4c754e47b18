package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/snapshot"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// seededStore snapshot sembrado con ids legibles: store_1, wh_1, wh_2, prd_1..prd_5, srv_1..srv_3.
func seededStore(t *testing.T) (*snapshot.Store, *persistence.MemoryRepository) {
	t.Helper()
	n := map[string]int{}
	ids := func(prefix string) string {
		n[prefix]++
		return fmt.Sprintf("%s_%d", prefix, n[prefix])
	}
	now := func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) }
	state, err := seed.Build(seed.Options{Now: now, NewID: ids, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	mem := persistence.NewMemoryRepository()
	store := snapshot.New(mem)
	require.NoError(t, store.Open(context.Background(), func() *entity.AppState { return state }))
	return store, mem
}

func idSeq() func(prefix string) string {
	seq := 0
	return func(prefix string) string {
		seq++
		return fmt.Sprintf("%s_t%d", prefix, seq)
	}
}

func ptr[T any](v T) *T { return &v }
