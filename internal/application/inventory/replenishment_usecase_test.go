package inventory_test

import (
	"context"
	"testing"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	appinventory "github.com/jhoicas/mm-inventario/internal/application/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplenishment_SinFaltantes(t *testing.T) {
	store, _ := seededStore(t)
	uc := appinventory.NewReplenishmentUseCase(store)

	list, err := uc.GenerateReplenishmentList(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list, "el seed arranca sobre el mínimo")
}

func TestReplenishment_OrdenPorDeficit(t *testing.T) {
	store, _ := seededStore(t)
	moves := appinventory.NewMovementUseCase(store, idSeq(), clock)
	ctx := context.Background()

	// wh_2: HB 34 -> 4 (min 10, déficit 6); LAP 207 -> 10 (min 50, déficit 40).
	for _, m := range []dto.RegisterMovementRequest{
		{Type: "OUT", WarehouseID: "wh_2", ProductID: "prd_1", Qty: 30},
		{Type: "OUT", WarehouseID: "wh_2", ProductID: "prd_2", Qty: 197},
	} {
		_, err := moves.RegisterMovement(ctx, m)
		require.NoError(t, err)
	}

	uc := appinventory.NewReplenishmentUseCase(store)
	list, err := uc.GenerateReplenishmentList(ctx, "wh_2")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "LAP-AZ-001", list[0].SKU)
	assert.Equal(t, 40, list[0].Deficit)
	assert.Equal(t, 490, list[0].SuggestedQty, "hasta el máximo")
	assert.Equal(t, "HB-A4-500", list[1].SKU)
	assert.Equal(t, 76, list[1].SuggestedQty)

	other, err := uc.GenerateReplenishmentList(ctx, "wh_1")
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = uc.GenerateReplenishmentList(ctx, "wh_x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
