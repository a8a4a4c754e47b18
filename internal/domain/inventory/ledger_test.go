package inventory_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wh1 = "wh_1"
	wh2 = "wh_2"
	hb  = "prd_1" // HB-A4-500: 45 en wh_1
)

func (f *fixture) apply(typ string, wh, prd string, qty int) (*entity.Movement, error) {
	var mov *entity.Movement
	err := f.run(func(r repository.Repos) error {
		m, err := inventory.ApplyMovement(r.Stock, r.Movements, inventory.MovementInput{
			Type: typ, WarehouseID: wh, ProductID: prd, Qty: qty, Note: "test",
		}, testNow, f.nextID("mov"))
		mov = m
		return err
	})
	return mov, err
}

// ────────────────────────────── Movimientos ──────────────────────────────

func TestApplyMovement_EntradaSumaYRegistra(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, 45, f.qty(wh1, hb))

	mov, err := f.apply(entity.MovementTypeIN, wh1, hb, 10)

	require.NoError(t, err)
	assert.Equal(t, 55, f.qty(wh1, hb))
	movs := f.movements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeIN, movs[0].Type)
	assert.Equal(t, 10, movs[0].Qty)
	assert.Equal(t, mov.ID, movs[0].ID)
	assert.Equal(t, testNow, movs[0].CreatedAt)
}

func TestApplyMovement_SalidaInsuficienteNoMuta(t *testing.T) {
	f := newFixture(t)

	_, err := f.apply(entity.MovementTypeOUT, wh1, hb, 1000)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 45, f.qty(wh1, hb))
	assert.Empty(t, f.movements())
}

// ────────────────────────────── Reglas ──────────────────────────────

func TestApplyMovement_SalidaExactaDejaCero(t *testing.T) {
	f := newFixture(t)

	_, err := f.apply(entity.MovementTypeOUT, wh1, hb, 45)

	require.NoError(t, err)
	assert.Equal(t, 0, f.qty(wh1, hb))
}

func TestApplyMovement_CantidadNoPositiva(t *testing.T) {
	f := newFixture(t)

	for _, q := range []int{0, -5} {
		_, err := f.apply(entity.MovementTypeIN, wh1, hb, q)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	assert.Equal(t, 45, f.qty(wh1, hb))
	assert.Empty(t, f.movements())
}

func TestApplyMovement_TipoNoSoportado(t *testing.T) {
	f := newFixture(t)

	_, err := f.apply(entity.MovementTypeADJ, wh1, hb, 3)

	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
	assert.Empty(t, f.movements())
}

func TestApplyMovement_ClaveAusenteSeLeeComoCero(t *testing.T) {
	f := newFixture(t)

	_, err := f.apply(entity.MovementTypeOUT, "wh_nuevo", hb, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = f.apply(entity.MovementTypeIN, "wh_nuevo", hb, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, f.qty("wh_nuevo", hb))
}

func TestApplyMovement_HistorialMasRecientePrimero(t *testing.T) {
	f := newFixture(t)

	first, err := f.apply(entity.MovementTypeIN, wh1, hb, 1)
	require.NoError(t, err)
	second, err := f.apply(entity.MovementTypeOUT, wh1, hb, 2)
	require.NoError(t, err)

	movs := f.movements()
	require.Len(t, movs, 2)
	assert.Equal(t, second.ID, movs[0].ID)
	assert.Equal(t, first.ID, movs[1].ID)
}

// Ninguna secuencia de movimientos deja stock negativo.
func TestApplyMovement_SalidaNuncaDejaNegativo(t *testing.T) {
	f := newFixture(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		typ := entity.MovementTypeIN
		if rng.Intn(2) == 0 {
			typ = entity.MovementTypeOUT
		}
		wh := wh1
		if rng.Intn(2) == 0 {
			wh = wh2
		}
		before := f.qty(wh, hb)
		movsBefore := len(f.movements())
		qty := rng.Intn(40) + 1

		_, err := f.apply(typ, wh, hb, qty)

		after := f.qty(wh, hb)
		assert.GreaterOrEqual(t, after, 0)
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			assert.Equal(t, before, after, "una salida rechazada no cambia el stock")
			assert.Len(t, f.movements(), movsBefore)
		}
	}
}

// Las purgas borran exactamente las claves del producto / almacén.
func TestPurge_BorraSoloClavesDelProductoOAlmacen(t *testing.T) {
	f := newFixture(t)

	var removed int
	require.NoError(t, f.run(func(r repository.Repos) error {
		r.Stock.Set("wh_1", "prd_11", 5) // sufijo parecido, no debe borrarse
		removed = inventory.PurgeForProduct(r.Stock, "prd_1")
		return nil
	}))
	assert.Equal(t, 2, removed)
	stock := f.store.Snapshot().Stock
	for k := range stock {
		assert.NotRegexp(t, `:prd_1$`, k)
	}
	assert.Equal(t, 5, stock["wh_1:prd_11"])

	require.NoError(t, f.run(func(r repository.Repos) error {
		removed = inventory.PurgeForWarehouse(r.Stock, wh2)
		return nil
	}))
	assert.Equal(t, 4, removed)
	for k := range f.store.Snapshot().Stock {
		assert.NotRegexp(t, `^wh_2:`, k)
	}
}

func TestReadQuantity(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.View(context.Background(), func(r repository.Repos) error {
		assert.Equal(t, 45, inventory.ReadQuantity(r.Stock, wh1, hb))
		assert.Equal(t, 0, inventory.ReadQuantity(r.Stock, wh1, "prd_inexistente"))
		return nil
	}))
}
