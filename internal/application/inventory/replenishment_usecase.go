package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición: pares almacén+producto bajo el mínimo.
type ReplenishmentUseCase struct {
	tx repository.TxRunner
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(tx repository.TxRunner) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{tx: tx}
}

// GenerateReplenishmentList devuelve los pares con qty < min y la cantidad sugerida
// (hasta max si existe, si no hasta min). Orden: mayor déficit primero, luego SKU.
// warehouseID vacío considera todos los almacenes.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, warehouseID string) ([]dto.ReplenishmentSuggestionDTO, error) {
	out := []dto.ReplenishmentSuggestionDTO{}
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		lk, err := NewLookup(r)
		if err != nil {
			return err
		}
		if warehouseID != "" && lk.Warehouse(warehouseID) == nil {
			return fmt.Errorf("%w: almacén %s", domain.ErrNotFound, warehouseID)
		}
		for _, w := range lk.Warehouses {
			if warehouseID != "" && w.ID != warehouseID {
				continue
			}
			for _, p := range lk.Products {
				qty := inventory.ReadQuantity(r.Stock, w.ID, p.ID)
				if !inventory.IsLowStock(qty, p) {
					continue
				}
				out = append(out, dto.ReplenishmentSuggestionDTO{
					WarehouseID:   w.ID,
					WarehouseName: w.Name,
					ProductID:     p.ID,
					SKU:           p.SKU,
					ProductName:   p.Name,
					CurrentQty:    qty,
					Min:           p.Min,
					Max:           p.Max,
					Deficit:       p.Min - qty,
					SuggestedQty:  inventory.ReorderSuggestion(qty, p),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Deficit != out[j].Deficit {
			return out[i].Deficit > out[j].Deficit
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}
