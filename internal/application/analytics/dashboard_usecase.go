// Package analytics contiene el resumen del dashboard: conteos, unidades en stock,
// alertas de stock bajo y valorización en moneda base.
package analytics

import (
	"context"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	appinventory "github.com/jhoicas/mm-inventario/internal/application/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/pkg/money"
	"github.com/shopspring/decimal"
)

// DashboardUseCase genera el resumen a partir de una sola lectura del snapshot.
type DashboardUseCase struct {
	tx repository.TxRunner
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(tx repository.TxRunner) *DashboardUseCase {
	return &DashboardUseCase{tx: tx}
}

// GetSummary construye el DashboardSummaryDTO.
//
//   - TotalUnits suma todas las entradas de stock, incluidas las de pares huérfanos.
//   - LowStock y StockValue recorren solo almacenes × productos existentes.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	out := &dto.DashboardSummaryDTO{LowStock: []dto.LowStockDTO{}}
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		lk, err := appinventory.NewLookup(r)
		if err != nil {
			return err
		}
		stores, err := r.Stores.List()
		if err != nil {
			return err
		}
		services, err := r.Services.List()
		if err != nil {
			return err
		}
		invs, err := r.Inventories.List("")
		if err != nil {
			return err
		}
		settings := r.Settings.Get()

		out.Stores = len(stores)
		out.Warehouses = len(lk.Warehouses)
		out.Products = len(lk.Products)
		out.Services = len(services)
		for _, inv := range invs {
			if inv.IsOpen() {
				out.OpenInventories++
			}
		}
		for _, q := range r.Stock.List() {
			out.TotalUnits += q
		}

		value := decimal.Zero
		for _, w := range lk.Warehouses {
			for _, p := range lk.Products {
				qty := inventory.ReadQuantity(r.Stock, w.ID, p.ID)
				value = value.Add(inventory.StockValue(qty, p, &settings))
				if inventory.IsLowStock(qty, p) {
					out.LowStock = append(out.LowStock, dto.LowStockDTO{
						WarehouseID:   w.ID,
						WarehouseName: w.Name,
						ProductID:     p.ID,
						SKU:           p.SKU,
						ProductName:   p.Name,
						Qty:           qty,
						Min:           p.Min,
					})
				}
			}
		}
		out.BaseCurrency = settings.BaseCurrency
		out.StockValue = value.Round(2)
		out.StockValueText = money.Format(out.StockValue, symbol(settings))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func symbol(s entity.Settings) string {
	if c, ok := s.Currency(s.BaseCurrency); ok && c.Symbol != "" {
		return c.Symbol
	}
	return s.BaseCurrency
}
