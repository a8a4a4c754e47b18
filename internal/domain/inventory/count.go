package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
)

// AdjustmentNote nota de los movimientos ADJ generados al cerrar un inventario.
func AdjustmentNote(inventoryID string) string {
	return fmt.Sprintf("Ajuste por inventario (%s)", inventoryID)
}

// CreateInventory abre un conteo para el almacén congelando el stock actual de cada producto.
// Falla con ErrAlreadyOpen si el almacén ya tiene un inventario OPEN.
func CreateInventory(
	inventories repository.InventoryRepository,
	stock repository.StockRepository,
	products repository.ProductRepository,
	warehouseID string,
	now time.Time,
	id string,
) (*entity.Inventory, error) {
	if warehouseID == "" {
		return nil, domain.Required("warehouseId")
	}
	open, err := inventories.FindOpenByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrAlreadyOpen
	}

	list, err := products.List()
	if err != nil {
		return nil, err
	}
	lines := make([]entity.InventoryLine, 0, len(list))
	for _, p := range list {
		qty := ReadQuantity(stock, warehouseID, p.ID)
		lines = append(lines, entity.InventoryLine{
			ProductID:  p.ID,
			SystemQty:  qty,
			CountedQty: qty,
			Diff:       0,
		})
	}

	inv := &entity.Inventory{
		ID:          id,
		WarehouseID: warehouseID,
		CreatedAt:   now,
		Status:      entity.InventoryStatusOpen,
		Lines:       lines,
	}
	if err := inventories.Prepend(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateCount registra la cantidad contada de un producto y recalcula la diferencia.
// counted se sanea con ClampInt; los negativos se conservan tal cual.
func UpdateCount(inv *entity.Inventory, productID string, counted float64) error {
	if !inv.IsOpen() {
		return domain.ErrNotOpen
	}
	line := inv.Line(productID)
	if line == nil {
		return fmt.Errorf("%w: el producto no está en el inventario", domain.ErrNotFound)
	}
	line.CountedQty = ClampInt(counted)
	line.Diff = line.CountedQty - line.SystemQty
	return nil
}

// CloseAndApply cierra el inventario y concilia cada línea con diferencia:
// fija el stock al contado (sin el chequeo de salida) y registra un ADJ por la magnitud.
// Un conteo negativo impide el cierre: el stock nunca queda bajo cero.
// Debe ejecutarse dentro de una única transacción: si algo falla no queda nada aplicado.
func CloseAndApply(
	inventories repository.InventoryRepository,
	stock repository.StockRepository,
	movements repository.MovementRepository,
	inventoryID string,
	now time.Time,
	newID func() string,
) (*entity.Inventory, error) {
	inv, err := inventories.GetByID(inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: inventario %s", domain.ErrNotFound, inventoryID)
	}
	if !inv.IsOpen() {
		return nil, domain.ErrNotOpen
	}

	for _, line := range inv.Lines {
		if line.CountedQty < 0 {
			return nil, fmt.Errorf("%w: conteo negativo para %s", domain.ErrInvalidQuantity, line.ProductID)
		}
	}

	note := AdjustmentNote(inv.ID)
	for _, line := range inv.Lines {
		diff := line.CountedQty - line.SystemQty
		if diff == 0 {
			continue
		}
		stock.Set(inv.WarehouseID, line.ProductID, line.CountedQty)
		if diff < 0 {
			diff = -diff
		}
		mov := &entity.Movement{
			ID:          newID(),
			Type:        entity.MovementTypeADJ,
			WarehouseID: inv.WarehouseID,
			ProductID:   line.ProductID,
			Qty:         diff,
			Note:        note,
			CreatedAt:   now,
		}
		if err := movements.Prepend(mov); err != nil {
			return nil, err
		}
	}

	closedAt := now
	inv.Status = entity.InventoryStatusClosed
	inv.ClosedAt = &closedAt
	if err := inventories.Update(inv); err != nil {
		return nil, err
	}
	return inv, nil
}
