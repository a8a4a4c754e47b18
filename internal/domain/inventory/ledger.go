package inventory

import (
	"strings"
	"time"

	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
)

// MovementInput entrada de un movimiento manual (IN/OUT). Qty ya viene saneada con ClampInt.
type MovementInput struct {
	Type        string
	WarehouseID string
	ProductID   string
	Qty         int
	Note        string
}

// ApplyMovement aplica un movimiento al libro de existencias (servicio de dominio).
// Falla antes de mutar si la cantidad no es positiva o si una salida dejaría el stock negativo.
// Inserta el movimiento al inicio del historial y actualiza la cantidad del par.
func ApplyMovement(
	stock repository.StockRepository,
	movements repository.MovementRepository,
	in MovementInput,
	now time.Time,
	id string,
) (*entity.Movement, error) {
	if in.WarehouseID == "" {
		return nil, domain.Required("warehouseId")
	}
	if in.ProductID == "" {
		return nil, domain.Required("productId")
	}
	if in.Qty <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	current := stock.Get(in.WarehouseID, in.ProductID)
	var next int
	switch in.Type {
	case entity.MovementTypeIN:
		next = current + in.Qty
	case entity.MovementTypeOUT:
		next = current - in.Qty
		if next < 0 {
			return nil, domain.ErrInsufficientStock
		}
	default:
		return nil, domain.ErrInvalidMovementType
	}

	mov := &entity.Movement{
		ID:          id,
		Type:        in.Type,
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		Qty:         in.Qty,
		Note:        strings.TrimSpace(in.Note),
		CreatedAt:   now,
	}
	if err := movements.Prepend(mov); err != nil {
		return nil, err
	}
	stock.Set(in.WarehouseID, in.ProductID, next)
	return mov, nil
}

// ReadQuantity devuelve la cantidad del par; la ausencia de entrada significa 0.
func ReadQuantity(stock repository.StockRepository, warehouseID, productID string) int {
	return stock.Get(warehouseID, productID)
}

// PurgeForProduct elimina todas las entradas de stock del producto.
func PurgeForProduct(stock repository.StockRepository, productID string) int {
	return stock.DeleteByProduct(productID)
}

// PurgeForWarehouse elimina todas las entradas de stock del almacén.
func PurgeForWarehouse(stock repository.StockRepository, warehouseID string) int {
	return stock.DeleteByWarehouse(warehouseID)
}
