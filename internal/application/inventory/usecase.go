package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/xid"
)

// MovementUseCase registra entradas y salidas y consulta el libro de existencias.
// Cada registro es una transacción sobre el snapshot: o se aplica y persiste entero o nada.
type MovementUseCase struct {
	tx    repository.TxRunner
	newID xid.Generator
	now   func() time.Time
}

// NewMovementUseCase construye el caso de uso. newID y now nil usan xid.New y time.Now.
func NewMovementUseCase(tx repository.TxRunner, newID xid.Generator, now func() time.Time) *MovementUseCase {
	if newID == nil {
		newID = xid.New
	}
	if now == nil {
		now = time.Now
	}
	return &MovementUseCase{tx: tx, newID: newID, now: now}
}

// RegisterMovement sanea la cantidad, verifica que almacén y producto existan y aplica el
// movimiento. Una salida que dejaría stock negativo devuelve domain.ErrInsufficientStock.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	input := inventory.MovementInput{
		Type:        strings.ToUpper(strings.TrimSpace(in.Type)),
		WarehouseID: strings.TrimSpace(in.WarehouseID),
		ProductID:   strings.TrimSpace(in.ProductID),
		Qty:         inventory.ClampInt(in.Qty),
		Note:        in.Note,
	}

	var out *dto.MovementResponse
	err := uc.tx.Run(ctx, "movement.register", func(r repository.Repos) error {
		wh, p, err := references(r, input.WarehouseID, input.ProductID)
		if err != nil {
			return err
		}
		mov, err := inventory.ApplyMovement(r.Stock, r.Movements, input, uc.now().UTC(), uc.newID(xid.PrefixMovement))
		if err != nil {
			return err
		}
		out = movementResponse(mov, wh.Name, p.SKU, p.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// references valida existencia solo de los ids informados; los vacíos los rechaza ApplyMovement.
func references(r repository.Repos, warehouseID, productID string) (*entity.Warehouse, *entity.Product, error) {
	wh := &entity.Warehouse{}
	if warehouseID != "" {
		found, err := r.Warehouses.GetByID(warehouseID)
		if err != nil {
			return nil, nil, err
		}
		if found == nil {
			return nil, nil, fmt.Errorf("%w: almacén %s", domain.ErrNotFound, warehouseID)
		}
		wh = found
	}
	p := &entity.Product{}
	if productID != "" {
		found, err := r.Products.GetByID(productID)
		if err != nil {
			return nil, nil, err
		}
		if found == nil {
			return nil, nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
		}
		p = found
	}
	return wh, p, nil
}

// ListMovements devuelve los últimos movimientos (más reciente primero).
// limit <= 0 usa dto.DefaultMovementLimit.
func (uc *MovementUseCase) ListMovements(ctx context.Context, limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = dto.DefaultMovementLimit
	}
	var out []dto.MovementResponse
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		lk, err := NewLookup(r)
		if err != nil {
			return err
		}
		list, err := r.Movements.List(limit)
		if err != nil {
			return err
		}
		out = make([]dto.MovementResponse, 0, len(list))
		for _, m := range list {
			sku, name := lk.ProductLabel(m.ProductID)
			out = append(out, *movementResponse(m, lk.WarehouseName(m.WarehouseID), sku, name))
		}
		return nil
	})
	return out, err
}

// Stock lista la existencia de cada producto en cada almacén (o solo en warehouseID).
func (uc *MovementUseCase) Stock(ctx context.Context, warehouseID string) ([]dto.StockItemDTO, error) {
	var out []dto.StockItemDTO
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		lk, err := NewLookup(r)
		if err != nil {
			return err
		}
		if warehouseID != "" && lk.Warehouse(warehouseID) == nil {
			return fmt.Errorf("%w: almacén %s", domain.ErrNotFound, warehouseID)
		}
		out = make([]dto.StockItemDTO, 0, len(lk.Warehouses)*len(lk.Products))
		for _, w := range lk.Warehouses {
			if warehouseID != "" && w.ID != warehouseID {
				continue
			}
			for _, p := range lk.Products {
				qty := inventory.ReadQuantity(r.Stock, w.ID, p.ID)
				out = append(out, dto.StockItemDTO{
					WarehouseID:   w.ID,
					WarehouseName: w.Name,
					ProductID:     p.ID,
					SKU:           p.SKU,
					ProductName:   p.Name,
					SaleUnit:      p.SaleUnit,
					Qty:           qty,
					Min:           p.Min,
					Max:           p.Max,
					Low:           inventory.IsLowStock(qty, p),
				})
			}
		}
		return nil
	})
	return out, err
}

// Quantity cantidad de un par; la ausencia de entrada se lee como 0.
func (uc *MovementUseCase) Quantity(ctx context.Context, warehouseID, productID string) (*dto.StockQuantityDTO, error) {
	out := &dto.StockQuantityDTO{WarehouseID: warehouseID, ProductID: productID}
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		out.Qty = inventory.ReadQuantity(r.Stock, warehouseID, productID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func movementResponse(m *entity.Movement, warehouseName, sku, productName string) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		Type:          m.Type,
		WarehouseID:   m.WarehouseID,
		WarehouseName: warehouseName,
		ProductID:     m.ProductID,
		ProductSKU:    sku,
		ProductName:   productName,
		Qty:           m.Qty,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}
