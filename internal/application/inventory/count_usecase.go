package inventory

import (
	"context"
	"errors"
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

// ErrNoSheetGenerator se devuelve si se pide la hoja sin generador configurado.
var ErrNoSheetGenerator = errors.New("inventario: generador de hojas no configurado")

// CountUseCase flujo de inventario cíclico: abrir, contar, cerrar y conciliar.
type CountUseCase struct {
	tx     repository.TxRunner
	sheets CountSheetGenerator
	newID  xid.Generator
	now    func() time.Time
}

// NewCountUseCase construye el caso de uso. sheets puede ser nil si no se imprimen hojas.
func NewCountUseCase(tx repository.TxRunner, sheets CountSheetGenerator, newID xid.Generator, now func() time.Time) *CountUseCase {
	if newID == nil {
		newID = xid.New
	}
	if now == nil {
		now = time.Now
	}
	return &CountUseCase{tx: tx, sheets: sheets, newID: newID, now: now}
}

// Create abre un inventario para el almacén, con una línea por producto y el stock congelado.
func (uc *CountUseCase) Create(ctx context.Context, in dto.CreateCountRequest) (*dto.CountResponse, error) {
	warehouseID := strings.TrimSpace(in.WarehouseID)
	var out *dto.CountResponse
	err := uc.tx.Run(ctx, "inventory.create", func(r repository.Repos) error {
		if warehouseID != "" {
			wh, err := r.Warehouses.GetByID(warehouseID)
			if err != nil {
				return err
			}
			if wh == nil {
				return fmt.Errorf("%w: almacén %s", domain.ErrNotFound, warehouseID)
			}
		}
		inv, err := inventory.CreateInventory(r.Inventories, r.Stock, r.Products, warehouseID, uc.now().UTC(), uc.newID(xid.PrefixInventory))
		if err != nil {
			return err
		}
		out, err = uc.response(r, inv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCount fija la cantidad contada de una línea. Solo en inventarios OPEN.
func (uc *CountUseCase) UpdateCount(ctx context.Context, inventoryID, productID string, in dto.UpdateCountRequest) (*dto.CountLineDTO, error) {
	var out *dto.CountLineDTO
	err := uc.tx.Run(ctx, "inventory.count", func(r repository.Repos) error {
		inv, err := getInventory(r, inventoryID)
		if err != nil {
			return err
		}
		if err := inventory.UpdateCount(inv, productID, in.Counted); err != nil {
			return err
		}
		if err := r.Inventories.Update(inv); err != nil {
			return err
		}
		p, err := r.Products.GetByID(productID)
		if err != nil {
			return err
		}
		line := lineDTO(*inv.Line(productID), p)
		out = &line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close cierra el inventario y aplica los ajustes en una sola transacción.
func (uc *CountUseCase) Close(ctx context.Context, inventoryID string) (*dto.CountResponse, error) {
	newMovementID := func() string { return uc.newID(xid.PrefixMovement) }
	var out *dto.CountResponse
	err := uc.tx.Run(ctx, "inventory.close", func(r repository.Repos) error {
		inv, err := inventory.CloseAndApply(r.Inventories, r.Stock, r.Movements, inventoryID, uc.now().UTC(), newMovementID)
		if err != nil {
			return err
		}
		out, err = uc.response(r, inv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve un inventario con sus líneas.
func (uc *CountUseCase) Get(ctx context.Context, inventoryID string) (*dto.CountResponse, error) {
	var out *dto.CountResponse
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		inv, err := getInventory(r, inventoryID)
		if err != nil {
			return err
		}
		out, err = uc.response(r, inv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista inventarios (más reciente primero), filtrando por almacén si se indica.
func (uc *CountUseCase) List(ctx context.Context, warehouseID string) ([]dto.CountSummaryDTO, error) {
	var out []dto.CountSummaryDTO
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		lk, err := NewLookup(r)
		if err != nil {
			return err
		}
		list, err := r.Inventories.List(warehouseID)
		if err != nil {
			return err
		}
		out = make([]dto.CountSummaryDTO, 0, len(list))
		for _, inv := range list {
			out = append(out, dto.CountSummaryDTO{
				ID:            inv.ID,
				WarehouseID:   inv.WarehouseID,
				WarehouseName: lk.WarehouseName(inv.WarehouseID),
				Status:        inv.Status,
				CreatedAt:     inv.CreatedAt,
				ClosedAt:      inv.ClosedAt,
				LineCount:     len(inv.Lines),
				DiffLines:     diffLines(inv),
			})
		}
		return nil
	})
	return out, err
}

// Sheet genera el PDF imprimible del inventario.
func (uc *CountUseCase) Sheet(ctx context.Context, inventoryID string) ([]byte, error) {
	if uc.sheets == nil {
		return nil, ErrNoSheetGenerator
	}
	var sheet CountSheet
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		inv, err := getInventory(r, inventoryID)
		if err != nil {
			return err
		}
		lk, err := NewLookup(r)
		if err != nil {
			return err
		}
		sheet = CountSheet{
			InventoryID:   inv.ID,
			WarehouseName: lk.WarehouseName(inv.WarehouseID),
			StoreName:     lk.StoreName(inv.WarehouseID),
			Status:        inv.Status,
			CreatedAt:     inv.CreatedAt,
			ClosedAt:      inv.ClosedAt,
			Lines:         make([]CountSheetLine, 0, len(inv.Lines)),
		}
		for _, l := range inv.Lines {
			sku, name := lk.ProductLabel(l.ProductID)
			unit := ""
			if p := lk.Product(l.ProductID); p != nil {
				unit = p.SaleUnit
			}
			sheet.Lines = append(sheet.Lines, CountSheetLine{
				SKU:         sku,
				ProductName: name,
				SaleUnit:    unit,
				SystemQty:   l.SystemQty,
				CountedQty:  l.CountedQty,
				Diff:        l.Diff,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.sheets.GenerateCountSheet(ctx, sheet)
}

func getInventory(r repository.Repos, id string) (*entity.Inventory, error) {
	inv, err := r.Inventories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: inventario %s", domain.ErrNotFound, id)
	}
	return inv, nil
}

func (uc *CountUseCase) response(r repository.Repos, inv *entity.Inventory) (*dto.CountResponse, error) {
	lk, err := NewLookup(r)
	if err != nil {
		return nil, err
	}
	out := &dto.CountResponse{
		ID:            inv.ID,
		WarehouseID:   inv.WarehouseID,
		WarehouseName: lk.WarehouseName(inv.WarehouseID),
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt,
		ClosedAt:      inv.ClosedAt,
		DiffLines:     diffLines(inv),
		Lines:         make([]dto.CountLineDTO, 0, len(inv.Lines)),
	}
	for _, l := range inv.Lines {
		out.Lines = append(out.Lines, lineDTO(l, lk.Product(l.ProductID)))
	}
	return out, nil
}

func lineDTO(l entity.InventoryLine, p *entity.Product) dto.CountLineDTO {
	out := dto.CountLineDTO{
		ProductID:   l.ProductID,
		SKU:         dto.Placeholder,
		ProductName: dto.Placeholder,
		SystemQty:   l.SystemQty,
		CountedQty:  l.CountedQty,
		Diff:        l.Diff,
	}
	if p != nil {
		out.SKU, out.ProductName = p.SKU, p.Name
	}
	return out
}

func diffLines(inv *entity.Inventory) int {
	n := 0
	for _, l := range inv.Lines {
		if l.CountedQty != l.SystemQty {
			n++
		}
	}
	return n
}
