package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/xid"
)

// WarehouseUseCase casos de uso CRUD para almacenes.
type WarehouseUseCase struct {
	tx    repository.TxRunner
	newID xid.Generator
}

// NewWarehouseUseCase construye el caso de uso. newID nil usa xid.New.
func NewWarehouseUseCase(tx repository.TxRunner, newID xid.Generator) *WarehouseUseCase {
	if newID == nil {
		newID = xid.New
	}
	return &WarehouseUseCase{tx: tx, newID: newID}
}

// Create crea un almacén en una tienda existente. No siembra stock: los pares sin entrada leen 0.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	var out *dto.WarehouseResponse
	err := uc.tx.Run(ctx, "warehouse.create", func(r repository.Repos) error {
		w, store, err := buildWarehouse(r, uc.newID(xid.PrefixWarehouse), in, true)
		if err != nil {
			return err
		}
		if err := r.Warehouses.Create(w); err != nil {
			return err
		}
		out = toWarehouseResponse(w, store.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza los datos del almacén.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	var out *dto.WarehouseResponse
	err := uc.tx.Run(ctx, "warehouse.update", func(r repository.Repos) error {
		current, err := r.Warehouses.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound("almacén", id)
		}
		w, store, err := buildWarehouse(r, id, in, current.Active)
		if err != nil {
			return err
		}
		if err := r.Warehouses.Update(w); err != nil {
			return err
		}
		out = toWarehouseResponse(w, store.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un almacén por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	var out *dto.WarehouseResponse
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		w, err := r.Warehouses.GetByID(id)
		if err != nil {
			return err
		}
		if w == nil {
			return notFound("almacén", id)
		}
		out = toWarehouseResponse(w, storeName(r, w.StoreID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista almacenes cuyo nombre o dirección contiene q.
func (uc *WarehouseUseCase) List(ctx context.Context, q string) (*dto.WarehouseListResponse, error) {
	out := &dto.WarehouseListResponse{Items: []dto.WarehouseResponse{}}
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		list, err := r.Warehouses.List()
		if err != nil {
			return err
		}
		for _, w := range list {
			if matches(w.Name+" "+w.Address, q) {
				out.Items = append(out.Items, *toWarehouseResponse(w, storeName(r, w.StoreID)))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.Total = len(out.Items)
	return out, nil
}

// Delete elimina el almacén y purga todas sus entradas de stock.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, "warehouse.delete", func(r repository.Repos) error {
		if err := r.Warehouses.Delete(id); err != nil {
			return fmt.Errorf("almacén %s: %w", id, err)
		}
		inventory.PurgeForWarehouse(r.Stock, id)
		return nil
	})
}

func buildWarehouse(r repository.Repos, id string, in dto.WarehouseRequest, active bool) (*entity.Warehouse, *entity.Store, error) {
	w := &entity.Warehouse{
		ID:      id,
		StoreID: strings.TrimSpace(in.StoreID),
		Name:    strings.TrimSpace(in.Name),
		Address: strings.TrimSpace(in.Address),
		Lat:     strings.TrimSpace(in.Lat),
		Lng:     strings.TrimSpace(in.Lng),
		Active:  boolOr(in.Active, active),
	}
	if err := w.Validate(); err != nil {
		return nil, nil, err
	}
	store, err := r.Stores.GetByID(w.StoreID)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, fmt.Errorf("%w: tienda %s", domain.ErrNotFound, w.StoreID)
	}
	return w, store, nil
}

func storeName(r repository.Repos, storeID string) string {
	s, err := r.Stores.GetByID(storeID)
	if err != nil || s == nil {
		return dto.Placeholder
	}
	return s.Name
}

func toWarehouseResponse(w *entity.Warehouse, storeName string) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		StoreID:   w.StoreID,
		StoreName: storeName,
		Name:      w.Name,
		Address:   w.Address,
		Lat:       w.Lat,
		Lng:       w.Lng,
		Active:    w.Active,
	}
}
