package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/xid"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	tx    repository.TxRunner
	newID xid.Generator
}

// NewStoreUseCase construye el caso de uso. newID nil usa xid.New.
func NewStoreUseCase(tx repository.TxRunner, newID xid.Generator) *StoreUseCase {
	if newID == nil {
		newID = xid.New
	}
	return &StoreUseCase{tx: tx, newID: newID}
}

// Create crea una tienda.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.StoreRequest) (*dto.StoreResponse, error) {
	s := buildStore(uc.newID(xid.PrefixStore), in, true)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	err := uc.tx.Run(ctx, "store.create", func(r repository.Repos) error {
		return r.Stores.Create(s)
	})
	if err != nil {
		return nil, err
	}
	return toStoreResponse(s, 0), nil
}

// Update reemplaza los datos de la tienda.
func (uc *StoreUseCase) Update(ctx context.Context, id string, in dto.StoreRequest) (*dto.StoreResponse, error) {
	var out *dto.StoreResponse
	err := uc.tx.Run(ctx, "store.update", func(r repository.Repos) error {
		current, err := r.Stores.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound("tienda", id)
		}
		s := buildStore(id, in, current.Active)
		if err := s.Validate(); err != nil {
			return err
		}
		if err := r.Stores.Update(s); err != nil {
			return err
		}
		n, err := warehouseCount(r, id)
		if err != nil {
			return err
		}
		out = toStoreResponse(s, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	var out *dto.StoreResponse
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		s, err := r.Stores.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return notFound("tienda", id)
		}
		n, err := warehouseCount(r, id)
		if err != nil {
			return err
		}
		out = toStoreResponse(s, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista tiendas cuyo nombre, dirección o contacto contiene q.
func (uc *StoreUseCase) List(ctx context.Context, q string) (*dto.StoreListResponse, error) {
	out := &dto.StoreListResponse{Items: []dto.StoreResponse{}}
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		list, err := r.Stores.List()
		if err != nil {
			return err
		}
		for _, s := range list {
			if !matches(s.Name+" "+s.Address+" "+s.ContactName, q) {
				continue
			}
			n, err := warehouseCount(r, s.ID)
			if err != nil {
				return err
			}
			out.Items = append(out.Items, *toStoreResponse(s, n))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.Total = len(out.Items)
	return out, nil
}

// Delete elimina la tienda. Falla con domain.ErrHasDependentWarehouses si algún almacén la referencia.
func (uc *StoreUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, "store.delete", func(r repository.Repos) error {
		used, err := r.Warehouses.ExistsByStore(id)
		if err != nil {
			return err
		}
		if used {
			return domain.ErrHasDependentWarehouses
		}
		if err := r.Stores.Delete(id); err != nil {
			return fmt.Errorf("tienda %s: %w", id, err)
		}
		return nil
	})
}

func buildStore(id string, in dto.StoreRequest, active bool) *entity.Store {
	return &entity.Store{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		Address:      strings.TrimSpace(in.Address),
		Lat:          strings.TrimSpace(in.Lat),
		Lng:          strings.TrimSpace(in.Lng),
		ContactName:  strings.TrimSpace(in.ContactName),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		Active:       boolOr(in.Active, active),
	}
}

func warehouseCount(r repository.Repos, storeID string) (int, error) {
	list, err := r.Warehouses.List()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, w := range list {
		if w.StoreID == storeID {
			n++
		}
	}
	return n, nil
}

func toStoreResponse(s *entity.Store, warehouses int) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:             s.ID,
		Name:           s.Name,
		Address:        s.Address,
		Lat:            s.Lat,
		Lng:            s.Lng,
		ContactName:    s.ContactName,
		ContactPhone:   s.ContactPhone,
		ContactEmail:   s.ContactEmail,
		Active:         s.Active,
		WarehouseCount: warehouses,
	}
}
