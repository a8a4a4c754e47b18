package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/xid"
)

// ServiceUseCase casos de uso CRUD para servicios (fotocopias, impresiones...). No tienen stock.
type ServiceUseCase struct {
	tx    repository.TxRunner
	newID xid.Generator
}

// NewServiceUseCase construye el caso de uso. newID nil usa xid.New.
func NewServiceUseCase(tx repository.TxRunner, newID xid.Generator) *ServiceUseCase {
	if newID == nil {
		newID = xid.New
	}
	return &ServiceUseCase{tx: tx, newID: newID}
}

// Create crea un servicio.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	var out *dto.ServiceResponse
	err := uc.tx.Run(ctx, "service.create", func(r repository.Repos) error {
		s, err := buildService(r, uc.newID(xid.PrefixService), in, true)
		if err != nil {
			return err
		}
		if err := r.Services.Create(s); err != nil {
			return err
		}
		out = toServiceResponse(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza los datos del servicio.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	var out *dto.ServiceResponse
	err := uc.tx.Run(ctx, "service.update", func(r repository.Repos) error {
		current, err := r.Services.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound("servicio", id)
		}
		s, err := buildService(r, id, in, current.Active)
		if err != nil {
			return err
		}
		if err := r.Services.Update(s); err != nil {
			return err
		}
		out = toServiceResponse(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un servicio por ID.
func (uc *ServiceUseCase) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	var out *dto.ServiceResponse
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		s, err := r.Services.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return notFound("servicio", id)
		}
		out = toServiceResponse(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista servicios cuyo "nombre descripción" contiene q.
func (uc *ServiceUseCase) List(ctx context.Context, q string) (*dto.ServiceListResponse, error) {
	out := &dto.ServiceListResponse{Items: []dto.ServiceResponse{}}
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		list, err := r.Services.List()
		if err != nil {
			return err
		}
		for _, s := range list {
			if matches(s.SearchText(), q) {
				out.Items = append(out.Items, *toServiceResponse(s))
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

// Delete elimina un servicio.
func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, "service.delete", func(r repository.Repos) error {
		if err := r.Services.Delete(id); err != nil {
			return fmt.Errorf("servicio %s: %w", id, err)
		}
		return nil
	})
}

func buildService(r repository.Repos, id string, in dto.ServiceRequest, active bool) (*entity.Service, error) {
	currency, err := resolveCurrency(r.Settings.Get(), in.Currency)
	if err != nil {
		return nil, err
	}
	s := &entity.Service{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Currency:    currency,
		Active:      boolOr(in.Active, active),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Currency:    s.Currency,
		Active:      s.Active,
	}
}
