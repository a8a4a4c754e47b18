package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/xid"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia vía movimientos,
// salvo el 0 inicial por almacén y la purga al eliminar.
type ProductUseCase struct {
	tx    repository.TxRunner
	newID xid.Generator
}

// NewProductUseCase construye el caso de uso. newID nil usa xid.New.
func NewProductUseCase(tx repository.TxRunner, newID xid.Generator) *ProductUseCase {
	if newID == nil {
		newID = xid.New
	}
	return &ProductUseCase{tx: tx, newID: newID}
}

// Create crea un producto y siembra stock 0 en cada almacén existente.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, "product.create", func(r repository.Repos) error {
		p, err := buildProduct(r, uc.newID(xid.PrefixProduct), in, true)
		if err != nil {
			return err
		}
		if err := r.Products.Create(p); err != nil {
			return err
		}
		whs, err := r.Warehouses.List()
		if err != nil {
			return err
		}
		for _, w := range whs {
			r.Stock.Set(w.ID, p.ID, 0)
		}
		out = toProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza los datos editables del producto. No toca el stock.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, "product.update", func(r repository.Repos) error {
		current, err := r.Products.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound("producto", id)
		}
		p, err := buildProduct(r, id, in, current.Active)
		if err != nil {
			return err
		}
		if err := r.Products.Update(p); err != nil {
			return err
		}
		out = toProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		p, err := r.Products.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return notFound("producto", id)
		}
		out = toProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista productos cuyo "sku nombre categoría" contiene q.
func (uc *ProductUseCase) List(ctx context.Context, q string) (*dto.ProductListResponse, error) {
	out := &dto.ProductListResponse{Items: []dto.ProductResponse{}}
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		list, err := r.Products.List()
		if err != nil {
			return err
		}
		for _, p := range list {
			if matches(p.SearchText(), q) {
				out.Items = append(out.Items, *toProductResponse(p))
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

// Delete elimina el producto y purga sus entradas de stock en todos los almacenes.
// Los movimientos e inventarios históricos conservan el id huérfano.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, "product.delete", func(r repository.Repos) error {
		if err := r.Products.Delete(id); err != nil {
			return fmt.Errorf("producto %s: %w", id, err)
		}
		inventory.PurgeForProduct(r.Stock, id)
		return nil
	})
}

func buildProduct(r repository.Repos, id string, in dto.ProductRequest, active bool) (*entity.Product, error) {
	currency, err := resolveCurrency(r.Settings.Get(), in.Currency)
	if err != nil {
		return nil, err
	}
	unit := strings.TrimSpace(in.SaleUnit)
	if unit == "" {
		unit = entity.DefaultSaleUnit
	}
	p := &entity.Product{
		ID:       id,
		SKU:      strings.TrimSpace(in.SKU),
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		SaleUnit: unit,
		Min:      inventory.ClampInt(in.Min),
		Max:      inventory.ClampInt(in.Max),
		Price:    in.Price,
		Currency: currency,
		Image:    in.Image,
		Active:   boolOr(in.Active, active),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID,
		SKU:      p.SKU,
		Name:     p.Name,
		Category: p.Category,
		SaleUnit: p.SaleUnit,
		Min:      p.Min,
		Max:      p.Max,
		Price:    p.Price,
		Currency: p.Currency,
		Image:    p.Image,
		Active:   p.Active,
	}
}
