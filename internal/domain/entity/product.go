package entity

import (
	"strings"

	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultSaleUnit unidad de venta cuando el registro no trae una.
const DefaultSaleUnit = "unidad"

// Product representa un producto del catálogo.
// Min/Max son umbrales de reposición por almacén; Max == 0 significa "sin máximo".
type Product struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	SaleUnit string          `json:"saleUnit"`
	Min      int             `json:"min"`
	Max      int             `json:"max"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Image    string          `json:"image"`
	Active   bool            `json:"active"`
}

// Validate aplica las reglas de guardado del producto.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.SKU) == "" {
		return domain.Required("sku")
	}
	if strings.TrimSpace(p.Name) == "" {
		return domain.Required("name")
	}
	if p.Max > 0 && p.Min > p.Max {
		return domain.ErrMinExceedsMax
	}
	if p.Price.IsNegative() {
		return domain.ErrNegativePrice
	}
	return nil
}

// SearchText concatena los campos sobre los que se filtra el catálogo.
func (p *Product) SearchText() string {
	return p.SKU + " " + p.Name + " " + p.Category
}
