package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o reemplazar un producto.
// Min y Max llegan como número libre y se sanean con ClampInt.
type ProductRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	SaleUnit string          `json:"sale_unit"`
	Min      float64         `json:"min"`
	Max      float64         `json:"max"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Image    string          `json:"image"`
	Active   *bool           `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	SaleUnit string          `json:"sale_unit"`
	Min      int             `json:"min"`
	Max      int             `json:"max"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Image    string          `json:"image"`
	Active   bool            `json:"active"`
}

// ProductListResponse lista de productos (filtrada por q si se indicó).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
