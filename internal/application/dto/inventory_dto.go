package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Qty llega como número libre y se sanea con ClampInt.
type RegisterMovementRequest struct {
	Type        string  `json:"type"`
	WarehouseID string  `json:"warehouse_id"`
	ProductID   string  `json:"product_id"`
	Qty         float64 `json:"qty"`
	Note        string  `json:"note"`
}

// MovementResponse movimiento con nombres resueltos (Placeholder si el id ya no existe).
type MovementResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	WarehouseID   string    `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	ProductID     string    `json:"product_id"`
	ProductSKU    string    `json:"product_sku"`
	ProductName   string    `json:"product_name"`
	Qty           int       `json:"qty"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
}

// StockItemDTO existencia de un producto en un almacén.
type StockItemDTO struct {
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	ProductID     string `json:"product_id"`
	SKU           string `json:"sku"`
	ProductName   string `json:"product_name"`
	SaleUnit      string `json:"sale_unit"`
	Qty           int    `json:"qty"`
	Min           int    `json:"min"`
	Max           int    `json:"max"`
	Low           bool   `json:"low"`
}

// StockQuantityDTO cantidad de un par almacén+producto.
type StockQuantityDTO struct {
	WarehouseID string `json:"warehouse_id"`
	ProductID   string `json:"product_id"`
	Qty         int    `json:"qty"`
}

// CreateCountRequest body para abrir un inventario.
type CreateCountRequest struct {
	WarehouseID string `json:"warehouse_id"`
}

// UpdateCountRequest cantidad contada de una línea.
type UpdateCountRequest struct {
	Counted float64 `json:"counted"`
}

// CountLineDTO línea de un inventario.
type CountLineDTO struct {
	ProductID   string `json:"product_id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	SystemQty   int    `json:"system_qty"`
	CountedQty  int    `json:"counted_qty"`
	Diff        int    `json:"diff"`
}

// CountResponse inventario con sus líneas.
type CountResponse struct {
	ID            string         `json:"id"`
	WarehouseID   string         `json:"warehouse_id"`
	WarehouseName string         `json:"warehouse_name"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	ClosedAt      *time.Time     `json:"closed_at"`
	DiffLines     int            `json:"diff_lines"`
	Lines         []CountLineDTO `json:"lines"`
}

// CountSummaryDTO inventario sin líneas, para listados.
type CountSummaryDTO struct {
	ID            string     `json:"id"`
	WarehouseID   string     `json:"warehouse_id"`
	WarehouseName string     `json:"warehouse_name"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ClosedAt      *time.Time `json:"closed_at"`
	LineCount     int        `json:"line_count"`
	DiffLines     int        `json:"diff_lines"`
}

// ReplenishmentSuggestionDTO par almacén+producto bajo el mínimo con la cantidad a reponer.
type ReplenishmentSuggestionDTO struct {
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	ProductID     string `json:"product_id"`
	SKU           string `json:"sku"`
	ProductName   string `json:"product_name"`
	CurrentQty    int    `json:"current_qty"`
	Min           int    `json:"min"`
	Max           int    `json:"max"`
	Deficit       int    `json:"deficit"`       // min - actual
	SuggestedQty  int    `json:"suggested_qty"` // hasta max, o hasta min si no hay max
}
