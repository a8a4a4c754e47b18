package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	Stores          int `json:"stores"`
	Warehouses      int `json:"warehouses"`
	Products        int `json:"products"`
	Services        int `json:"services"`
	OpenInventories int `json:"open_inventories"`
	TotalUnits      int `json:"total_units"` // suma de todas las entradas de stock

	// Valor del stock convertido a la moneda base
	BaseCurrency   string          `json:"base_currency"`
	StockValue     decimal.Decimal `json:"stock_value"`
	StockValueText string          `json:"stock_value_text"` // ej: "S/ 4,321.50"

	LowStock []LowStockDTO `json:"low_stock"`
}

// LowStockDTO par almacén+producto con cantidad por debajo del mínimo.
type LowStockDTO struct {
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	ProductID     string `json:"product_id"`
	SKU           string `json:"sku"`
	ProductName   string `json:"product_name"`
	Qty           int    `json:"qty"`
	Min           int    `json:"min"`
}
