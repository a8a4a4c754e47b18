package inventory

import (
	"context"
	"time"
)

// CountSheetGenerator genera la hoja imprimible de un inventario (implementación en infraestructura).
type CountSheetGenerator interface {
	GenerateCountSheet(ctx context.Context, sheet CountSheet) ([]byte, error)
}

// CountSheet datos ya resueltos de un inventario para imprimir.
type CountSheet struct {
	InventoryID   string
	WarehouseName string
	StoreName     string
	Status        string
	CreatedAt     time.Time
	ClosedAt      *time.Time
	Lines         []CountSheetLine
}

// CountSheetLine una fila de la hoja: SKU, producto, sistema, contado y diferencia.
type CountSheetLine struct {
	SKU         string
	ProductName string
	SaleUnit    string
	SystemQty   int
	CountedQty  int
	Diff        int
}
