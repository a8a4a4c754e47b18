package entity

import "time"

// Estados de un inventario cíclico. CLOSED es terminal.
const (
	InventoryStatusOpen   = "OPEN"
	InventoryStatusClosed = "CLOSED"
)

// InventoryLine es la línea de conteo de un producto.
// SystemQty queda congelado al crear el inventario.
type InventoryLine struct {
	ProductID  string `json:"productId"`
	SystemQty  int    `json:"systemQty"`
	CountedQty int    `json:"countedQty"`
	Diff       int    `json:"diff"`
}

// Inventory es una sesión de conteo sobre un almacén.
type Inventory struct {
	ID          string          `json:"id"`
	WarehouseID string          `json:"warehouseId"`
	CreatedAt   time.Time       `json:"createdAt"`
	Status      string          `json:"status"`
	ClosedAt    *time.Time      `json:"closedAt"`
	Lines       []InventoryLine `json:"lines"`
}

// IsOpen indica si el inventario admite cambios.
func (i *Inventory) IsOpen() bool { return i.Status == InventoryStatusOpen }

// Line devuelve la línea del producto o nil.
func (i *Inventory) Line(productID string) *InventoryLine {
	for k := range i.Lines {
		if i.Lines[k].ProductID == productID {
			return &i.Lines[k]
		}
	}
	return nil
}

// Clone copia el inventario incluyendo sus líneas.
func (i *Inventory) Clone() *Inventory {
	c := *i
	c.Lines = append([]InventoryLine(nil), i.Lines...)
	if i.ClosedAt != nil {
		t := *i.ClosedAt
		c.ClosedAt = &t
	}
	return &c
}
