package entity

import "time"

// Tipos de movimiento. ADJ solo lo genera el cierre de un inventario.
const (
	MovementTypeIN  = "IN"
	MovementTypeOUT = "OUT"
	MovementTypeADJ = "ADJ"
)

// Movement es un evento inmutable del libro de existencias.
// Qty siempre es positiva; en ADJ es la magnitud absoluta de la corrección.
type Movement struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	WarehouseID string    `json:"warehouseId"`
	ProductID   string    `json:"productId"`
	Qty         int       `json:"qty"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"createdAt"`
}
