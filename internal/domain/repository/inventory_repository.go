package repository

import "github.com/jhoicas/mm-inventario/internal/domain/entity"

// InventoryRepository define el puerto para los conteos cíclicos (más reciente primero).
type InventoryRepository interface {
	Prepend(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	// FindOpenByWarehouse devuelve el inventario OPEN del almacén o nil.
	FindOpenByWarehouse(warehouseID string) (*entity.Inventory, error)
	// List filtra por almacén cuando warehouseID no está vacío.
	List(warehouseID string) ([]*entity.Inventory, error)
}
