package repository

import "github.com/jhoicas/mm-inventario/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List() ([]*entity.Warehouse, error)
	// ExistsByStore indica si algún almacén referencia la tienda.
	ExistsByStore(storeID string) (bool, error)
	Delete(id string) error
}
