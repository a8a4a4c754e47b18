package repository

import (
	"context"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
)

// Repos agrupa los repositorios atados a una misma transacción sobre el snapshot.
type Repos struct {
	Products    ProductRepository
	Warehouses  WarehouseRepository
	Stores      StoreRepository
	Services    ServiceRepository
	Stock       StockRepository
	Movements   MovementRepository
	Inventories InventoryRepository
	Settings    SettingsRepository
	Users       UserRepository
	Session     SessionRepository
}

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a ella.
// Si fn devuelve error no se aplica ningún cambio. op identifica la operación en logs y métricas.
type TxRunner interface {
	Run(ctx context.Context, op string, fn func(r Repos) error) error
	View(ctx context.Context, fn func(r Repos) error) error
}

// SnapshotRepository es el puerto de persistencia del snapshot completo.
// Load devuelve (nil, nil) cuando no hay nada guardado.
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.AppState, error)
	Save(ctx context.Context, state *entity.AppState) error
}
