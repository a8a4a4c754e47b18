package snapshot

import (
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
)

// Colecciones con copy-on-write.
const (
	colUsers = 1 << iota
	colSettings
	colStores
	colWarehouses
	colProducts
	colStock
	colServices
	colMovements
	colInventories
	colAuth
)

// tx trabaja sobre una copia superficial del snapshot base. Cada colección se copia
// la primera vez que se escribe; las no tocadas se comparten con el base.
type tx struct {
	base    *entity.AppState
	next    entity.AppState
	written int
}

func newTx(base *entity.AppState) *tx {
	return &tx{base: base, next: *base}
}

func (t *tx) dirty() bool { return t.written != 0 }

// write marca la colección y la copia si es la primera escritura.
func (t *tx) write(col int) {
	if t.written&col != 0 {
		return
	}
	t.written |= col
	switch col {
	case colUsers:
		t.next.Users = append([]entity.User(nil), t.base.Users...)
	case colSettings:
		t.next.Settings = t.base.Settings.Clone()
	case colStores:
		t.next.Stores = append([]entity.Store(nil), t.base.Stores...)
	case colWarehouses:
		t.next.Warehouses = append([]entity.Warehouse(nil), t.base.Warehouses...)
	case colProducts:
		t.next.Products = append([]entity.Product(nil), t.base.Products...)
	case colStock:
		t.next.Stock = t.base.Stock.Clone()
	case colServices:
		t.next.Services = append([]entity.Service(nil), t.base.Services...)
	case colMovements:
		// Prepend construye un slice nuevo; no hace falta copiar aquí.
	case colInventories:
		// Los elementos se reemplazan por clones, nunca se mutan en sitio.
		t.next.Inventories = append([]entity.Inventory(nil), t.base.Inventories...)
	case colAuth:
		if t.base.Auth.SessionUserID != nil {
			id := *t.base.Auth.SessionUserID
			t.next.Auth.SessionUserID = &id
		}
	}
}

func (t *tx) commit() *entity.AppState {
	next := t.next
	return &next
}

func (t *tx) repos() repository.Repos {
	return repository.Repos{
		Products:    productRepo{t},
		Warehouses:  warehouseRepo{t},
		Stores:      storeRepo{t},
		Services:    serviceRepo{t},
		Stock:       stockRepo{t},
		Movements:   movementRepo{t},
		Inventories: inventoryRepo{t},
		Settings:    settingsRepo{t},
		Users:       userRepo{t},
		Session:     sessionRepo{t},
	}
}
