package snapshot

import (
	"strings"

	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
)

// Los repositorios devuelven copias y guardan copias: nada de lo que recibe el caller
// apunta al snapshot compartido.

func indexOf[T any](items []T, id string, key func(*T) string) int {
	for i := range items {
		if key(&items[i]) == id {
			return i
		}
	}
	return -1
}

// ─── Products ────────────────────────────────────────────────────────────────

type productRepo struct{ t *tx }

func productID(p *entity.Product) string { return p.ID }

func (r productRepo) Create(p *entity.Product) error {
	r.t.write(colProducts)
	r.t.next.Products = append(r.t.next.Products, *p)
	return nil
}

func (r productRepo) GetByID(id string) (*entity.Product, error) {
	i := indexOf(r.t.next.Products, id, productID)
	if i < 0 {
		return nil, nil
	}
	p := r.t.next.Products[i]
	return &p, nil
}

func (r productRepo) Update(p *entity.Product) error {
	i := indexOf(r.t.next.Products, p.ID, productID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colProducts)
	r.t.next.Products[i] = *p
	return nil
}

func (r productRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.t.next.Products))
	for i := range r.t.next.Products {
		p := r.t.next.Products[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r productRepo) Delete(id string) error {
	i := indexOf(r.t.next.Products, id, productID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colProducts)
	r.t.next.Products = append(r.t.next.Products[:i], r.t.next.Products[i+1:]...)
	return nil
}

// ─── Warehouses ──────────────────────────────────────────────────────────────

type warehouseRepo struct{ t *tx }

func warehouseID(w *entity.Warehouse) string { return w.ID }

func (r warehouseRepo) Create(w *entity.Warehouse) error {
	r.t.write(colWarehouses)
	r.t.next.Warehouses = append(r.t.next.Warehouses, *w)
	return nil
}

func (r warehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	i := indexOf(r.t.next.Warehouses, id, warehouseID)
	if i < 0 {
		return nil, nil
	}
	w := r.t.next.Warehouses[i]
	return &w, nil
}

func (r warehouseRepo) Update(w *entity.Warehouse) error {
	i := indexOf(r.t.next.Warehouses, w.ID, warehouseID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colWarehouses)
	r.t.next.Warehouses[i] = *w
	return nil
}

func (r warehouseRepo) List() ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.t.next.Warehouses))
	for i := range r.t.next.Warehouses {
		w := r.t.next.Warehouses[i]
		out = append(out, &w)
	}
	return out, nil
}

func (r warehouseRepo) ExistsByStore(storeID string) (bool, error) {
	for i := range r.t.next.Warehouses {
		if r.t.next.Warehouses[i].StoreID == storeID {
			return true, nil
		}
	}
	return false, nil
}

func (r warehouseRepo) Delete(id string) error {
	i := indexOf(r.t.next.Warehouses, id, warehouseID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colWarehouses)
	r.t.next.Warehouses = append(r.t.next.Warehouses[:i], r.t.next.Warehouses[i+1:]...)
	return nil
}

// ─── Stores ──────────────────────────────────────────────────────────────────

type storeRepo struct{ t *tx }

func storeID(s *entity.Store) string { return s.ID }

func (r storeRepo) Create(s *entity.Store) error {
	r.t.write(colStores)
	r.t.next.Stores = append(r.t.next.Stores, *s)
	return nil
}

func (r storeRepo) GetByID(id string) (*entity.Store, error) {
	i := indexOf(r.t.next.Stores, id, storeID)
	if i < 0 {
		return nil, nil
	}
	s := r.t.next.Stores[i]
	return &s, nil
}

func (r storeRepo) Update(s *entity.Store) error {
	i := indexOf(r.t.next.Stores, s.ID, storeID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colStores)
	r.t.next.Stores[i] = *s
	return nil
}

func (r storeRepo) List() ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.t.next.Stores))
	for i := range r.t.next.Stores {
		s := r.t.next.Stores[i]
		out = append(out, &s)
	}
	return out, nil
}

func (r storeRepo) Delete(id string) error {
	i := indexOf(r.t.next.Stores, id, storeID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colStores)
	r.t.next.Stores = append(r.t.next.Stores[:i], r.t.next.Stores[i+1:]...)
	return nil
}

// ─── Services ────────────────────────────────────────────────────────────────

type serviceRepo struct{ t *tx }

func serviceID(s *entity.Service) string { return s.ID }

func (r serviceRepo) Create(s *entity.Service) error {
	r.t.write(colServices)
	r.t.next.Services = append(r.t.next.Services, *s)
	return nil
}

func (r serviceRepo) GetByID(id string) (*entity.Service, error) {
	i := indexOf(r.t.next.Services, id, serviceID)
	if i < 0 {
		return nil, nil
	}
	s := r.t.next.Services[i]
	return &s, nil
}

func (r serviceRepo) Update(s *entity.Service) error {
	i := indexOf(r.t.next.Services, s.ID, serviceID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colServices)
	r.t.next.Services[i] = *s
	return nil
}

func (r serviceRepo) List() ([]*entity.Service, error) {
	out := make([]*entity.Service, 0, len(r.t.next.Services))
	for i := range r.t.next.Services {
		s := r.t.next.Services[i]
		out = append(out, &s)
	}
	return out, nil
}

func (r serviceRepo) Delete(id string) error {
	i := indexOf(r.t.next.Services, id, serviceID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colServices)
	r.t.next.Services = append(r.t.next.Services[:i], r.t.next.Services[i+1:]...)
	return nil
}

// ─── Stock ───────────────────────────────────────────────────────────────────

type stockRepo struct{ t *tx }

func (r stockRepo) Get(warehouseID, productID string) int {
	return r.t.next.Stock[entity.StockKey(warehouseID, productID)]
}

func (r stockRepo) Set(warehouseID, productID string, qty int) {
	r.t.write(colStock)
	r.t.next.Stock[entity.StockKey(warehouseID, productID)] = qty
}

func (r stockRepo) DeleteByProduct(productID string) int {
	return r.deleteWhere(func(k string) bool { return strings.HasSuffix(k, ":"+productID) })
}

func (r stockRepo) DeleteByWarehouse(warehouseID string) int {
	return r.deleteWhere(func(k string) bool { return strings.HasPrefix(k, warehouseID+":") })
}

func (r stockRepo) deleteWhere(match func(string) bool) int {
	n := 0
	for k := range r.t.next.Stock {
		if match(k) {
			n++
		}
	}
	if n == 0 {
		return 0
	}
	r.t.write(colStock)
	for k := range r.t.next.Stock {
		if match(k) {
			delete(r.t.next.Stock, k)
		}
	}
	return n
}

func (r stockRepo) List() entity.Stock {
	return r.t.next.Stock.Clone()
}

// ─── Movements ───────────────────────────────────────────────────────────────

type movementRepo struct{ t *tx }

func (r movementRepo) Prepend(m *entity.Movement) error {
	r.t.write(colMovements)
	next := make([]entity.Movement, 0, len(r.t.next.Movements)+1)
	next = append(next, *m)
	r.t.next.Movements = append(next, r.t.next.Movements...)
	return nil
}

func (r movementRepo) List(limit int) ([]*entity.Movement, error) {
	n := len(r.t.next.Movements)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*entity.Movement, 0, n)
	for i := 0; i < n; i++ {
		m := r.t.next.Movements[i]
		out = append(out, &m)
	}
	return out, nil
}

// ─── Inventories ─────────────────────────────────────────────────────────────

type inventoryRepo struct{ t *tx }

func inventoryID(i *entity.Inventory) string { return i.ID }

func (r inventoryRepo) Prepend(inv *entity.Inventory) error {
	r.t.write(colInventories)
	next := make([]entity.Inventory, 0, len(r.t.next.Inventories)+1)
	next = append(next, *inv.Clone())
	r.t.next.Inventories = append(next, r.t.next.Inventories...)
	return nil
}

func (r inventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	i := indexOf(r.t.next.Inventories, id, inventoryID)
	if i < 0 {
		return nil, nil
	}
	return r.t.next.Inventories[i].Clone(), nil
}

func (r inventoryRepo) Update(inv *entity.Inventory) error {
	i := indexOf(r.t.next.Inventories, inv.ID, inventoryID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.t.write(colInventories)
	r.t.next.Inventories[i] = *inv.Clone()
	return nil
}

func (r inventoryRepo) FindOpenByWarehouse(warehouseID string) (*entity.Inventory, error) {
	for i := range r.t.next.Inventories {
		inv := &r.t.next.Inventories[i]
		if inv.WarehouseID == warehouseID && inv.IsOpen() {
			return inv.Clone(), nil
		}
	}
	return nil, nil
}

func (r inventoryRepo) List(warehouseID string) ([]*entity.Inventory, error) {
	out := make([]*entity.Inventory, 0, len(r.t.next.Inventories))
	for i := range r.t.next.Inventories {
		inv := &r.t.next.Inventories[i]
		if warehouseID != "" && inv.WarehouseID != warehouseID {
			continue
		}
		out = append(out, inv.Clone())
	}
	return out, nil
}

// ─── Settings ────────────────────────────────────────────────────────────────

type settingsRepo struct{ t *tx }

func (r settingsRepo) Get() entity.Settings {
	return r.t.next.Settings.Clone()
}

func (r settingsRepo) Save(s entity.Settings) error {
	r.t.write(colSettings)
	r.t.next.Settings = s.Clone()
	return nil
}

// ─── Users / Session ─────────────────────────────────────────────────────────

type userRepo struct{ t *tx }

func userID(u *entity.User) string { return u.ID }

func (r userRepo) Create(u *entity.User) error {
	r.t.write(colUsers)
	r.t.next.Users = append(r.t.next.Users, *u)
	return nil
}

func (r userRepo) GetByID(id string) (*entity.User, error) {
	i := indexOf(r.t.next.Users, id, userID)
	if i < 0 {
		return nil, nil
	}
	u := r.t.next.Users[i]
	return &u, nil
}

func (r userRepo) GetByEmail(email string) (*entity.User, error) {
	want := entity.NormalizeEmail(email)
	for i := range r.t.next.Users {
		if entity.NormalizeEmail(r.t.next.Users[i].Email) == want {
			u := r.t.next.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.t.next.Users))
	for i := range r.t.next.Users {
		u := r.t.next.Users[i]
		out = append(out, &u)
	}
	return out, nil
}

type sessionRepo struct{ t *tx }

func (r sessionRepo) Current() *string {
	if r.t.next.Auth.SessionUserID == nil {
		return nil
	}
	id := *r.t.next.Auth.SessionUserID
	return &id
}

func (r sessionRepo) Set(userID *string) {
	r.t.write(colAuth)
	if userID == nil {
		r.t.next.Auth.SessionUserID = nil
		return
	}
	id := *userID
	r.t.next.Auth.SessionUserID = &id
}
