package inventory

import (
	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
)

// Lookup resuelve ids a nombres dentro de una misma lectura del snapshot.
// Los ids que ya no existen se muestran como dto.Placeholder.
type Lookup struct {
	Warehouses []*entity.Warehouse
	Products   []*entity.Product
	warehouses map[string]*entity.Warehouse
	products   map[string]*entity.Product
	stores     map[string]*entity.Store
}

// NewLookup carga almacenes, productos y tiendas de la transacción.
func NewLookup(r repository.Repos) (*Lookup, error) {
	whs, err := r.Warehouses.List()
	if err != nil {
		return nil, err
	}
	prds, err := r.Products.List()
	if err != nil {
		return nil, err
	}
	sts, err := r.Stores.List()
	if err != nil {
		return nil, err
	}
	l := &Lookup{
		Warehouses: whs,
		Products:   prds,
		warehouses: make(map[string]*entity.Warehouse, len(whs)),
		products:   make(map[string]*entity.Product, len(prds)),
		stores:     make(map[string]*entity.Store, len(sts)),
	}
	for _, w := range whs {
		l.warehouses[w.ID] = w
	}
	for _, p := range prds {
		l.products[p.ID] = p
	}
	for _, s := range sts {
		l.stores[s.ID] = s
	}
	return l, nil
}

// Warehouse devuelve el almacén o nil.
func (l *Lookup) Warehouse(id string) *entity.Warehouse { return l.warehouses[id] }

// Product devuelve el producto o nil.
func (l *Lookup) Product(id string) *entity.Product { return l.products[id] }

// WarehouseName nombre del almacén o Placeholder.
func (l *Lookup) WarehouseName(id string) string {
	if w := l.warehouses[id]; w != nil {
		return w.Name
	}
	return dto.Placeholder
}

// StoreName nombre de la tienda del almacén o Placeholder.
func (l *Lookup) StoreName(warehouseID string) string {
	w := l.warehouses[warehouseID]
	if w == nil {
		return dto.Placeholder
	}
	if s := l.stores[w.StoreID]; s != nil {
		return s.Name
	}
	return dto.Placeholder
}

// ProductLabel devuelve SKU y nombre del producto, o Placeholder en ambos.
func (l *Lookup) ProductLabel(id string) (sku, name string) {
	if p := l.products[id]; p != nil {
		return p.SKU, p.Name
	}
	return dto.Placeholder, dto.Placeholder
}
