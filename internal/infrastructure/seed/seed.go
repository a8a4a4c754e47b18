// Package seed arma el dataset de demostración que se instala cuando no hay snapshot persistido.
package seed

import (
	"fmt"
	"time"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence/codec"
	"github.com/jhoicas/mm-inventario/internal/xid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Credenciales del administrador de demostración.
const (
	AdminEmail    = "admin@mm.com"
	AdminPassword = "Admin123!"
)

// Llenado inicial por almacén en porcentaje: floor(min + (max-min)*pct/100).
const (
	fillMain  = 50
	fillFront = 35
)

const demoLat, demoLng = "-12.0464", "-77.0428"

// Options permite fijar reloj, ids y costo bcrypt (tests).
type Options struct {
	Now        func() time.Time
	NewID      xid.Generator
	BcryptCost int
}

func (o *Options) defaults() {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = xid.New
	}
	if o.BcryptCost == 0 {
		o.BcryptCost = bcrypt.DefaultCost
	}
}

// Build devuelve el snapshot de demostración: un admin, tres monedas, una tienda,
// dos almacenes, cinco productos con stock y tres servicios.
func Build(opts Options) (*entity.AppState, error) {
	opts.defaults()
	now := opts.Now().UTC()

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("seed: hash admin: %w", err)
	}

	adminID := opts.NewID(xid.PrefixUser)
	storeID := opts.NewID(xid.PrefixStore)
	wh1 := opts.NewID(xid.PrefixWarehouse)
	wh2 := opts.NewID(xid.PrefixWarehouse)

	products := []entity.Product{
		product(opts.NewID, "HB-A4-500", "Hojas Bond A4 (500)", "Papel", "paquete", 10, 80, "18.5"),
		product(opts.NewID, "LAP-AZ-001", "Lapicero Azul", "Escritura", "unidad", 50, 500, "1.5"),
		product(opts.NewID, "CUA-A4-100", "Cuaderno A4 (100 hojas)", "Cuadernos", "unidad", 20, 200, "9.9"),
		product(opts.NewID, "COL-12-STD", "Colores (12) — Set Escolar", "Arte", "set", 8, 60, "14.0"),
		product(opts.NewID, "PLU-12-STD", "Plumones (12) — Set", "Arte", "set", 8, 60, "16.0"),
	}

	stock := entity.Stock{}
	for _, p := range products {
		stock[entity.StockKey(wh1, p.ID)] = fill(p, fillMain)
		stock[entity.StockKey(wh2, p.ID)] = fill(p, fillFront)
	}

	state := &entity.AppState{
		Meta: entity.Meta{CreatedAt: now, Version: entity.SchemaVersion},
		Users: []entity.User{{
			ID:           adminID,
			Name:         "Administrador",
			Email:        AdminEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
		}},
		Settings: entity.Settings{
			BaseCurrency: "PEN",
			Currencies: []entity.Currency{
				{Code: "PEN", Name: "Sol peruano", Symbol: "S/", RateToBase: decimal.NewFromInt(1)},
				{Code: "USD", Name: "Dólar", Symbol: "$", RateToBase: decimal.RequireFromString("3.75")},
				{Code: "EUR", Name: "Euro", Symbol: "€", RateToBase: decimal.RequireFromString("4.05")},
			},
		},
		Stores: []entity.Store{{
			ID:           storeID,
			Name:         "Tienda Principal",
			Address:      "Lima, Perú",
			Lat:          demoLat,
			Lng:          demoLng,
			ContactName:  "Administrador",
			ContactPhone: "+51 999 999 999",
			ContactEmail: AdminEmail,
			Active:       true,
		}},
		Warehouses: []entity.Warehouse{
			{ID: wh1, StoreID: storeID, Name: "Almacén Central", Address: "Backoffice", Lat: demoLat, Lng: demoLng, Active: true},
			{ID: wh2, StoreID: storeID, Name: "Almacén Tienda", Address: "Mostrador", Lat: demoLat, Lng: demoLng, Active: true},
		},
		Products: products,
		Stock:    stock,
		Services: []entity.Service{
			service(opts.NewID, "Fotocopiado", "0.20"),
			service(opts.NewID, "Impresión B/N", "0.50"),
			service(opts.NewID, "Impresión a color", "1.50"),
		},
	}
	codec.Normalize(state)
	return state, nil
}

// Default construye el dataset con reloj e ids reales; falla solo si bcrypt falla.
func Default() *entity.AppState {
	state, err := Build(Options{})
	if err != nil {
		panic(err)
	}
	return state
}

// fill calcula floor(min + (max-min)*pct/100) en enteros.
func fill(p entity.Product, pct int) int {
	return p.Min + (p.Max-p.Min)*pct/100
}

func product(newID xid.Generator, sku, name, category, unit string, minQty, maxQty int, price string) entity.Product {
	return entity.Product{
		ID:       newID(xid.PrefixProduct),
		SKU:      sku,
		Name:     name,
		Category: category,
		SaleUnit: unit,
		Min:      minQty,
		Max:      maxQty,
		Price:    decimal.RequireFromString(price),
		Currency: "PEN",
		Active:   true,
	}
}

func service(newID xid.Generator, name, price string) entity.Service {
	return entity.Service{
		ID:          newID(xid.PrefixService),
		Name:        name,
		Description: "Por hoja A4",
		Price:       decimal.RequireFromString(price),
		Currency:    "PEN",
		Active:      true,
	}
}
