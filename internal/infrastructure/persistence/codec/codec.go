// Package codec serializa el snapshot completo al layout JSON persistido (meta.version = 1)
// y aplica las migraciones ligeras al leer datos antiguos.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Precios y tasas como números JSON, igual que el layout original.
	decimal.MarshalJSONWithoutQuotes = true
}

// legacyUser admite la contraseña en claro de exportaciones antiguas.
type legacyUser struct {
	entity.User
	Password string `json:"password,omitempty"`
}

// legacyProduct admite el campo "unit" previo a saleUnit.
type legacyProduct struct {
	entity.Product
	Unit string `json:"unit,omitempty"`
}

type legacyState struct {
	entity.AppState
	Users    []legacyUser    `json:"users"`
	Products []legacyProduct `json:"products"`
}

// Encode serializa el snapshot.
func Encode(state *entity.AppState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	return data, nil
}

// Decode deserializa y migra. Un payload vacío devuelve (nil, nil).
func Decode(data []byte) (*entity.AppState, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw legacyState
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}

	state := raw.AppState
	state.Users = make([]entity.User, 0, len(raw.Users))
	for _, u := range raw.Users {
		if u.PasswordHash == "" && u.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("codec: migrar contraseña de %s: %w", u.Email, err)
			}
			u.PasswordHash = string(hash)
		}
		state.Users = append(state.Users, u.User)
	}

	state.Products = make([]entity.Product, 0, len(raw.Products))
	for _, p := range raw.Products {
		if p.SaleUnit == "" {
			p.SaleUnit = p.Unit
		}
		if p.SaleUnit == "" {
			p.SaleUnit = entity.DefaultSaleUnit
		}
		state.Products = append(state.Products, p.Product)
	}

	Normalize(&state)
	return &state, nil
}

// Normalize reemplaza colecciones nulas por vacías y fija la versión del layout.
func Normalize(s *entity.AppState) {
	if s.Meta.Version == 0 {
		s.Meta.Version = entity.SchemaVersion
	}
	if s.Users == nil {
		s.Users = []entity.User{}
	}
	if s.Settings.Currencies == nil {
		s.Settings.Currencies = []entity.Currency{}
	}
	if s.Stores == nil {
		s.Stores = []entity.Store{}
	}
	if s.Warehouses == nil {
		s.Warehouses = []entity.Warehouse{}
	}
	if s.Products == nil {
		s.Products = []entity.Product{}
	}
	if s.Stock == nil {
		s.Stock = entity.Stock{}
	}
	if s.Services == nil {
		s.Services = []entity.Service{}
	}
	if s.Movements == nil {
		s.Movements = []entity.Movement{}
	}
	if s.Inventories == nil {
		s.Inventories = []entity.Inventory{}
	}
	for i := range s.Inventories {
		if s.Inventories[i].Lines == nil {
			s.Inventories[i].Lines = []entity.InventoryLine{}
		}
	}
}
