package entity

import (
	"strings"

	"github.com/jhoicas/mm-inventario/internal/domain"
)

// Warehouse representa un almacén; pertenece a una Store por referencia (StoreID).
// Lat/Lng se guardan como texto, tal como se capturan.
type Warehouse struct {
	ID      string `json:"id"`
	StoreID string `json:"storeId"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Lat     string `json:"lat"`
	Lng     string `json:"lng"`
	Active  bool   `json:"active"`
}

// Validate exige nombre y tienda.
func (w *Warehouse) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return domain.Required("name")
	}
	if strings.TrimSpace(w.StoreID) == "" {
		return domain.Required("storeId")
	}
	return nil
}
