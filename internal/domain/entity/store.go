package entity

import (
	"strings"

	"github.com/jhoicas/mm-inventario/internal/domain"
)

// Store representa una tienda física con sus datos de contacto.
type Store struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Lat          string `json:"lat"`
	Lng          string `json:"lng"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	Active       bool   `json:"active"`
}

// Validate exige nombre.
func (s *Store) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return domain.Required("name")
	}
	return nil
}
