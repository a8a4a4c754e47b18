package entity

import (
	"strings"

	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/shopspring/decimal"
)

// Service es un servicio vendible sin stock (fotocopias, impresiones).
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Active      bool            `json:"active"`
}

// Validate exige nombre y precio no negativo.
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return domain.Required("name")
	}
	if s.Price.IsNegative() {
		return domain.ErrNegativePrice
	}
	return nil
}

// SearchText concatena los campos sobre los que se filtra.
func (s *Service) SearchText() string {
	return s.Name + " " + s.Description
}
