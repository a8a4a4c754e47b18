package dto

import "github.com/shopspring/decimal"

// ServiceRequest entrada para crear o reemplazar un servicio.
type ServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Active      *bool           `json:"active"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Active      bool            `json:"active"`
}

// ServiceListResponse lista de servicios.
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
	Total int               `json:"total"`
}
