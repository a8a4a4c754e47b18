package dto

// StoreRequest entrada para crear o reemplazar una tienda.
type StoreRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Lat          string `json:"lat"`
	Lng          string `json:"lng"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	Active       *bool  `json:"active"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	Lat            string `json:"lat"`
	Lng            string `json:"lng"`
	ContactName    string `json:"contact_name"`
	ContactPhone   string `json:"contact_phone"`
	ContactEmail   string `json:"contact_email"`
	Active         bool   `json:"active"`
	WarehouseCount int    `json:"warehouse_count"`
}

// StoreListResponse lista de tiendas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Total int             `json:"total"`
}
