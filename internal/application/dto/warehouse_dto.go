package dto

// WarehouseRequest entrada para crear o reemplazar un almacén.
type WarehouseRequest struct {
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Lat     string `json:"lat"`
	Lng     string `json:"lng"`
	Active  *bool  `json:"active"`
}

// WarehouseResponse salida de un almacén. StoreName es Placeholder si la tienda no existe.
type WarehouseResponse struct {
	ID        string `json:"id"`
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Lat       string `json:"lat"`
	Lng       string `json:"lng"`
	Active    bool   `json:"active"`
}

// WarehouseListResponse lista de almacenes.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}
