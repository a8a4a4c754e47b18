package entity

import "time"

// SchemaVersion versión del layout persistido.
const SchemaVersion = 1

// Meta metadatos del snapshot.
type Meta struct {
	CreatedAt time.Time `json:"createdAt"`
	Version   int       `json:"version"`
}

// Auth sesión local: id del usuario logueado o nil.
type Auth struct {
	SessionUserID *string `json:"sessionUserId"`
}

// AppState es el snapshot completo de la aplicación; se persiste como un único documento.
// Movements e Inventories van de más reciente a más antiguo.
type AppState struct {
	Meta        Meta        `json:"meta"`
	Auth        Auth        `json:"auth"`
	Users       []User      `json:"users"`
	Settings    Settings    `json:"settings"`
	Stores      []Store     `json:"stores"`
	Warehouses  []Warehouse `json:"warehouses"`
	Products    []Product   `json:"products"`
	Stock       Stock       `json:"stock"`
	Services    []Service   `json:"services"`
	Movements   []Movement  `json:"movements"`
	Inventories []Inventory `json:"inventories"`
}

// Clone hace una copia profunda del snapshot.
func (s *AppState) Clone() *AppState {
	c := *s
	if s.Auth.SessionUserID != nil {
		id := *s.Auth.SessionUserID
		c.Auth.SessionUserID = &id
	}
	c.Users = append([]User(nil), s.Users...)
	c.Settings = s.Settings.Clone()
	c.Stores = append([]Store(nil), s.Stores...)
	c.Warehouses = append([]Warehouse(nil), s.Warehouses...)
	c.Products = append([]Product(nil), s.Products...)
	c.Stock = s.Stock.Clone()
	c.Services = append([]Service(nil), s.Services...)
	c.Movements = append([]Movement(nil), s.Movements...)
	c.Inventories = make([]Inventory, len(s.Inventories))
	for i := range s.Inventories {
		c.Inventories[i] = *s.Inventories[i].Clone()
	}
	return &c
}
