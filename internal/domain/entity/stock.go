package entity

import "strings"

// Stock es el libro de existencias: clave "<warehouseId>:<productId>" → cantidad entera.
// Una clave ausente se lee como 0.
type Stock map[string]int

// StockKey construye la clave compuesta almacén+producto.
func StockKey(warehouseID, productID string) string {
	return warehouseID + ":" + productID
}

// SplitStockKey separa una clave en almacén y producto.
func SplitStockKey(key string) (warehouseID, productID string, ok bool) {
	i := strings.IndexByte(key, ':')
	if i < 0 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}

// Clone copia el mapa completo.
func (s Stock) Clone() Stock {
	out := make(Stock, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
