package repository

import "github.com/jhoicas/mm-inventario/internal/domain/entity"

// StockRepository define el puerto sobre el libro de existencias.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve la cantidad del par almacén+producto; 0 si no hay entrada.
	Get(warehouseID, productID string) int
	Set(warehouseID, productID string, qty int)
	// DeleteByProduct elimina toda clave "*:productID" y devuelve cuántas borró.
	DeleteByProduct(productID string) int
	// DeleteByWarehouse elimina toda clave "warehouseID:*" y devuelve cuántas borró.
	DeleteByWarehouse(warehouseID string) int
	List() entity.Stock
}
