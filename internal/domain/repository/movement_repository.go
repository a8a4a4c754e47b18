package repository

import "github.com/jhoicas/mm-inventario/internal/domain/entity"

// MovementRepository historial de movimientos (solo inserción, más reciente primero).
type MovementRepository interface {
	Prepend(movement *entity.Movement) error
	// List devuelve hasta limit movimientos; limit <= 0 devuelve todos.
	List(limit int) ([]*entity.Movement, error)
}
