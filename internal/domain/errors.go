package domain

import (
	"errors"
	"fmt"
)

// Categorías de error de dominio (sin dependencias externas).
// Los adaptadores (HTTP, CLI) mapean por categoría con errors.Is.
var (
	ErrValidation        = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)

// Errores concretos; cada uno envuelve su categoría.
var (
	ErrRequiredField       = fmt.Errorf("%w: campo obligatorio vacío", ErrValidation)
	ErrMinExceedsMax       = fmt.Errorf("%w: el mínimo no puede ser mayor que el máximo", ErrValidation)
	ErrInvalidQuantity     = fmt.Errorf("%w: la cantidad debe ser mayor a 0", ErrValidation)
	ErrInvalidMovementType = fmt.Errorf("%w: tipo de movimiento no soportado", ErrValidation)
	ErrInvalidCurrency     = fmt.Errorf("%w: moneda inválida", ErrValidation)
	ErrNegativePrice       = fmt.Errorf("%w: el precio no puede ser negativo", ErrValidation)

	ErrAlreadyOpen            = fmt.Errorf("%w: ya existe un inventario abierto para este almacén", ErrConflict)
	ErrNotOpen                = fmt.Errorf("%w: el inventario no está abierto", ErrConflict)
	ErrHasDependentWarehouses = fmt.Errorf("%w: la tienda tiene almacenes asociados", ErrConflict)

	ErrEmailAlreadyExists = fmt.Errorf("%w: el email ya está registrado", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("%w: credenciales inválidas", ErrUnauthorized)
	ErrUserNotFound       = fmt.Errorf("%w: usuario no encontrado", ErrNotFound)
)

// Required devuelve ErrRequiredField con el nombre del campo.
func Required(field string) error {
	return fmt.Errorf("%w (%s)", ErrRequiredField, field)
}
