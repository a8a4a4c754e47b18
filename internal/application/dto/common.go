package dto

// Placeholder nombre mostrado cuando un listado referencia un id que ya no existe.
const Placeholder = "—"

// DefaultMovementLimit cantidad de movimientos que se listan si no se indica limit.
const DefaultMovementLimit = 20

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
