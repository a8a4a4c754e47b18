package xid

import (
	"fmt"

	"github.com/google/uuid"
)

// Prefijos por tipo de entidad.
const (
	PrefixUser      = "user"
	PrefixStore     = "store"
	PrefixWarehouse = "wh"
	PrefixProduct   = "prd"
	PrefixService   = "srv"
	PrefixMovement  = "mov"
	PrefixInventory = "inv"
)

// New genera un id opaco "<prefix>_<uuidv7>". Los UUIDv7 se ordenan por tiempo de creación.
func New(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return fmt.Sprintf("%s_%s", prefix, id.String())
}

// Generator permite inyectar ids deterministas en tests.
type Generator func(prefix string) string
