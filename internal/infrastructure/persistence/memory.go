package persistence

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence/codec"
)

// ErrInjected error de Save provocado con FailNextSave (tests de atomicidad).
var ErrInjected = errors.New("memory: fallo de guardado inyectado")

// MemoryRepository guarda el snapshot codificado en memoria. Pasa por el codec igual
// que los demás drivers, así que lo guardado no comparte punteros con el caller.
type MemoryRepository struct {
	mu       sync.Mutex
	data     []byte
	saves    int
	failNext bool
}

// NewMemoryRepository crea un repositorio vacío.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(_ context.Context) (*entity.AppState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return codec.Decode(r.data)
}

func (r *MemoryRepository) Save(_ context.Context, state *entity.AppState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return ErrInjected
	}
	data, err := codec.Encode(state)
	if err != nil {
		return err
	}
	r.data = data
	r.saves++
	return nil
}

// FailNextSave hace que el próximo Save falle.
func (r *MemoryRepository) FailNextSave() {
	r.mu.Lock()
	r.failNext = true
	r.mu.Unlock()
}

// Saves cuenta los Save exitosos.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
