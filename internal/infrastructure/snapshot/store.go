package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/pkg/logger"
)

// ErrNotOpened se devuelve si se usa el Store antes de Open.
var ErrNotOpened = errors.New("snapshot: store no inicializado")

// Recorder recibe una observación por cada operación Run (métricas).
type Recorder interface {
	Observe(op string, ok bool, d time.Duration)
}

// Store mantiene el snapshot canónico de la aplicación y es la única vía de mutación.
// Run serializa a los escritores; cada transacción trabaja sobre colecciones copy-on-write
// y solo reemplaza el snapshot en memoria después de persistirlo.
type Store struct {
	mu       sync.RWMutex
	state    *entity.AppState
	persist  repository.SnapshotRepository
	log      *logger.Logger
	recorder Recorder
}

// Option configura el Store.
type Option func(*Store)

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l.Named("snapshot")
		}
	}
}

// WithRecorder inyecta el recolector de métricas.
func WithRecorder(r Recorder) Option {
	return func(s *Store) { s.recorder = r }
}

// New construye el Store sobre el repositorio de persistencia.
func New(persist repository.SnapshotRepository, opts ...Option) *Store {
	s := &Store{persist: persist, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open carga el snapshot persistido. Si no existe, instala el de seed y lo guarda.
func (s *Store) Open(ctx context.Context, seed func() *entity.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.persist.Load(ctx)
	if err != nil {
		return fmt.Errorf("snapshot: cargar: %w", err)
	}
	if state == nil {
		if seed == nil {
			return fmt.Errorf("snapshot: no hay estado persistido ni seed")
		}
		state = seed()
		if err := s.persist.Save(ctx, state); err != nil {
			return fmt.Errorf("snapshot: guardar seed: %w", err)
		}
		s.log.Info().Msg("snapshot inicial creado con datos de demostración")
	}
	s.state = state
	return nil
}

// Run ejecuta fn sobre una transacción. Si fn o la persistencia fallan, ni la memoria ni el
// almacenamiento cambian. op identifica la operación en logs y métricas.
func (s *Store) Run(ctx context.Context, op string, fn func(r repository.Repos) error) (err error) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.observe(op, err == nil, time.Since(start)) }()

	if s.state == nil {
		return ErrNotOpened
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := newTx(s.state)
	if err := fn(tx.repos()); err != nil {
		s.log.Debug().Str("op", op).Err(err).Msg("transacción descartada")
		return err
	}
	if !tx.dirty() {
		return nil
	}

	next := tx.commit()
	if err := s.persist.Save(ctx, next); err != nil {
		s.log.Warn().Str("op", op).Err(err).Msg("no se pudo persistir el snapshot")
		return fmt.Errorf("snapshot: persistir: %w", err)
	}
	s.state = next
	s.log.Debug().Str("op", op).Dur("took", time.Since(start)).Msg("operación confirmada")
	return nil
}

// View ejecuta fn en modo lectura; cualquier escritura hecha por fn se descarta.
func (s *Store) View(ctx context.Context, fn func(r repository.Repos) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return ErrNotOpened
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(newTx(s.state).repos())
}

// Snapshot devuelve una copia profunda del estado actual (exportación, tests).
func (s *Store) Snapshot() *entity.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil
	}
	return s.state.Clone()
}

func (s *Store) observe(op string, ok bool, d time.Duration) {
	if s.recorder != nil {
		s.recorder.Observe(op, ok, d)
	}
}

var _ repository.TxRunner = (*Store)(nil)
