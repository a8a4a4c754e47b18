package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence/codec"
)

// FileRepository guarda el snapshot en un archivo JSON.
// Save escribe a un temporal, hace fsync y renombra: o queda el nuevo contenido o el anterior.
type FileRepository struct {
	path string
}

// NewFileRepository crea el directorio del archivo si no existe.
func NewFileRepository(path string) (*FileRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("file: ruta vacía")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("file: crear directorio: %w", err)
	}
	return &FileRepository{path: path}, nil
}

// Load lee el snapshot; (nil, nil) si el archivo no existe.
func (r *FileRepository) Load(_ context.Context) (*entity.AppState, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file: leer %s: %w", r.path, err)
	}
	return codec.Decode(data)
}

// Save reemplaza el archivo de forma atómica.
func (r *FileRepository) Save(_ context.Context, state *entity.AppState) (retErr error) {
	data, err := codec.Encode(state)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file: crear temporal: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("file: escribir: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("file: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("file: renombrar: %w", err)
	}
	return nil
}

// Path devuelve la ruta configurada.
func (r *FileRepository) Path() string { return r.path }
