package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence/codec"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

// SQLiteRepository guarda el snapshot como un blob JSON en la tabla app_state.
type SQLiteRepository struct {
	db  *sql.DB
	key string
}

// NewSQLiteRepository abre (o crea) la base y asegura la tabla.
func NewSQLiteRepository(ctx context.Context, path, key string) (*SQLiteRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: ruta vacía")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: crear directorio: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir: %w", err)
	}
	// Un único escritor; evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		version    INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: crear tabla: %w", err)
	}
	return &SQLiteRepository{db: db, key: key}, nil
}

// Load lee el snapshot; (nil, nil) si no hay fila.
func (r *SQLiteRepository) Load(ctx context.Context) (*entity.AppState, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE key = ?`, r.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: select: %w", err)
	}
	return codec.Decode(payload)
}

// Save hace upsert de la fila dentro de una transacción.
func (r *SQLiteRepository) Save(ctx context.Context, state *entity.AppState) (retErr error) {
	data, err := codec.Encode(state)
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO app_state(key, payload, version, updated_at) VALUES(?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, version = excluded.version, updated_at = excluded.updated_at`,
		r.key, data, state.Meta.Version, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("sqlite: upsert: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

// Close cierra la base.
func (r *SQLiteRepository) Close() error { return r.db.Close() }
