package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence/codec"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

const ddl = `
CREATE TABLE IF NOT EXISTS app_state (
	key        TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	version    INTEGER NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS stock_projection (
	state_key    TEXT NOT NULL,
	warehouse_id TEXT NOT NULL,
	product_id   TEXT NOT NULL,
	sku          TEXT NOT NULL,
	quantity     INTEGER NOT NULL,
	unit_price   NUMERIC(14,2) NOT NULL,
	currency     TEXT NOT NULL,
	PRIMARY KEY (state_key, warehouse_id, product_id)
);`

// SnapshotRepository guarda el snapshot como JSONB en app_state. En la misma transacción
// reescribe stock_projection, una vista tabular del libro de existencias para consultas SQL.
type SnapshotRepository struct {
	pool *pgxpool.Pool
	key  string
}

// NewSnapshotRepository asegura las tablas.
func NewSnapshotRepository(ctx context.Context, pool *pgxpool.Pool, key string) (*SnapshotRepository, error) {
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("postgres: crear tablas: %w", err)
	}
	return &SnapshotRepository{pool: pool, key: key}, nil
}

// Load lee el snapshot; (nil, nil) si no hay fila.
func (r *SnapshotRepository) Load(ctx context.Context) (*entity.AppState, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM app_state WHERE key = $1`, r.key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: select app_state: %w", err)
	}
	return codec.Decode(payload)
}

// Save hace upsert del snapshot y reescribe la proyección; Commit o Rollback completos.
func (r *SnapshotRepository) Save(ctx context.Context, state *entity.AppState) error {
	data, err := codec.Encode(state)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO app_state (key, payload, version, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, version = EXCLUDED.version, updated_at = now()`,
		r.key, data, state.Meta.Version,
	); err != nil {
		return fmt.Errorf("postgres: upsert app_state: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM stock_projection WHERE state_key = $1`, r.key); err != nil {
		return fmt.Errorf("postgres: limpiar proyección: %w", err)
	}
	rows := projectionRows(r.key, state)
	if len(rows) > 0 {
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"stock_projection"},
			[]string{"state_key", "warehouse_id", "product_id", "sku", "quantity", "unit_price", "currency"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("postgres: copiar proyección: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close libera el pool.
func (r *SnapshotRepository) Close() error {
	r.pool.Close()
	return nil
}

// projectionRows arma una fila por clave de stock cuyo producto existe, en orden estable.
func projectionRows(key string, state *entity.AppState) [][]any {
	products := make(map[string]*entity.Product, len(state.Products))
	for i := range state.Products {
		products[state.Products[i].ID] = &state.Products[i]
	}
	keys := make([]string, 0, len(state.Stock))
	for k := range state.Stock {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]any, 0, len(keys))
	for _, k := range keys {
		whID, prdID, ok := entity.SplitStockKey(k)
		if !ok {
			continue
		}
		p, ok := products[prdID]
		if !ok {
			continue
		}
		rows = append(rows, []any{key, whID, prdID, p.SKU, state.Stock[k], p.Price, p.Currency})
	}
	return rows
}
