package postgres_test

import (
	"testing"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/postgres"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionRows_OmiteClavesHuerfanas(t *testing.T) {
	state := &entity.AppState{
		Products: []entity.Product{
			{ID: "prd_a", SKU: "A", Price: decimal.RequireFromString("18.5"), Currency: "PEN"},
			{ID: "prd_b", SKU: "B", Price: decimal.RequireFromString("1.5"), Currency: "USD"},
		},
		Stock: entity.Stock{
			"wh_2:prd_a":    4,
			"wh_1:prd_b":    7,
			"wh_1:prd_old":  9,
			"sin-separador": 1,
		},
	}

	rows := postgres.ProjectionRows("k", state)
	require.Len(t, rows, 2)

	assert.Equal(t, []any{"k", "wh_1", "prd_b", "B", 7, decimal.RequireFromString("1.5"), "USD"}, rows[0])
	assert.Equal(t, "wh_2", rows[1][1])
	assert.Equal(t, 4, rows[1][4])
}
