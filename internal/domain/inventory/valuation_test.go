package inventory_test

import (
	"testing"

	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStockValue_ConvierteAMonedaBase(t *testing.T) {
	settings := &entity.Settings{
		BaseCurrency: "PEN",
		Currencies: []entity.Currency{
			{Code: "PEN", RateToBase: decimal.NewFromInt(1)},
			{Code: "USD", RateToBase: decimal.RequireFromString("3.75")},
		},
	}
	pen := &entity.Product{Price: decimal.RequireFromString("18.5"), Currency: "PEN"}
	usd := &entity.Product{Price: decimal.RequireFromString("2"), Currency: "USD"}
	unknown := &entity.Product{Price: decimal.RequireFromString("2"), Currency: "JPY"}

	assert.Equal(t, "832.5", inventory.StockValue(45, pen, settings).String())
	assert.Equal(t, "75", inventory.StockValue(10, usd, settings).String())
	assert.Equal(t, "20", inventory.StockValue(10, unknown, settings).String(), "moneda desconocida usa tasa 1")
	assert.True(t, inventory.StockValue(-3, pen, settings).IsZero())
}

func TestReorderSuggestion(t *testing.T) {
	withMax := &entity.Product{Min: 10, Max: 80}
	noMax := &entity.Product{Min: 10}

	assert.Equal(t, 75, inventory.ReorderSuggestion(5, withMax))
	assert.Equal(t, 0, inventory.ReorderSuggestion(90, withMax))
	assert.Equal(t, 4, inventory.ReorderSuggestion(6, noMax))
	assert.True(t, inventory.IsLowStock(9, withMax))
	assert.False(t, inventory.IsLowStock(10, withMax))
}
