package inventory

import (
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ToBase convierte un monto a la moneda base: monto * rateToBase.
func ToBase(amount, rateToBase decimal.Decimal) decimal.Decimal {
	return amount.Mul(rateToBase)
}

// StockValue valoriza qty unidades de un producto en moneda base (servicio de dominio).
// ValorBase = qty * precio * rateToBase(moneda del producto)
func StockValue(qty int, p *entity.Product, settings *entity.Settings) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	return ToBase(p.Price.Mul(decimal.NewFromInt(int64(qty))), settings.RateToBase(p.Currency))
}

// ReorderSuggestion cantidad sugerida para reponer: hasta el máximo si existe, si no hasta el mínimo.
func ReorderSuggestion(qty int, p *entity.Product) int {
	target := p.Min
	if p.Max > 0 {
		target = p.Max
	}
	if s := target - qty; s > 0 {
		return s
	}
	return 0
}

// IsLowStock indica si la cantidad está por debajo del mínimo del producto.
func IsLowStock(qty int, p *entity.Product) bool {
	return qty < p.Min
}
