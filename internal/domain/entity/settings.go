package entity

import "github.com/shopspring/decimal"

// Currency: 1 unidad de esta moneda = RateToBase unidades de la moneda base.
type Currency struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Symbol     string          `json:"symbol"`
	RateToBase decimal.Decimal `json:"rateToBase"`
}

// Settings configuración monetaria. BaseCurrency debe ser uno de los códigos.
type Settings struct {
	BaseCurrency string     `json:"baseCurrency"`
	Currencies   []Currency `json:"currencies"`
}

// Currency busca una moneda por código.
func (s *Settings) Currency(code string) (Currency, bool) {
	for _, c := range s.Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// RateToBase devuelve la tasa del código o 1 si no existe.
func (s *Settings) RateToBase(code string) decimal.Decimal {
	if c, ok := s.Currency(code); ok && c.RateToBase.IsPositive() {
		return c.RateToBase
	}
	return decimal.NewFromInt(1)
}

// Clone copia las monedas.
func (s Settings) Clone() Settings {
	s.Currencies = append([]Currency(nil), s.Currencies...)
	return s
}
