package money

import (
	"strings"
	"time"
	"unicode"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const fraction = 2

// priceFormatter formato en-US sin símbolo: 999,999.99
var priceFormatter = gomoney.NewFormatter(fraction, ".", ",", "", "1")

// minorUnits redondea a 2 decimales y lo expresa en centavos.
func minorUnits(d decimal.Decimal) int64 {
	return d.Round(fraction).Shift(fraction).IntPart()
}

// FormatPrice formatea como 999,999.99.
func FormatPrice(d decimal.Decimal) string {
	return priceFormatter.Format(minorUnits(d))
}

// Format antepone el símbolo de la moneda: "S/ 1,234.50". Sin símbolo equivale a FormatPrice.
func Format(d decimal.Decimal, symbol string) string {
	if symbol == "" {
		return FormatPrice(d)
	}
	f := gomoney.NewFormatter(fraction, ".", ",", symbol, "$ 1")
	return f.Format(minorUnits(d))
}

// ParsePrice interpreta "1,234.50" o " 1 234.5 " como 1234.5. Texto inválido devuelve 0.
func ParsePrice(text string) decimal.Decimal {
	raw := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, text)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatDateDMY formatea la fecha como dd/mm/aaaa.
func FormatDateDMY(t time.Time) string {
	return t.Format("02/01/2006")
}
