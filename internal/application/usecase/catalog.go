package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"golang.org/x/text/cases"
)

// matches compara sin distinguir mayúsculas (case folding Unicode, "Ñ" == "ñ").
// Un query vacío coincide con todo.
func matches(text, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(text), fold.String(q))
}

// resolveCurrency devuelve code si está configurado; vacío usa la moneda base.
func resolveCurrency(settings entity.Settings, code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return settings.BaseCurrency, nil
	}
	if _, ok := settings.Currency(code); !ok {
		return "", fmt.Errorf("%w (%s)", domain.ErrInvalidCurrency, code)
	}
	return code, nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
