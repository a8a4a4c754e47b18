package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SettingsUseCase edita la configuración monetaria sobre un borrador.
// Los cambios se acumulan en el borrador y solo Commit los escribe en el snapshot.
type SettingsUseCase struct {
	tx repository.TxRunner

	mu    sync.Mutex
	draft *entity.Settings // nil = sin borrador; se crea desde lo guardado al primer uso
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(tx repository.TxRunner) *SettingsUseCase {
	return &SettingsUseCase{tx: tx}
}

// Get devuelve la configuración guardada.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	committed, err := uc.committed(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(committed, false), nil
}

// Draft devuelve el borrador actual; Dirty indica si difiere de lo guardado.
func (uc *SettingsUseCase) Draft(ctx context.Context) (*dto.SettingsResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.draftResponse(ctx)
}

// StageBaseCurrency cambia la moneda base del borrador. La pertenencia se valida en Commit.
func (uc *SettingsUseCase) StageBaseCurrency(ctx context.Context, code string) (*dto.SettingsResponse, error) {
	return uc.Apply(ctx, dto.SettingsDraftPatch{BaseCurrency: &code})
}

// StageCurrency agrega o reemplaza (por código) una moneda del borrador.
func (uc *SettingsUseCase) StageCurrency(ctx context.Context, c dto.CurrencyDTO) (*dto.SettingsResponse, error) {
	return uc.Apply(ctx, dto.SettingsDraftPatch{Upsert: []dto.CurrencyDTO{c}})
}

// RemoveStagedCurrency quita una moneda del borrador.
func (uc *SettingsUseCase) RemoveStagedCurrency(ctx context.Context, code string) (*dto.SettingsResponse, error) {
	return uc.Apply(ctx, dto.SettingsDraftPatch{Remove: []string{code}})
}

// Apply aplica un patch al borrador: primero altas/ediciones, luego bajas y por último la base.
// Si algo falla el borrador queda como estaba.
func (uc *SettingsUseCase) Apply(ctx context.Context, patch dto.SettingsDraftPatch) (*dto.SettingsResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.ensureDraft(ctx); err != nil {
		return nil, err
	}
	next := uc.draft.Clone()

	for _, c := range patch.Upsert {
		cur := entity.Currency{
			Code:       normalizeCode(c.Code),
			Name:       strings.TrimSpace(c.Name),
			Symbol:     strings.TrimSpace(c.Symbol),
			RateToBase: c.RateToBase,
		}
		if cur.Code == "" {
			return nil, domain.Required("code")
		}
		if i := currencyIndex(next, cur.Code); i >= 0 {
			next.Currencies[i] = cur
		} else {
			next.Currencies = append(next.Currencies, cur)
		}
	}
	for _, code := range patch.Remove {
		i := currencyIndex(next, normalizeCode(code))
		if i < 0 {
			return nil, fmt.Errorf("%w: moneda %s", domain.ErrNotFound, code)
		}
		next.Currencies = append(next.Currencies[:i], next.Currencies[i+1:]...)
	}
	if patch.BaseCurrency != nil {
		base := normalizeCode(*patch.BaseCurrency)
		if base == "" {
			return nil, domain.Required("baseCurrency")
		}
		next.BaseCurrency = base
	}

	uc.draft = &next
	return uc.draftResponse(ctx)
}

// Commit valida el borrador y lo guarda de forma atómica. Una tasa vacía o cero se guarda como 1;
// la base debe ser uno de los códigos y ninguna tasa puede ser negativa.
func (uc *SettingsUseCase) Commit(ctx context.Context) (*dto.SettingsResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.ensureDraft(ctx); err != nil {
		return nil, err
	}
	next := uc.draft.Clone()
	one := decimal.NewFromInt(1)
	for i := range next.Currencies {
		c := &next.Currencies[i]
		if c.RateToBase.IsZero() {
			c.RateToBase = one
		}
		if c.RateToBase.IsNegative() {
			return nil, fmt.Errorf("%w: tasa negativa para %s", domain.ErrInvalidCurrency, c.Code)
		}
	}
	if _, ok := next.Currency(next.BaseCurrency); !ok {
		return nil, fmt.Errorf("%w: la moneda base %q no está en la lista", domain.ErrInvalidCurrency, next.BaseCurrency)
	}

	err := uc.tx.Run(ctx, "settings.commit", func(r repository.Repos) error {
		return r.Settings.Save(next)
	})
	if err != nil {
		return nil, err
	}
	uc.draft = nil
	return toSettingsResponse(next, false), nil
}

// Discard descarta el borrador; el próximo acceso parte de lo guardado.
func (uc *SettingsUseCase) Discard() {
	uc.mu.Lock()
	uc.draft = nil
	uc.mu.Unlock()
}

func (uc *SettingsUseCase) committed(ctx context.Context) (entity.Settings, error) {
	var s entity.Settings
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		s = r.Settings.Get().Clone()
		return nil
	})
	return s, err
}

// ensureDraft requiere uc.mu tomado.
func (uc *SettingsUseCase) ensureDraft(ctx context.Context) error {
	if uc.draft != nil {
		return nil
	}
	s, err := uc.committed(ctx)
	if err != nil {
		return err
	}
	uc.draft = &s
	return nil
}

// draftResponse requiere uc.mu tomado.
func (uc *SettingsUseCase) draftResponse(ctx context.Context) (*dto.SettingsResponse, error) {
	if err := uc.ensureDraft(ctx); err != nil {
		return nil, err
	}
	committed, err := uc.committed(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(*uc.draft, !sameSettings(*uc.draft, committed)), nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func currencyIndex(s entity.Settings, code string) int {
	for i, c := range s.Currencies {
		if c.Code == code {
			return i
		}
	}
	return -1
}

func sameSettings(a, b entity.Settings) bool {
	if a.BaseCurrency != b.BaseCurrency || len(a.Currencies) != len(b.Currencies) {
		return false
	}
	for i := range a.Currencies {
		x, y := a.Currencies[i], b.Currencies[i]
		if x.Code != y.Code || x.Name != y.Name || x.Symbol != y.Symbol || !x.RateToBase.Equal(y.RateToBase) {
			return false
		}
	}
	return true
}

func toSettingsResponse(s entity.Settings, dirty bool) *dto.SettingsResponse {
	out := &dto.SettingsResponse{
		BaseCurrency: s.BaseCurrency,
		Currencies:   make([]dto.CurrencyDTO, 0, len(s.Currencies)),
		Dirty:        dirty,
	}
	for _, c := range s.Currencies {
		out.Currencies = append(out.Currencies, dto.CurrencyDTO{
			Code:       c.Code,
			Name:       c.Name,
			Symbol:     c.Symbol,
			RateToBase: c.RateToBase,
		})
	}
	return out
}
