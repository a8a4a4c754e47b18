package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/application/usecase"
	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_BorradorNoTocaLoGuardado(t *testing.T) {
	store, mem := seededStore(t)
	uc := usecase.NewSettingsUseCase(store)
	ctx := context.Background()
	saves := mem.Saves()

	draft, err := uc.Draft(ctx)
	require.NoError(t, err)
	assert.False(t, draft.Dirty)
	assert.Len(t, draft.Currencies, 3)

	draft, err = uc.StageCurrency(ctx, dto.CurrencyDTO{Code: "clp", Name: "Peso chileno", Symbol: "$", RateToBase: decimal.RequireFromString("0.004")})
	require.NoError(t, err)
	assert.True(t, draft.Dirty)
	assert.Len(t, draft.Currencies, 4)
	assert.Equal(t, "CLP", draft.Currencies[3].Code)

	saved, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, saved.Currencies, 3)
	assert.Equal(t, saves, mem.Saves())

	uc.Discard()
	draft, err = uc.Draft(ctx)
	require.NoError(t, err)
	assert.False(t, draft.Dirty)
	assert.Len(t, draft.Currencies, 3)
}

func TestSettings_CommitNormalizaTasas(t *testing.T) {
	store, _ := seededStore(t)
	uc := usecase.NewSettingsUseCase(store)
	ctx := context.Background()

	_, err := uc.StageCurrency(ctx, dto.CurrencyDTO{Code: "GBP", Name: "Libra", Symbol: "£"})
	require.NoError(t, err)
	_, err = uc.StageBaseCurrency(ctx, "usd")
	require.NoError(t, err)

	saved, err := uc.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", saved.BaseCurrency)
	assert.False(t, saved.Dirty)

	state := store.Snapshot().Settings
	assert.Equal(t, "USD", state.BaseCurrency)
	gbp, ok := state.Currency("GBP")
	require.True(t, ok)
	assert.True(t, gbp.RateToBase.Equal(decimal.NewFromInt(1)), "tasa vacía se guarda como 1")
}

func TestSettings_CommitInvalido(t *testing.T) {
	cases := []struct {
		name  string
		patch dto.SettingsDraftPatch
	}{
		{"base fuera de la lista", dto.SettingsDraftPatch{BaseCurrency: ptr("JPY")}},
		{"base eliminada", dto.SettingsDraftPatch{Remove: []string{"PEN"}}},
		{"tasa negativa", dto.SettingsDraftPatch{Upsert: []dto.CurrencyDTO{{Code: "USD", RateToBase: decimal.NewFromInt(-2)}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, mem := seededStore(t)
			uc := usecase.NewSettingsUseCase(store)
			ctx := context.Background()
			before := store.Snapshot().Settings
			saves := mem.Saves()

			_, err := uc.Apply(ctx, tc.patch)
			require.NoError(t, err)
			_, err = uc.Commit(ctx)
			require.ErrorIs(t, err, domain.ErrInvalidCurrency)

			assert.Equal(t, before, store.Snapshot().Settings)
			assert.Equal(t, saves, mem.Saves())
			draft, err := uc.Draft(ctx)
			require.NoError(t, err)
			assert.True(t, draft.Dirty, "el borrador se conserva para corregirlo")
		})
	}
}

func TestSettings_ApplyErrores(t *testing.T) {
	store, _ := seededStore(t)
	uc := usecase.NewSettingsUseCase(store)
	ctx := context.Background()

	_, err := uc.RemoveStagedCurrency(ctx, "JPY")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.StageCurrency(ctx, dto.CurrencyDTO{Name: "sin código"})
	assert.ErrorIs(t, err, domain.ErrRequiredField)
	_, err = uc.StageBaseCurrency(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrRequiredField)

	draft, err := uc.Draft(ctx)
	require.NoError(t, err)
	assert.False(t, draft.Dirty, "un patch fallido no deja cambios a medias")
}
