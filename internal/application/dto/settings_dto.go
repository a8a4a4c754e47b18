package dto

import "github.com/shopspring/decimal"

// CurrencyDTO una moneda configurada.
type CurrencyDTO struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Symbol     string          `json:"symbol"`
	RateToBase decimal.Decimal `json:"rate_to_base"`
}

// SettingsResponse configuración monetaria (guardada o borrador).
type SettingsResponse struct {
	BaseCurrency string        `json:"base_currency"`
	Currencies   []CurrencyDTO `json:"currencies"`
	Dirty        bool          `json:"dirty"`
}

// SettingsDraftPatch cambios sobre el borrador: moneda base, altas/ediciones y bajas.
type SettingsDraftPatch struct {
	BaseCurrency *string       `json:"base_currency"`
	Upsert       []CurrencyDTO `json:"upsert"`
	Remove       []string      `json:"remove"`
}
