package repository

import "github.com/jhoicas/mm-inventario/internal/domain/entity"

// SettingsRepository lee y reemplaza la configuración monetaria.
type SettingsRepository interface {
	Get() entity.Settings
	Save(settings entity.Settings) error
}
