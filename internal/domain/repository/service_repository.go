package repository

import "github.com/jhoicas/mm-inventario/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service (DIP).
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	Update(service *entity.Service) error
	List() ([]*entity.Service, error)
	Delete(id string) error
}
