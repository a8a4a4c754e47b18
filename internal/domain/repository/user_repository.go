package repository

import "github.com/jhoicas/mm-inventario/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail compara sin distinguir mayúsculas.
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}

// SessionRepository guarda el usuario con sesión activa (auth.sessionUserId).
type SessionRepository interface {
	Current() *string
	Set(userID *string)
}
