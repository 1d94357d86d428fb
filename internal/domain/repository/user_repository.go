package repository

import "github.com/andrewcurate/metronic-dashboard/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByEmailWithRole resuelve también el rol (LEFT JOIN); lo usan login y
	// el endpoint de cuenta.
	GetByEmailWithRole(email string) (*entity.UserWithRole, error)
	GetByIDWithRole(id string) (*entity.UserWithRole, error)
	Update(user *entity.User) error
	Delete(id string) error
}
