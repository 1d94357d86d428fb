package repository

import "github.com/andrewcurate/metronic-dashboard/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	GetByID(id string) (*entity.Role, error)
	// FindDefault resuelve el rol a asignar en el signup:
	//  1. primer rol con is_default = true (no en papelera)
	//  2. fallback: rol con name "User" o slug "user"
	// Devuelve (nil, nil) si no existe ninguno (error de configuración).
	FindDefault() (*entity.Role, error)
	List() ([]*entity.Role, error)
}
