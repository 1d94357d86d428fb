package entity

import "time"

// Estados de cuenta válidos para User.
const (
	StatusActive    = "ACTIVE"
	StatusInactive  = "INACTIVE"
	StatusPending   = "PENDING"
	StatusSuspended = "SUSPENDED"
)

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Email        string // único, siempre normalizado (trim + lowercase)
	Name         string
	PasswordHash *string // bcrypt; nil = la cuenta no puede autenticarse por password
	Status       string  // ACTIVE, INACTIVE, PENDING, SUSPENDED
	Avatar       *string
	RoleID       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithRole usuario con su rol resuelto (puede ser nil si no tiene).
type UserWithRole struct {
	User
	Role *Role
}

// RoleName devuelve el nombre del rol resuelto o cadena vacía.
func (u *UserWithRole) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}
