package dto

import "time"

// RoleResponse rol resuelto en respuestas.
type RoleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsDefault bool   `json:"isDefault"`
}

// AccountResponse registro completo del usuario autenticado, con rol resuelto.
// Sin hash de password: el registro persistido lo tiene, la API nunca lo expone.
type AccountResponse struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Status    string        `json:"status"`
	Avatar    *string       `json:"avatar"`
	RoleID    *string       `json:"roleId"`
	Role      *RoleResponse `json:"role"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
