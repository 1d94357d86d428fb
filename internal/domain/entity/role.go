package entity

import "time"

// Role rol de usuario. Un User referencia como máximo un Role.
type Role struct {
	ID        string
	Name      string // nombre legible, ej. "User"
	Slug      string // identificador máquina, ej. "user"
	IsDefault bool   // rol asignado en el signup si no se elige otro
	IsTrashed bool   // soft delete: los roles en papelera no se asignan
	CreatedAt time.Time
	UpdatedAt time.Time
}
