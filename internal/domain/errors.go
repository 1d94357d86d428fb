package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrInvalidCredentials cubre tanto "email desconocido" como "password
// incorrecto": la respuesta no debe permitir enumerar cuentas.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountNotActive   = errors.New("la cuenta no está activa")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrNoDefaultRole      = errors.New("no existe un rol por defecto configurado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
)
