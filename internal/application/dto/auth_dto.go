package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// SignupRequest entrada para registro: nombre, email y password en texto
// (se hashea en el caso de uso, nunca se persiste plano).
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate valida forma y tamaños. El mínimo de password se aplica en signup,
// no en login.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

// SignupResponse salida del registro.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate exige email sintácticamente válido y password no vacío.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// SessionUser campos de usuario expuestos en la sesión (espejo del claim del
// token; nunca incluye el hash de password).
type SessionUser struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	RoleID   *string `json:"roleId"`
	RoleName string  `json:"roleName,omitempty"`
	Status   string  `json:"status"`
	Avatar   *string `json:"avatar"`
}

// LoginResponse salida del login: token de sesión + usuario.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
