package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/andrewcurate/metronic-dashboard/internal/application/auth"
	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	"github.com/andrewcurate/metronic-dashboard/internal/domain"
)

// AuthHandler maneja signup y login.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	production bool
}

// NewAuthHandler construye el handler de auth. En producción los errores de
// configuración no exponen detalle al cliente.
func NewAuthHandler(uc *auth.AuthUseCase, production bool) *AuthHandler {
	return &AuthHandler{uc: uc, production: production}
}

// Signup godoc
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, email, password"
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	userID, err := h.uc.Signup(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "todos los campos son requeridos"})
		case errors.Is(err, domain.ErrNoDefaultRole):
			// Error de configuración del operador, no del usuario
			msg := "error interno"
			if !h.production {
				msg = "no hay rol por defecto: cree un rol con is_default=true (o name/slug 'User')"
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "NO_DEFAULT_ROLE", Message: msg})
		default:
			return internalError(c, err, h.production)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		Message: "cuenta creada correctamente",
		UserID:  userID,
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			// Mensaje genérico: no se distingue email desconocido de password incorrecto
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
		case errors.Is(err, domain.ErrAccountNotActive):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_ACTIVE", Message: "la cuenta no está activa"})
		default:
			return internalError(c, err, h.production)
		}
	}
	return c.JSON(out)
}
