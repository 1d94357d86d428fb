package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	pkgjwt "github.com/andrewcurate/metronic-dashboard/pkg/jwt"
)

// LocalIdentity key de la Identity decodificada en Fiber locals.
const LocalIdentity = "identity"

// AuthMiddleware valida el Bearer Token de sesión en cada petición y expone
// la Identity decodificada vía c.Locals. El token se verifica por petición;
// no hay estado de sesión en el servidor.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		identity, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, pkgjwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "sesión expirada"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// GetIdentity devuelve la Identity del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *pkgjwt.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*pkgjwt.Identity)
	return id
}

// GetUserID devuelve el ID de usuario de la sesión, o cadena vacía.
func GetUserID(c *fiber.Ctx) string {
	if id := GetIdentity(c); id != nil {
		return id.UserID
	}
	return ""
}

// GetEmail devuelve el email de la sesión, o cadena vacía.
func GetEmail(c *fiber.Ctx) string {
	if id := GetIdentity(c); id != nil {
		return id.Email
	}
	return ""
}
