package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	"github.com/andrewcurate/metronic-dashboard/internal/application/usecase"
	"github.com/andrewcurate/metronic-dashboard/internal/domain"
)

// AccountHandler devuelve el registro del usuario de la sesión.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Get godoc
// @Summary      Cuenta del usuario autenticado
// @Tags         user-management
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AccountResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user-management/account [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión sin email"})
	}
	out, err := h.uc.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// El registro desapareció entre la emisión del token y esta petición
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el registro ya no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
