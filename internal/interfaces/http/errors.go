package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
)

// internalError responde 500. En producción el mensaje es genérico; el
// detalle del error solo se expone en entornos de desarrollo.
func internalError(c *fiber.Ctx, err error, production bool) error {
	msg := "error interno"
	if !production {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}
