package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/usecase"
)

// DataHandler operaciones sobre todos los datos guardados.
type DataHandler struct {
	uc *usecase.DataUseCase
}

// NewDataHandler construye el handler.
func NewDataHandler(uc *usecase.DataUseCase) *DataHandler {
	return &DataHandler{uc: uc}
}

// ClearAll godoc
// @Summary      Borrar catálogo y cotizaciones
// @Tags         data
// @Security     BasicAuth
// @Success      204
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /data [delete]
func (h *DataHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.uc.ClearAll(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/health [get]
func Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
