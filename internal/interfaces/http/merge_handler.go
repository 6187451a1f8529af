package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/usecase"
)

// MergeHandler detección y fusión de productos duplicados.
type MergeHandler struct {
	uc *usecase.MergeUseCase
}

// NewMergeHandler construye el handler.
func NewMergeHandler(uc *usecase.MergeUseCase) *MergeHandler {
	return &MergeHandler{uc: uc}
}

// Duplicates godoc
// @Summary      Grupos de productos duplicados
// @Description  Agrupa por nombre y categoría normalizados; survivor_id indica el producto que se conservaría.
// @Tags         merge
// @Security     BasicAuth
// @Produce      json
// @Param        policy  query  string  false  "keep-first | keep-latest | keep-highest-price"
// @Success      200  {object}  dto.DuplicatesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /merge/duplicates [get]
func (h *MergeHandler) Duplicates(c *fiber.Ctx) error {
	out, err := h.uc.Duplicates(c.Context(), c.Query("policy"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Merge godoc
// @Summary      Fusionar duplicados
// @Tags         merge
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MergeRequest  true  "Política y claves de grupo seleccionadas"
// @Success      200   {object}  dto.MergeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /merge [post]
func (h *MergeHandler) Merge(c *fiber.Ctx) error {
	var in dto.MergeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Merge(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
