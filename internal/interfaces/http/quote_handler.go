package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/usecase"
)

// QuoteHandler cotizaciones guardadas y borradores en edición.
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// ── Cotizaciones ──────────────────────────────────────────────────────────────

// List godoc
// @Summary      Listar cotizaciones
// @Tags         quotes
// @Security     BasicAuth
// @Produce      json
// @Success      200  {object}  dto.QuoteListResponse
// @Router       /quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización
// @Tags         quotes
// @Security     BasicAuth
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cotización
// @Tags         quotes
// @Security     BasicAuth
// @Param        id   path  string  true  "ID de la cotización"
// @Success      204
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Borradores ────────────────────────────────────────────────────────────────

// CreateDraft godoc
// @Summary      Nuevo borrador de cotización
// @Tags         drafts
// @Security     BasicAuth
// @Produce      json
// @Success      201  {object}  dto.DraftResponse
// @Router       /quotes/drafts [post]
func (h *QuoteHandler) CreateDraft(c *fiber.Ctx) error {
	out, err := h.uc.CreateDraft(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDraft godoc
// @Summary      Obtener borrador
// @Tags         drafts
// @Security     BasicAuth
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /quotes/drafts/{id} [get]
func (h *QuoteHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.uc.GetDraft(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetCustomer godoc
// @Summary      Nombre del cliente del borrador
// @Tags         drafts
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del borrador"
// @Param        body  body  dto.SetCustomerRequest  true  "Cliente"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /quotes/drafts/{id}/customer [put]
func (h *QuoteHandler) SetCustomer(c *fiber.Ctx) error {
	var in dto.SetCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetCustomer(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al borrador
// @Description  Si el producto ya está en el borrador se incrementa la cantidad en 1.
// @Tags         drafts
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del borrador"
// @Param        body  body  dto.AddDraftItemRequest  true  "Producto"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /quotes/drafts/{id}/items [post]
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddDraftItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Cambiar cantidad de una línea
// @Description  Cantidad menor o igual a 0 elimina la línea.
// @Tags         drafts
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id         path  string                  true  "ID del borrador"
// @Param        productId  path  string                  true  "ID del producto"
// @Param        body       body  dto.SetQuantityRequest  true  "Cantidad"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /quotes/drafts/{id}/items/{productId} [put]
func (h *QuoteHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetQuantity(c.Context(), c.Params("id"), c.Params("productId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar línea del borrador
// @Tags         drafts
// @Security     BasicAuth
// @Produce      json
// @Param        id         path  string  true  "ID del borrador"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /quotes/drafts/{id}/items/{productId} [delete]
func (h *QuoteHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Crear cotización a partir del borrador
// @Description  Requiere cliente y al menos una línea. El borrador se descarta.
// @Tags         drafts
// @Security     BasicAuth
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      201  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /quotes/drafts/{id}/submit [post]
func (h *QuoteHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DiscardDraft godoc
// @Summary      Descartar borrador
// @Tags         drafts
// @Security     BasicAuth
// @Param        id   path  string  true  "ID del borrador"
// @Success      204
// @Router       /quotes/drafts/{id} [delete]
func (h *QuoteHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.uc.DiscardDraft(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
