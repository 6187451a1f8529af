package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/usecase"
)

// ExportHandler descargas de planillas y PDF.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Products godoc
// @Summary      Exportar catálogo (.xlsx)
// @Tags         export
// @Security     BasicAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /export/products [get]
func (h *ExportHandler) Products(c *fiber.Ctx) error {
	f, err := h.uc.Products(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// Quotes godoc
// @Summary      Exportar lista de cotizaciones (.xlsx)
// @Tags         export
// @Security     BasicAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /export/quotes [get]
func (h *ExportHandler) Quotes(c *fiber.Ctx) error {
	f, err := h.uc.Quotes(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// Quote godoc
// @Summary      Exportar una cotización (.xlsx)
// @Tags         export
// @Security     BasicAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /export/quotes/{id} [get]
func (h *ExportHandler) Quote(c *fiber.Ctx) error {
	f, err := h.uc.Quote(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// QuotePDF godoc
// @Summary      Exportar una cotización (PDF)
// @Tags         export
// @Security     BasicAuth
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /export/quotes/{id}/pdf [get]
func (h *ExportHandler) QuotePDF(c *fiber.Ctx) error {
	f, err := h.uc.QuotePDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}
