package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/usecase"
)

// ImportHandler carga de catálogos desde planillas.
type ImportHandler struct {
	uc       *usecase.ImportUseCase
	maxBytes int64
}

// NewImportHandler construye el handler. maxBytes <= 0 desactiva el límite propio
// (sigue aplicando el BodyLimit de fiber).
func NewImportHandler(uc *usecase.ImportUseCase, maxBytes int64) *ImportHandler {
	return &ImportHandler{uc: uc, maxBytes: maxBytes}
}

// Preview godoc
// @Summary      Vista previa de importación
// @Description  Lee el archivo (.xlsx o .csv) y devuelve los productos sin guardarlos.
// @Tags         import
// @Security     BasicAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilla con fila de encabezados"
// @Success      200   {object}  dto.ImportPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /import/preview [post]
func (h *ImportHandler) Preview(c *fiber.Ctx) error {
	name, data, err := h.readUpload(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Preview(c.Context(), name, data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar catálogo
// @Description  mode=replace (por defecto) sustituye el catálogo; mode=append agrega los productos.
// @Tags         import
// @Security     BasicAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "Planilla con fila de encabezados"
// @Param        mode  query     string  false  "replace | append"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	mode, err := usecase.ParseMode(c.Query("mode"))
	if err != nil {
		return writeError(c, err)
	}
	name, data, err := h.readUpload(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Import(c.Context(), name, data, mode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Template godoc
// @Summary      Descargar plantilla de importación
// @Tags         import
// @Security     BasicAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /import/template [get]
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	f, err := h.uc.Template(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// readUpload lee el campo "file" del formulario multipart.
func (h *ImportHandler) readUpload(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, &requestError{status: fiber.StatusBadRequest, code: "MISSING_FILE", msg: "el campo file es requerido"}
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return "", nil, &requestError{
			status: fiber.StatusRequestEntityTooLarge,
			code:   "FILE_TOO_LARGE",
			msg:    fmt.Sprintf("el archivo supera %d bytes", h.maxBytes),
		}
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, fmt.Errorf("leer archivo subido: %w", err)
	}
	return fh.Filename, data, nil
}
