package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.CatalogUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Description  Búsqueda por subcadena en nombre o categoría (sin distinguir mayúsculas) y filtro exacto por categoría.
// @Tags         products
// @Security     BasicAuth
// @Produce      json
// @Param        search    query  string  false  "Texto a buscar"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías del catálogo
// @Tags         products
// @Security     BasicAuth
// @Produce      json
// @Success      200  {array}  string
// @Router       /products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		out = []string{}
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     BasicAuth
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CatalogItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar producto
// @Description  Solo se modifican los campos enviados. discount_rate 0 elimina el descuento.
// @Tags         products
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del producto"
// @Param        body  body  dto.UpdateCatalogItemRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CatalogItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Copy godoc
// @Summary      Copiar producto
// @Description  Crea un producto nuevo con los mismos datos y el nombre con sufijo " - copia".
// @Tags         products
// @Security     BasicAuth
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      201  {object}  dto.CatalogItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id}/copy [post]
func (h *ProductHandler) Copy(c *fiber.Ctx) error {
	out, err := h.uc.Copy(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     BasicAuth
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
