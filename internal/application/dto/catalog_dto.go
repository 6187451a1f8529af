package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItemResponse salida de un producto del catálogo.
type CatalogItemResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	BasePrice    decimal.Decimal  `json:"base_price"`
	DiscountRate *decimal.Decimal `json:"discount_rate,omitempty"`
	TaxRate      decimal.Decimal  `json:"tax_rate"`
	NetPrice     decimal.Decimal  `json:"net_price"` // precio con descuento
	UpdatedAt    time.Time        `json:"updated_at"`
}

// CatalogListResponse listado filtrado; Shown de Total productos.
type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Shown int                   `json:"shown"`
	Total int                   `json:"total"`
}

// UpdateCatalogItemRequest edición en línea. Los campos nil no se modifican;
// discount_rate 0 elimina el descuento. Los números aceptan JSON numérico o string.
type UpdateCatalogItemRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	BasePrice    *decimal.Decimal `json:"base_price"`
	DiscountRate *decimal.Decimal `json:"discount_rate"`
	TaxRate      *decimal.Decimal `json:"tax_rate"`
}
