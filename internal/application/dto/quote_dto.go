package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteLineResponse línea de cotización o borrador.
type QuoteLineResponse struct {
	ProductID    string           `json:"product_id"`
	ProductName  string           `json:"product_name"`
	Quantity     int              `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	DiscountRate *decimal.Decimal `json:"discount_rate,omitempty"`
	Amount       decimal.Decimal  `json:"amount"`
}

// QuoteResponse cotización emitida.
type QuoteResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customer_name"`
	Items        []QuoteLineResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	CreatedAt    time.Time           `json:"created_at"`
}

// QuoteListResponse listado de cotizaciones.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Total int             `json:"total"`
}

// DraftResponse borrador en construcción con totales al momento.
type DraftResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customer_name"`
	Items        []QuoteLineResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// SetCustomerRequest nombre del cliente del borrador.
type SetCustomerRequest struct {
	CustomerName string `json:"customer_name"`
}

// AddDraftItemRequest agrega un producto del catálogo (o suma 1 si ya está).
type AddDraftItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// SetQuantityRequest cantidad de una línea; 0 o menos la elimina.
// El campo es obligatorio: un cuerpo sin quantity no toca la línea.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
