package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem representa un producto con precio dentro del catálogo administrado.
// DiscountRate es un porcentaje (0-100) y es nil cuando el producto no tiene descuento;
// TaxRate es una fracción (0.1 = 10%).
type CatalogItem struct {
	ID           string
	Name         string
	Category     string
	BasePrice    decimal.Decimal
	DiscountRate *decimal.Decimal
	TaxRate      decimal.Decimal
	UpdatedAt    time.Time
}

// Discount devuelve el porcentaje de descuento, cero si no está definido.
func (c CatalogItem) Discount() decimal.Decimal {
	if c.DiscountRate == nil {
		return decimal.Zero
	}
	return *c.DiscountRate
}

// NetPrice precio unitario después del descuento: BasePrice × (1 − DiscountRate/100).
func (c CatalogItem) NetPrice() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(c.Discount().Div(decimal.NewFromInt(100)))
	return c.BasePrice.Mul(factor)
}
