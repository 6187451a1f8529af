package entity

import "github.com/shopspring/decimal"

// QuoteLineItem representa una línea de la cotización.
// ProductName se copia del catálogo al momento de agregar la línea.
type QuoteLineItem struct {
	ProductID    string
	ProductName  string
	Quantity     int
	UnitPrice    decimal.Decimal // precio con descuento aplicado
	DiscountRate *decimal.Decimal
	Amount       decimal.Decimal // Quantity × UnitPrice
}
