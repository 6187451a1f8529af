package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote representa una cotización emitida a un cliente.
// Subtotal, Tax y Total se calculan siempre a partir de Items; nunca se editan.
type Quote struct {
	ID           string
	CustomerName string
	Items        []QuoteLineItem
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	CreatedAt    time.Time
}
