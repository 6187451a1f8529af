package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "$0,00",
		"999":     "$999,00",
		"25000":   "$25.000,00",
		"1234.5":  "$1.234,50",
		"1000000": "$1.000.000,00",
		"-1500":   "-$1.500,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	ten := decimal.NewFromInt(10)
	q := &entity.Quote{
		ID:           "q-1",
		CustomerName: "Acme",
		Items: []entity.QuoteLineItem{
			{ProductID: "a", ProductName: "Pen", Quantity: 2, UnitPrice: decimal.NewFromInt(90), DiscountRate: &ten, Amount: decimal.NewFromInt(180)},
			{ProductID: "b", ProductName: "Cuaderno", Quantity: 1, UnitPrice: decimal.NewFromInt(300), Amount: decimal.NewFromInt(300)},
		},
		Subtotal:  decimal.NewFromInt(480),
		Tax:       decimal.NewFromInt(48),
		Total:     decimal.NewFromInt(528),
		CreatedAt: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
	}

	out, err := NewMarotoPDFGenerator("cotizador").GenerateQuotePDF(context.Background(), q)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
