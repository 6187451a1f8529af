package usecase_test

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

var fixedNow = time.Date(2026, 6, 15, 14, 30, 5, 0, time.UTC)

func clock() func() time.Time { return func() time.Time { return fixedNow } }

func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func catalogFixture() []entity.CatalogItem {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []entity.CatalogItem{
		{ID: "pen-a", Name: "Pen", Category: "Stationery", BasePrice: d("100"), DiscountRate: dp("10"), TaxRate: d("0.1"), UpdatedAt: t0},
		{ID: "nota", Name: "Nota", Category: "Papel", BasePrice: d("50"), TaxRate: d("0.1"), UpdatedAt: t0},
		{ID: "pen-b", Name: " pen ", Category: "STATIONERY", BasePrice: d("120"), TaxRate: d("0.1"), UpdatedAt: t0.Add(time.Hour)},
	}
}
