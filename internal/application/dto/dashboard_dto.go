package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /dashboard/summary.
type DashboardSummaryDTO struct {
	ProductCount  int        `json:"product_count"`
	QuoteCount    int        `json:"quote_count"`
	CategoryCount int        `json:"category_count"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"` // nil con catálogo vacío

	Prices      *PriceStatsDTO  `json:"prices,omitempty"`
	QuotesTotal decimal.Decimal `json:"quotes_total"` // suma de Total de todas las cotizaciones
}

// PriceStatsDTO estadística de precios base del catálogo.
type PriceStatsDTO struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}
