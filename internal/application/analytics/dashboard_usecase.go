// Package analytics contiene el resumen del tablero principal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain/catalog"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de catálogo y cotizaciones.
type DashboardUseCase struct {
	catalogRepo repository.CatalogRepository
	quoteRepo   repository.QuoteRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(catalogRepo repository.CatalogRepository, quoteRepo repository.QuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{catalogRepo: catalogRepo, quoteRepo: quoteRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Las dos colecciones se leen en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type catalogResult struct {
		items []entity.CatalogItem
		err   error
	}
	type quotesResult struct {
		quotes []entity.Quote
		err    error
	}

	catalogCh := make(chan catalogResult, 1)
	quotesCh := make(chan quotesResult, 1)

	go func() {
		items, err := uc.catalogRepo.Load(ctx)
		catalogCh <- catalogResult{items, err}
	}()
	go func() {
		quotes, err := uc.quoteRepo.Load(ctx)
		quotesCh <- quotesResult{quotes, err}
	}()

	cat := <-catalogCh
	qs := <-quotesCh

	if cat.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", cat.err)
	}
	if qs.err != nil {
		return nil, fmt.Errorf("dashboard: cotizaciones: %w", qs.err)
	}

	out := &dto.DashboardSummaryDTO{
		ProductCount:  len(cat.items),
		QuoteCount:    len(qs.quotes),
		CategoryCount: len(catalog.Categories(cat.items)),
		LastUpdated:   latestUpdate(cat.items),
		QuotesTotal:   decimal.Zero,
	}
	for _, q := range qs.quotes {
		out.QuotesTotal = out.QuotesTotal.Add(q.Total)
	}

	prices, err := priceStats(cat.items)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estadística de precios: %w", err)
	}
	out.Prices = prices
	return out, nil
}

func latestUpdate(items []entity.CatalogItem) *time.Time {
	var latest *time.Time
	for i := range items {
		if latest == nil || items[i].UpdatedAt.After(*latest) {
			t := items[i].UpdatedAt
			latest = &t
		}
	}
	return latest
}

// priceStats nil con catálogo vacío.
func priceStats(items []entity.CatalogItem) (*dto.PriceStatsDTO, error) {
	if len(items) == 0 {
		return nil, nil
	}
	data := make(stats.Float64Data, 0, len(items))
	for _, it := range items {
		data = append(data, it.BasePrice.InexactFloat64())
	}

	var (
		out dto.PriceStatsDTO
		err error
	)
	if out.Min, err = data.Min(); err != nil {
		return nil, err
	}
	if out.Max, err = data.Max(); err != nil {
		return nil, err
	}
	if out.Mean, err = data.Mean(); err != nil {
		return nil, err
	}
	if out.Median, err = data.Median(); err != nil {
		return nil, err
	}
	return &out, nil
}
