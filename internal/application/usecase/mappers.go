package usecase

import (
	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/quote"
)

func toCatalogItemResponse(it entity.CatalogItem) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		BasePrice:    it.BasePrice,
		DiscountRate: it.DiscountRate,
		TaxRate:      it.TaxRate,
		NetPrice:     it.NetPrice(),
		UpdatedAt:    it.UpdatedAt,
	}
}

func toCatalogItemResponses(items []entity.CatalogItem) []dto.CatalogItemResponse {
	out := make([]dto.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toCatalogItemResponse(it))
	}
	return out
}

func toQuoteLines(items []entity.QuoteLineItem) []dto.QuoteLineResponse {
	out := make([]dto.QuoteLineResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.QuoteLineResponse{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			DiscountRate: it.DiscountRate,
			Amount:       it.Amount,
		})
	}
	return out
}

func toQuoteResponse(q entity.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		ID:           q.ID,
		CustomerName: q.CustomerName,
		Items:        toQuoteLines(q.Items),
		Subtotal:     q.Subtotal,
		Tax:          q.Tax,
		Total:        q.Total,
		CreatedAt:    q.CreatedAt,
	}
}

func toDraftResponse(d *quote.Draft) *dto.DraftResponse {
	t := d.Totals()
	return &dto.DraftResponse{
		ID:           d.ID,
		CustomerName: d.CustomerName,
		Items:        toQuoteLines(d.Items),
		Subtotal:     t.Subtotal,
		Tax:          t.Tax,
		Total:        t.Total,
		UpdatedAt:    d.UpdatedAt,
	}
}
