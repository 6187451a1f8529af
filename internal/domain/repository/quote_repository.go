package repository

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// QuoteRepository define el puerto de persistencia de cotizaciones (snapshot completo).
type QuoteRepository interface {
	Load(ctx context.Context) ([]entity.Quote, error)
	Save(ctx context.Context, quotes []entity.Quote) error
}
