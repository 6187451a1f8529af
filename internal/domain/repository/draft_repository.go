package repository

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/quote"
)

// DraftRepository guarda los borradores de cotización en curso.
// Get devuelve (nil, nil) si el borrador no existe.
type DraftRepository interface {
	Get(ctx context.Context, id string) (*quote.Draft, error)
	Put(ctx context.Context, draft *quote.Draft) error
	Delete(ctx context.Context, id string) error
}
