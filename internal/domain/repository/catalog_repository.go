package repository

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia del catálogo.
// La colección se lee y se escribe completa (snapshot); Save reemplaza el contenido anterior
// y conserva el orden recibido.
type CatalogRepository interface {
	Load(ctx context.Context) ([]entity.CatalogItem, error)
	Save(ctx context.Context, items []entity.CatalogItem) error
}
