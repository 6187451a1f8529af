package usecase

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// CatalogParser convierte un archivo subido en productos del catálogo.
// Los errores de lectura envuelven domain.ErrInvalidFile.
type CatalogParser interface {
	Parse(filename string, data []byte) ([]entity.CatalogItem, error)
}

// SpreadsheetWriter genera los libros de descarga.
type SpreadsheetWriter interface {
	Catalog(items []entity.CatalogItem) ([]byte, error)
	Quote(q entity.Quote) ([]byte, error)
	Quotes(quotes []entity.Quote) ([]byte, error)
	Template() ([]byte, error)
}

// QuotePDFGenerator genera la versión imprimible de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q *entity.Quote) ([]byte, error)
}
