package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// ExportUseCase descargas del catálogo y de las cotizaciones.
type ExportUseCase struct {
	catalog repository.CatalogRepository
	quotes  repository.QuoteRepository
	writer  SpreadsheetWriter
	pdf     QuotePDFGenerator
	now     func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	catalogRepo repository.CatalogRepository,
	quoteRepo repository.QuoteRepository,
	writer SpreadsheetWriter,
	pdf QuotePDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{catalog: catalogRepo, quotes: quoteRepo, writer: writer, pdf: pdf, now: time.Now}
}

// Products exporta el catálogo completo. domain.ErrEmptyCollection si está vacío.
func (uc *ExportUseCase) Products(ctx context.Context) (*dto.FileResponse, error) {
	items, err := uc.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCollection
	}
	data, err := uc.writer.Catalog(items)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("productos_%s.xlsx", uc.now().Format("20060102_150405"))
	return &dto.FileResponse{Name: name, ContentType: dto.ContentTypeXLSX, Data: data}, nil
}

// Quotes exporta el listado de cotizaciones. domain.ErrEmptyCollection si no hay ninguna.
func (uc *ExportUseCase) Quotes(ctx context.Context) (*dto.FileResponse, error) {
	quotes, err := uc.quotes.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, domain.ErrEmptyCollection
	}
	data, err := uc.writer.Quotes(quotes)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("cotizaciones_%s.xlsx", uc.now().Format("20060102_150405"))
	return &dto.FileResponse{Name: name, ContentType: dto.ContentTypeXLSX, Data: data}, nil
}

// Quote exporta una cotización a .xlsx.
func (uc *ExportUseCase) Quote(ctx context.Context, id string) (*dto.FileResponse, error) {
	q, err := findQuote(ctx, uc.quotes, id)
	if err != nil {
		return nil, err
	}
	data, err := uc.writer.Quote(*q)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("cotizacion_%s_%s.xlsx", FileSafe(q.CustomerName), q.CreatedAt.Format("20060102"))
	return &dto.FileResponse{Name: name, ContentType: dto.ContentTypeXLSX, Data: data}, nil
}

// QuotePDF exporta una cotización a PDF.
func (uc *ExportUseCase) QuotePDF(ctx context.Context, id string) (*dto.FileResponse, error) {
	q, err := findQuote(ctx, uc.quotes, id)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.GenerateQuotePDF(ctx, q)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("cotizacion_%s_%s.pdf", FileSafe(q.CustomerName), q.CreatedAt.Format("20060102"))
	return &dto.FileResponse{Name: name, ContentType: dto.ContentTypePDF, Data: data}, nil
}

// FileSafe reduce un texto libre a un fragmento de nombre de archivo: letras y dígitos
// (incluidos no ASCII), el resto se convierte en "_".
func FileSafe(s string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore {
			b.WriteByte('_')
			underscore = true
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "cliente"
	}
	return out
}
