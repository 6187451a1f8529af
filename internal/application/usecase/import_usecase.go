package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// Modos de importación.
const (
	ImportReplace = "replace"
	ImportAppend  = "append"
)

// TemplateFileName nombre de la plantilla descargable.
const TemplateFileName = "plantilla_productos.xlsx"

// ImportUseCase importación del catálogo desde archivos de hoja de cálculo.
type ImportUseCase struct {
	parser CatalogParser
	writer SpreadsheetWriter
	repo   repository.CatalogRepository
	log    *logger.Logger
	newID  func() string
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(parser CatalogParser, writer SpreadsheetWriter, repo repository.CatalogRepository, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{parser: parser, writer: writer, repo: repo, log: log, newID: uuid.NewString}
}

// Preview lee el archivo sin guardar nada.
func (uc *ImportUseCase) Preview(_ context.Context, filename string, data []byte) (*dto.ImportPreviewResponse, error) {
	items, err := uc.parser.Parse(filename, data)
	if err != nil {
		return nil, err
	}
	return &dto.ImportPreviewResponse{
		FileName: filename,
		Count:    len(items),
		Items:    toCatalogItemResponses(items),
	}, nil
}

// ParseMode valida el modo de importación; vacío equivale a replace.
func ParseMode(s string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case "", ImportReplace:
		return ImportReplace, nil
	case ImportAppend:
		return ImportAppend, nil
	default:
		return "", fmt.Errorf("%w: modo de importación desconocido %q", domain.ErrInvalidInput, s)
	}
}

// Import lee el archivo y lo guarda. replace sustituye el catálogo; append agrega al final
// asignando ID nuevo a los productos cuyo ID ya existe.
func (uc *ImportUseCase) Import(ctx context.Context, filename string, data []byte, mode string) (*dto.ImportResponse, error) {
	mode, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	imported, err := uc.parser.Parse(filename, data)
	if err != nil {
		uc.log.Warn().Err(err).Str("file", filename).Msg("importación rechazada")
		return nil, err
	}

	catalogItems := imported
	if mode == ImportAppend {
		current, err := uc.repo.Load(ctx)
		if err != nil {
			return nil, err
		}
		catalogItems = appendRekeyed(current, imported, uc.newID)
	}
	if err := uc.repo.Save(ctx, catalogItems); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("file", filename).
		Str("mode", mode).
		Int("imported", len(imported)).
		Int("total", len(catalogItems)).
		Msg("catálogo importado")

	return &dto.ImportResponse{Mode: mode, Imported: len(imported), Total: len(catalogItems)}, nil
}

func appendRekeyed(current, imported []entity.CatalogItem, newID func() string) []entity.CatalogItem {
	taken := make(map[string]struct{}, len(current)+len(imported))
	for _, it := range current {
		taken[it.ID] = struct{}{}
	}
	out := make([]entity.CatalogItem, 0, len(current)+len(imported))
	out = append(out, current...)
	for _, it := range imported {
		if _, dup := taken[it.ID]; dup {
			it.ID = newID()
		}
		taken[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Template plantilla de importación con filas de ejemplo.
func (uc *ImportUseCase) Template(_ context.Context) (*dto.FileResponse, error) {
	data, err := uc.writer.Template()
	if err != nil {
		return nil, err
	}
	return &dto.FileResponse{Name: TemplateFileName, ContentType: dto.ContentTypeXLSX, Data: data}, nil
}
