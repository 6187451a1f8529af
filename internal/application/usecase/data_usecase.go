package usecase

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/repository"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// DataUseCase mantenimiento de las colecciones persistidas.
type DataUseCase struct {
	catalog repository.CatalogRepository
	quotes  repository.QuoteRepository
	log     *logger.Logger
}

// NewDataUseCase construye el caso de uso.
func NewDataUseCase(catalogRepo repository.CatalogRepository, quoteRepo repository.QuoteRepository, log *logger.Logger) *DataUseCase {
	return &DataUseCase{catalog: catalogRepo, quotes: quoteRepo, log: log}
}

// ClearAll vacía catálogo y cotizaciones.
func (uc *DataUseCase) ClearAll(ctx context.Context) error {
	if err := uc.catalog.Save(ctx, nil); err != nil {
		return err
	}
	if err := uc.quotes.Save(ctx, nil); err != nil {
		return err
	}
	uc.log.Warn().Msg("datos eliminados")
	return nil
}
