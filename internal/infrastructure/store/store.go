// Package store arma los repositorios según STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/cotizador-api/internal/domain/repository"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/memory"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/postgres"
	redisstore "github.com/jhoicas/cotizador-api/internal/infrastructure/redis"
	"github.com/jhoicas/cotizador-api/pkg/config"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// Stores repositorios listos para inyectar en los casos de uso.
// Los borradores de cotización viven siempre en memoria del proceso.
type Stores struct {
	Catalog repository.CatalogRepository
	Quotes  repository.QuoteRepository
	Drafts  repository.DraftRepository
	close   func()
}

// Close libera las conexiones del backend.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta el backend configurado.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
	s := &Stores{Drafts: memory.NewDraftRepository()}

	switch cfg.Store.Driver {
	case config.StoreMemory, "":
		s.Catalog = memory.NewCatalogRepository()
		s.Quotes = memory.NewQuoteRepository()

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		s.Catalog = postgres.NewCatalogRepository(pool)
		s.Quotes = postgres.NewQuoteRepository(pool)
		s.close = pool.Close

	case config.StoreRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		s.Catalog = redisstore.NewCatalogRepository(rdb, cfg.Redis.KeyPrefix)
		s.Quotes = redisstore.NewQuoteRepository(rdb, cfg.Redis.KeyPrefix)
		s.close = func() { _ = rdb.Close() }

	default:
		return nil, fmt.Errorf("store driver desconocido: %q", cfg.Store.Driver)
	}

	log.Info().Str("driver", cfg.Store.Driver).Msg("almacenamiento listo")
	return s, nil
}
