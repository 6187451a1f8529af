// Package memory implementa los repositorios en memoria del proceso.
// Es el backend por defecto y el doble de pruebas de los casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/quote"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var (
	_ repository.CatalogRepository = (*CatalogRepo)(nil)
	_ repository.QuoteRepository   = (*QuoteRepo)(nil)
	_ repository.DraftRepository   = (*DraftRepo)(nil)
)

// CatalogRepo snapshot del catálogo protegido por mutex. Load y Save copian el slice.
type CatalogRepo struct {
	mu    sync.RWMutex
	items []entity.CatalogItem
}

// NewCatalogRepository construye el repositorio, opcionalmente con datos iniciales.
func NewCatalogRepository(initial ...entity.CatalogItem) *CatalogRepo {
	return &CatalogRepo{items: append([]entity.CatalogItem(nil), initial...)}
}

// Load devuelve una copia del catálogo.
func (r *CatalogRepo) Load(_ context.Context) ([]entity.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.CatalogItem(nil), r.items...), nil
}

// Save reemplaza el catálogo completo.
func (r *CatalogRepo) Save(_ context.Context, items []entity.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entity.CatalogItem(nil), items...)
	return nil
}

// QuoteRepo snapshot de cotizaciones en memoria.
type QuoteRepo struct {
	mu     sync.RWMutex
	quotes []entity.Quote
}

// NewQuoteRepository construye el repositorio, opcionalmente con datos iniciales.
func NewQuoteRepository(initial ...entity.Quote) *QuoteRepo {
	return &QuoteRepo{quotes: copyQuotes(initial)}
}

// Load devuelve una copia de las cotizaciones.
func (r *QuoteRepo) Load(_ context.Context) ([]entity.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyQuotes(r.quotes), nil
}

// Save reemplaza la colección completa.
func (r *QuoteRepo) Save(_ context.Context, quotes []entity.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes = copyQuotes(quotes)
	return nil
}

func copyQuotes(in []entity.Quote) []entity.Quote {
	if in == nil {
		return nil
	}
	out := make([]entity.Quote, len(in))
	for i, q := range in {
		q.Items = append([]entity.QuoteLineItem(nil), q.Items...)
		out[i] = q
	}
	return out
}

// DraftRepo borradores de cotización por ID.
type DraftRepo struct {
	mu     sync.Mutex
	drafts map[string]*quote.Draft
}

// NewDraftRepository construye el repositorio vacío.
func NewDraftRepository() *DraftRepo {
	return &DraftRepo{drafts: make(map[string]*quote.Draft)}
}

// Get devuelve una copia del borrador o (nil, nil) si no existe.
func (r *DraftRepo) Get(_ context.Context, id string) (*quote.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drafts[id].Clone(), nil
}

// Put guarda (o reemplaza) el borrador.
func (r *DraftRepo) Put(_ context.Context, d *quote.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[d.ID] = d.Clone()
	return nil
}

// Delete elimina el borrador; no falla si no existe.
func (r *DraftRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}
