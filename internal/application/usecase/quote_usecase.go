package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/catalog"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/quote"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// QuoteUseCase armado de borradores y administración de cotizaciones emitidas.
type QuoteUseCase struct {
	catalog repository.CatalogRepository
	quotes  repository.QuoteRepository
	drafts  repository.DraftRepository
	log     *logger.Logger
	now     func() time.Time
	newID   func() string
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	catalogRepo repository.CatalogRepository,
	quoteRepo repository.QuoteRepository,
	draftRepo repository.DraftRepository,
	log *logger.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{
		catalog: catalogRepo,
		quotes:  quoteRepo,
		drafts:  draftRepo,
		log:     log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// ── borradores ──

// CreateDraft abre un borrador vacío.
func (uc *QuoteUseCase) CreateDraft(ctx context.Context) (*dto.DraftResponse, error) {
	d := quote.NewDraft(uc.newID(), uc.now())
	if err := uc.drafts.Put(ctx, d); err != nil {
		return nil, err
	}
	return toDraftResponse(d), nil
}

// GetDraft devuelve el borrador con sus totales.
func (uc *QuoteUseCase) GetDraft(ctx context.Context, id string) (*dto.DraftResponse, error) {
	d, err := uc.loadDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(d), nil
}

// SetCustomer fija el nombre del cliente.
func (uc *QuoteUseCase) SetCustomer(ctx context.Context, id string, in dto.SetCustomerRequest) (*dto.DraftResponse, error) {
	return uc.updateDraft(ctx, id, func(d *quote.Draft) error {
		d.CustomerName = in.CustomerName
		return nil
	})
}

// AddItem agrega un producto del catálogo al borrador.
func (uc *QuoteUseCase) AddItem(ctx context.Context, id string, in dto.AddDraftItemRequest) (*dto.DraftResponse, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id es obligatorio", domain.ErrInvalidInput)
	}
	items, err := uc.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := catalog.IndexOf(items, productID)
	if i < 0 {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	return uc.updateDraft(ctx, id, func(d *quote.Draft) error {
		d.AddItem(items[i])
		return nil
	})
}

// SetQuantity cambia la cantidad de una línea; 0 o menos la elimina.
// Un producto que no está en el borrador no cambia nada.
func (uc *QuoteUseCase) SetQuantity(ctx context.Context, id, productID string, in dto.SetQuantityRequest) (*dto.DraftResponse, error) {
	if in.Quantity == nil {
		return nil, fmt.Errorf("%w: quantity es obligatorio", domain.ErrInvalidInput)
	}
	quantity := *in.Quantity
	return uc.updateDraft(ctx, id, func(d *quote.Draft) error {
		d.SetQuantity(productID, quantity)
		return nil
	})
}

// RemoveItem quita una línea del borrador.
func (uc *QuoteUseCase) RemoveItem(ctx context.Context, id, productID string) (*dto.DraftResponse, error) {
	return uc.updateDraft(ctx, id, func(d *quote.Draft) error {
		d.RemoveItem(productID)
		return nil
	})
}

// DiscardDraft elimina el borrador.
func (uc *QuoteUseCase) DiscardDraft(ctx context.Context, id string) error {
	return uc.drafts.Delete(ctx, id)
}

// Submit emite la cotización y vacía el borrador.
func (uc *QuoteUseCase) Submit(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	d, err := uc.loadDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	q, err := d.Submit(uc.newID(), now)
	if err != nil {
		return nil, err
	}

	quotes, err := uc.quotes.Load(ctx)
	if err != nil {
		return nil, err
	}
	quotes = append(quotes, *q)
	if err := uc.quotes.Save(ctx, quotes); err != nil {
		return nil, err
	}
	if err := uc.drafts.Put(ctx, d); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("quote_id", q.ID).
		Str("customer", q.CustomerName).
		Int("lines", len(q.Items)).
		Str("total", q.Total.String()).
		Msg("cotización creada")

	out := toQuoteResponse(*q)
	return &out, nil
}

func (uc *QuoteUseCase) loadDraft(ctx context.Context, id string) (*quote.Draft, error) {
	d, err := uc.drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("borrador %s: %w", id, domain.ErrNotFound)
	}
	return d, nil
}

func (uc *QuoteUseCase) updateDraft(ctx context.Context, id string, fn func(d *quote.Draft) error) (*dto.DraftResponse, error) {
	d, err := uc.loadDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = uc.now()
	if err := uc.drafts.Put(ctx, d); err != nil {
		return nil, err
	}
	return toDraftResponse(d), nil
}

// ── cotizaciones emitidas ──

// List todas las cotizaciones, en orden de creación.
func (uc *QuoteUseCase) List(ctx context.Context) (*dto.QuoteListResponse, error) {
	quotes, err := uc.quotes.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.QuoteListResponse{Items: make([]dto.QuoteResponse, 0, len(quotes)), Total: len(quotes)}
	for _, q := range quotes {
		out.Items = append(out.Items, toQuoteResponse(q))
	}
	return out, nil
}

// GetByID obtiene una cotización. domain.ErrNotFound si no existe.
func (uc *QuoteUseCase) GetByID(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	q, err := findQuote(ctx, uc.quotes, id)
	if err != nil {
		return nil, err
	}
	out := toQuoteResponse(*q)
	return &out, nil
}

// Delete elimina una cotización. Un ID inexistente no es error.
func (uc *QuoteUseCase) Delete(ctx context.Context, id string) error {
	quotes, err := uc.quotes.Load(ctx)
	if err != nil {
		return err
	}
	for i := range quotes {
		if quotes[i].ID == id {
			quotes = append(quotes[:i], quotes[i+1:]...)
			return uc.quotes.Save(ctx, quotes)
		}
	}
	return nil
}

func findQuote(ctx context.Context, repo repository.QuoteRepository, id string) (*entity.Quote, error) {
	quotes, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		if quotes[i].ID == id {
			return &quotes[i], nil
		}
	}
	return nil, fmt.Errorf("cotización %s: %w", id, domain.ErrNotFound)
}
