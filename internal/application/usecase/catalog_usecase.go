package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/catalog"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// CopySuffix se agrega al nombre del producto copiado.
const CopySuffix = " - copia"

var hundred = decimal.NewFromInt(100)

// CatalogUseCase listado y edición en línea del catálogo.
type CatalogUseCase struct {
	repo  repository.CatalogRepository
	now   func() time.Time
	newID func() string
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, now: time.Now, newID: uuid.NewString}
}

// List devuelve los productos que coinciden con la búsqueda y la categoría.
func (uc *CatalogUseCase) List(ctx context.Context, search, category string) (*dto.CatalogListResponse, error) {
	items, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	shown := catalog.Filter(items, search, category)
	return &dto.CatalogListResponse{
		Items: toCatalogItemResponses(shown),
		Shown: len(shown),
		Total: len(items),
	}, nil
}

// Categories categorías distintas, en orden de aparición.
func (uc *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	items, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Categories(items), nil
}

// GetByID obtiene un producto. domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.CatalogItemResponse, error) {
	items, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := catalog.IndexOf(items, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	out := toCatalogItemResponse(items[i])
	return &out, nil
}

// Update aplica la edición en línea y actualiza UpdatedAt.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	items, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := catalog.IndexOf(items, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	item := items[i]

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		item.Name = name
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.BasePrice != nil {
		if in.BasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio base no puede ser negativo", domain.ErrInvalidInput)
		}
		item.BasePrice = *in.BasePrice
	}
	if in.DiscountRate != nil {
		d := *in.DiscountRate
		if d.IsNegative() || d.GreaterThan(hundred) {
			return nil, fmt.Errorf("%w: el descuento debe estar entre 0 y 100", domain.ErrInvalidInput)
		}
		if d.IsZero() {
			item.DiscountRate = nil
		} else {
			item.DiscountRate = &d
		}
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() {
			return nil, fmt.Errorf("%w: la tasa de impuesto no puede ser negativa", domain.ErrInvalidInput)
		}
		item.TaxRate = *in.TaxRate
	}
	item.UpdatedAt = uc.now()

	items[i] = item
	if err := uc.repo.Save(ctx, items); err != nil {
		return nil, err
	}
	out := toCatalogItemResponse(item)
	return &out, nil
}

// Copy duplica un producto con ID nuevo y lo agrega al final del catálogo.
func (uc *CatalogUseCase) Copy(ctx context.Context, id string) (*dto.CatalogItemResponse, error) {
	items, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := catalog.IndexOf(items, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	cp := items[i]
	cp.ID = uc.newID()
	cp.Name += CopySuffix
	cp.UpdatedAt = uc.now()
	if cp.DiscountRate != nil {
		d := *cp.DiscountRate
		cp.DiscountRate = &d
	}

	items = append(items, cp)
	if err := uc.repo.Save(ctx, items); err != nil {
		return nil, err
	}
	out := toCatalogItemResponse(cp)
	return &out, nil
}

// Delete elimina un producto. Un ID inexistente no es error.
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) error {
	items, err := uc.repo.Load(ctx)
	if err != nil {
		return err
	}
	i := catalog.IndexOf(items, id)
	if i < 0 {
		return nil
	}
	items = append(items[:i], items[i+1:]...)
	return uc.repo.Save(ctx, items)
}
