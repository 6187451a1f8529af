package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo guarda el catálogo como snapshot ordenado en catalog_items.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// Load devuelve el catálogo en el orden en que se guardó.
func (r *CatalogRepo) Load(ctx context.Context) ([]entity.CatalogItem, error) {
	const query = `
		SELECT id, name, category, base_price, discount_rate, tax_rate, updated_at
		FROM catalog_items ORDER BY position`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()

	var list []entity.CatalogItem
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.BasePrice, &it.DiscountRate, &it.TaxRate, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Save reemplaza el catálogo completo dentro de una transacción.
func (r *CatalogRepo) Save(ctx context.Context, items []entity.CatalogItem) error {
	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM catalog_items`); err != nil {
			return fmt.Errorf("clear catalog items: %w", err)
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"catalog_items"},
			[]string{"id", "position", "name", "category", "base_price", "discount_rate", "tax_rate", "updated_at"},
			pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
				it := items[i]
				return []any{it.ID, i, it.Name, it.Category, it.BasePrice, it.DiscountRate, it.TaxRate, it.UpdatedAt}, nil
			}),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("duplicate catalog item id: %w", err)
			}
			return fmt.Errorf("copy catalog items: %w", err)
		}
		return nil
	})
}
