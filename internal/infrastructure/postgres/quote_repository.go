package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo guarda las cotizaciones (cabecera en quotes, líneas en quote_items).
type QuoteRepo struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository construye el adaptador.
func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepo {
	return &QuoteRepo{pool: pool}
}

// Load devuelve las cotizaciones con sus líneas, en el orden guardado.
func (r *QuoteRepo) Load(ctx context.Context) ([]entity.Quote, error) {
	const headers = `
		SELECT id, customer_name, subtotal, tax, total, created_at
		FROM quotes ORDER BY position`
	rows, err := r.pool.Query(ctx, headers)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	var list []entity.Quote
	index := make(map[string]int)
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.CustomerName, &q.Subtotal, &q.Tax, &q.Total, &q.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		index[q.ID] = len(list)
		list = append(list, q)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	const lines = `
		SELECT quote_id, product_id, product_name, quantity, unit_price, discount_rate, amount
		FROM quote_items ORDER BY quote_id, line`
	rows, err = r.pool.Query(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var quoteID string
		var it entity.QuoteLineItem
		if err := rows.Scan(&quoteID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.DiscountRate, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		if i, ok := index[quoteID]; ok {
			list[i].Items = append(list[i].Items, it)
		}
	}
	return list, rows.Err()
}

// Save reemplaza todas las cotizaciones dentro de una transacción.
func (r *QuoteRepo) Save(ctx context.Context, quotes []entity.Quote) error {
	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM quotes`); err != nil {
			return fmt.Errorf("clear quotes: %w", err)
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"quotes"},
			[]string{"id", "position", "customer_name", "subtotal", "tax", "total", "created_at"},
			pgx.CopyFromSlice(len(quotes), func(i int) ([]any, error) {
				q := quotes[i]
				return []any{q.ID, i, q.CustomerName, q.Subtotal, q.Tax, q.Total, q.CreatedAt}, nil
			}),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("duplicate quote id: %w", err)
			}
			return fmt.Errorf("copy quotes: %w", err)
		}

		var lines [][]any
		for _, q := range quotes {
			for n, it := range q.Items {
				lines = append(lines, []any{q.ID, n, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.DiscountRate, it.Amount})
			}
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"quote_items"},
			[]string{"quote_id", "line", "product_id", "product_name", "quantity", "unit_price", "discount_rate", "amount"},
			pgx.CopyFromRows(lines),
		); err != nil {
			return fmt.Errorf("copy quote items: %w", err)
		}
		return nil
	})
}
