// Package redis guarda cada colección como un documento JSON bajo una clave fija.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
	"github.com/jhoicas/cotizador-api/pkg/config"
)

// Claves de las colecciones (se anteponen al prefijo configurado).
const (
	CatalogKey = "catalog-items"
	QuotesKey  = "quotes"
)

var (
	_ repository.CatalogRepository = (*CatalogRepo)(nil)
	_ repository.QuoteRepository   = (*QuoteRepo)(nil)
)

// NewClient abre el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// load decodifica la clave en dst; una clave inexistente deja dst sin tocar.
func load(ctx context.Context, rdb *redis.Client, key string, dst any) error {
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func save(ctx context.Context, rdb *redis.Client, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// ── catálogo ──

type catalogRecord struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	BasePrice    decimal.Decimal  `json:"basePrice"`
	DiscountRate *decimal.Decimal `json:"discountRate,omitempty"`
	TaxRate      decimal.Decimal  `json:"taxRate"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// CatalogRepo snapshot del catálogo en Redis.
type CatalogRepo struct {
	rdb *redis.Client
	key string
}

// NewCatalogRepository construye el repositorio con el prefijo de claves dado.
func NewCatalogRepository(rdb *redis.Client, prefix string) *CatalogRepo {
	return &CatalogRepo{rdb: rdb, key: prefix + CatalogKey}
}

// Load devuelve el catálogo; una clave inexistente es un catálogo vacío.
func (r *CatalogRepo) Load(ctx context.Context) ([]entity.CatalogItem, error) {
	var recs []catalogRecord
	if err := load(ctx, r.rdb, r.key, &recs); err != nil {
		return nil, err
	}
	items := make([]entity.CatalogItem, len(recs))
	for i, rec := range recs {
		items[i] = entity.CatalogItem(rec)
	}
	return items, nil
}

// Save reemplaza el documento completo.
func (r *CatalogRepo) Save(ctx context.Context, items []entity.CatalogItem) error {
	recs := make([]catalogRecord, len(items))
	for i, it := range items {
		recs[i] = catalogRecord(it)
	}
	return save(ctx, r.rdb, r.key, recs)
}

// ── cotizaciones ──

type lineRecord struct {
	ProductID    string           `json:"productId"`
	ProductName  string           `json:"productName"`
	Quantity     int              `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unitPrice"`
	DiscountRate *decimal.Decimal `json:"discountRate,omitempty"`
	Amount       decimal.Decimal  `json:"amount"`
}

type quoteRecord struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Items        []lineRecord    `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// QuoteRepo snapshot de cotizaciones en Redis.
type QuoteRepo struct {
	rdb *redis.Client
	key string
}

// NewQuoteRepository construye el repositorio con el prefijo de claves dado.
func NewQuoteRepository(rdb *redis.Client, prefix string) *QuoteRepo {
	return &QuoteRepo{rdb: rdb, key: prefix + QuotesKey}
}

// Load devuelve las cotizaciones guardadas.
func (r *QuoteRepo) Load(ctx context.Context) ([]entity.Quote, error) {
	var recs []quoteRecord
	if err := load(ctx, r.rdb, r.key, &recs); err != nil {
		return nil, err
	}
	quotes := make([]entity.Quote, len(recs))
	for i, rec := range recs {
		q := entity.Quote{
			ID:           rec.ID,
			CustomerName: rec.CustomerName,
			Subtotal:     rec.Subtotal,
			Tax:          rec.Tax,
			Total:        rec.Total,
			CreatedAt:    rec.CreatedAt,
		}
		for _, l := range rec.Items {
			q.Items = append(q.Items, entity.QuoteLineItem(l))
		}
		quotes[i] = q
	}
	return quotes, nil
}

// Save reemplaza el documento completo.
func (r *QuoteRepo) Save(ctx context.Context, quotes []entity.Quote) error {
	recs := make([]quoteRecord, len(quotes))
	for i, q := range quotes {
		rec := quoteRecord{
			ID:           q.ID,
			CustomerName: q.CustomerName,
			Items:        make([]lineRecord, len(q.Items)),
			Subtotal:     q.Subtotal,
			Tax:          q.Tax,
			Total:        q.Total,
			CreatedAt:    q.CreatedAt,
		}
		for j, l := range q.Items {
			rec.Items[j] = lineRecord(l)
		}
		recs[i] = rec
	}
	return save(ctx, r.rdb, r.key, recs)
}
