package postgres

import (
	"context"
	"fmt"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS catalog_items (
	id            TEXT PRIMARY KEY,
	position      INTEGER NOT NULL,
	name          TEXT NOT NULL,
	category      TEXT NOT NULL,
	base_price    NUMERIC NOT NULL,
	discount_rate NUMERIC NULL,
	tax_rate      NUMERIC NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS quotes (
	id            TEXT PRIMARY KEY,
	position      INTEGER NOT NULL,
	customer_name TEXT NOT NULL,
	subtotal      NUMERIC NOT NULL,
	tax           NUMERIC NOT NULL,
	total         NUMERIC NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS quote_items (
	quote_id      TEXT NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
	line          INTEGER NOT NULL,
	product_id    TEXT NOT NULL,
	product_name  TEXT NOT NULL,
	quantity      INTEGER NOT NULL,
	unit_price    NUMERIC NOT NULL,
	discount_rate NUMERIC NULL,
	amount        NUMERIC NOT NULL,
	PRIMARY KEY (quote_id, line)
);`

// EnsureSchema crea las tablas de las colecciones si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
