package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schema sentencias del esquema, aplicadas en orden; todas idempotentes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id           TEXT PRIMARY KEY,
		name         TEXT    NOT NULL CHECK (name <> ''),
		box_capacity INTEGER NOT NULL CHECK (box_capacity >= 1),
		total_stock  INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT    NOT NULL,
		updated_at   TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id                 TEXT PRIMARY KEY,
		product_id         TEXT    NOT NULL REFERENCES products (id) ON DELETE CASCADE,
		kind               TEXT    NOT NULL CHECK (kind IN ('IN', 'OUT')),
		box_count          INTEGER NOT NULL CHECK (box_count >= 0),
		unit_count         INTEGER NOT NULL CHECK (unit_count >= 0),
		box_capacity       INTEGER NOT NULL CHECK (box_capacity >= 1),
		converted_quantity INTEGER NOT NULL CHECK (converted_quantity > 0),
		note               TEXT    NOT NULL DEFAULT '',
		created_at         TEXT    NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_product_created ON movements (product_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_created ON movements (created_at)`,
}

// Apply ejecuta el esquema completo sobre db.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema (sentencia %d): %w", i+1, err)
		}
	}
	return nil
}
