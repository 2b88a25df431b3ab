// Package sqlite implementa los puertos de persistencia sobre SQLite (un solo archivo, ideal para una tienda).
package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// timeLayout formato fijo en UTC: el orden lexicográfico coincide con el cronológico.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// DSN construye el DSN de go-sqlite3: claves foráneas activas (cascada), BEGIN IMMEDIATE
// para que cada transacción tome el bloqueo de escritura desde el inicio, y busy timeout.
func DSN(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_txlock", "immediate")
	params.Set("_busy_timeout", "5000")
	if path == ":memory:" {
		return "file::memory:?" + params.Encode()
	}
	return "file:" + path + "?" + params.Encode()
}

// Open abre la base, limita el pool a una conexión (un solo escritor) y aplica el esquema.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Apply(ctx, db.DB); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
