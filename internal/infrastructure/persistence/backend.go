package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/stock-ledger/pkg/config"
)

// Backend agrupa los puertos de persistencia del driver elegido.
type Backend struct {
	Driver   string
	Products repository.ProductRepository
	Reports  repository.ReportRepository
	Tx       inventory.TxRunner
	close    func()
}

// Close libera la conexión subyacente.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open conecta al driver configurado y aplica el esquema.
func Open(ctx context.Context, cfg config.DBConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Driver:   cfg.Driver,
			Products: postgres.NewProductRepository(pool),
			Reports:  postgres.NewReportRepository(pool),
			Tx:       postgres.NewTxRunner(pool),
			close:    pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver:   cfg.Driver,
			Products: sqlite.NewProductRepository(db),
			Reports:  sqlite.NewReportRepository(db),
			Tx:       sqlite.NewTxRunner(db),
			close:    func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("driver de base de datos no soportado: %q", cfg.Driver)
	}
}
