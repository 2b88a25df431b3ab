// Command reconcile recalcula total_stock de cada producto a partir de su historial
// y corrige las diferencias. Uso: go run ./cmd/reconcile [-product <id>]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/persistence"
	"github.com/jhoicas/stock-ledger/pkg/config"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

func main() {
	productID := flag.String("product", "", "ID de un producto (vacío = todo el catálogo)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, *productID); err != nil {
		log.Error().Err(err).Msg("conciliación")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, productID string) error {
	backend, err := persistence.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a %s: %w", cfg.DB.Driver, err)
	}
	defer backend.Close()

	uc := inventory.NewLedgerUseCase(backend.Tx, log.Component("reconcile"))

	var results []inventory.ReconcileResult
	if productID != "" {
		res, err := uc.Reconcile(ctx, productID)
		if err != nil {
			return fmt.Errorf("producto %s: %w", productID, err)
		}
		results = append(results, *res)
	} else {
		results, err = uc.ReconcileAll(ctx)
		if err != nil {
			return err
		}
	}

	repaired := 0
	for _, r := range results {
		if r.Repaired {
			repaired++
		}
	}
	log.Info().Int("products", len(results)).Int("repaired", repaired).Msg("conciliación terminada")
	return nil
}
