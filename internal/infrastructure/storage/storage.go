// Package storage elige el adaptador de persistencia según la configuración.
package storage

import (
	"context"
	"fmt"

	appinventory "github.com/jhoicas/stock-tracker/internal/application/inventory"
	"github.com/jhoicas/stock-tracker/internal/infrastructure/jsonfile"
	"github.com/jhoicas/stock-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-tracker/pkg/config"
	"github.com/jhoicas/stock-tracker/pkg/logger"
)

// New construye el Store configurado y la función para liberar sus recursos.
func New(ctx context.Context, inv config.InventoryConfig, db config.DBConfig, log *logger.Logger) (appinventory.Store, func(), error) {
	log = log.Component("storage")
	switch inv.StoreDriver {
	case config.StoreDriverFile, "":
		log.Info().Str("file", inv.File).Msg("persistencia en archivo JSON")
		return jsonfile.NewStore(inv.File), func() {}, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo := postgres.NewInventoryRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("persistencia en PostgreSQL")
		return repo, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("driver de persistencia desconocido %q", inv.StoreDriver)
	}
}
