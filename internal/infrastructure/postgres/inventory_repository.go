package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-tracker/internal/domain"
	"github.com/jhoicas/stock-tracker/internal/domain/inventory"
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS inventory_items (
		name     TEXT PRIMARY KEY CHECK (name <> ''),
		quantity INTEGER NOT NULL CHECK (quantity >= 0),
		position INTEGER NOT NULL
	)`

// InventoryRepository persiste el inventario completo en la tabla inventory_items.
// Cada Save reemplaza el contenido de la tabla dentro de una transacción.
type InventoryRepository struct {
	q  Querier
	tx *TxRunner
}

// NewInventoryRepository construye el adaptador sobre el pool.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{q: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema crea la tabla si no existe.
func (r *InventoryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla inventory_items: %w", err)
	}
	return nil
}

// Load lee los ítems en el orden en que fueron guardados.
// Tabla inexistente -> vacío + ErrFileNotFound; datos inválidos -> vacío + ErrMalformedData.
func (r *InventoryRepository) Load(ctx context.Context) (*inventory.Inventory, error) {
	rows, err := r.q.Query(ctx, `SELECT name, quantity FROM inventory_items ORDER BY position`)
	if err != nil {
		if isUndefinedTable(err) {
			return inventory.New(), fmt.Errorf("%w: tabla inventory_items", domain.ErrFileNotFound)
		}
		return inventory.New(), fmt.Errorf("consultar inventario: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[inventory.Item])
	if err != nil {
		if isUndefinedTable(err) {
			return inventory.New(), fmt.Errorf("%w: tabla inventory_items", domain.ErrFileNotFound)
		}
		return inventory.New(), fmt.Errorf("leer filas de inventario: %w", err)
	}
	inv, err := inventory.FromItems(items)
	if err != nil {
		return inventory.New(), fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	return inv, nil
}

// Save reemplaza el contenido de la tabla por el inventario dado (Commit o Rollback).
func (r *InventoryRepository) Save(ctx context.Context, inv *inventory.Inventory) error {
	items := inv.Items()
	rows := make([][]any, 0, len(items))
	for i, it := range items {
		rows = append(rows, []any{it.Name, it.Quantity, i})
	}

	err := r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM inventory_items`); err != nil {
			return fmt.Errorf("vaciar inventory_items: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		_, err := q.CopyFrom(ctx,
			pgx.Identifier{"inventory_items"},
			[]string{"name", "quantity", "position"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("insertar inventory_items: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	return nil
}
