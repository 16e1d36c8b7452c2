package inventory

import (
	"context"

	"github.com/jhoicas/stock-tracker/internal/domain/inventory"
)

// Store puerto de persistencia del inventario completo (archivo JSON o PostgreSQL).
// Load nunca devuelve nil: ante error devuelve un inventario vacío junto al error.
type Store interface {
	Load(ctx context.Context) (*inventory.Inventory, error)
	Save(ctx context.Context, inv *inventory.Inventory) error
}

// PDFGenerator genera la representación PDF del reporte de stock.
type PDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, items []inventory.Item, threshold int) ([]byte, error)
}
