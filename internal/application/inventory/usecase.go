package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/jhoicas/stock-tracker/internal/domain"
	"github.com/jhoicas/stock-tracker/internal/domain/inventory"
	"github.com/jhoicas/stock-tracker/pkg/logger"
)

// StockUseCase administra un inventario compartido: aplica las operaciones del dominio,
// registra cada fallo como diagnóstico (sin abortar) y delega la persistencia en un Store.
// Es seguro para uso concurrente (lo comparte el servidor HTTP).
type StockUseCase struct {
	mu        sync.Mutex
	inv       *inventory.Inventory
	log       inventory.Log
	store     Store
	pdf       PDFGenerator
	threshold int
	logger    *logger.Logger
}

// NewStockUseCase construye el caso de uso con un inventario vacío.
// threshold es el umbral de stock bajo por defecto; pdf puede ser nil.
func NewStockUseCase(store Store, pdf PDFGenerator, threshold int, log *logger.Logger) *StockUseCase {
	return &StockUseCase{
		inv:       inventory.New(),
		store:     store,
		pdf:       pdf,
		threshold: threshold,
		logger:    log.Component("stock"),
	}
}

// Threshold umbral de stock bajo por defecto.
func (uc *StockUseCase) Threshold() int {
	return uc.threshold
}

// Load reemplaza el inventario en memoria por el persistido.
// Ante archivo ausente o inválido el inventario queda vacío y el error se devuelve para inspección.
func (uc *StockUseCase) Load(ctx context.Context) error {
	inv, err := uc.store.Load(ctx)
	if inv == nil {
		inv = inventory.New()
	}

	uc.mu.Lock()
	uc.inv = inv
	uc.mu.Unlock()

	switch {
	case err == nil:
		uc.logger.Info().Int("items", inv.Len()).Msg("inventario cargado")
	case errors.Is(err, domain.ErrFileNotFound):
		uc.logger.Warn().Err(err).Msg("inventario no encontrado, se inicia vacío")
	case errors.Is(err, domain.ErrReadFailed):
		uc.logger.Error().Err(err).Msg("inventario ilegible, se inicia vacío")
	default:
		uc.logger.Error().Err(err).Msg("inventario inválido, se inicia vacío")
	}
	return err
}

// Save persiste el inventario actual. No hay reintentos ni rollback.
func (uc *StockUseCase) Save(ctx context.Context) error {
	uc.mu.Lock()
	snapshot := uc.inv.Clone()
	uc.mu.Unlock()

	if err := uc.store.Save(ctx, snapshot); err != nil {
		uc.logger.Error().Err(err).Msg("guardar inventario")
		return err
	}
	uc.logger.Info().Int("items", snapshot.Len()).Msg("inventario guardado")
	return nil
}

// AddItem suma qty unidades a name y devuelve la entrada de log creada.
func (uc *StockUseCase) AddItem(name string, qty int) (inventory.Entry, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	log, err := uc.inv.Add(name, qty, uc.log)
	if err != nil {
		uc.logger.Error().Err(err).Str("item", name).Int("qty", qty).Msg("entrada de stock rechazada")
		return inventory.Entry{}, err
	}
	uc.log = log
	entry := log[len(log)-1]
	uc.logger.Debug().Str("entry", entry.String()).Msg("stock agregado")
	return entry, nil
}

// RemoveItem descuenta qty unidades de name. Un ítem ausente es solo una advertencia.
func (uc *StockUseCase) RemoveItem(name string, qty int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	err := uc.inv.Remove(name, qty)
	switch {
	case err == nil:
		uc.logger.Debug().Str("item", name).Int("qty", qty).Int("remaining", uc.inv.Qty(name)).Msg("stock descontado")
	case errors.Is(err, domain.ErrItemNotFound):
		uc.logger.Warn().Str("item", name).Msg("ítem no encontrado en el inventario")
	default:
		uc.logger.Error().Err(err).Str("item", name).Int("qty", qty).Msg("salida de stock rechazada")
	}
	return err
}

// GetQty cantidad de name, 0 si no existe.
func (uc *StockUseCase) GetQty(name string) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inv.Qty(name)
}

// LowItems ítems con cantidad estrictamente menor que threshold.
func (uc *StockUseCase) LowItems(threshold int) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inv.LowItems(threshold)
}

// Snapshot ítems actuales en orden de inserción.
func (uc *StockUseCase) Snapshot() []inventory.Item {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inv.Items()
}

// Logs copia del log de entradas.
func (uc *StockUseCase) Logs() inventory.Log {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make(inventory.Log, len(uc.log))
	copy(out, uc.log)
	return out
}

// PrintReport escribe el reporte de texto en w.
func (uc *StockUseCase) PrintReport(w io.Writer) error {
	uc.mu.Lock()
	snapshot := uc.inv.Clone()
	uc.mu.Unlock()

	if err := inventory.PrintData(w, snapshot); err != nil {
		uc.logger.Error().Err(err).Msg("imprimir reporte")
		return err
	}
	return nil
}

// ReportPDF genera el reporte PDF con el umbral por defecto.
func (uc *StockUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reporte PDF no configurado")
	}
	doc, err := uc.pdf.GenerateInventoryPDF(ctx, uc.Snapshot(), uc.threshold)
	if err != nil {
		uc.logger.Error().Err(err).Msg("generar reporte PDF")
		return nil, err
	}
	return doc, nil
}
