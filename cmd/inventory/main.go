// Command inventory ejecuta una demostración del almacén de stock: altas, bajas,
// consultas, persistencia en el archivo configurado y reporte final por stdout.
package main

import (
	"context"
	"fmt"
	"os"

	appinventory "github.com/jhoicas/stock-tracker/internal/application/inventory"
	"github.com/jhoicas/stock-tracker/internal/infrastructure/storage"
	"github.com/jhoicas/stock-tracker/pkg/config"
	"github.com/jhoicas/stock-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})

	ctx := context.Background()
	store, closeStore, err := storage.New(ctx, cfg.Inventory, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Inventory.StoreDriver).Msg("inicializar almacenamiento")
	}
	defer closeStore()

	uc := appinventory.NewStockUseCase(store, nil, cfg.Inventory.LowThreshold, log)

	// Los fallos se registran como diagnósticos; la demostración continúa.
	_, _ = uc.AddItem("apple", 10)
	_, _ = uc.AddItem("banana", 5)
	_ = uc.RemoveItem("apple", 3)
	_ = uc.RemoveItem("orange", 1)

	fmt.Printf("Apple stock: %d\n", uc.GetQty("apple"))
	fmt.Printf("Low items: %v\n", uc.LowItems(uc.Threshold()))

	_ = uc.Save(ctx)
	_ = uc.PrintReport(os.Stdout)
}
