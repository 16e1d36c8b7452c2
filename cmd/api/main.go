package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appinventory "github.com/jhoicas/stock-tracker/internal/application/inventory"
	"github.com/jhoicas/stock-tracker/internal/domain"
	infrapdf "github.com/jhoicas/stock-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-tracker/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/stock-tracker/internal/interfaces/http"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := storage.New(ctx, cfg.Inventory, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Inventory.StoreDriver).Msg("inicializar almacenamiento")
	}
	defer closeStore()

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name+" - reporte de stock", cfg.Report.Lang)
	stockUC := appinventory.NewStockUseCase(store, pdfGenerator, cfg.Inventory.LowThreshold, log)

	// Primer arranque sin archivo: se continúa con inventario vacío.
	if err := stockUC.Load(ctx); err != nil && !errors.Is(err, domain.ErrFileNotFound) {
		log.Warn().Err(err).Msg("se descarta el inventario persistido")
	}

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: rutas de escritura deshabilitadas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Stock:     stockUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Último guardado antes de salir; el error ya queda registrado por el caso de uso.
	_ = stockUC.Save(shutdownCtx)

	log.Info().Msg("aplicación detenida")
}
