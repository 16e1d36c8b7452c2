package http

import (
	"github.com/gofiber/fiber/v2"

	appinventory "github.com/jhoicas/stock-tracker/internal/application/inventory"
	"github.com/jhoicas/stock-tracker/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Stock     *appinventory.StockUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	inv := api.Group("/inventory")
	h := NewInventoryHandler(deps.Stock)

	// Consultas (públicas)
	inv.Get("/items", h.List)
	inv.Get("/items/:name", h.Get)
	inv.Get("/low-stock", h.LowStock)
	inv.Get("/logs", h.Logs)
	inv.Get("/report", h.Report)
	inv.Get("/report.pdf", h.ReportPDF)

	// Sin secret no se montan las rutas de escritura.
	if deps.JWTSecret == "" {
		return
	}
	auth := AuthMiddleware(deps.JWTSecret)
	canWrite := RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero)
	inv.Post("/items", auth, canWrite, h.AddItem)
	inv.Post("/items/:name/remove", auth, canWrite, h.RemoveItem)
	inv.Post("/save", auth, canWrite, h.Save)
}
