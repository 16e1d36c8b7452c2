package http

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-tracker/internal/application/dto"
	appinventory "github.com/jhoicas/stock-tracker/internal/application/inventory"
	"github.com/jhoicas/stock-tracker/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP sobre el inventario.
type InventoryHandler struct {
	uc *appinventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar ítems en orden de inserción
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items := h.uc.Snapshot()
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ItemResponse{Name: it.Name, Quantity: it.Quantity})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Cantidad de un ítem (0 si no existe)
// @Tags         inventory
// @Produce      json
// @Param        name  path  string  true  "Nombre del ítem"
// @Success      200   {object}  dto.ItemResponse
// @Router       /api/inventory/items/{name} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	name, err := itemName(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
	}
	return c.JSON(dto.ItemResponse{Name: name, Quantity: h.uc.GetQty(name)})
}

// LowStock godoc
// @Summary      Ítems con cantidad estrictamente menor al umbral
// @Tags         inventory
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {object}  dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	threshold := h.uc.Threshold()
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold debe ser entero"})
		}
		threshold = n
	}
	return c.JSON(dto.LowStockResponse{Threshold: threshold, Items: h.uc.LowItems(threshold)})
}

// Logs godoc
// @Summary      Log de altas de stock
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.LogEntryResponse
// @Router       /api/inventory/logs [get]
func (h *InventoryHandler) Logs(c *fiber.Ctx) error {
	logs := h.uc.Logs()
	out := make([]dto.LogEntryResponse, 0, len(logs))
	for _, e := range logs {
		out = append(out, dto.LogEntryResponse{
			ID:       e.ID.String(),
			At:       e.At,
			Item:     e.Item,
			Quantity: e.Quantity,
			Message:  e.String(),
		})
	}
	return c.JSON(out)
}

// Report devuelve el reporte en texto plano.
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	if err := h.uc.PrintReport(c.Response().BodyWriter()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return nil
}

// ReportPDF devuelve el reporte de stock en PDF.
func (h *InventoryHandler) ReportPDF(c *fiber.Ctx) error {
	doc, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventory.pdf"`)
	return c.Send(doc)
}

// AddItem godoc
// @Summary      Registrar entrada de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "name, quantity (>= 0)"
// @Success      201   {object}  dto.LogEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity requerido"})
	}
	entry, err := h.uc.AddItem(in.Name, *in.Quantity)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LogEntryResponse{
		ID:       entry.ID.String(),
		At:       entry.At,
		Item:     entry.Item,
		Quantity: entry.Quantity,
		Message:  entry.String(),
	})
}

// RemoveItem godoc
// @Summary      Registrar salida de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre del ítem"
// @Param        body  body  dto.RemoveItemRequest  true  "quantity (>= 0)"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{name}/remove [post]
func (h *InventoryHandler) RemoveItem(c *fiber.Ctx) error {
	name, err := itemName(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
	}
	var in dto.RemoveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity requerido"})
	}
	if err := h.uc.RemoveItem(name, *in.Quantity); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.ItemResponse{Name: name, Quantity: h.uc.GetQty(name)})
}

// Save persiste el inventario en el store configurado.
func (h *InventoryHandler) Save(c *fiber.Ctx) error {
	if err := h.uc.Save(c.UserContext()); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "inventario guardado"})
}

func itemName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", domain.ErrInvalidName
	}
	return name, nil
}

func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
