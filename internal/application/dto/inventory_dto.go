package dto

import "time"

// AddItemRequest body para POST /api/inventory/items.
// Quantity es puntero para distinguir "ausente" de 0.
type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

// RemoveItemRequest body para POST /api/inventory/items/:name/remove.
type RemoveItemRequest struct {
	Quantity *int `json:"quantity"`
}

// ItemResponse ítem con su cantidad actual.
type ItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// LogEntryResponse entrada del log de altas de stock.
type LogEntryResponse struct {
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
	Item     string    `json:"item"`
	Quantity int       `json:"quantity"`
	Message  string    `json:"message"`
}

// LowStockResponse respuesta de GET /api/inventory/low-stock.
type LowStockResponse struct {
	Threshold int      `json:"threshold"`
	Items     []string `json:"items"`
}
