package http_test

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-tracker/internal/application/dto"
	appinventory "github.com/jhoicas/stock-tracker/internal/application/inventory"
	"github.com/jhoicas/stock-tracker/internal/domain/inventory"
	apphttp "github.com/jhoicas/stock-tracker/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-tracker/pkg/jwt"
)

type memStore struct{ saved []inventory.Item }

func (m *memStore) Load(context.Context) (*inventory.Inventory, error) {
	return inventory.FromItems(m.saved)
}

func (m *memStore) Save(_ context.Context, inv *inventory.Inventory) error {
	m.saved = inv.Items()
	return nil
}

type fakePDF struct{}

func (fakePDF) GenerateInventoryPDF(context.Context, []inventory.Item, int) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func buildInventoryApp(t *testing.T, secret string) (*fiber.App, *appinventory.StockUseCase, *memStore) {
	t.Helper()
	store := &memStore{}
	uc := appinventory.NewStockUseCase(store, fakePDF{}, inventory.DefaultLowThreshold, nil)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Stock: uc, JWTSecret: secret})
	return app, uc, store
}

func send(t *testing.T, app *fiber.App, method, path, body, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestInventoryAPI_FlujoCompleto(t *testing.T) {
	app, _, store := buildInventoryApp(t, testJWTSecret)
	auth := tokenForRole(t, pkgjwt.RoleBodeguero)

	resp := send(t, app, http.MethodPost, "/api/inventory/items", `{"name":"apple","quantity":10}`, auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	entry := decode[dto.LogEntryResponse](t, resp)
	assert.Equal(t, "apple", entry.Item)
	assert.Contains(t, entry.Message, "Added 10 of apple")

	resp = send(t, app, http.MethodPost, "/api/inventory/items", `{"name":"banana","quantity":5}`, auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/inventory/items/apple/remove", `{"quantity":3}`, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.ItemResponse{Name: "apple", Quantity: 7}, decode[dto.ItemResponse](t, resp))

	resp = send(t, app, http.MethodPost, "/api/inventory/items/orange/remove", `{"quantity":1}`, auth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ITEM_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = send(t, app, http.MethodGet, "/api/inventory/low-stock", "", "")
	low := decode[dto.LowStockResponse](t, resp)
	assert.Equal(t, 5, low.Threshold)
	assert.Empty(t, low.Items)

	resp = send(t, app, http.MethodGet, "/api/inventory/low-stock?threshold=6", "", "")
	assert.Equal(t, []string{"banana"}, decode[dto.LowStockResponse](t, resp).Items)

	resp = send(t, app, http.MethodGet, "/api/inventory/items", "", "")
	assert.Equal(t, []dto.ItemResponse{{Name: "apple", Quantity: 7}, {Name: "banana", Quantity: 5}},
		decode[[]dto.ItemResponse](t, resp))

	resp = send(t, app, http.MethodGet, "/api/inventory/logs", "", "")
	assert.Len(t, decode[[]dto.LogEntryResponse](t, resp), 2)

	resp = send(t, app, http.MethodPost, "/api/inventory/save", "", auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []inventory.Item{{Name: "apple", Quantity: 7}, {Name: "banana", Quantity: 5}}, store.saved)
}

func TestInventoryAPI_GetItemAusenteEsCero(t *testing.T) {
	app, _, _ := buildInventoryApp(t, "")
	resp := send(t, app, http.MethodGet, "/api/inventory/items/ghost", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.ItemResponse{Name: "ghost", Quantity: 0}, decode[dto.ItemResponse](t, resp))
}

func TestInventoryAPI_NombreCodificadoEnURL(t *testing.T) {
	app, uc, _ := buildInventoryApp(t, "")
	_, err := uc.AddItem("green apple", 4)
	require.NoError(t, err)

	resp := send(t, app, http.MethodGet, "/api/inventory/items/green%20apple", "", "")
	assert.Equal(t, 4, decode[dto.ItemResponse](t, resp).Quantity)
}

func TestInventoryAPI_Validaciones(t *testing.T) {
	app, uc, _ := buildInventoryApp(t, testJWTSecret)
	auth := tokenForRole(t, pkgjwt.RoleAdmin)

	cases := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"nombre vacío", `{"name":"","quantity":1}`, "VALIDATION"},
		{"cantidad negativa", `{"name":"apple","quantity":-1}`, "VALIDATION"},
		{"cantidad ausente", `{"name":"apple"}`, "VALIDATION"},
		{"cantidad no entera", `{"name":"apple","quantity":1.5}`, "INVALID_BODY"},
		{"cantidad texto", `{"name":"apple","quantity":"ten"}`, "INVALID_BODY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := send(t, app, http.MethodPost, "/api/inventory/items", tc.body, auth)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.wantCode, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
	assert.Empty(t, uc.Snapshot())
	assert.Empty(t, uc.Logs())

	resp := send(t, app, http.MethodGet, "/api/inventory/low-stock?threshold=x", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventoryAPI_EscrituraRequiereRol(t *testing.T) {
	app, uc, _ := buildInventoryApp(t, testJWTSecret)

	resp := send(t, app, http.MethodPost, "/api/inventory/items", `{"name":"apple","quantity":1}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/inventory/items", `{"name":"apple","quantity":1}`, tokenForRole(t, pkgjwt.RoleConsulta))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, uc.GetQty("apple"))
}

func TestInventoryAPI_SinSecretNoHayEscritura(t *testing.T) {
	app, _, _ := buildInventoryApp(t, "")
	resp := send(t, app, http.MethodPost, "/api/inventory/items", `{"name":"apple","quantity":1}`, "")
	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, resp.StatusCode)
}

func TestInventoryAPI_Reportes(t *testing.T) {
	app, uc, _ := buildInventoryApp(t, "")
	_, err := uc.AddItem("apple", 2)
	require.NoError(t, err)

	resp := send(t, app, http.MethodGet, "/api/inventory/report", "", "")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "Items Report\napple -> 2\n", string(body))

	resp = send(t, app, http.MethodGet, "/api/inventory/report.pdf", "", "")
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "%PDF-fake", string(body))
}

func TestInventoryAPI_SumaQueDesbordaEs400(t *testing.T) {
	app, uc, _ := buildInventoryApp(t, testJWTSecret)
	auth := tokenForRole(t, pkgjwt.RoleAdmin)

	resp := send(t, app, http.MethodPost, "/api/inventory/items",
		`{"name":"apple","quantity":`+strconv.Itoa(math.MaxInt)+`}`, auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, app, http.MethodPost, "/api/inventory/items", `{"name":"apple","quantity":1}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
	assert.Equal(t, math.MaxInt, uc.GetQty("apple"))
	assert.Len(t, uc.Logs(), 1)
}
