package http_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/seed"
)

type listOf[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// ────────────────────────────── Infraestructura ──────────────────────────────

func TestHealthYRutaInexistente(t *testing.T) {
	s := newServer(t)

	resp := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	s := newServer(t)
	for _, path := range []string{"/api/products", "/api/stock", "/api/dashboard", "/api/inventory/counts"} {
		resp := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestMetrics_RegistraPeticionesYTransacciones(t *testing.T) {
	s := newServer(t)
	tok := token(t, "user_1", entity.RoleAdmin)

	resp := s.do(t, http.MethodGet, "/api/dashboard", tok, nil)
	resp.Body.Close()
	resp = s.do(t, http.MethodPost, "/api/inventory/movements", tok, map[string]any{
		"type": "IN", "warehouse_id": "wh_1", "product_id": "prd_1", "qty": 1,
	})
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	text := string(body)
	assert.Contains(t, text, `mm_inventario_http_requests_total{method="GET",route="/api/dashboard",status="200"} 1`)
	assert.Contains(t, text, `mm_inventario_snapshot_transactions_total{op="movement.register",result="ok"} 1`)
}

// ────────────────────────────── Auth ──────────────────────────────

func TestAuth_FlujoCompleto(t *testing.T) {
	s := newServer(t)

	resp := s.do(t, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decode[dto.MeResponse](t, resp).User, "sin sesión el usuario es null")

	resp = s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: seed.AdminEmail, Password: "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: seed.AdminEmail, Password: seed.AdminPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, entity.RoleAdmin, login.User.Role)

	resp = s.do(t, http.MethodGet, "/api/dashboard", login.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el token del login abre las rutas protegidas")
	resp.Body.Close()

	resp = s.do(t, http.MethodGet, "/api/auth/me", "", nil)
	me := decode[dto.MeResponse](t, resp)
	require.NotNil(t, me.User)
	assert.Equal(t, login.User.ID, me.User.ID)

	resp = s.do(t, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	assert.Nil(t, s.store.Snapshot().Auth.SessionUserID)
}

func TestAuth_RegistroDuplicado(t *testing.T) {
	s := newServer(t)

	resp := s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Name: "Otro", Email: "ADMIN@mm.com", Password: "x"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Name: "Ana", Email: "ana@mm.com", Password: "clave"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, entity.RoleUser, decode[dto.LoginResponse](t, resp).User.Role)
}

// ────────────────────────────── Movimientos ──────────────────────────────

func TestMovimientos_SalidaYStockInsuficiente(t *testing.T) {
	s := newServer(t)
	tok := token(t, "user_1", entity.RoleUser)

	resp := s.do(t, http.MethodPost, "/api/inventory/movements", tok, dto.RegisterMovementRequest{
		Type: "out", WarehouseID: "wh_1", ProductID: "prd_1", Qty: 5, Note: "venta",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mov := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, entity.MovementTypeOUT, mov.Type)
	assert.Equal(t, "HB-A4-500", mov.ProductSKU)

	resp = s.do(t, http.MethodGet, "/api/stock/wh_1/prd_1", tok, nil)
	assert.Equal(t, 40, decode[dto.StockQuantityDTO](t, resp).Qty)

	resp = s.do(t, http.MethodPost, "/api/inventory/movements", tok, dto.RegisterMovementRequest{
		Type: "OUT", WarehouseID: "wh_1", ProductID: "prd_1", Qty: 41,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, resp).Code)
	assert.Equal(t, 40, s.store.Snapshot().Stock[entity.StockKey("wh_1", "prd_1")], "el stock no cambia")

	cases := []struct {
		name   string
		in     dto.RegisterMovementRequest
		status int
	}{
		{"tipo inválido", dto.RegisterMovementRequest{Type: "TRANSFER", WarehouseID: "wh_1", ProductID: "prd_1", Qty: 1}, http.StatusBadRequest},
		{"cantidad cero", dto.RegisterMovementRequest{Type: "IN", WarehouseID: "wh_1", ProductID: "prd_1", Qty: 0.2}, http.StatusBadRequest},
		{"producto inexistente", dto.RegisterMovementRequest{Type: "IN", WarehouseID: "wh_1", ProductID: "prd_x", Qty: 1}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := s.do(t, http.MethodPost, "/api/inventory/movements", tok, tc.in)
			assert.Equal(t, tc.status, resp.StatusCode)
			resp.Body.Close()
		})
	}

	resp = s.do(t, http.MethodGet, "/api/inventory/movements?limit=5", tok, nil)
	moves := decode[listOf[dto.MovementResponse]](t, resp)
	require.Equal(t, 1, moves.Total)
	assert.Equal(t, "venta", moves.Items[0].Note)
}

func TestStock_FiltroPorAlmacen(t *testing.T) {
	s := newServer(t)
	tok := token(t, "user_1", entity.RoleUser)

	resp := s.do(t, http.MethodGet, "/api/stock?warehouse_id=wh_2", tok, nil)
	list := decode[listOf[dto.StockItemDTO]](t, resp)
	assert.Equal(t, 5, list.Total)
	for _, it := range list.Items {
		assert.Equal(t, "wh_2", it.WarehouseID)
	}

	resp = s.do(t, http.MethodGet, "/api/stock?warehouse_id=wh_x", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ────────────────────────────── Inventarios ──────────────────────────────

func TestConteo_FlujoCompleto(t *testing.T) {
	s := newServer(t)
	tok := token(t, "user_1", entity.RoleUser)

	resp := s.do(t, http.MethodPost, "/api/inventory/counts", tok, dto.CreateCountRequest{WarehouseID: "wh_1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	inv := decode[dto.CountResponse](t, resp)
	assert.Equal(t, entity.InventoryStatusOpen, inv.Status)
	assert.Len(t, inv.Lines, 5)

	resp = s.do(t, http.MethodPost, "/api/inventory/counts", tok, dto.CreateCountRequest{WarehouseID: "wh_1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_OPEN", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodPut, "/api/inventory/counts/"+inv.ID+"/lines/prd_1", tok, dto.UpdateCountRequest{Counted: 40})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	line := decode[dto.CountLineDTO](t, resp)
	assert.Equal(t, 45, line.SystemQty)
	assert.Equal(t, -5, line.Diff)

	resp = s.do(t, http.MethodGet, "/api/inventory/counts/"+inv.ID+"/sheet.pdf", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))

	resp = s.do(t, http.MethodPost, "/api/inventory/counts/"+inv.ID+"/close", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	closed := decode[dto.CountResponse](t, resp)
	assert.Equal(t, entity.InventoryStatusClosed, closed.Status)
	assert.NotNil(t, closed.ClosedAt)
	assert.Equal(t, 40, s.store.Snapshot().Stock[entity.StockKey("wh_1", "prd_1")])

	resp = s.do(t, http.MethodPost, "/api/inventory/counts/"+inv.ID+"/close", tok, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "NOT_OPEN", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodGet, "/api/inventory/movements", tok, nil)
	moves := decode[listOf[dto.MovementResponse]](t, resp)
	require.NotEmpty(t, moves.Items)
	assert.Equal(t, entity.MovementTypeADJ, moves.Items[0].Type)

	resp = s.do(t, http.MethodGet, "/api/inventory/counts/inv_x", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ────────────────────────────── Catálogo ──────────────────────────────

func TestProductos_CRUDYCascada(t *testing.T) {
	s := newServer(t)
	tok := token(t, "user_1", entity.RoleUser)

	resp := s.do(t, http.MethodPost, "/api/products", tok, map[string]any{
		"sku": "BOR-01", "name": "Borrador", "category": "Útiles", "min": 5, "max": 30, "price": "1.20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "PEN", p.Currency)

	resp = s.do(t, http.MethodGet, "/api/products?q=borrador", tok, nil)
	assert.Equal(t, 1, decode[dto.ProductListResponse](t, resp).Total)

	resp = s.do(t, http.MethodPost, "/api/products", tok, map[string]any{"sku": "X", "name": "X", "min": 9, "max": 3})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodDelete, "/api/products/"+p.ID, tok, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	for key := range s.store.Snapshot().Stock {
		assert.False(t, strings.HasSuffix(key, ":"+p.ID), "queda stock huérfano %s", key)
	}

	resp = s.do(t, http.MethodGet, "/api/products/"+p.ID, tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestTiendas_NoSeBorraConAlmacenes(t *testing.T) {
	s := newServer(t)
	tok := token(t, "user_1", entity.RoleUser)

	resp := s.do(t, http.MethodDelete, "/api/stores/store_1", tok, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "HAS_WAREHOUSES", decode[dto.ErrorResponse](t, resp).Code)

	resp = s.do(t, http.MethodGet, "/api/stores/store_1", tok, nil)
	assert.Equal(t, 2, decode[dto.StoreResponse](t, resp).WarehouseCount)
}

// ────────────────────────────── Configuración ──────────────────────────────

func TestSettings_CommitSoloAdmin(t *testing.T) {
	s := newServer(t)
	user := token(t, "user_9", entity.RoleUser)
	admin := token(t, "user_1", entity.RoleAdmin)

	base := "USD"
	resp := s.do(t, http.MethodPatch, "/api/settings/draft", user, dto.SettingsDraftPatch{BaseCurrency: &base})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.SettingsResponse](t, resp).Dirty)

	resp = s.do(t, http.MethodPost, "/api/settings/draft/commit", user, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, "PEN", s.store.Snapshot().Settings.BaseCurrency)

	resp = s.do(t, http.MethodPost, "/api/settings/draft/commit", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, "USD", s.store.Snapshot().Settings.BaseCurrency)
}

// ────────────────────────────── Dashboard ──────────────────────────────

func TestDashboard_ResumenSembrado(t *testing.T) {
	s := newServer(t)

	resp := s.do(t, http.MethodGet, "/api/dashboard", token(t, "user_1", entity.RoleUser), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 874, sum.TotalUnits)
	assert.Equal(t, "S/ 5,895.20", sum.StockValueText)
	assert.Equal(t, 2, sum.Warehouses)
	assert.Equal(t, 5, sum.Products)

	resp = s.do(t, http.MethodGet, "/api/inventory/replenishment-list", token(t, "user_1", entity.RoleUser), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
