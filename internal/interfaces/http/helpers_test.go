package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/mm-inventario/internal/application/analytics"
	"github.com/jhoicas/mm-inventario/internal/application/auth"
	appinventory "github.com/jhoicas/mm-inventario/internal/application/inventory"
	"github.com/jhoicas/mm-inventario/internal/application/usecase"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/metrics"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/snapshot"
	apphttp "github.com/jhoicas/mm-inventario/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/mm-inventario/pkg/jwt"
)

var testNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

// server app fiber completa sobre un snapshot sembrado en memoria.
type server struct {
	app     *fiber.App
	store   *snapshot.Store
	metrics *metrics.Recorder
}

func newServer(t *testing.T) *server {
	t.Helper()
	n := map[string]int{}
	seedIDs := func(prefix string) string {
		n[prefix]++
		return fmt.Sprintf("%s_%d", prefix, n[prefix])
	}
	clock := func() time.Time { return testNow }
	state, err := seed.Build(seed.Options{Now: clock, NewID: seedIDs, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	rec := metrics.NewRecorder()
	store := snapshot.New(persistence.NewMemoryRepository(), snapshot.WithRecorder(rec))
	require.NoError(t, store.Open(context.Background(), func() *entity.AppState { return state }))

	seq := 0
	ids := func(prefix string) string {
		seq++
		return fmt.Sprintf("%s_t%d", prefix, seq)
	}
	deps := apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(store, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, auth.Options{
			Latency:    -1,
			NewID:      ids,
			Now:        clock,
			BcryptCost: bcrypt.MinCost,
		}),
		ProductUC:     usecase.NewProductUseCase(store, ids),
		WarehouseUC:   usecase.NewWarehouseUseCase(store, ids),
		StoreUC:       usecase.NewStoreUseCase(store, ids),
		ServiceUC:     usecase.NewServiceUseCase(store, ids),
		SettingsUC:    usecase.NewSettingsUseCase(store),
		MovementUC:    appinventory.NewMovementUseCase(store, ids, clock),
		CountUC:       appinventory.NewCountUseCase(store, pdf.NewCountSheetGenerator("test"), ids, clock),
		Replenishment: appinventory.NewReplenishmentUseCase(store),
		DashboardUC:   appanalytics.NewDashboardUseCase(store),
		JWTSecret:     testJWTSecret,
	}
	app := apphttp.NewApp(apphttp.AppOptions{Name: "mm-inventario-test", Metrics: rec}, deps)
	return &server{app: app, store: store, metrics: rec}
}

// do lanza la petición con body JSON opcional y token opcional ("" = sin Authorization).
func (s *server) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}
