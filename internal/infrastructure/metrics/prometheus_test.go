package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jhoicas/mm-inventario/internal/infrastructure/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, r *metrics.Recorder, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := r.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestRecorder_Observe(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe("movement.register", true, 3*time.Millisecond)
	r.Observe("movement.register", true, time.Millisecond)
	r.Observe("movement.register", false, time.Millisecond)

	assert.Equal(t, 2.0, counterValue(t, r, "mm_inventario_snapshot_transactions_total",
		map[string]string{"op": "movement.register", "result": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, r, "mm_inventario_snapshot_transactions_total",
		map[string]string{"op": "movement.register", "result": "error"}))
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveHTTP("GET", "/api/stock", 200, 2*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `mm_inventario_http_requests_total{method="GET",route="/api/stock",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
