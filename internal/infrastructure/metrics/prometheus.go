// Package metrics expone contadores Prometheus de las transacciones del snapshot y de HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mm_inventario"

// Recorder agrupa las métricas de la aplicación sobre un registro propio.
// Implementa snapshot.Recorder.
type Recorder struct {
	registry    *prometheus.Registry
	txTotal     *prometheus.CounterVec
	txDuration  *prometheus.HistogramVec
	httpTotal   *prometheus.CounterVec
	httpLatency *prometheus.HistogramVec
}

// NewRecorder registra las métricas y los collectors de proceso y runtime.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		txTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "transactions_total",
			Help:      "Transacciones sobre el snapshot por operación y resultado.",
		}, []string{"op", "result"}),
		txDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "transaction_duration_seconds",
			Help:      "Duración de cada transacción, persistencia incluida.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		httpTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	r.registry.MustRegister(
		r.txTotal, r.txDuration, r.httpTotal, r.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Observe registra una transacción del snapshot.
func (r *Recorder) Observe(op string, ok bool, d time.Duration) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.txTotal.WithLabelValues(op, result).Inc()
	r.txDuration.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveHTTP registra una petición atendida. route es el patrón, no la URL concreta.
func (r *Recorder) ObserveHTTP(method, route string, status int, d time.Duration) {
	r.httpTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler sirve el registro en formato de exposición de Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry devuelve el registro (tests y collectors adicionales).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
