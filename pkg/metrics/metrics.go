// Package metrics expone métricas Prometheus del catálogo.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ItemSearchesTotal búsquedas find_all por modo resuelto ("rejected" si falló la validación).
	ItemSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalogo",
			Subsystem: "items",
			Name:      "searches_total",
			Help:      "Total number of item searches by resolved filter mode",
		},
		[]string{"mode"},
	)

	// ItemsDeletedTotal ítems eliminados.
	ItemsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalogo",
			Subsystem: "items",
			Name:      "deleted_total",
			Help:      "Total number of deleted items",
		},
	)

	// InvoicesCascadedTotal facturas eliminadas por quedar sin líneas.
	InvoicesCascadedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalogo",
			Subsystem: "invoices",
			Name:      "cascade_deleted_total",
			Help:      "Total number of invoices deleted because their last item was deleted",
		},
	)

	// HTTPRequestsTotal peticiones HTTP atendidas.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalogo",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration duración de las peticiones HTTP en segundos.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalogo",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)
