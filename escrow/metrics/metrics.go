package metrics

import (
	"net/http"
	"strconv"

	"github.com/klever-io/mx-gig-escrow-go/escrow"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "escrow"

type prometheusMetrics struct {
	registry           *prometheus.Registry
	operationsTotal    *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
	httpRequestsTotal  *prometheus.CounterVec
	connectionAttempts *prometheus.CounterVec
}

// NewPrometheusMetrics creates the metrics handler backed by a dedicated prometheus registry
func NewPrometheusMetrics() (*prometheusMetrics, error) {
	pm := &prometheusMetrics{
		registry: prometheus.NewRegistry(),
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of marketplace operations by action and outcome",
		}, []string{"action", "outcome"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of marketplace operations, from nonce sync to execution",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		}, []string{"action"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of REST API requests by method, route and status code",
		}, []string{"method", "route", "code"}),
		connectionAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallet_connect_total",
			Help:      "Number of wallet connect attempts by status",
		}, []string{"status"}),
	}

	collectors := []prometheus.Collector{
		pm.operationsTotal,
		pm.operationDuration,
		pm.httpRequestsTotal,
		pm.connectionAttempts,
	}
	for _, collector := range collectors {
		err := pm.registry.Register(collector)
		if err != nil {
			return nil, err
		}
	}

	return pm, nil
}

// ObserveOperation records the outcome and duration of a marketplace operation
func (pm *prometheusMetrics) ObserveOperation(action escrow.Action, outcome string, durationInSeconds float64) {
	pm.operationsTotal.WithLabelValues(string(action), outcome).Inc()
	pm.operationDuration.WithLabelValues(string(action)).Observe(durationInSeconds)
}

// ObserveConnect records a wallet connect attempt
func (pm *prometheusMetrics) ObserveConnect(status escrow.ConnectStatus) {
	pm.connectionAttempts.WithLabelValues(string(status)).Inc()
}

// ObserveHTTPRequest records a served REST API request
func (pm *prometheusMetrics) ObserveHTTPRequest(method string, route string, code int) {
	pm.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler returns the http handler exposing the registry
func (pm *prometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(pm.registry, promhttp.HandlerOpts{})
}

// IsInterfaceNil returns true if there is no value under the interface
func (pm *prometheusMetrics) IsInterfaceNil() bool {
	return pm == nil
}
