package metrics

import (
	"database/sql"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP request metrics, labelled by route template rather than raw path
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apiregistry_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "apiregistry_http_request_duration_seconds",
			Help:    "Latency in seconds of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

// EndpointErrors counts failed endpoint operations by error kind
var EndpointErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "apiregistry_endpoint_errors_total",
		Help: "Endpoint operations that failed, by error kind",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, EndpointErrors)
}

// RegisterDBStats exposes connection pool statistics for db under the given name.
// Registering the same name twice is not an error.
func RegisterDBStats(db *sql.DB, name string) error {
	err := prometheus.Register(collectors.NewDBStatsCollector(db, name))
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return nil
	}
	return err
}
