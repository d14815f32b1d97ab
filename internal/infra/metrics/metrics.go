// Package metrics exposes Prometheus instrumentation for the alert pipeline.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "safetrack"

// Ingestion outcomes
const (
	OutcomeInside       = "inside"
	OutcomeOffHours     = "off_hours"
	OutcomeThrottled    = "throttled"
	OutcomeAlerted      = "alerted"
	OutcomeQueued       = "queued"
	OutcomeAlertFailed  = "alert_failed"
	OutcomeRejected     = "rejected"
	OutcomeUnknownChild = "unknown_child"
	OutcomeStoreFailed  = "store_failed"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	IngestTotal      *prometheus.CounterVec
	IngestDuration   prometheus.Histogram
	AlertsTotal      *prometheus.CounterVec
	DeliveriesTotal  *prometheus.CounterVec
	DeliveryDuration *prometheus.HistogramVec
	SafeZoneCache    *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry registers the metrics on reg and serves them from gatherer.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registerer: reg,
		gatherer:   gatherer,
		IngestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_ingest_total",
			Help:      "Location reports processed, by outcome",
		}, []string{"outcome"}),
		IngestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "location_ingest_duration_seconds",
			Help:      "End-to-end latency of location ingestion",
			Buckets:   prometheus.DefBuckets,
		}),
		AlertsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Alerts claimed, by kind",
		}, []string{"kind"}),
		DeliveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Delivery attempts, by channel and status",
		}, []string{"channel", "status"}),
		DeliveryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "delivery_duration_seconds",
			Help:      "Latency of a single delivery attempt",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"channel"}),
		SafeZoneCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "safe_zone_cache_total",
			Help:      "Safe zone cache lookups, by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveIngest(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.IngestTotal.WithLabelValues(outcome).Inc()
	m.IngestDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) IncAlert(kind string) {
	if m == nil {
		return
	}
	m.AlertsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveDelivery(channel, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DeliveriesTotal.WithLabelValues(channel, status).Inc()
	m.DeliveryDuration.WithLabelValues(channel).Observe(elapsed.Seconds())
}

func (m *Metrics) IncSafeZoneCache(result string) {
	if m == nil {
		return
	}
	m.SafeZoneCache.WithLabelValues(result).Inc()
}

// RegisterDBStats exports the connection pool statistics of db under dbName.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if m == nil || m.registerer == nil {
		return nil
	}

	err := m.registerer.Register(collectors.NewDBStatsCollector(db, dbName))

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}

	return errors.Wrap(err, "failed to register db stats collector")
}

// Handler serves the registered metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
