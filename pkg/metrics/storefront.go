package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// StorefrontMetrics records cart, checkout and HTTP activity.
type StorefrontMetrics struct {
	cartOps        *prometheus.CounterVec
	storageFailure *prometheus.CounterVec
	checkouts      *prometheus.CounterVec
	orderTotal     *prometheus.HistogramVec
	httpDuration   *prometheus.HistogramVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided
// registerer. A nil registerer yields a recorder that drops everything.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_operations_total",
		Help: "Cart transitions applied, by operation.",
	}, []string{"operation"})
	storageFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_storage_write_failures_total",
		Help: "Blob writes that failed and were only logged.",
	}, []string{"blob"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkouts_total",
		Help: "Order links generated, by delivery mode.",
	}, []string{"mode"})
	orderTotal := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_order_total_amount",
		Help:    "Grand total of generated orders in the store currency.",
		Buckets: []float64{250, 500, 1000, 2000, 4000, 8000, 16000},
	}, []string{"mode"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	reg.MustRegister(cartOps, storageFailure, checkouts, orderTotal, httpDuration)
	return &StorefrontMetrics{
		cartOps:        cartOps,
		storageFailure: storageFailure,
		checkouts:      checkouts,
		orderTotal:     orderTotal,
		httpDuration:   httpDuration,
	}
}

func (m *StorefrontMetrics) IncCartOperation(op string) {
	if m == nil || m.cartOps == nil {
		return
	}
	m.cartOps.WithLabelValues(normalizeLabel(op)).Inc()
}

func (m *StorefrontMetrics) IncStorageFailure(blob string) {
	if m == nil || m.storageFailure == nil {
		return
	}
	m.storageFailure.WithLabelValues(normalizeLabel(blob)).Inc()
}

// ObserveCheckout counts a generated order and records its grand total.
func (m *StorefrontMetrics) ObserveCheckout(mode string, total decimal.Decimal) {
	if m == nil || m.checkouts == nil {
		return
	}
	mode = normalizeLabel(mode)
	m.checkouts.WithLabelValues(mode).Inc()
	m.orderTotal.WithLabelValues(mode).Observe(total.InexactFloat64())
}

func (m *StorefrontMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.
		WithLabelValues(normalizeLabel(method), normalizeLabel(route), strconv.Itoa(status)).
		Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
