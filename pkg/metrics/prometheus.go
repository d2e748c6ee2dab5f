// Package metrics provides Prometheus metrics for the ProInvestiX client platform.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics of the platform.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Outbound API calls
	apiRequests        *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec
	apiRetries         prometheus.Counter

	// Token lifecycle
	tokenRefreshes *prometheus.CounterVec
	refreshShared  prometheus.Counter
	sessionExpired prometheus.Counter

	// Session
	logins  *prometheus.CounterVec
	logouts prometheus.Counter

	// Desktop
	updateChecks   *prometheus.CounterVec
	updateInstalls *prometheus.CounterVec

	// Stub backend HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager atomic.Pointer[Manager] //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry atomic.Pointer[prometheus.Registry] //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	Configure()
}

// Configure replaces the package-level manager with one built from opts on
// a fresh registry. Call it at startup, before /metrics is registered.
func Configure(opts ...Option) {
	reg := prometheus.NewRegistry()
	m := NewManager(append(opts, WithPrometheusRegistry(reg))...)
	customRegistry.Store(reg)
	globalManager.Store(m)
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "proinvestix",
		subsystem:        "client",
		histogramBuckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
		enabled:          true,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric
	auto := promauto.With(m.registry)

	m.apiRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "api_requests_total",
		Help:        "Outbound API requests by resource, method and status code",
		ConstLabels: m.constLabels,
	}, []string{"resource", "method", "status_code"})

	m.apiRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "api_request_duration_milliseconds",
		Help:        "Outbound API request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"resource", "method", "status_code"})

	m.apiRetries = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "api_retries_total",
		Help:        "Requests resubmitted after a token refresh",
		ConstLabels: m.constLabels,
	})

	m.tokenRefreshes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "token_refreshes_total",
		Help:        "Token refresh attempts by result (success, failure, missing)",
		ConstLabels: m.constLabels,
	}, []string{"result"})

	m.refreshShared = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "token_refresh_shared_total",
		Help:        "Callers that joined an in-flight token refresh instead of starting one",
		ConstLabels: m.constLabels,
	})

	m.sessionExpired = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "session_expired_total",
		Help:        "Forced logouts after a failed or impossible refresh",
		ConstLabels: m.constLabels,
	})

	m.logins = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "logins_total",
		Help:        "Login attempts by result",
		ConstLabels: m.constLabels,
	}, []string{"result"})

	m.logouts = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "logouts_total",
		Help:        "Local logouts",
		ConstLabels: m.constLabels,
	})

	m.updateChecks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "update_checks_total",
		Help:        "Desktop update checks by result (available, none, error)",
		ConstLabels: m.constLabels,
	}, []string{"result"})

	m.updateInstalls = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "update_installs_total",
		Help:        "Desktop update installs by result",
		ConstLabels: m.constLabels,
	}, []string{"result"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "stub",
		Name:        "http_requests_total",
		Help:        "Stub backend HTTP requests by endpoint, method and status code",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "stub",
		Name:        "http_request_duration_milliseconds",
		Help:        "Stub backend HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordAPIRequest counts an outbound API request.
func RecordAPIRequest(resource, method, statusCode string) {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.apiRequests.WithLabelValues(resource, method, statusCode).Inc()
}

// RecordAPIRequestDuration observes an outbound API request duration.
func RecordAPIRequestDuration(resource, method, statusCode string, durationMs float64) {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.apiRequestDuration.WithLabelValues(resource, method, statusCode).Observe(durationMs)
}

// RecordRequestRetry counts a request resubmitted after refresh.
func RecordRequestRetry() {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.apiRetries.Inc()
}

// RecordTokenRefresh counts a refresh attempt; result is success, failure or missing.
func RecordTokenRefresh(result string) {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.tokenRefreshes.WithLabelValues(result).Inc()
}

// RecordRefreshShared counts a caller that joined an in-flight refresh.
func RecordRefreshShared() {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.refreshShared.Inc()
}

// RecordSessionExpired counts a forced logout.
func RecordSessionExpired() {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.sessionExpired.Inc()
}

// RecordLogin counts a login attempt.
func RecordLogin(result string) {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

// RecordLogout counts a local logout.
func RecordLogout() {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.logouts.Inc()
}

// RecordUpdateCheck counts an update check.
func RecordUpdateCheck(result string) {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.updateChecks.WithLabelValues(result).Inc()
}

// RecordUpdateInstall counts an update install.
func RecordUpdateInstall(result string) {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.updateInstalls.WithLabelValues(result).Inc()
}

// RecordHTTPRequest counts a stub backend request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes a stub backend request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	m := globalManager.Load()
	if !m.enabled {
		return
	}
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the registry backing the package-level metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry.Load()
}
