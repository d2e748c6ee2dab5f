package app

import (
	"github.com/okian/proinvestix/internal/config"
	"github.com/okian/proinvestix/pkg/metrics"
)

// MetricsOptions maps the metrics_* settings onto manager options.
func MetricsOptions(cfg *config.Config) []metrics.Option {
	return []metrics.Option{
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithSubsystem(cfg.MetricsSubsystem),
		metrics.WithHistogramBuckets(cfg.MetricsBucketsMS),
		metrics.WithConstLabels(cfg.MetricsLabels),
	}
}

// ConfigureMetrics installs a package-level metrics manager built from cfg.
func ConfigureMetrics(cfg *config.Config) {
	metrics.Configure(MetricsOptions(cfg)...)
}
