package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reloads        *prom.CounterVec
	reloadDuration prom.Histogram
	exportDuration *prom.HistogramVec
	exports        *prom.CounterVec
	configIssues   prom.Gauge
}

// NewPrometheusRecorder constructs and registers the docsite metrics on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "config_reloads_total",
			Help:      "Configuration reloads by outcome",
		}, []string{"result"}),
		reloadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docsite",
			Name:      "config_reload_duration_seconds",
			Help:      "Duration of configuration reloads including re-export",
			Buckets:   prom.DefBuckets,
		}),
		exportDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "docsite",
			Name:      "export_duration_seconds",
			Help:      "Duration of generator config exports",
			Buckets:   prom.DefBuckets,
		}, []string{"target"}),
		exports: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "exports_total",
			Help:      "Generator config exports by target and result",
		}, []string{"target", "result"}),
		configIssues: prom.NewGauge(prom.GaugeOpts{
			Namespace: "docsite",
			Name:      "config_issues",
			Help:      "Validation issues found in the last loaded configuration",
		}),
	}
	reg.MustRegister(pr.reloads, pr.reloadDuration, pr.exportDuration, pr.exports, pr.configIssues)
	return pr
}

func (p *PrometheusRecorder) IncReload(result ResultLabel) {
	if p == nil {
		return
	}
	p.reloads.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveReloadDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.reloadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveExportDuration(target string, d time.Duration) {
	if p == nil {
		return
	}
	p.exportDuration.WithLabelValues(target).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncExport(target string, success bool) {
	if p == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.exports.WithLabelValues(target, res).Inc()
}

func (p *PrometheusRecorder) SetConfigIssues(n int) {
	if p == nil {
		return
	}
	p.configIssues.Set(float64(n))
}
