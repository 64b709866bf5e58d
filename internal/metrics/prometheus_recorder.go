package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitecontent"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	created         *prom.CounterVec
	validation      *prom.CounterVec
	unresolved      *prom.CounterVec
	rewrites        *prom.CounterVec
	rewriteDuration prom.Histogram
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil registry gets a private one, which keeps tests isolated.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		created: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "content_created_total",
			Help:      "Content entities constructed, by kind",
		}, []string{"kind"}),
		validation: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Entities skipped because a mandatory field was missing",
		}, []string{"kind", "field"}),
		unresolved: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "unresolved_references_total",
			Help:      "Intra-site references left unresolved during rewriting",
		}, []string{"ref_kind"}),
		rewrites: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "content_rewrites_total",
			Help:      "Content rewrite requests by cache result",
		}, []string{"result"}),
		rewriteDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "content_rewrite_duration_seconds",
			Help:      "Time spent rewriting a single entity's content",
			Buckets:   prom.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	reg.MustRegister(pr.created, pr.validation, pr.unresolved, pr.rewrites, pr.rewriteDuration)
	return pr
}

func (p *PrometheusRecorder) IncContentCreated(kind string) {
	if p == nil {
		return
	}
	p.created.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) IncValidationFailure(kind, field string) {
	if p == nil {
		return
	}
	p.validation.WithLabelValues(kind, field).Inc()
}

func (p *PrometheusRecorder) IncUnresolvedReference(refKind string) {
	if p == nil {
		return
	}
	p.unresolved.WithLabelValues(refKind).Inc()
}

func (p *PrometheusRecorder) IncRewrite(result CacheLabel) {
	if p == nil {
		return
	}
	p.rewrites.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRewriteDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.rewriteDuration.Observe(d.Seconds())
}
