// Package metrics provides observability hooks for the content model.
//
// Components receive a Recorder through their options. NoopRecorder is the
// default, so callers never need nil checks; PrometheusRecorder registers
// counters on a caller-supplied registry:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	page := content.NewPage(html, meta, content.WithRecorder(rec))
package metrics
