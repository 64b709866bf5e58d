package metrics

import "time"

// CacheLabel distinguishes rewrite cache hits from fresh rewrites.
type CacheLabel string

const (
	CacheHit  CacheLabel = "hit"
	CacheMiss CacheLabel = "miss"
)

// Recorder defines observability hooks for content construction, validation
// and link rewriting. Implementations must be safe for concurrent use.
type Recorder interface {
	IncContentCreated(kind string)
	IncValidationFailure(kind, field string)
	IncUnresolvedReference(refKind string)
	IncRewrite(result CacheLabel)
	ObserveRewriteDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncContentCreated(string)             {}
func (NoopRecorder) IncValidationFailure(string, string)  {}
func (NoopRecorder) IncUnresolvedReference(string)        {}
func (NoopRecorder) IncRewrite(CacheLabel)                {}
func (NoopRecorder) ObserveRewriteDuration(time.Duration) {}
