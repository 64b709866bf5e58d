package content

import (
	"bytes"
	"log/slog"
	"sync"
	"time"

	"git.home.luguber.info/inful/sitecontent/internal/metrics"
	"git.home.luguber.info/inful/sitecontent/internal/settings"
)

var fixedNow = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testSettings(overrides map[string]any) *settings.Settings {
	s := settings.Defaults()
	for k, v := range overrides {
		s.Set(k, v)
	}
	return s
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

type countingRecorder struct {
	mu         sync.Mutex
	created    map[string]int
	invalid    map[string]int
	unresolved map[string]int
	rewrites   map[metrics.CacheLabel]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		created:    map[string]int{},
		invalid:    map[string]int{},
		unresolved: map[string]int{},
		rewrites:   map[metrics.CacheLabel]int{},
	}
}

func (r *countingRecorder) IncContentCreated(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created[kind]++
}

func (r *countingRecorder) IncValidationFailure(kind, field string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalid[kind+"/"+field]++
}

func (r *countingRecorder) IncUnresolvedReference(refKind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unresolved[refKind]++
}

func (r *countingRecorder) IncRewrite(result metrics.CacheLabel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rewrites[result]++
}

func (r *countingRecorder) ObserveRewriteDuration(time.Duration) {}

func (r *countingRecorder) rewriteCount(l metrics.CacheLabel) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rewrites[l]
}

// countingLink counts URL calls so tests can tell cached output from a rescan.
type countingLink struct {
	mu    sync.Mutex
	url   string
	err   error
	calls int
}

func (l *countingLink) URL() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.url, l.err
}
