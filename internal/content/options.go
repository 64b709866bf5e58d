package content

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitecontent/internal/metrics"
	"git.home.luguber.info/inful/sitecontent/internal/settings"
)

// InitHook observes a freshly constructed Content. Its result is never
// consulted.
type InitHook func(*Content)

// Option configures New.
type Option func(*options)

type options struct {
	settings *settings.Settings
	filename string
	ctx      *Context
	hooks    []InitHook
	now      func() time.Time
	logger   *slog.Logger
	recorder metrics.Recorder
}

func defaultOptions() options {
	return options{
		now:      time.Now,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
}

// WithSettings sets the settings snapshot. The value is cloned so later
// changes by the caller are not observed. Without it Defaults() is used.
func WithSettings(s *settings.Settings) Option {
	return func(o *options) { o.settings = s }
}

// WithFilename records the source path. Relative paths are taken relative
// to the PATH setting.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithContext attaches the site-wide filename index used for link rewriting.
func WithContext(ctx *Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithInitHook registers a hook fired at the end of construction.
func WithInitHook(h InitHook) Option {
	return func(o *options) {
		if h != nil {
			o.hooks = append(o.hooks, h)
		}
	}
}

// WithClock replaces time.Now for status and URL date defaults.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used for construction and rewrite diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}
