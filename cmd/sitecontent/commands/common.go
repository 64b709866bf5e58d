package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"git.home.luguber.info/inful/sitecontent/internal/logfields"
	"git.home.luguber.info/inful/sitecontent/internal/metrics"
	"git.home.luguber.info/inful/sitecontent/internal/settings"
)

// Global is shared by every command of a run.
type Global struct {
	Logger   *slog.Logger
	RunID    string
	Registry *prometheus.Registry
	Recorder metrics.Recorder
	Out      io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Settings file (YAML). Built-in defaults are used when empty"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format" default:"text" enum:"text,json"`
	Metrics   bool             `help:"Print the Prometheus metrics gathered during the run"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Inspect  InspectCmd  `cmd:"" help:"Show derived fields, URLs and summaries of content files"`
	Validate ValidateCmd `cmd:"" help:"Check mandatory properties of content files"`
	Settings SettingsCmd `cmd:"" help:"Print the effective settings as YAML"`
}

// AfterApply runs after flag parsing; sets up logging and metrics once.
func (c *CLI) AfterApply(g *Global) error {
	level := "info"
	if c.Verbose {
		level = "debug"
	}
	g.RunID = uuid.NewString()
	g.Logger = settings.NewLogger(os.Stderr, level, c.LogFormat).With(logfields.RunID(g.RunID))
	slog.SetDefault(g.Logger)

	g.Registry = prometheus.NewRegistry()
	g.Recorder = metrics.NewPrometheusRecorder(g.Registry)
	if g.Out == nil {
		g.Out = os.Stdout
	}
	return nil
}

// LoadSettings reads --config, or returns the defaults.
func (c *CLI) LoadSettings() (*settings.Settings, error) {
	if c.Config == "" {
		return settings.Defaults(), nil
	}
	return settings.Load(c.Config)
}

// finish prints metrics when requested.
func (c *CLI) finish(g *Global) error {
	if !c.Metrics {
		return nil
	}
	return g.WriteMetrics(g.Out)
}

// WriteMetrics writes every gathered metric family in the text exposition
// format.
func (g *Global) WriteMetrics(w io.Writer) error {
	families, err := g.Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
