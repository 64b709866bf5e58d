// Package settings holds the configuration snapshot the content model reads:
// content and output roots, metadata defaults, date formats and the
// per-entity URL templates (ARTICLE_URL, TAG_SAVE_AS, ...).
package settings

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is a read-only snapshot once handed to content constructors.
// Keys follow the upper-case convention of the YAML settings file; anything
// not modelled as a field (URL templates, theme values) lands in Extra.
type Settings struct {
	Path              string                `yaml:"PATH"`
	OutputPath        string                `yaml:"OUTPUT_PATH"`
	SiteURL           string                `yaml:"SITEURL"`
	DefaultMetadata   map[string]any        `yaml:"DEFAULT_METADATA"`
	DefaultCategory   string                `yaml:"DEFAULT_CATEGORY"`
	DefaultStatus     string                `yaml:"DEFAULT_STATUS"`
	DefaultDateFormat DateFormat            `yaml:"DEFAULT_DATE_FORMAT"`
	DateFormats       map[string]DateFormat `yaml:"DATE_FORMATS"`
	WithFutureDates   bool                  `yaml:"WITH_FUTURE_DATES"`
	SummaryMaxLength  int                   `yaml:"SUMMARY_MAX_LENGTH"`
	Author            string                `yaml:"AUTHOR"`
	DefaultLang       string                `yaml:"DEFAULT_LANG"`

	Extra map[string]any `yaml:",inline"`
}

// DateFormat is either a bare strftime format or a (locale, format) pair.
// In YAML: `"%d %B %Y"` or `["fr_FR.UTF-8", "%A %d %B %Y"]`.
type DateFormat struct {
	Locale string
	Format string
}

// IsZero reports whether neither locale nor format is set.
func (d DateFormat) IsZero() bool { return d.Locale == "" && d.Format == "" }

// UnmarshalYAML accepts a scalar or a two element sequence.
func (d *DateFormat) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		d.Locale = ""
		d.Format = node.Value
		return nil
	case yaml.SequenceNode:
		var pair []string
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return &yaml.TypeError{Errors: []string{"date format pair must have exactly two elements: [locale, format]"}}
		}
		d.Locale, d.Format = pair[0], pair[1]
		return nil
	default:
		return &yaml.TypeError{Errors: []string{"date format must be a string or a [locale, format] pair"}}
	}
}

// MarshalYAML mirrors UnmarshalYAML.
func (d DateFormat) MarshalYAML() (any, error) {
	if d.Locale == "" {
		return d.Format, nil
	}
	return []string{d.Locale, d.Format}, nil
}

// Defaults returns a fresh copy of the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Path:              ".",
		OutputPath:        "output/",
		DefaultMetadata:   map[string]any{},
		DefaultCategory:   "misc",
		DefaultStatus:     "published",
		DefaultDateFormat: DateFormat{Format: "%a %d %B %Y"},
		DateFormats:       map[string]DateFormat{},
		WithFutureDates:   true,
		SummaryMaxLength:  50,
		DefaultLang:       "en",
		Extra: map[string]any{
			"SITENAME":             "A sitecontent site",
			"ARTICLE_URL":          "{slug}.html",
			"ARTICLE_SAVE_AS":      "{slug}.html",
			"ARTICLE_LANG_URL":     "{slug}-{lang}.html",
			"ARTICLE_LANG_SAVE_AS": "{slug}-{lang}.html",
			"PAGE_URL":             "pages/{slug}.html",
			"PAGE_SAVE_AS":         "pages/{slug}.html",
			"PAGE_LANG_URL":        "pages/{slug}-{lang}.html",
			"PAGE_LANG_SAVE_AS":    "pages/{slug}-{lang}.html",
			"CATEGORY_URL":         "category/{slug}.html",
			"CATEGORY_SAVE_AS":     "category/{slug}.html",
			"TAG_URL":              "tag/{slug}.html",
			"TAG_SAVE_AS":          "tag/{slug}.html",
			"AUTHOR_URL":           "author/{slug}.html",
			"AUTHOR_SAVE_AS":       "author/{slug}.html",
		},
	}
}

// Lookup returns the raw value of an Extra setting. Keys are matched
// upper-cased, so "article_url" finds ARTICLE_URL.
func (s *Settings) Lookup(key string) (any, bool) {
	if s == nil || s.Extra == nil {
		return nil, false
	}
	v, ok := s.Extra[strings.ToUpper(key)]
	return v, ok
}

// Set stores an Extra setting under its upper-cased key.
func (s *Settings) Set(key string, value any) {
	if s.Extra == nil {
		s.Extra = map[string]any{}
	}
	s.Extra[strings.ToUpper(key)] = value
}

// DateFormatFor returns the per-language format if one is configured.
func (s *Settings) DateFormatFor(lang string) (DateFormat, bool) {
	if s == nil {
		return DateFormat{}, false
	}
	f, ok := s.DateFormats[lang]
	return f, ok
}

// Clone returns a deep copy so callers can override values without touching
// a shared snapshot.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := *s
	out.DefaultMetadata = cloneMap(s.DefaultMetadata)
	out.Extra = cloneMap(s.Extra)
	if s.DateFormats != nil {
		out.DateFormats = make(map[string]DateFormat, len(s.DateFormats))
		for k, v := range s.DateFormats {
			out.DateFormats[k] = v
		}
	}
	return &out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
