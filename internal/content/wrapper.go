package content

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/text/cases"

	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecontent/internal/logfields"
	"git.home.luguber.info/inful/sitecontent/internal/settings"
	"git.home.luguber.info/inful/sitecontent/internal/slugify"
	"git.home.luguber.info/inful/sitecontent/internal/urlformat"
)

// WrapperKind names the taxonomy a URLWrapper belongs to. It is also the
// settings prefix: CATEGORY_URL, TAG_SAVE_AS, AUTHOR_URL.
type WrapperKind string

const (
	WrapperCategory WrapperKind = "category"
	WrapperTag      WrapperKind = "tag"
	WrapperAuthor   WrapperKind = "author"
)

// TemplateKind selects which URL template a wrapper renders.
type TemplateKind int

const (
	TemplateURL TemplateKind = iota
	TemplateSaveAs
	// TemplatePageName renders the URL template with its extension removed,
	// so "category/{slug}.html" yields "category/go". Used for pagination.
	TemplatePageName
)

func (t TemplateKind) settingSuffix() string {
	if t == TemplateSaveAs {
		return "SAVE_AS"
	}
	return "URL"
}

func (t TemplateKind) String() string {
	switch t {
	case TemplateSaveAs:
		return "save_as"
	case TemplatePageName:
		return "page_name"
	default:
		return "url"
	}
}

// URLWrapper is a named taxonomy entry with its own URL templates.
//
// Identity is the name alone, compared case-insensitively. Slug, settings
// and kind do not take part: a Tag "Go" from one article and a Tag "go"
// from another are the same key in every set and map built from Key.
type URLWrapper struct {
	name     string
	slug     string
	kind     WrapperKind
	settings *settings.Settings
	logger   *slog.Logger
}

// Category groups articles.
type Category struct{ URLWrapper }

// Tag labels content. Names are trimmed of surrounding whitespace.
type Tag struct{ URLWrapper }

// Author is the writer of a content item.
type Author struct{ URLWrapper }

func newURLWrapper(kind WrapperKind, name string, s *settings.Settings) URLWrapper {
	if s == nil {
		s = settings.Defaults()
	}
	return URLWrapper{
		name:     name,
		slug:     slugify.Slugify(name),
		kind:     kind,
		settings: s,
		logger:   slog.Default(),
	}
}

// NewCategory creates a Category. A nil settings means Defaults().
func NewCategory(name string, s *settings.Settings) *Category {
	return &Category{newURLWrapper(WrapperCategory, name, s)}
}

// NewTag creates a Tag from a whitespace-trimmed name.
func NewTag(name string, s *settings.Settings) *Tag {
	return &Tag{newURLWrapper(WrapperTag, strings.TrimSpace(name), s)}
}

// NewAuthor creates an Author.
func NewAuthor(name string, s *settings.Settings) *Author {
	return &Author{newURLWrapper(WrapperAuthor, name, s)}
}

// Name returns the display name.
func (w *URLWrapper) Name() string {
	if w == nil {
		return ""
	}
	return w.name
}

// Slug returns the URL-safe form of the name.
func (w *URLWrapper) Slug() string {
	if w == nil {
		return ""
	}
	return w.slug
}

// Kind returns the taxonomy kind.
func (w *URLWrapper) Kind() WrapperKind { return w.kind }

func (w *URLWrapper) String() string { return w.Name() }

// Key is the identity used for equality and deduplication.
func (w *URLWrapper) Key() string {
	return cases.Fold().String(w.Name())
}

// Equal reports whether both wrappers carry the same name.
func (w *URLWrapper) Equal(other interface{ Key() string }) bool {
	if other == nil {
		return false
	}
	return w.Key() == other.Key()
}

// AsMap exposes the fields URL templates may reference.
func (w *URLWrapper) AsMap() map[string]any {
	return map[string]any{"name": w.name, "slug": w.slug}
}

func (w *URLWrapper) setLogger(l *slog.Logger) {
	if l != nil {
		w.logger = l
	}
}

// URLValue returns the configured value for tk. String settings are
// expanded with {name} and {slug}. Any other value (false to disable a
// taxonomy page, for instance) is returned as is after a warning.
func (w *URLWrapper) URLValue(tk TemplateKind) (any, error) {
	setting := strings.ToUpper(string(w.kind)) + "_" + tk.settingSuffix()
	raw, ok := w.settings.Lookup(setting)
	if !ok {
		return nil, ferrors.ConfigError("missing URL template setting").
			WithContext(logfields.KeySetting, setting).
			WithContext(logfields.KeyKind, string(w.kind)).
			Build()
	}
	tmpl, isString := raw.(string)
	if !isString {
		w.logger.Warn("URL setting is not a template, passing value through",
			logfields.Setting(setting),
			logfields.Value(raw),
			logfields.Kind(string(w.kind)))
		return raw, nil
	}
	if tk == TemplatePageName {
		tmpl = strings.TrimSuffix(tmpl, path.Ext(tmpl))
	}
	out, err := urlformat.Expand(tmpl, w.AsMap())
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "cannot expand URL template").
			WithContext(logfields.KeySetting, setting).
			WithContext("template", tmpl).
			Build()
	}
	return out, nil
}

// URL renders the <KIND>_URL template.
func (w *URLWrapper) URL() (string, error) { return w.text(TemplateURL) }

// SaveAs renders the <KIND>_SAVE_AS template.
func (w *URLWrapper) SaveAs() (string, error) { return w.text(TemplateSaveAs) }

// PageName renders the <KIND>_URL template without its extension.
func (w *URLWrapper) PageName() (string, error) { return w.text(TemplatePageName) }

func (w *URLWrapper) text(tk TemplateKind) (string, error) {
	v, err := w.URLValue(tk)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		if !t {
			return "", nil
		}
	}
	return fmt.Sprint(v), nil
}
