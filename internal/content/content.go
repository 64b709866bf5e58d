package content

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"git.home.luguber.info/inful/sitecontent/internal/datefmt"
	"git.home.luguber.info/inful/sitecontent/internal/logfields"
	"git.home.luguber.info/inful/sitecontent/internal/metrics"
	"git.home.luguber.info/inful/sitecontent/internal/settings"
	"git.home.luguber.info/inful/sitecontent/internal/slugify"
)

// Content is a page, article or quote. Everything except the rewrite cache
// is fixed at construction.
type Content struct {
	kind     Kind
	raw      string
	metadata map[string]any
	settings *settings.Settings
	filename string
	ctx      *Context
	now      func() time.Time
	logger   *slog.Logger
	recorder metrics.Recorder

	template      string
	author        *Author
	category      *Category
	tags          []*Tag
	lang          string
	inDefaultLang bool
	slug          string
	date          *time.Time
	dateFormat    string
	dateLocale    datefmt.Locale
	localeDate    string
	status        settings.Status
	summary       *string
	translations  []*Content

	mu        sync.Mutex
	rewritten map[string]string
}

// New builds a Content of the given kind from rendered HTML and metadata.
// It never fails: missing mandatory fields are reported by CheckProperties.
func New(kind Kind, raw string, metadata map[string]any, opts ...Option) *Content {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := o.settings
	if s == nil {
		s = settings.Defaults()
	} else {
		s = s.Clone()
	}

	c := &Content{
		kind:      kind,
		raw:       raw,
		settings:  s,
		filename:  o.filename,
		ctx:       o.ctx,
		now:       o.now,
		recorder:  o.recorder,
		rewritten: make(map[string]string),
	}
	c.logger = o.logger.With(logfields.Kind(string(kind)))
	if c.filename != "" {
		c.logger = c.logger.With(logfields.File(c.filename))
	}

	c.metadata = mergeMetadata(s.DefaultMetadata, metadata)
	c.normalizeMetadata()
	c.resolveTemplate()
	c.resolveAuthor()
	c.resolveLang()
	c.resolveSlug()
	c.resolveDateFormat()
	c.resolveLocaleDate()
	c.resolveStatus()
	if v, ok := lowerKeyed(metadata)["summary"]; ok {
		if text, ok := stringValue(v); ok {
			c.summary = &text
		}
	}

	c.recorder.IncContentCreated(string(kind))
	for _, hook := range o.hooks {
		hook(c)
	}
	return c
}

// NewPage builds a Page.
func NewPage(raw string, metadata map[string]any, opts ...Option) *Content {
	return New(KindPage, raw, metadata, opts...)
}

// NewArticle builds an Article.
func NewArticle(raw string, metadata map[string]any, opts ...Option) *Content {
	return New(KindArticle, raw, metadata, opts...)
}

// NewQuote builds a Quote.
func NewQuote(raw string, metadata map[string]any, opts ...Option) *Content {
	return New(KindQuote, raw, metadata, opts...)
}

// normalizeMetadata turns the well-known keys into typed fields. The raw
// metadata entries are left in place for Get.
func (c *Content) normalizeMetadata() {
	if v, ok := c.metadata["date"]; ok && v != nil {
		d, err := ParseDate(v)
		if err != nil {
			c.logger.Warn("Ignoring unparseable date", logfields.Value(v), logfields.Error(err))
		} else {
			c.date = &d
		}
	}
	if v, ok := c.metadata["author"]; ok {
		c.author = toAuthor(v, c.settings, c.logger)
	}
	if v, ok := c.metadata["category"]; ok {
		c.category = toCategory(v, c.settings, c.logger)
	}
	if v, ok := c.metadata["tags"]; ok {
		c.tags = toTags(v, c.settings, c.logger)
	}
}

func (c *Content) resolveTemplate() {
	if name, ok := stringValue(c.metadata["template"]); ok && name != "" {
		c.template = name
		return
	}
	c.template = c.kind.DefaultTemplate()
}

func (c *Content) resolveAuthor() {
	if _, given := c.metadata["author"]; !given && c.settings.Author != "" {
		c.author = toAuthor(c.settings.Author, c.settings, c.logger)
	}
}

func (c *Content) resolveLang() {
	if lang, ok := stringValue(c.metadata["lang"]); ok {
		c.lang = lang
	}
	def := strings.ToLower(c.settings.DefaultLang)
	if def == "" {
		c.inDefaultLang = true
		return
	}
	if c.lang == "" {
		c.lang = def
	}
	c.inDefaultLang = strings.ToLower(c.lang) == def
}

func (c *Content) resolveSlug() {
	if slug, ok := stringValue(c.metadata["slug"]); ok && slug != "" {
		c.slug = slug
		return
	}
	if title, ok := c.Title(); ok {
		c.slug = slugify.Slugify(title)
	}
}

// resolveDateFormat picks explicit metadata, then DATE_FORMATS[lang], then
// DEFAULT_DATE_FORMAT. A locale pair selects the names used by datefmt.
func (c *Content) resolveDateFormat() {
	df, ok := toDateFormat(c.metadata["date_format"])
	if !ok {
		df, ok = c.settings.DateFormatFor(c.lang)
	}
	if !ok {
		df = c.settings.DefaultDateFormat
	}
	c.dateFormat = df.Format
	c.dateLocale = datefmt.C
	if df.Locale != "" {
		loc, supported := datefmt.ParseLocale(df.Locale)
		if !supported {
			c.logger.Warn("Unsupported date locale, using C", logfields.Value(df.Locale))
		}
		c.dateLocale = loc
	}
}

func (c *Content) resolveLocaleDate() {
	if c.date != nil {
		c.localeDate = datefmt.Format(*c.date, c.dateFormat, c.dateLocale)
	}
}

func (c *Content) resolveStatus() {
	if raw, ok := stringValue(c.metadata["status"]); ok && raw != "" {
		c.status = settings.Status(strings.ToLower(strings.TrimSpace(raw)))
		return
	}
	c.status = c.settings.Status()
	if !c.settings.WithFutureDates && c.date != nil && c.date.After(c.now()) {
		c.status = settings.StatusDraft
	}
}

func lowerKeyed(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

// Kind returns the content kind.
func (c *Content) Kind() Kind { return c.kind }

// Raw returns the body exactly as given to New.
func (c *Content) Raw() string { return c.raw }

// Settings returns the snapshot the content was built with.
func (c *Content) Settings() *settings.Settings { return c.settings }

// Filename returns the source path, if any.
func (c *Content) Filename() string { return c.filename }

// Metadata returns a copy of the merged metadata.
func (c *Content) Metadata() map[string]any {
	out := make(map[string]any, len(c.metadata))
	for k, v := range c.metadata {
		out[k] = v
	}
	return out
}

// Title reports the title and whether the title key was given. A null
// title is present and renders as "".
func (c *Content) Title() (string, bool) {
	v, ok := c.metadata["title"]
	if !ok {
		return "", false
	}
	title, _ := stringValue(v)
	return title, true
}

// Template is the explicit template or the kind's default.
func (c *Content) Template() string { return c.template }

// Author is the metadata author, or AUTHOR from settings.
func (c *Content) Author() *Author { return c.author }

func (c *Content) Category() *Category { return c.category }

func (c *Content) Lang() string { return c.lang }

// InDefaultLang selects between <KIND>_URL and <KIND>_LANG_URL.
func (c *Content) InDefaultLang() bool { return c.inDefaultLang }

func (c *Content) Slug() string { return c.slug }

// DateFormat is the strftime format chosen for LocaleDate.
func (c *Content) DateFormat() string { return c.dateFormat }

func (c *Content) DateLocale() datefmt.Locale { return c.dateLocale }

// LocaleDate is the date rendered with DateFormat, empty without a date.
func (c *Content) LocaleDate() string { return c.localeDate }

func (c *Content) Status() settings.Status { return c.status }

// Tags returns the deduplicated tags in metadata order.
func (c *Content) Tags() []*Tag {
	return append([]*Tag(nil), c.tags...)
}

// Date returns the parsed date.
func (c *Content) Date() (time.Time, bool) {
	if c.date == nil {
		return time.Time{}, false
	}
	return *c.date, true
}

// Get looks up a field by name. Derived fields take precedence over the
// metadata entry of the same name.
func (c *Content) Get(key string) (any, bool) {
	key = strings.ToLower(key)
	switch key {
	case "template":
		return c.template, true
	case "lang":
		return c.lang, c.lang != ""
	case "in_default_lang":
		return c.inDefaultLang, true
	case "status":
		return string(c.status), true
	case "slug":
		return c.slug, c.slug != ""
	case "date_format":
		return c.dateFormat, true
	case "author":
		return c.author, c.author != nil
	case "category":
		return c.category, c.category != nil
	case "tags":
		return c.Tags(), c.tags != nil
	case "date":
		if c.date == nil {
			return nil, false
		}
		return *c.date, true
	case "locale_date":
		return c.localeDate, c.date != nil
	}
	v, ok := c.metadata[key]
	return v, ok
}

// has reports whether a mandatory field is present.
func (c *Content) has(field string) bool {
	_, ok := c.Get(field)
	return ok
}

// Translations lists the language variants linked to this content.
func (c *Content) Translations() []*Content {
	return append([]*Content(nil), c.translations...)
}

// AddTranslation links t as a language variant. The caller owns
// synchronisation; translations are wired before rendering starts.
func (c *Content) AddTranslation(t *Content) {
	if t == nil || t == c {
		return
	}
	c.translations = append(c.translations, t)
}

// TemplateData flattens the content into the values a template engine
// consumes: metadata, derived fields, url, save_as, content and summary.
func (c *Content) TemplateData() (map[string]any, error) {
	data := c.Metadata()
	for _, key := range []string{"template", "lang", "in_default_lang", "status", "slug",
		"date_format", "author", "category", "tags", "date", "locale_date"} {
		if v, ok := c.Get(key); ok {
			data[key] = v
		}
	}
	url, err := c.URL()
	if err != nil {
		return nil, err
	}
	saveAs, err := c.SaveAs()
	if err != nil {
		return nil, err
	}
	data["url"] = url
	data["save_as"] = saveAs
	data["content"] = c.HTML()
	data["summary"] = c.Summary()
	data["translations"] = c.Translations()
	return data, nil
}
