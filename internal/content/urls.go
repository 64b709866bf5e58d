package content

import (
	"path"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecontent/internal/logfields"
	"git.home.luguber.info/inful/sitecontent/internal/urlformat"
)

// URL renders <KIND>_URL, or <KIND>_LANG_URL outside the default language.
func (c *Content) URL() (string, error) { return c.urlSetting("URL") }

// SaveAs renders <KIND>_SAVE_AS, or <KIND>_LANG_SAVE_AS outside the default
// language.
func (c *Content) SaveAs() (string, error) { return c.urlSetting("SAVE_AS") }

// URLParams are the values URL templates may reference. Besides slug,
// lang, date, author and category every metadata key is available.
func (c *Content) URLParams() urlformat.Params {
	p := make(urlformat.Params, len(c.metadata)+5)
	for k, v := range c.metadata {
		p[k] = v
	}
	p["slug"] = c.slug
	p["lang"] = c.lang
	if c.lang == "" {
		p["lang"] = "en"
	}
	if c.date != nil {
		p["date"] = *c.date
	} else {
		p["date"] = c.now()
	}
	p["author"] = ""
	if c.author != nil {
		p["author"] = c.author.Name()
	}
	p["category"] = c.settings.DefaultCategory
	if c.category != nil {
		p["category"] = c.category.Name()
	}
	return p
}

func (c *Content) urlSetting(key string) (string, error) {
	name := c.kind.settingPrefix() + "_" + key
	if !c.inDefaultLang {
		name = c.kind.settingPrefix() + "_LANG_" + key
	}
	raw, ok := c.settings.Lookup(name)
	if !ok {
		return "", ferrors.ConfigError("missing URL template setting").
			WithContext(logfields.KeySetting, name).
			WithContext(logfields.KeyKind, string(c.kind)).
			Build()
	}
	tmpl, ok := raw.(string)
	if !ok {
		return "", ferrors.ConfigError("URL template setting is not a string").
			WithContext(logfields.KeySetting, name).
			WithContext(logfields.KeyValue, raw).
			Build()
	}
	out, err := urlformat.Expand(tmpl, c.URLParams())
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryConfig, "cannot expand URL template").
			WithContext(logfields.KeySetting, name).
			WithContext("template", tmpl).
			Build()
	}
	return out, nil
}

// RelativeFilename returns name relative to the PATH setting, slash
// separated. An empty name means the content's own filename. Relative
// names are taken as relative to PATH, so the result does not depend on the
// working directory.
func (c *Content) RelativeFilename(name string) string {
	if name == "" {
		name = c.filename
	}
	return RelativePath(c.settings.Path, name)
}

// RelativeDir is the directory part of RelativeFilename(""), or "" for
// files at the content root.
func (c *Content) RelativeDir() string {
	if c.filename == "" {
		return ""
	}
	dir := path.Dir(c.RelativeFilename(""))
	if dir == "." {
		return ""
	}
	return dir
}

// RelativePath returns name relative to root, slash separated. A relative
// name is joined to root first.
func RelativePath(root, name string) string {
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(root, filepath.FromSlash(name))
	}
	if filepath.IsAbs(name) && !filepath.IsAbs(root) {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(name))
	if err != nil {
		return filepath.ToSlash(filepath.Clean(name))
	}
	return filepath.ToSlash(rel)
}
