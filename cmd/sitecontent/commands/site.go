package commands

import (
	"path/filepath"

	"git.home.luguber.info/inful/sitecontent/internal/content"
	"git.home.luguber.info/inful/sitecontent/internal/logfields"
	"git.home.luguber.info/inful/sitecontent/internal/reader"
	"git.home.luguber.info/inful/sitecontent/internal/settings"
)

// item is one content file of the site.
type item struct {
	source  string
	content *content.Content
}

// site is every file given on the command line, indexed for link rewriting.
type site struct {
	settings *settings.Settings
	context  *content.Context
	items    []item
	statics  []*content.StaticContent
}

// buildSite reads files, constructs content and fills the filename index.
// Unreadable files are logged and skipped. Files without a renderer are
// treated as static files.
func buildSite(g *Global, s *settings.Settings, files []string, defaultKind content.Kind, siteURL string) *site {
	if siteURL == "" {
		siteURL = s.SiteURL
	}
	st := &site{settings: s, context: content.NewContext(siteURL)}

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			abs = file
		}
		rel := content.RelativePath(s.Path, abs)

		if !reader.Supported(abs) {
			static := content.NewStatic(rel, "", s)
			st.statics = append(st.statics, static)
			st.context.Register(rel, static)
			continue
		}

		doc, err := reader.ReadFile(abs)
		if err != nil {
			g.Logger.Error("Skipping unreadable file", logfields.File(file), logfields.Error(err))
			continue
		}
		kind := defaultKind
		if raw, ok := doc.Metadata["kind"].(string); ok {
			if k, err := content.ParseKind(raw); err == nil {
				kind = k
			} else {
				g.Logger.Warn("Unknown content kind, using default", logfields.File(file), logfields.Value(raw))
			}
		}

		c := content.New(kind, doc.HTML, doc.Metadata,
			content.WithSettings(s),
			content.WithFilename(abs),
			content.WithContext(st.context),
			content.WithLogger(g.Logger),
			content.WithRecorder(g.Recorder),
		)
		st.context.Register(rel, c)
		st.items = append(st.items, item{source: file, content: c})
	}

	linkTranslations(st.items)
	g.Logger.Debug("Site indexed", logfields.Count(st.context.Len()))
	return st
}

// linkTranslations links items sharing a slug but not a language.
func linkTranslations(items []item) {
	bySlug := map[string][]*content.Content{}
	for _, it := range items {
		if slug := it.content.Slug(); slug != "" {
			bySlug[slug] = append(bySlug[slug], it.content)
		}
	}
	for _, group := range bySlug {
		for _, a := range group {
			for _, b := range group {
				if a != b && a.Lang() != b.Lang() {
					a.AddTranslation(b)
				}
			}
		}
	}
}
