package content

import (
	"strings"

	"git.home.luguber.info/inful/sitecontent/internal/foundation/normalization"
)

// Kind selects the settings prefix, default template and mandatory fields
// of a Content value.
type Kind string

const (
	KindPage    Kind = "page"
	KindArticle Kind = "article"
	KindQuote   Kind = "quote"
)

type kindSpec struct {
	defaultTemplate string
	mandatory       []string
	// informational only, never validated
	base []string
}

var kindSpecs = map[Kind]kindSpec{
	KindPage:    {defaultTemplate: "page", mandatory: []string{"title"}},
	KindArticle: {defaultTemplate: "article", mandatory: []string{"title", "date", "category"}},
	KindQuote:   {defaultTemplate: "page", mandatory: []string{"title"}, base: []string{"author", "date"}},
}

var kindNormalizer = normalization.NewNormalizer(map[string]Kind{
	"page":    KindPage,
	"pages":   KindPage,
	"article": KindArticle,
	"post":    KindArticle,
	"quote":   KindQuote,
}, KindPage)

// ParseKind maps a user supplied kind name to a Kind.
func ParseKind(raw string) (Kind, error) {
	return kindNormalizer.NormalizeWithError(raw)
}

// DefaultTemplate is used when the metadata carries no template.
func (k Kind) DefaultTemplate() string {
	return k.spec().defaultTemplate
}

// MandatoryProperties lists the fields CheckProperties requires, in
// declaration order.
func (k Kind) MandatoryProperties() []string {
	return append([]string(nil), k.spec().mandatory...)
}

// BaseProperties lists fields a kind conventionally carries without
// requiring them.
func (k Kind) BaseProperties() []string {
	return append([]string(nil), k.spec().base...)
}

func (k Kind) settingPrefix() string {
	return strings.ToUpper(string(k))
}

func (k Kind) spec() kindSpec {
	if s, ok := kindSpecs[k]; ok {
		return s
	}
	return kindSpecs[KindPage]
}
