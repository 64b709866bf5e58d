// Package slugify turns titles and taxonomy names into URL-safe slugs.
package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonWord matches anything that is not a word character, whitespace or hyphen.
	nonWord = regexp.MustCompile(`[^\w\s-]`)
	// separators collapses runs of hyphens and whitespace.
	separators = regexp.MustCompile(`[-\s]+`)
)

// Slugify normalizes value to a lower-case, hyphen separated ASCII slug.
// Accents are decomposed and dropped, remaining non-ASCII text is
// transliterated, punctuation is removed. Slugify is idempotent.
func Slugify(value string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, value); err == nil {
		value = out
	}
	value = unidecode.Unidecode(value)
	value = nonWord.ReplaceAllString(value, "")
	value = strings.ToLower(strings.TrimSpace(value))
	value = separators.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}
