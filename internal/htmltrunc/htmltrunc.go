// Package htmltrunc shortens HTML fragments to a word budget while keeping
// the markup well formed.
package htmltrunc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// DefaultEndText is appended after the last kept word.
const DefaultEndText = "..."

// wordRe matches character entities (skipped) and words (group 1).
var wordRe = regexp.MustCompile(`&[^;\s]*;|([\p{L}\p{N}_][\p{L}\p{N}_-]*)`)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Words truncates s after n words. When truncation happens, " "+endText is
// appended and every element still open at the cut point is closed, newest
// first. If s has n words or fewer it is returned unchanged.
func Words(s string, n int, endText string) string {
	if n <= 0 {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var (
		out   strings.Builder
		open  []string
		words int
	)

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer error: either way the budget was never exceeded.
			return s
		case html.TextToken:
			raw := string(z.Raw())
			if words >= n {
				if hasWord(raw) {
					return finish(out.String(), open, endText)
				}
				continue
			}
			cut := -1
			for _, m := range wordRe.FindAllStringSubmatchIndex(raw, -1) {
				if m[2] < 0 {
					continue
				}
				if words == n {
					return finish(out.String()+raw[:cut], open, endText)
				}
				words++
				if words == n {
					cut = m[3]
				}
			}
			if cut >= 0 {
				out.WriteString(raw[:cut])
			} else {
				out.WriteString(raw)
			}
		case html.StartTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			tag := string(name)
			if words < n {
				out.WriteString(raw)
				if !voidElements[tag] {
					open = append(open, tag)
				}
			}
		case html.EndTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			if words < n {
				out.WriteString(raw)
				open = closeTag(open, string(name))
			}
		default:
			if words < n {
				out.Write(z.Raw())
			}
		}
	}
}

func hasWord(text string) bool {
	for _, m := range wordRe.FindAllStringSubmatchIndex(text, -1) {
		if m[2] >= 0 {
			return true
		}
	}
	return false
}

// closeTag pops the innermost open element named tag and anything opened after it.
func closeTag(open []string, tag string) []string {
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == tag {
			return open[:i]
		}
	}
	return open
}

func finish(prefix string, open []string, endText string) string {
	var b strings.Builder
	b.WriteString(prefix)
	if endText != "" {
		b.WriteString(" ")
		b.WriteString(endText)
	}
	for i := len(open) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(open[i])
		b.WriteString(">")
	}
	return b.String()
}
