package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	body := "<p>one two <b>three four five six</b> seven</p>"

	tests := []struct {
		name string
		max  int
		meta map[string]any
		want string
	}{
		{"explicit summary wins over truncation", 5, map[string]any{"summary": "<em>short</em>"}, "<em>short</em>"},
		{"truncates without breaking tags", 5, nil, "<p>one two <b>three four five ...</b></p>"},
		{"short content is not truncated", 50, nil, body},
		{"zero disables truncation", 0, nil, body},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings(nil)
			s.SummaryMaxLength = tt.max
			c := NewArticle(body, tt.meta, WithSettings(s))
			assert.Equal(t, tt.want, c.Summary())
		})
	}
}

func TestSummary_UsesRewrittenContentAndIgnoresSet(t *testing.T) {
	ctx := NewContext("")
	ctx.Register("a.md", NewPage("", map[string]any{"title": "A"}))
	s := testSettings(nil)
	s.SummaryMaxLength = 1

	c := NewPage(`<a href="|filename|/a.md">first</a> second`, nil, WithSettings(s), WithContext(ctx))
	c.SetSummary("ignored")
	assert.Equal(t, `<a href="pages/a.html">first ...</a>`, c.Summary())
}
