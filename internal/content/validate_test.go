package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
)

func TestCheckProperties(t *testing.T) {
	date := time.Date(2012, time.March, 4, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		kind      Kind
		meta      map[string]any
		wantField string
	}{
		{"page with title", KindPage, map[string]any{"title": "T"}, ""},
		{"page without title", KindPage, map[string]any{"slug": "t"}, "title"},
		{"null title is present", KindPage, map[string]any{"title": nil}, ""},
		{"quote needs only a title", KindQuote, map[string]any{"title": "T"}, ""},
		{"complete article", KindArticle, map[string]any{"title": "T", "date": date, "category": "c"}, ""},
		{"article missing everything", KindArticle, nil, "title"},
		{"article missing date and category", KindArticle, map[string]any{"title": "T"}, "date"},
		{"article missing category", KindArticle, map[string]any{"title": "T", "date": date}, "category"},
		{"unparseable date counts as missing", KindArticle, map[string]any{"title": "T", "date": "soon", "category": "c"}, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.kind, "", tt.meta)
			err := c.CheckProperties()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantField, missing.Field)
			assert.Equal(t, tt.kind, missing.Kind)

			field, ok := ferrors.ContextString(err, "field")
			require.True(t, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestIsValid(t *testing.T) {
	logger, buf := bufferLogger()
	rec := newCountingRecorder()

	ok := IsValid(NewArticle("", map[string]any{"title": "T"}, WithRecorder(rec)), "posts/t.md", logger)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Skipping content")
	assert.Contains(t, buf.String(), "field=date")
	assert.Contains(t, buf.String(), "file=posts/t.md")
	assert.Equal(t, 1, rec.invalid["article/date"])

	buf.Reset()
	assert.True(t, IsValid(NewPage("", map[string]any{"title": "T"}), "about.md", logger))
	assert.Empty(t, buf.String())
}
