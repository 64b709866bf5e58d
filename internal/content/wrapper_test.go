package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecontent/internal/util/sets"
)

func TestTag_EqualityIsByNameOnly(t *testing.T) {
	a := NewTag("Foo", nil)
	b := NewTag("foo ", testSettings(map[string]any{"TAG_URL": "t/{slug}/"}))

	assert.Equal(t, "foo", b.Name())
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Key(), b.Key())

	index := map[string]*Tag{a.Key(): a}
	_, ok := index[b.Key()]
	assert.True(t, ok)

	set := sets.NewKeyed(a, b, NewTag("bar", nil))
	assert.Equal(t, 2, set.Len())

	assert.False(t, a.Equal(NewTag("food", nil)))
	assert.False(t, a.Equal(nil))
}

func TestURLWrapper_Templates(t *testing.T) {
	cat := NewCategory("Hello World", nil)
	assert.Equal(t, WrapperCategory, cat.Kind())
	assert.Equal(t, "hello-world", cat.Slug())
	assert.Equal(t, "Hello World", cat.String())

	url, err := cat.URL()
	require.NoError(t, err)
	assert.Equal(t, "category/hello-world.html", url)

	saveAs, err := cat.SaveAs()
	require.NoError(t, err)
	assert.Equal(t, "category/hello-world.html", saveAs)

	page, err := cat.PageName()
	require.NoError(t, err)
	assert.Equal(t, "category/hello-world", page)

	author := NewAuthor("Jane", testSettings(map[string]any{"AUTHOR_URL": "people/{name}/"}))
	page, err = author.PageName()
	require.NoError(t, err)
	assert.Equal(t, "people/Jane/", page)
}

func TestURLWrapper_NonStringSettingPassesThrough(t *testing.T) {
	logger, buf := bufferLogger()
	tag := NewTag("go", testSettings(map[string]any{"TAG_URL": false, "TAG_SAVE_AS": 7}))
	tag.setLogger(logger)

	v, err := tag.URLValue(TemplateURL)
	require.NoError(t, err)
	assert.Equal(t, false, v)

	url, err := tag.URL()
	require.NoError(t, err)
	assert.Empty(t, url)

	saveAs, err := tag.SaveAs()
	require.NoError(t, err)
	assert.Equal(t, "7", saveAs)

	assert.Contains(t, buf.String(), "TAG_URL")
	assert.Contains(t, buf.String(), "not a template")
}

func TestURLWrapper_MissingSetting(t *testing.T) {
	s := testSettings(nil)
	delete(s.Extra, "AUTHOR_SAVE_AS")
	_, err := NewAuthor("Jane", s).SaveAs()
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	setting, _ := ferrors.ContextString(err, "setting")
	assert.Equal(t, "AUTHOR_SAVE_AS", setting)
}

func TestTemplateKind_String(t *testing.T) {
	assert.Equal(t, "url", TemplateURL.String())
	assert.Equal(t, "save_as", TemplateSaveAs.String())
	assert.Equal(t, "page_name", TemplatePageName.String())
}
