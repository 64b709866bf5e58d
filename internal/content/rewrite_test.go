package content

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecontent/internal/metrics"
)

func newSite(t *testing.T) *Context {
	t.Helper()
	s := testSettings(nil)
	ctx := NewContext("")
	ctx.Register("images/x.png", NewStatic("images/x.png", "", s))
	ctx.Register("blog/other.md", NewArticle("", map[string]any{"title": "Other"}, WithSettings(s)))
	ctx.Register("about.md", NewPage("", map[string]any{"title": "About"}, WithSettings(s)))
	return ctx
}

func TestContentFor_ResolvesFilenameReferences(t *testing.T) {
	ctx := newSite(t)
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "root relative",
			raw:  `<a href="|filename|/images/x.png">x</a>`,
			want: `<a href="images/x.png">x</a>`,
		},
		{
			name: "relative to the source directory",
			raw:  `<img alt="x" src='|filename|../images/x.png'>`,
			want: `<img alt="x" src='images/x.png'>`,
		},
		{
			name: "sibling content keeps its fragment",
			raw:  `<a href="|filename|other.md#top">other</a>`,
			want: `<a href="other.html#top">other</a>`,
		},
		{
			name: "brace syntax",
			raw:  `<a href="{filename}/about.md">about</a>`,
			want: `<a href="pages/about.html">about</a>`,
		},
		{
			name: "several attributes and tags",
			raw:  `<p><a class="x" href = "|filename|/about.md">a</a> <img src="|filename|/images/x.png"></p>`,
			want: `<p><a class="x" href = "pages/about.html">a</a> <img src="images/x.png"></p>`,
		},
		{
			name: "unsupported reference kind passes through",
			raw:  `<a href="|category|news">news</a>`,
			want: `<a href="|category|news">news</a>`,
		},
		{
			name: "plain links and text are untouched",
			raw:  `<a href="https://example.com">|filename|/about.md</a>`,
			want: `<a href="https://example.com">|filename|/about.md</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewArticle(tt.raw, map[string]any{"title": "Post"},
				WithFilename("blog/post.md"), WithContext(ctx))
			assert.Equal(t, tt.want, c.ContentFor(""))
		})
	}
}

func TestContentFor_UnresolvedReferenceIsLoggedAndCounted(t *testing.T) {
	logger, buf := bufferLogger()
	rec := newCountingRecorder()
	raw := `<a href="|filename|missing.md">gone</a>`

	c := NewPage(raw, map[string]any{"title": "Post"},
		WithFilename("blog/post.md"), WithContext(newSite(t)), WithLogger(logger), WithRecorder(rec))

	assert.Equal(t, raw, c.ContentFor(""))
	assert.Contains(t, buf.String(), "Unable to find reference")
	assert.Contains(t, buf.String(), "blog/missing.md")
	assert.Contains(t, buf.String(), "file=blog/post.md")
	assert.Equal(t, 1, rec.unresolved["filename"])
}

func TestContentFor_TargetURLErrorLeavesPlaceholder(t *testing.T) {
	ctx := NewContext("")
	ctx.Register("broken.md", &countingLink{err: errors.New("no template")})
	logger, buf := bufferLogger()
	raw := `<a href="|filename|/broken.md">x</a>`

	c := NewPage(raw, nil, WithContext(ctx), WithLogger(logger))
	assert.Equal(t, raw, c.ContentFor(""))
	assert.Contains(t, buf.String(), "no template")
}

func TestContentFor_NoContext(t *testing.T) {
	raw := `<a href="|filename|/about.md">x</a>`
	c := NewPage(raw, nil)
	assert.Equal(t, raw, c.HTML())
}

func TestContentFor_SiteURL(t *testing.T) {
	ctx := newSite(t)
	ctx.LocalSiteURL = ".."
	c := NewPage(`<a href="|filename|/about.md">a</a>`, nil, WithContext(ctx))

	assert.Equal(t, `<a href="https://example.com/pages/about.html">a</a>`, c.ContentFor("https://example.com"))
	assert.Equal(t, `<a href="../pages/about.html">a</a>`, c.HTML())
}

func TestContentFor_SiteURLJoin(t *testing.T) {
	ctx := newSite(t)
	ctx.Register("rooted.md", &countingLink{url: "/rooted.html"})
	ctx.Register("cdn.md", &countingLink{url: "https://cdn.example.com/x.html"})

	tests := []struct {
		name    string
		raw     string
		siteURL string
		want    string
	}{
		{"trailing slash", `<a href="|filename|/about.md">a</a>`, "http://example.com/", `<a href="http://example.com/pages/about.html">a</a>`},
		{"root relative target", `<a href="|filename|/rooted.md">a</a>`, "http://example.com", `<a href="http://example.com/rooted.html">a</a>`},
		{"absolute target", `<a href="|filename|/cdn.md#x">a</a>`, "http://example.com/", `<a href="https://cdn.example.com/x.html#x">a</a>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPage(tt.raw, nil, WithContext(ctx))
			assert.Equal(t, tt.want, c.ContentFor(tt.siteURL))
		})
	}
}

func TestContentFor_CachesPerSiteURL(t *testing.T) {
	link := &countingLink{url: "target.html"}
	ctx := NewContext("")
	ctx.Register("target.md", link)
	rec := newCountingRecorder()
	c := NewPage(`<a href="|filename|/target.md">t</a>`, nil, WithContext(ctx), WithRecorder(rec))

	first := c.ContentFor("")
	second := c.ContentFor("")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, link.calls, "second call must be served from the cache")
	assert.Equal(t, 1, rec.rewriteCount(metrics.CacheMiss))
	assert.Equal(t, 1, rec.rewriteCount(metrics.CacheHit))

	abs := c.ContentFor("https://example.com")
	assert.Equal(t, `<a href="https://example.com/target.html">t</a>`, abs)
	assert.Equal(t, `<a href="target.html">t</a>`, c.ContentFor(""))
	assert.Equal(t, 2, link.calls)
	assert.Equal(t, 2, rec.rewriteCount(metrics.CacheMiss))
}

func TestContentFor_ConcurrentCallersRewriteOnce(t *testing.T) {
	link := &countingLink{url: "target.html"}
	ctx := NewContext("")
	ctx.Register("target.md", link)
	rec := newCountingRecorder()
	c := NewPage(`<img src="|filename|/target.md">`, nil, WithContext(ctx), WithRecorder(rec))

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.HTML()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, `<img src="target.html">`, r)
	}
	require.Equal(t, 1, rec.rewriteCount(metrics.CacheMiss))
	assert.Equal(t, 1, link.calls)
}

func TestContentFor_Idempotent(t *testing.T) {
	ctx := newSite(t)
	raw := `<a href="|filename|/about.md">a</a><a href="|filename|/nope.md">b</a>`
	a := NewPage(raw, nil, WithContext(ctx))
	b := NewPage(raw, nil, WithContext(ctx))
	assert.Equal(t, a.ContentFor("x"), b.ContentFor("x"))
}
