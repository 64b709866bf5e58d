package content

import (
	"path"
	"path/filepath"
	"strings"
)

// Linkable is anything a |filename| reference can resolve to.
type Linkable interface {
	URL() (string, error)
}

// Context is the site-wide state shared by every Content of a run. The
// orchestrator fills Filenames before any content is rewritten and must not
// modify it afterwards.
type Context struct {
	// Filenames maps content-root relative, slash separated paths to targets.
	Filenames map[string]Linkable
	// LocalSiteURL is the site URL used by Content.HTML.
	LocalSiteURL string
}

// NewContext returns an empty index.
func NewContext(localSiteURL string) *Context {
	return &Context{
		Filenames:    make(map[string]Linkable),
		LocalSiteURL: localSiteURL,
	}
}

// Register indexes target under relPath.
func (c *Context) Register(relPath string, target Linkable) {
	if c.Filenames == nil {
		c.Filenames = make(map[string]Linkable)
	}
	c.Filenames[indexKey(relPath)] = target
}

// Lookup finds the target registered for relPath.
func (c *Context) Lookup(relPath string) (Linkable, bool) {
	if c == nil || c.Filenames == nil {
		return nil, false
	}
	t, ok := c.Filenames[indexKey(relPath)]
	return t, ok
}

// Len returns the number of indexed targets.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Filenames)
}

func (c *Context) localSiteURL() string {
	if c == nil {
		return ""
	}
	return c.LocalSiteURL
}

func indexKey(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(path.Clean(p), "/")
	return p
}
