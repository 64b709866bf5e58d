package content

import (
	neturl "net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitecontent/internal/logfields"
	"git.home.luguber.info/inful/sitecontent/internal/metrics"
)

var (
	tagRe  = regexp.MustCompile(`<[^>]+>`)
	attrRe = regexp.MustCompile(`(?i)\b(href|src)(\s*=\s*)(?:"([^"]*)"|'([^']*)')`)
	// |filename|path and the later {filename}path spelling.
	pipeRefRe  = regexp.MustCompile(`^\|([^|]*)\|(.*)$`)
	braceRefRe = regexp.MustCompile(`^\{(\w+)\}(.*)$`)
)

const refFilename = "filename"

// HTML is the body rewritten against Context.LocalSiteURL.
func (c *Content) HTML() string {
	return c.ContentFor(c.ctx.localSiteURL())
}

// ContentFor returns the body with intra-site references resolved for
// siteURL. The result is cached per siteURL and never invalidated; the
// filename index must be complete before the first call.
func (c *Content) ContentFor(siteURL string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if out, ok := c.rewritten[siteURL]; ok {
		c.recorder.IncRewrite(metrics.CacheHit)
		return out
	}
	start := time.Now()
	out := c.rewrite(c.raw, siteURL)
	c.rewritten[siteURL] = out
	c.recorder.IncRewrite(metrics.CacheMiss)
	c.recorder.ObserveRewriteDuration(time.Since(start))
	return out
}

func (c *Content) rewrite(body, siteURL string) string {
	return tagRe.ReplaceAllStringFunc(body, func(tag string) string {
		return attrRe.ReplaceAllStringFunc(tag, func(attr string) string {
			m := attrRe.FindStringSubmatch(attr)
			quote, value := `"`, m[3]
			if strings.HasPrefix(attr[len(m[1])+len(m[2]):], "'") {
				quote, value = "'", m[4]
			}
			resolved, ok := c.resolveReference(value, siteURL)
			if !ok {
				return attr
			}
			return m[1] + m[2] + quote + resolved + quote
		})
	})
}

// resolveReference returns the replacement for a placeholder value. ok is
// false when value is not a placeholder or cannot be resolved.
func (c *Content) resolveReference(value, siteURL string) (string, bool) {
	what, ref, isRef := parseReference(value)
	if !isRef {
		return "", false
	}
	if what != refFilename {
		c.logger.Debug("Leaving unsupported reference kind untouched",
			logfields.RefKind(what), logfields.Reference(value))
		return "", false
	}

	target, suffix := splitSuffix(ref)
	if strings.HasPrefix(target, "/") {
		target = target[1:]
	} else {
		target = c.RelativeFilename(path.Join(c.RelativeDir(), target))
	}

	linked, found := c.ctx.Lookup(target)
	if !found {
		c.unresolved(what, value, target, "Unable to find reference, skipping url replacement", nil)
		return "", false
	}
	url, err := linked.URL()
	if err != nil {
		c.unresolved(what, value, target, "Reference target has no URL, skipping url replacement", err)
		return "", false
	}
	return joinSiteURL(siteURL, url) + suffix, true
}

// joinSiteURL prefixes target with siteURL unless target is already absolute.
func joinSiteURL(siteURL, target string) string {
	if siteURL == "" {
		return target
	}
	if u, err := neturl.Parse(target); err == nil && u.IsAbs() {
		return target
	}
	return strings.TrimSuffix(siteURL, "/") + "/" + strings.TrimPrefix(target, "/")
}

func (c *Content) unresolved(what, value, target, msg string, err error) {
	attrs := []any{
		logfields.Reference(value),
		logfields.Value(target),
		logfields.RefKind(what),
	}
	if err != nil {
		attrs = append(attrs, logfields.Error(err))
	}
	c.logger.Warn(msg, attrs...)
	c.recorder.IncUnresolvedReference(what)
}

func parseReference(value string) (what, ref string, ok bool) {
	if m := pipeRefRe.FindStringSubmatch(value); m != nil {
		return m[1], m[2], true
	}
	if m := braceRefRe.FindStringSubmatch(value); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}

// splitSuffix separates a trailing #fragment or ?query from a path.
func splitSuffix(ref string) (string, string) {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		return ref[:i], ref[i:]
	}
	return ref, ""
}
