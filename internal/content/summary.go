package content

import "git.home.luguber.info/inful/sitecontent/internal/htmltrunc"

// Summary returns the explicit summary from metadata when one was given.
// Otherwise HTML is cut to SUMMARY_MAX_LENGTH words with open tags closed,
// or returned whole when the limit is not positive.
func (c *Content) Summary() string {
	if c.summary != nil {
		return *c.summary
	}
	body := c.HTML()
	if limit := c.settings.SummaryMaxLength; limit > 0 {
		return htmltrunc.Words(body, limit, htmltrunc.DefaultEndText)
	}
	return body
}

// SetSummary does nothing. The summary is fixed at construction.
func (c *Content) SetSummary(string) {}
