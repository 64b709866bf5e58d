package settings

import "git.home.luguber.info/inful/sitecontent/internal/foundation/normalization"

// Status is the publication state of a content item.
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
)

var statusNormalizer = normalization.NewNormalizer(map[string]Status{
	"published": StatusPublished,
	"draft":     StatusDraft,
}, StatusPublished)

// ParseStatus normalises raw into a Status, failing on unknown values.
func ParseStatus(raw string) (Status, error) {
	return statusNormalizer.NormalizeWithError(raw)
}

// Status returns the configured default status. Unknown values fall back to published.
func (s *Settings) Status() Status {
	return statusNormalizer.Normalize(s.DefaultStatus)
}
