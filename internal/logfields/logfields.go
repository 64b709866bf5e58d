package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID     = "run_id"
	KeyFile      = "file"
	KeyKind      = "kind"
	KeyField     = "field"
	KeySetting   = "setting"
	KeyReference = "reference"
	KeyRefKind   = "ref_kind"
	KeySiteURL   = "siteurl"
	KeySlug      = "slug"
	KeyLang      = "lang"
	KeyValue     = "value"
	KeyCount     = "count"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Field(f string) slog.Attr        { return slog.String(KeyField, f) }
func Setting(s string) slog.Attr      { return slog.String(KeySetting, s) }
func Reference(r string) slog.Attr    { return slog.String(KeyReference, r) }
func RefKind(k string) slog.Attr      { return slog.String(KeyRefKind, k) }
func SiteURL(u string) slog.Attr      { return slog.String(KeySiteURL, u) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Lang(l string) slog.Attr         { return slog.String(KeyLang, l) }
func Value(v any) slog.Attr           { return slog.Any(KeyValue, v) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
