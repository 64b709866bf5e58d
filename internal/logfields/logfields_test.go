package logfields

import (
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"File", KeyFile, "posts/a.md", File("posts/a.md")},
		{"Kind", KeyKind, "article", Kind("article")},
		{"Field", KeyField, "title", Field("title")},
		{"Setting", KeySetting, "ARTICLE_URL", Setting("ARTICLE_URL")},
		{"Reference", KeyReference, "images/x.png", Reference("images/x.png")},
		{"RefKind", KeyRefKind, "filename", RefKind("filename")},
		{"SiteURL", KeySiteURL, "https://example.org", SiteURL("https://example.org")},
		{"Slug", KeySlug, "hello-world", Slug("hello-world")},
		{"Lang", KeyLang, "fr", Lang("fr")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestNumericAndAnyHelpers(t *testing.T) {
	if v := Count(3); v.Key != KeyCount || v.Value.Int64() != 3 {
		t.Fatalf("Count mismatch: %v", v)
	}
	if v := Value(false); v.Key != KeyValue || v.Value.String() != "false" {
		t.Fatalf("Value mismatch: %v", v)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errTest{})
	if attr.Value.String() != "err-test" {
		t.Fatalf("Expected 'err-test', got %s", attr.Value.String())
	}
}

type errTest struct{}

func (e errTest) Error() string { return "err-test" }
