package content

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitecontent/internal/settings"
	"git.home.luguber.info/inful/sitecontent/internal/util/sets"
)

// dateLayouts are tried in order for string dates. Values without a zone
// are read in the local time zone.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
}

// ParseDate reads a metadata date.
func ParseDate(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return d, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognised date %q", s)
	}
	return time.Time{}, fmt.Errorf("unsupported date value of type %T", v)
}

// mergeMetadata overlays item metadata on the defaults. Keys are lower-cased.
func mergeMetadata(defaults, item map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(item))
	for k, v := range defaults {
		out[strings.ToLower(k)] = v
	}
	for k, v := range item {
		out[strings.ToLower(k)] = v
	}
	return out
}

func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

func toAuthor(v any, s *settings.Settings, l *slog.Logger) *Author {
	switch t := v.(type) {
	case *Author:
		return t
	case Author:
		return &t
	}
	if name, ok := stringValue(v); ok && name != "" {
		a := NewAuthor(name, s)
		a.setLogger(l)
		return a
	}
	return nil
}

func toCategory(v any, s *settings.Settings, l *slog.Logger) *Category {
	switch t := v.(type) {
	case *Category:
		return t
	case Category:
		return &t
	}
	if name, ok := stringValue(v); ok && strings.TrimSpace(name) != "" {
		cat := NewCategory(name, s)
		cat.setLogger(l)
		return cat
	}
	return nil
}

// toTags accepts "a, b", []string, []any and []*Tag. Empty names and
// repeated names are dropped; the first spelling wins.
func toTags(v any, s *settings.Settings, l *slog.Logger) []*Tag {
	set := sets.NewKeyed[*Tag]()
	add := func(name string) {
		if strings.TrimSpace(name) != "" {
			tag := NewTag(name, s)
			tag.setLogger(l)
			set.Add(tag)
		}
	}
	switch t := v.(type) {
	case string:
		for _, name := range strings.Split(t, ",") {
			add(name)
		}
	case []string:
		for _, name := range t {
			add(name)
		}
	case []any:
		for _, e := range t {
			if tag, ok := e.(*Tag); ok {
				set.Add(tag)
				continue
			}
			if name, ok := stringValue(e); ok {
				add(name)
			}
		}
	case []*Tag:
		for _, tag := range t {
			if tag != nil {
				set.Add(tag)
			}
		}
	default:
		return nil
	}
	return set.Items()
}

func toDateFormat(v any) (settings.DateFormat, bool) {
	switch t := v.(type) {
	case string:
		return settings.DateFormat{Format: t}, true
	case settings.DateFormat:
		return t, true
	case []string:
		if len(t) == 2 {
			return settings.DateFormat{Locale: t[0], Format: t[1]}, true
		}
	case []any:
		if len(t) == 2 {
			loc, ok1 := t[0].(string)
			f, ok2 := t[1].(string)
			if ok1 && ok2 {
				return settings.DateFormat{Locale: loc, Format: f}, true
			}
		}
	}
	return settings.DateFormat{}, false
}
