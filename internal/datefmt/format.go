// Package datefmt formats dates with strftime directives and an explicit
// locale. Nothing here touches process-wide locale state, so formatting from
// multiple goroutines with different locales is safe.
package datefmt

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Format renders t using a strftime-style format. Day and month names
// (%a %A %b %h %B) come from loc; every other directive is delegated to
// go-strftime, which is locale independent.
func Format(t time.Time, format string, loc Locale) string {
	cal := loc.calendar()
	var b strings.Builder
	b.Grow(len(format) + 16)
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i+1 >= len(format) {
			b.WriteByte(ch)
			continue
		}
		i++
		switch format[i] {
		case 'a':
			writeLiteral(&b, cal.shortDays[t.Weekday()])
		case 'A':
			writeLiteral(&b, cal.days[t.Weekday()])
		case 'b', 'h':
			writeLiteral(&b, cal.shortMons[t.Month()-1])
		case 'B':
			writeLiteral(&b, cal.months[t.Month()-1])
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return strftime.Format(b.String(), t)
}

// writeLiteral escapes percent signs so go-strftime leaves the name untouched.
func writeLiteral(b *strings.Builder, s string) {
	b.WriteString(strings.ReplaceAll(s, "%", "%%"))
}
