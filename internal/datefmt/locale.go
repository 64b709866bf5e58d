package datefmt

import (
	"strings"

	"golang.org/x/text/language"
)

// names holds the localized calendar words a format string can reference.
type names struct {
	days      [7]string // Sunday first, matching time.Weekday
	shortDays [7]string
	months    [12]string
	shortMons [12]string
}

var english = &names{
	days:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	shortDays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	shortMons: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

var catalog = map[language.Tag]*names{
	language.English: english,
	language.French: {
		days:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		shortDays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		shortMons: [12]string{"janv.", "févr.", "mars", "avril", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	},
	language.German: {
		days:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		shortDays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		shortMons: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	},
	language.Spanish: {
		days:      [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		shortDays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		shortMons: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	},
	language.Italian: {
		days:      [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		shortDays: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		months: [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		shortMons: [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
	},
	language.Portuguese: {
		days:      [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		shortDays: [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
		months: [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		shortMons: [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	},
	language.Dutch: {
		days:      [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
		shortDays: [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		months: [12]string{"januari", "februari", "maart", "april", "mei", "juni",
			"juli", "augustus", "september", "oktober", "november", "december"},
		shortMons: [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
	},
}

var (
	supported = []language.Tag{
		language.English, language.French, language.German, language.Spanish,
		language.Italian, language.Portuguese, language.Dutch,
	}
	matcher = language.NewMatcher(supported)
)

// Locale selects the calendar names used by Format. The zero value is the
// POSIX "C" locale (English names).
type Locale struct {
	id    string
	tag   language.Tag
	names *names
}

// C is the POSIX locale.
var C = Locale{id: "C", tag: language.English, names: english}

// ParseLocale accepts POSIX identifiers ("fr_FR.UTF-8", "de_DE@euro"),
// BCP 47 tags ("pt-BR") and "C"/"POSIX". Unknown or unsupported identifiers
// fall back to C; ok reports whether a supported locale was matched.
func ParseLocale(id string) (loc Locale, ok bool) {
	cleaned := strings.TrimSpace(id)
	if i := strings.IndexAny(cleaned, ".@"); i >= 0 {
		cleaned = cleaned[:i]
	}
	cleaned = strings.ReplaceAll(cleaned, "_", "-")
	if cleaned == "" || strings.EqualFold(cleaned, "C") || strings.EqualFold(cleaned, "POSIX") {
		return C, cleaned != ""
	}
	tag, err := language.Parse(cleaned)
	if err != nil {
		return C, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return C, false
	}
	best := supported[idx]
	return Locale{id: id, tag: tag, names: catalog[best]}, true
}

// String returns the identifier the locale was parsed from.
func (l Locale) String() string {
	if l.id == "" {
		return C.id
	}
	return l.id
}

// Tag returns the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	if l.names == nil {
		return C.tag
	}
	return l.tag
}

func (l Locale) calendar() *names {
	if l.names == nil {
		return english
	}
	return l.names
}
