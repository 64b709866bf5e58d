// Package urlformat expands URL and output-path templates such as
// "{date:%Y}/{slug}.html". Supported syntax: {name}, {name:spec}, and the
// literal escapes {{ and }}. Format specs are only valid for time values,
// where they are strftime directives.
package urlformat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitecontent/internal/datefmt"
)

var (
	// ErrMalformed reports unbalanced braces or an empty field name.
	ErrMalformed = errors.New("malformed template")
	// ErrUnknownField reports a field name with no parameter.
	ErrUnknownField = errors.New("unknown template field")
	// ErrUnsupportedSpec reports a format spec on a non-time value.
	ErrUnsupportedSpec = errors.New("unsupported format spec")
)

// Params are the values a template may reference by name.
type Params map[string]any

// Expand substitutes params into template.
func Expand(template string, params Params) (string, error) {
	var b strings.Builder
	b.Grow(len(template) + 32)

	for i := 0; i < len(template); i++ {
		ch := template[i]
		switch ch {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed '{' at offset %d", ErrMalformed, i)
			}
			field := template[i+1 : i+1+end]
			if strings.ContainsRune(field, '{') {
				return "", fmt.Errorf("%w: nested '{' at offset %d", ErrMalformed, i)
			}
			out, err := render(field, params)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %d", ErrMalformed, i)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String(), nil
}

// Fields lists the field names referenced by template, in order of appearance.
func Fields(template string) ([]string, error) {
	var names []string
	collect := Params{}
	for {
		_, err := Expand(template, collect)
		if err == nil {
			return names, nil
		}
		var unknown *unknownFieldError
		if !errors.As(err, &unknown) {
			return nil, err
		}
		names = append(names, unknown.name)
		collect[unknown.name] = ""
	}
}

type unknownFieldError struct{ name string }

func (e *unknownFieldError) Error() string { return fmt.Sprintf("%v: %q", ErrUnknownField, e.name) }
func (e *unknownFieldError) Unwrap() error { return ErrUnknownField }

func render(field string, params Params) (string, error) {
	name, spec, hasSpec := strings.Cut(field, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty field name", ErrMalformed)
	}
	value, ok := params[name]
	if !ok {
		return "", &unknownFieldError{name: name}
	}

	switch v := value.(type) {
	case time.Time:
		if hasSpec {
			return datefmt.Format(v, spec, datefmt.C), nil
		}
		return v.Format("2006-01-02 15:04:05"), nil
	case *time.Time:
		if v == nil {
			return "", nil
		}
		return render(field, Params{name: *v})
	}

	if hasSpec && spec != "" {
		return "", fmt.Errorf("%w: %q on field %q", ErrUnsupportedSpec, spec, name)
	}
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}
