// Package frontmatter splits a YAML header delimited by "---" lines from
// the document body and renders metadata back to deterministic YAML.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document opened a header but
// never closed it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Header is the result of Split.
type Header struct {
	// Raw is the YAML between the delimiters, without them.
	Raw []byte
	// Present is false when the document has no header.
	Present bool
	// Newline is "\n" or "\r\n", whichever the document uses first.
	Newline string
}

// Split separates the header from the body. Without a header the whole
// input is returned as body. A closing delimiter at end of input without a
// trailing newline is accepted.
func Split(content []byte) (Header, []byte, error) {
	h := Header{Newline: detectNewline(content)}
	nl := []byte(h.Newline)
	delim := append([]byte("---"), nl...)

	if !bytes.HasPrefix(content, delim) {
		return h, content, nil
	}
	rest := content[len(delim):]

	if bytes.HasPrefix(rest, delim) {
		h.Present = true
		h.Raw = []byte{}
		return h, rest[len(delim):], nil
	}

	closing := append(append([]byte{}, nl...), delim...)
	if idx := bytes.Index(rest, closing); idx >= 0 {
		h.Present = true
		h.Raw = rest[:idx+len(nl)]
		return h, rest[idx+len(closing):], nil
	}
	tail := append(append([]byte{}, nl...), "---"...)
	if bytes.HasSuffix(rest, tail) {
		h.Present = true
		h.Raw = rest[:len(rest)-len(tail)+len(nl)]
		return h, []byte{}, nil
	}
	return Header{Newline: h.Newline}, nil, ErrMissingClosingDelimiter
}

// Parse splits content and decodes the header into a map. Documents
// without a header yield an empty map.
func Parse(content []byte) (map[string]any, []byte, error) {
	h, body, err := Split(content)
	if err != nil {
		return nil, nil, err
	}
	fields, err := ParseYAML(h.Raw)
	if err != nil {
		return nil, nil, err
	}
	return fields, body, nil
}

// ParseYAML decodes a raw header (without delimiters) into a map.
func ParseYAML(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
