// Package normalization maps loosely written configuration strings onto
// typed enum values (statuses, log levels, log formats).
package normalization

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
)

// Normalizer converts user-supplied strings into a typed enum.
type Normalizer[T comparable] struct {
	values       map[string]T
	defaultValue T
	validKeys    []string
}

// NewNormalizer creates a normalizer. Keys are matched case-insensitively
// after trimming whitespace.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	n := &Normalizer[T]{
		values:       make(map[string]T, len(values)),
		defaultValue: defaultValue,
		validKeys:    make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.validKeys = append(n.validKeys, key)
	}
	sort.Strings(n.validKeys)
	return n
}

// Normalize returns the enum value for raw, or the default when unrecognised.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[clean(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// NormalizeWithError is Normalize with a validation error for unknown input.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.values[clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, errors.ValidationError("unrecognised value").
		WithContext("value", raw).
		WithContext("valid", strings.Join(n.validKeys, ",")).
		Build()
}

// ValidKeys returns all accepted keys, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.validKeys))
	copy(out, n.validKeys)
	return out
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
