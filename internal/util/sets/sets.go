// Package sets provides small generic set types.
package sets

// Set is a simple generic hash set for comparable keys.
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with the provided values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts value into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has returns true if v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Keyer is implemented by values whose identity is a string key rather than
// the value itself.
type Keyer interface {
	Key() string
}

// Keyed is an insertion-ordered set of values deduplicated by Key(). The
// first value added for a key is kept.
type Keyed[T Keyer] struct {
	index map[string]int
	items []T
}

// NewKeyed creates a keyed set from vals, dropping duplicates.
func NewKeyed[T Keyer](vals ...T) *Keyed[T] {
	k := &Keyed[T]{index: make(map[string]int, len(vals))}
	for _, v := range vals {
		k.Add(v)
	}
	return k
}

// Add inserts v unless a value with the same key is present. It reports
// whether v was added.
func (k *Keyed[T]) Add(v T) bool {
	if k.index == nil {
		k.index = make(map[string]int)
	}
	key := v.Key()
	if _, ok := k.index[key]; ok {
		return false
	}
	k.index[key] = len(k.items)
	k.items = append(k.items, v)
	return true
}

// Get returns the stored value with the same key as probe.
func (k *Keyed[T]) Get(key string) (T, bool) {
	var zero T
	if k == nil {
		return zero, false
	}
	i, ok := k.index[key]
	if !ok {
		return zero, false
	}
	return k.items[i], true
}

// Len returns the number of distinct keys.
func (k *Keyed[T]) Len() int {
	if k == nil {
		return 0
	}
	return len(k.items)
}

// Items returns the values in insertion order.
func (k *Keyed[T]) Items() []T {
	if k == nil {
		return nil
	}
	out := make([]T, len(k.items))
	copy(out, k.items)
	return out
}
