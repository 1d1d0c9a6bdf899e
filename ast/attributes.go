package ast

// Attributes is an ordered mapping from attribute name to attribute value.
// Insertion order is preserved for output stability; lookups stay O(1) via
// the backing map.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes returns an empty, ready-to-use Attributes.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

// Set inserts or updates an attribute, appending it to the key order on
// first insertion. For an existing key it overwrites the value and keeps
// the key's position; duplicate-name detection at parse time is the
// parser's job, not this type's.
func (a *Attributes) Set(name, value string) {
	if _, exists := a.values[name]; !exists {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Get returns the attribute value and whether it was present.
func (a *Attributes) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether name is present.
func (a *Attributes) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Remove deletes an attribute, keeping key order consistent.
func (a *Attributes) Remove(name string) {
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	for i, k := range a.keys {
		if k == name {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Keys returns the attribute names in insertion (or last-sorted) order.
// The returned slice is a copy; mutating it does not affect a.
func (a *Attributes) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// SortKeys reorders the attribute keys in place by less. Used by the
// sortAttrs plugin, which passes an alphabetical comparison.
func (a *Attributes) SortKeys(less func(i, j string) bool) {
	sortStrings(a.keys, less)
}

// ForEach iterates attributes in key order. Returning false stops iteration.
func (a *Attributes) ForEach(fn func(name, value string) bool) {
	for _, k := range a.keys {
		if !fn(k, a.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy of a.
func (a *Attributes) Clone() *Attributes {
	out := &Attributes{
		keys:   make([]string, len(a.keys)),
		values: make(map[string]string, len(a.values)),
	}
	copy(out.keys, a.keys)
	for k, v := range a.values {
		out.values[k] = v
	}
	return out
}

func sortStrings(keys []string, less func(i, j string) bool) {
	// Simple insertion sort: attribute counts per element are tiny (single
	// digits in the overwhelming common case), so an O(n^2) sort avoids
	// pulling in sort.Slice's reflection overhead for no real benefit.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && less(keys[j], keys[j-1]); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}
