package document

// Map is an ordered string-keyed mapping of values.
// Methods that change content return a new Map; the receiver is never modified.
type Map struct {
	keys    []string
	entries map[string]Value
}

// Pair is a key and value used to build a Map.
type Pair struct {
	Key   string
	Value Value
}

// P is shorthand for building a Pair.
func P(key string, v Value) Pair { return Pair{Key: key, Value: v} }

// NewMap builds a Map from pairs in order. A repeated key keeps its first
// position and its last value.
func NewMap(pairs ...Pair) *Map {
	m := &Map{entries: make(map[string]Value, len(pairs))}
	for _, p := range pairs {
		m.put(p.Key, p.Value)
	}
	return m
}

// put inserts or replaces a key. Only used while a Map is being built.
func (m *Map) put(key string, v Value) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Len returns the number of keys. A nil Map is empty.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.entries[key]
	return ok
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// GetMap returns the nested mapping stored under key.
func (m *Map) GetMap(key string) (*Map, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return v.AsMap()
}

// With returns a copy of m with key set to v.
func (m *Map) With(key string, v Value) *Map {
	out := m.clone()
	out.put(key, v)
	return out
}

// Without returns a copy of m with the given keys removed.
func (m *Map) Without(keys ...string) *Map {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := &Map{entries: make(map[string]Value, m.Len())}
	for _, k := range m.Keys() {
		if _, skip := drop[k]; skip {
			continue
		}
		out.put(k, m.entries[k])
	}
	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.entries[k]) {
			return
		}
	}
}

// Equal reports whether m and other hold deeply equal entries.
func (m *Map) Equal(other *Map) bool { return MapsEqual(m, other) }

// MapsEqual reports whether a and b hold the same keys with deeply equal
// values, ignoring key order. Nil and empty maps are equal.
func MapsEqual(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	a.Range(func(k string, av Value) bool {
		bv, ok := b.Get(k)
		if !ok || !Equal(av, bv) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

func (m *Map) clone() *Map {
	out := &Map{entries: make(map[string]Value, m.Len()+1)}
	m.Range(func(k string, v Value) bool {
		out.put(k, v)
		return true
	})
	return out
}
