package document

import (
	"fmt"
	"strings"
)

// Path is a sequence of mapping keys addressing a nested field.
type Path []string

// ParsePath splits a dotted field path such as "image.name".
// Empty segments are rejected.
func ParsePath(s string) (Path, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty field path")
	}
	parts := strings.Split(s, ".")
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("field path %q has an empty segment at position %d", s, i)
		}
	}
	return Path(parts), nil
}

// MustParsePath is like ParsePath but panics on error.
// Intended for package-level rule tables.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the dotted form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Lookup walks p through nested mappings starting at m.
// It reports false when any segment is missing or an intermediate value is
// not a mapping.
func Lookup(m *Map, p Path) (Value, bool) {
	if len(p) == 0 {
		return Mapping(m), m != nil
	}
	current := m
	for i, key := range p {
		v, ok := current.Get(key)
		if !ok {
			return Value{}, false
		}
		if i == len(p)-1 {
			return v, true
		}
		next, isMap := v.AsMap()
		if !isMap {
			return Value{}, false
		}
		current = next
	}
	return Value{}, false
}
