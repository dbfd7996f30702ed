// Package document provides the configuration document model: an immutable
// tagged-variant Value, ordered mappings, YAML encoding and deep merge.
package document

import (
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is an explicit null or the zero Value.
	KindNull Kind = iota
	// KindString is a string scalar.
	KindString
	// KindBool is a boolean scalar.
	KindBool
	// KindNumber is an integer or floating point scalar.
	KindNumber
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a nested document.
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a single node of a configuration document.
// The zero Value is null. Values are never modified after construction.
type Value struct {
	kind    Kind
	str     string
	boolean bool
	num     float64
	i       int64
	integer bool
	seq     []Value
	m       *Map
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Int returns an integer number value.
func Int(n int64) Value { return Value{kind: KindNumber, num: float64(n), i: n, integer: true} }

// Float returns a floating point number value.
// Floats with no fractional part still encode as floats.
func Float(f float64) Value { return Value{kind: KindNumber, num: f} }

// Seq returns a sequence value holding copies of items.
func Seq(items ...Value) Value {
	out := make([]Value, len(items))
	copy(out, items)
	return Value{kind: KindSequence, seq: out}
}

// Mapping wraps a Map as a Value. A nil map becomes an empty mapping.
func Mapping(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMapping, m: m}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsMapping reports whether v is a nested document.
func (v Value) IsMapping() bool { return v.kind == KindMapping }

// IsSequence reports whether v is a sequence.
func (v Value) IsSequence() bool { return v.kind == KindSequence }

// IsScalar reports whether v is a string, bool, number or null.
func (v Value) IsScalar() bool {
	return v.kind != KindSequence && v.kind != KindMapping
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsFloat returns the number held by v as a float64.
func (v Value) AsFloat() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsInt returns the number held by v when it is integral.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.integer {
		return v.i, true
	}
	if v.num != math.Trunc(v.num) || v.num < math.MinInt64 || v.num >= math.MaxInt64 {
		return 0, false
	}
	return int64(v.num), true
}

// Items returns a copy of the sequence elements, or nil when v is not a sequence.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)
	return out
}

// Len returns the number of elements of a sequence or keys of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return v.m.Len()
	default:
		return 0
	}
}

// AsMap returns the mapping held by v.
func (v Value) AsMap() (*Map, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.m, true
}

// Scalar renders a scalar value the way it appears in YAML.
// Sequences and mappings render as an empty string.
func (v Value) Scalar() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindNumber:
		if v.integer {
			return strconv.FormatInt(v.i, 10)
		}
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return ""
	}
}

// Equal reports whether a and b are deeply equal.
// Mapping key order is ignored; sequence order is not.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindString:
		return a.str == b.str
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		if a.integer && b.integer {
			return a.i == b.i
		}
		return a.num == b.num
	case KindSequence:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return MapsEqual(a.m, b.m)
	default:
		return false
	}
}

// Equal reports whether v and other are deeply equal.
func (v Value) Equal(other Value) bool { return Equal(v, other) }
