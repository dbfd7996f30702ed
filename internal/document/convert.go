package document

import (
	"fmt"
	"math"
	"sort"
)

// FromGo converts plain Go data into a Value.
//
// Supported inputs are nil, string, bool, the integer and float types,
// []any, []string, map[string]any, and Value or *Map themselves. Keys of Go
// maps have no order, so they are sorted to keep the result deterministic.
func FromGo(in any) (Value, error) {
	switch x := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Map:
		return Mapping(x), nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case []string:
		items := make([]Value, len(x))
		for i, s := range x {
			items[i] = String(s)
		}
		return Value{kind: KindSequence, seq: items}, nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			v, err := FromGo(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = v
		}
		return Value{kind: KindSequence, seq: items}, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		m := &Map{entries: make(map[string]Value, len(x))}
		for _, k := range keys {
			v, err := FromGo(x[k])
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			m.put(k, v)
		}
		return Mapping(m), nil
	default:
		return Value{}, fmt.Errorf("unsupported type %T", in)
	}
}

// fromUint keeps values above MaxInt64 as floats rather than wrapping them.
func fromUint(n uint64) Value {
	if n > math.MaxInt64 {
		return Float(float64(n))
	}
	return Int(int64(n))
}

// MustFromGo is like FromGo but panics on error.
func MustFromGo(in any) Value {
	v, err := FromGo(in)
	if err != nil {
		panic(err)
	}
	return v
}

// MapFromGo converts a Go map into a *Map.
func MapFromGo(in map[string]any) (*Map, error) {
	v, err := FromGo(in)
	if err != nil {
		return nil, err
	}
	m, _ := v.AsMap()
	return m, nil
}

// MustMap is like MapFromGo but panics on error.
func MustMap(in map[string]any) *Map {
	m, err := MapFromGo(in)
	if err != nil {
		panic(err)
	}
	return m
}

// Interface converts v back into plain Go data: nil, string, bool, int64,
// float64, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.boolean
	case KindNumber:
		if v.integer {
			return v.i
		}
		return v.num
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		return v.m.Interface()
	default:
		return nil
	}
}

// Interface converts m into a map[string]any.
func (m *Map) Interface() map[string]any {
	out := make(map[string]any, m.Len())
	m.Range(func(k string, v Value) bool {
		out[k] = v.Interface()
		return true
	})
	return out
}
