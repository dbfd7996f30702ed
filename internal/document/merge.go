package document

// Merge combines base and override into a new value.
//
// When both sides are mappings they merge key by key. In every other case,
// including a mapping on one side and a scalar on the other, override
// replaces base entirely. Sequences are replaced wholesale and never
// concatenated or merged element-wise.
func Merge(base, override Value) Value {
	bm, baseIsMap := base.AsMap()
	om, overrideIsMap := override.AsMap()
	if baseIsMap && overrideIsMap {
		return Mapping(MergeMaps(bm, om))
	}
	return override
}

// MergeMaps deep-merges override onto base and returns the result.
//
// Keys present on one side only are carried through unchanged. Result keys
// keep base order followed by override-only keys in override order. Neither
// input is modified.
func MergeMaps(base, override *Map) *Map {
	out := &Map{entries: make(map[string]Value, base.Len()+override.Len())}

	base.Range(func(k string, bv Value) bool {
		if ov, ok := override.Get(k); ok {
			out.put(k, Merge(bv, ov))
		} else {
			out.put(k, bv)
		}
		return true
	})

	override.Range(func(k string, ov Value) bool {
		if !base.Has(k) {
			out.put(k, ov)
		}
		return true
	})

	return out
}
