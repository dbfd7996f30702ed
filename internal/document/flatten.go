package document

import "fmt"

// DefaultFlattenDepth is the nesting depth shown by Flatten callers that
// have no preference.
const DefaultFlattenDepth = 3

// Flatten renders m as "dotted.key: value" lines for display.
//
// Sequences render as "[N items]". Mappings nested deeper than maxDepth
// collapse into a single "<nested>" line.
func Flatten(m *Map, maxDepth int) []string {
	return flatten(m, "", maxDepth, 0)
}

func flatten(m *Map, prefix string, maxDepth, depth int) []string {
	if depth >= maxDepth {
		return []string{prefix + ": <nested>"}
	}

	var lines []string
	m.Range(func(k string, v Value) bool {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch v.Kind() {
		case KindMapping:
			child, _ := v.AsMap()
			if child.Len() == 0 {
				lines = append(lines, key+": {}")
			} else {
				lines = append(lines, flatten(child, key, maxDepth, depth+1)...)
			}
		case KindSequence:
			lines = append(lines, fmt.Sprintf("%s: [%d items]", key, v.Len()))
		default:
			lines = append(lines, key+": "+v.Scalar())
		}
		return true
	})
	return lines
}
