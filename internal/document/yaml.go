package document

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxAliasDepth bounds alias expansion so that self-referencing anchors
// cannot recurse forever.
const maxAliasDepth = 64

// Alias expansion limits, matching the ratio yaml.v3 applies when decoding
// into Go values. A document whose values mostly come from alias expansion
// is rejected once it grows past a few thousand nodes.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
)

// ErrExcessiveAliasing is returned for documents that expand aliases into
// far more nodes than they contain.
var ErrExcessiveAliasing = errors.New("document contains excessive aliasing")

// ErrNotMapping is returned when a document's top level is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Decode parses YAML text into a mapping.
// An empty document or a top-level null decodes to an empty mapping.
func Decode(data []byte) (*Map, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return NewMap(), nil
	}

	d := &decoder{}
	v, err := d.fromNode(&root, 0)
	if err != nil {
		return nil, err
	}

	switch v.Kind() {
	case KindNull:
		return NewMap(), nil
	case KindMapping:
		m, _ := v.AsMap()
		return m, nil
	default:
		return nil, fmt.Errorf("%w: found %s", ErrNotMapping, v.Kind())
	}
}

// decoder converts a yaml.Node tree into Values, counting how many nodes
// alias expansion produces.
type decoder struct {
	count      int
	aliasCount int
	aliasDepth int
	aliases    int
}

func allowedAliasRatio(count int) float64 {
	switch {
	case count <= aliasRatioRangeLow:
		return 0.99
	case count >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(count-aliasRatioRangeLow)/float64(aliasRatioRangeHigh-aliasRatioRangeLow))
	}
}

func (d *decoder) visit(n *yaml.Node) error {
	d.count++
	if d.aliasDepth > 0 {
		d.aliasCount++
	}
	if d.aliases > 100 && d.count > 1000 &&
		float64(d.aliasCount)/float64(d.count) > allowedAliasRatio(d.count) {
		return fmt.Errorf("line %d: %w", n.Line, ErrExcessiveAliasing)
	}
	return nil
}

func (d *decoder) fromNode(n *yaml.Node, depth int) (Value, error) {
	if depth > maxAliasDepth {
		return Value{}, fmt.Errorf("line %d: nesting or alias depth exceeds %d", n.Line, maxAliasDepth)
	}
	if err := d.visit(n); err != nil {
		return Value{}, err
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return d.fromNode(n.Content[0], depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return Value{}, fmt.Errorf("line %d: unresolved alias %q", n.Line, n.Value)
		}
		d.aliases++
		d.aliasDepth++
		v, err := d.fromNode(n.Alias, depth+1)
		d.aliasDepth--
		return v, err
	case yaml.ScalarNode:
		return scalarFromNode(n)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.fromNode(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{kind: KindSequence, seq: items}, nil
	case yaml.MappingNode:
		return d.mappingFromNode(n, depth)
	default:
		return Value{}, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

func scalarFromNode(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		// Out of int64 range: keep the magnitude as a float.
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Float(f), nil
	default:
		// !!str, !!timestamp, !!binary and custom tags keep their literal text.
		return String(n.Value), nil
	}
}

func (d *decoder) mappingFromNode(n *yaml.Node, depth int) (Value, error) {
	merged := NewMap()
	explicit := &Map{entries: make(map[string]Value, len(n.Content)/2)}

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			src, err := d.mergeSources(valNode, depth)
			if err != nil {
				return Value{}, err
			}
			for _, s := range src {
				s.Range(func(k string, v Value) bool {
					if !merged.Has(k) {
						merged.put(k, v)
					}
					return true
				})
			}
			continue
		}

		if keyNode.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}

		v, err := d.fromNode(valNode, depth+1)
		if err != nil {
			return Value{}, err
		}
		explicit.put(keyNode.Value, v)
	}

	if merged.Len() == 0 {
		return Mapping(explicit), nil
	}
	explicit.Range(func(k string, v Value) bool {
		merged.put(k, v)
		return true
	})
	return Mapping(merged), nil
}

// mergeSources resolves the value of a "<<" key into the mappings it names.
// Earlier sources take precedence over later ones.
func (d *decoder) mergeSources(n *yaml.Node, depth int) ([]*Map, error) {
	if n.Kind == yaml.SequenceNode {
		out := make([]*Map, 0, len(n.Content))
		for _, c := range n.Content {
			src, err := d.mergeSources(c, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, src...)
		}
		return out, nil
	}

	v, err := d.fromNode(n, depth+1)
	if err != nil {
		return nil, err
	}
	m, ok := v.AsMap()
	if !ok {
		return nil, fmt.Errorf("line %d: merge key value must be a mapping, found %s", n.Line, v.Kind())
	}
	return []*Map{m}, nil
}

// Encode renders m as YAML with two-space indentation, preserving key order.
func Encode(m *Map) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(toNode(Mapping(m))); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML lets a Value be embedded in structures encoded with yaml.v3.
func (v Value) MarshalYAML() (any, error) {
	return toNode(v), nil
}

func toNode(v Value) *yaml.Node {
	switch v.kind {
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.boolean)}
	case KindNumber:
		if v.integer {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.i, 10)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v.num)}
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.seq {
			n.Content = append(n.Content, toNode(item))
		}
		return n
	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		v.m.Range(func(k string, child Value) bool {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				toNode(child),
			)
			return true
		})
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
