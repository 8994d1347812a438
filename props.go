package formschema

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// Props is the persistent, insertion-order-preserving property bag carried by
// every schema node. All mutating operations return a copy; a Props value
// observed by a node never changes after construction.
type Props struct {
	keys   []string
	values map[string]any
}

// NewProps returns an empty property bag.
func NewProps() Props {
	return Props{}
}

// FromMap normalizes a plain map into the persistent representation. Keys are
// taken in ascending order so the result is deterministic.
func FromMap(m map[string]any) Props {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	p := NewProps()
	for _, k := range ks {
		p = p.Set(k, m[k])
	}
	return p
}

// Set returns a copy of p with key bound to value, deep-converted via
// Canonicalize so equality never depends on the construction route.
// Re-setting an existing key replaces the value but keeps the key's original
// position.
func (p Props) Set(key string, value any) Props {
	out := Props{
		keys:   make([]string, len(p.keys)),
		values: make(map[string]any, len(p.values)+1),
	}
	copy(out.keys, p.keys)
	for k, v := range p.values {
		out.values[k] = v
	}
	if _, exists := out.values[key]; !exists {
		out.keys = append(out.keys, key)
	}
	out.values[key] = Canonicalize(value)
	return out
}

// Get returns the value bound to key.
func (p Props) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is bound.
func (p Props) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (p Props) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of bound keys.
func (p Props) Len() int { return len(p.keys) }

// Equal reports deep structural equality. Insertion order affects iteration
// only, not equality (persistent-map semantics).
func (p Props) Equal(other Props) bool {
	if len(p.keys) != len(other.keys) {
		return false
	}
	for k, v := range p.values {
		ov, ok := other.values[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

// String renders "{ k1: v1, k2: v2 }" in insertion order.
func (p Props) String() string {
	b := &strings.Builder{}
	b.WriteString("{")
	for i, k := range p.keys {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, " %s: %v", k, p.values[k])
	}
	if len(p.keys) > 0 {
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// MarshalJSON emits a JSON object preserving insertion order.
func (p Props) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Canonicalize deep-converts a raw value into the persistent representation:
// plain maps become Props (keys sorted), slices are copied with canonicalized
// elements, everything else passes through unchanged.
func Canonicalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Canonicalize(t[i])
		}
		return out
	default:
		return v
	}
}

// valueEqual compares two property values deeply, dispatching on the
// structural types that can appear inside Props.
func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case Props:
		bv, ok := b.(Props)
		return ok && av.Equal(bv)
	case Fields:
		bv, ok := b.(Fields)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Node:
		bv, ok := b.(Node)
		return ok && av.Equals(bv)
	default:
		return reflect.DeepEqual(a, b)
	}
}
