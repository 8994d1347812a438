package formschema

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Field maps a child name to its schema node.
type Field struct {
	Name   string
	Schema Node
}

// Fields is an insertion-ordered collection of named child schemas. Like
// Props it is persistent: mutation returns a copy.
type Fields struct {
	names []string
	nodes map[string]Node
}

// NewFields builds a Fields from declaration-ordered pairs. Every schema must
// be non-nil; a repeated name replaces the earlier schema but keeps its
// original position.
func NewFields(fields ...Field) Fields {
	f := Fields{}
	for _, fd := range fields {
		f = f.Set(fd.Name, fd.Schema)
	}
	return f
}

// Set returns a copy of f with name bound to schema.
func (f Fields) Set(name string, schema Node) Fields {
	invariant(!isNilNode(schema), "formschema: child %q has nil schema", name)
	out := Fields{
		names: make([]string, len(f.names)),
		nodes: make(map[string]Node, len(f.nodes)+1),
	}
	copy(out.names, f.names)
	for k, v := range f.nodes {
		out.nodes[k] = v
	}
	if _, exists := out.nodes[name]; !exists {
		out.names = append(out.names, name)
	}
	out.nodes[name] = schema
	return out
}

// Get returns the schema registered at name.
func (f Fields) Get(name string) (Node, bool) {
	n, ok := f.nodes[name]
	return n, ok
}

// Has reports whether name is registered.
func (f Fields) Has(name string) bool {
	_, ok := f.nodes[name]
	return ok
}

// Names returns the child names in insertion order.
func (f Fields) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the number of children.
func (f Fields) Len() int { return len(f.names) }

// Equal reports deep equality: same name set, equal schema per name.
func (f Fields) Equal(other Fields) bool {
	if len(f.names) != len(other.names) {
		return false
	}
	for name, n := range f.nodes {
		on, ok := other.nodes[name]
		if !ok || !n.Equals(on) {
			return false
		}
	}
	return true
}

// MarshalJSON emits a JSON object preserving insertion order; each child
// renders as its property bag.
func (f Fields) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, name := range f.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(f.nodes[name].Props())
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders "{ a: <node>, b: <node> }" in insertion order.
func (f Fields) String() string {
	b := &strings.Builder{}
	b.WriteString("{")
	for i, name := range f.names {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, " %s: %v", name, f.nodes[name])
	}
	if len(f.names) > 0 {
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}
