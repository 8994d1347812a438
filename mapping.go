package formschema

import (
	js "github.com/miguelsm/formschema/jsonschema"
)

// MappingNode is the composite variant keyed by named children. The children
// live under props["children"] as an insertion-ordered Fields; every child is
// itself a Node, attached only after it was fully built.
type MappingNode struct {
	node
	fields Fields
}

var _ Composite = (*MappingNode)(nil)

// Mapping builds a mapping schema from declaration-ordered children.
func Mapping(fields ...Field) *MappingNode {
	return MappingWith(NewProps(), fields...)
}

// MappingWith is the two-argument call shape: extra props merged with the
// children. The children are normalized into the persistent Fields
// representation before storage.
func MappingWith(props Props, fields ...Field) *MappingNode {
	fs := NewFields(fields...)
	return &MappingNode{
		node:   node{props: props.Set("children", fs)},
		fields: fs,
	}
}

func (m *MappingNode) Kind() Kind { return KindMapping }

// Children returns the ordered child collection.
func (m *MappingNode) Children() Fields { return m.fields }

// Get returns the child registered at key.
func (m *MappingNode) Get(key string) (Node, bool) { return m.fields.Get(key) }

// Has reports membership.
func (m *MappingNode) Has(key string) bool { return m.fields.Has(key) }

// Keys returns the mapping's own field names in insertion order; the runtime
// value is ignored.
func (m *MappingNode) Keys(_ any) []string { return m.fields.Names() }

func (m *MappingNode) Instantiate(value any) Node { return m }

func (m *MappingNode) Equals(other Node) bool { return equalNodes(m, other) }

func (m *MappingNode) String() string { return nodeString(m) }

func (m *MappingNode) JSONSchema() (*js.Schema, error) {
	props := js.NewProperties()
	for _, name := range m.fields.Names() {
		child, _ := m.fields.Get(name)
		cs, err := child.JSONSchema()
		if err != nil {
			return nil, err
		}
		props.Set(name, cs)
	}
	return &js.Schema{Type: "object", Properties: props, AdditionalProperties: false}, nil
}
