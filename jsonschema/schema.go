package jsonschema

import (
	"bytes"
	"reflect"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type    string `json:"type,omitempty"`
	Default any    `json:"default,omitempty"`

	// Object
	Properties           *Properties `json:"properties,omitempty"`
	Required             []string    `json:"required,omitempty"`
	AdditionalProperties any         `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}

// Properties is an insertion-ordered name->Schema collection so the
// declaration order of mapping children survives into the emitted JSON.
type Properties struct {
	names   []string
	schemas map[string]*Schema
}

// NewProperties returns an empty ordered collection.
func NewProperties() *Properties {
	return &Properties{schemas: map[string]*Schema{}}
}

// Set binds name to schema. A repeated name replaces the earlier schema but
// keeps its original position.
func (p *Properties) Set(name string, s *Schema) *Properties {
	if _, exists := p.schemas[name]; !exists {
		p.names = append(p.names, name)
	}
	p.schemas[name] = s
	return p
}

// Get returns the schema bound to name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.schemas[name]
	return s, ok
}

// Names returns the property names in insertion order.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Equal reports order-sensitive equality; insertion order is part of the
// projection.
func (p *Properties) Equal(other *Properties) bool {
	if p == nil || other == nil {
		return p.Len() == other.Len()
	}
	if len(p.names) != len(other.names) {
		return false
	}
	for i, name := range p.names {
		if other.names[i] != name {
			return false
		}
		if !reflect.DeepEqual(p.schemas[name], other.schemas[name]) {
			return false
		}
	}
	return true
}

// MarshalJSON emits a JSON object preserving insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.schemas[name])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON marshals the schema to JSON.
func (s *Schema) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// ToYAML marshals the schema to YAML. The value round-trips through JSON so
// the json tags (and any custom marshalers on defaults) decide the shape;
// YAML keys come out sorted.
func (s *Schema) ToYAML() ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
