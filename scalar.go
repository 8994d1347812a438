package formschema

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/miguelsm/formschema/i18n"
	js "github.com/miguelsm/formschema/jsonschema"
)

// ScalarNode is the leaf variant. It covers both the string and number kinds
// via its tag; the kind decides Deserialize semantics.
type ScalarNode struct {
	node
	kind Kind
}

var _ Leaf = (*ScalarNode)(nil)

// Scalar is the single validated entry point for leaf-schema construction.
// It dispatches on props["type"] (default "string"); any other type fails
// fast while the schema is being defined.
func Scalar(props Props) *ScalarNode {
	typ := "string"
	if raw, ok := props.Get("type"); ok {
		s, isString := raw.(string)
		invariant(isString, "formschema: scalar type must be a string, got %T", raw)
		typ = s
	}
	switch typ {
	case "string":
		return &ScalarNode{node: node{props: props}, kind: KindString}
	case "number":
		return &ScalarNode{node: node{props: props}, kind: KindNumber}
	default:
		invariant(false, "formschema: invalid scalar type %q", typ)
		return nil
	}
}

// String returns a string-kind scalar, optionally with extra props.
func String(props ...Props) *ScalarNode {
	p := NewProps()
	if len(props) > 0 {
		p = props[0]
	}
	return Scalar(p.Set("type", "string"))
}

// Number returns a number-kind scalar, optionally with extra props.
func Number(props ...Props) *ScalarNode {
	p := NewProps()
	if len(props) > 0 {
		p = props[0]
	}
	return Scalar(p.Set("type", "number"))
}

func (s *ScalarNode) Kind() Kind { return s.kind }

// Instantiate returns the node itself: a scalar self-identifies as the
// finished schema, independent of the runtime value.
func (s *ScalarNode) Instantiate(value any) Node { return s }

func (s *ScalarNode) Equals(other Node) bool { return equalNodes(s, other) }

func (s *ScalarNode) String() string { return nodeString(s) }

// Serialize maps nil to the empty string so leaves always render into a text
// field; any other value passes through unchanged.
func (s *ScalarNode) Serialize(value any) any {
	if value == nil {
		return ""
	}
	return value
}

// Deserialize maps the empty string back to nil. String-kind leaves pass
// everything else through; number-kind leaves parse into a finite float64.
// Whitespace-only and trailing-garbage inputs ("  ", "3.14x") are invalid:
// strconv semantics, no silent coercion.
func (s *ScalarNode) Deserialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	if str, ok := value.(string); ok && str == "" {
		return nil, nil
	}
	if s.kind == KindNumber {
		return deserializeNumber(value)
	}
	return value, nil
}

func deserializeNumber(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return parseNumberText(v.String())
	case string:
		return parseNumberText(v)
	default:
		return nil, Issues{{
			Path:    "/",
			Code:    CodeInvalidValue,
			Message: i18n.T(CodeInvalidValue, nil),
			Hint:    "expected number or numeric text",
			Params:  map[string]any{"got": value},
		}}
	}
}

func parseNumberText(text string) (any, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Issues{{
			Path:    "/",
			Code:    CodeInvalidValue,
			Message: i18n.T(CodeInvalidValue, nil),
			Hint:    "expected a finite number",
			Cause:   err,
			Params:  map[string]any{"got": text},
		}}
	}
	return f, nil
}

func (s *ScalarNode) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: s.kind.String()}
	if dv := s.DefaultValue(); dv != nil {
		out.Default = dv
	}
	return out, nil
}
