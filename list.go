package formschema

import (
	"reflect"
	"strconv"

	js "github.com/miguelsm/formschema/jsonschema"
)

// ListNode is the composite variant describing one homogeneous repeated
// element shape. props["children"] holds the single element schema as-is;
// lists need no keyed structure, so no Fields normalization happens
// (asymmetry vs. Mapping, intentional). The schema does not encode list
// length: any index is addressable.
type ListNode struct {
	node
	elem Node
}

var _ Composite = (*ListNode)(nil)

// List builds a list schema around the element schema.
func List(elem Node) *ListNode {
	return ListWith(NewProps(), elem)
}

// ListWith is the two-argument call shape: extra props merged with the
// element schema.
func ListWith(props Props, elem Node) *ListNode {
	invariant(!isNilNode(elem), "formschema: list element schema is nil")
	return &ListNode{
		node: node{props: props.Set("children", elem)},
		elem: elem,
	}
}

func (l *ListNode) Kind() Kind { return KindList }

// Children returns the element schema.
func (l *ListNode) Children() Node { return l.elem }

// Get ignores the key: every index shares the one element schema.
func (l *ListNode) Get(key string) (Node, bool) { return l.elem, true }

// Has is always true; list length is runtime-determined.
func (l *ListNode) Has(key string) bool { return true }

// Keys returns the index sequence ("0", "1", ...) of the supplied runtime
// collection, not of the schema. Non-collection values yield no keys.
func (l *ListNode) Keys(value any) []string {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

func (l *ListNode) Instantiate(value any) Node { return l }

func (l *ListNode) Equals(other Node) bool { return equalNodes(l, other) }

func (l *ListNode) String() string { return nodeString(l) }

func (l *ListNode) JSONSchema() (*js.Schema, error) {
	es, err := l.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}
