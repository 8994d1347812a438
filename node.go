package formschema

import (
	"fmt"
	"reflect"
	"sync"

	js "github.com/miguelsm/formschema/jsonschema"
)

// Kind identifies a schema node variant.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindMapping
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindMapping:
		return "mapping"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Node is the capability set shared by every schema variant. Nodes are
// immutable once constructed; all operations are pure functions of
// already-set state.
type Node interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Props returns the node's property bag.
	Props() Props
	// DefaultValue returns props["defaultValue"] deep-converted to the
	// persistent representation. Computed once per node and cached.
	DefaultValue() any
	// Instantiate reports the finished schema for a runtime value. Every
	// variant in this package is concrete: the node itself is returned,
	// independent of value.
	Instantiate(value any) Node
	// Equals reports structural equality: same kind, deeply equal props
	// (children included, since composites store them under
	// props["children"]). A nil other is never equal.
	Equals(other Node) bool
	// JSONSchema projects the node into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)

	fmt.Stringer
}

// Leaf is the scalar capability: conversion between the internal value
// representation and the external string representation.
type Leaf interface {
	Node
	// Serialize maps nil to "" and passes every other value through
	// unchanged.
	Serialize(value any) any
	// Deserialize maps "" to nil; number-kind leaves additionally parse
	// text into a finite float64, returning an Issues error value (never
	// panicking) for unparseable input.
	Deserialize(value any) (any, error)
}

// Composite is the traversal capability owned by mapping and list variants.
type Composite interface {
	Node
	// Get returns the child schema addressed by key.
	Get(key string) (Node, bool)
	// Has reports whether key addresses a child.
	Has(key string) bool
	// Keys returns the addressable keys; mapping variants ignore value and
	// return their own field names, list variants return the index
	// sequence of the supplied runtime collection.
	Keys(value any) []string
}

// node is the shared property container embedded by every variant.
type node struct {
	props   Props
	defOnce sync.Once
	defVal  any
}

func (n *node) Props() Props { return n.props }

// DefaultValue deep-converts the raw stored default once. The cache is
// write-once; inputs are immutable, so a racing recomputation would produce
// the identical value.
func (n *node) DefaultValue() any {
	n.defOnce.Do(func() {
		if raw, ok := n.props.Get("defaultValue"); ok {
			n.defVal = Canonicalize(raw)
		}
	})
	return n.defVal
}

// isNilNode reports whether n is nil, including a typed-nil pointer boxed in
// the interface.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// equalNodes implements the shared structural-equality contract.
func equalNodes(n Node, other Node) bool {
	if isNilNode(other) {
		return false
	}
	if n.Kind() != other.Kind() {
		return false
	}
	return n.Props().Equal(other.Props())
}

// nodeString renders "<kind> { k1: v1, k2: v2 }" in props iteration order.
func nodeString(n Node) string {
	return n.Kind().String() + " " + n.Props().String()
}
