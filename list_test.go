package formschema_test

import (
	"testing"

	fs "github.com/miguelsm/formschema"
)

func TestList_AnyIndexAddressable(t *testing.T) {
	elem := fs.String()
	l := fs.List(elem)

	if !l.Has("0") || !l.Has("9999") {
		t.Fatalf("expected every index addressable")
	}

	n1, ok1 := l.Get("0")
	n2, ok2 := l.Get("42")
	if !ok1 || !ok2 {
		t.Fatalf("expected element schema for any key")
	}
	if n1 != n2 || n1 != fs.Node(elem) {
		t.Fatalf("expected identical element reference each call")
	}
}

func TestList_KeysFollowRuntimeValue(t *testing.T) {
	l := fs.List(fs.Number())

	keys := l.Keys([]any{10, 20, 30})
	if len(keys) != 3 || keys[0] != "0" || keys[2] != "2" {
		t.Fatalf("expected index sequence [0 1 2], got %v", keys)
	}

	if keys := l.Keys([]string{"a"}); len(keys) != 1 || keys[0] != "0" {
		t.Fatalf("expected typed slices accepted, got %v", keys)
	}

	if keys := l.Keys(nil); len(keys) != 0 {
		t.Fatalf("expected no keys for nil value, got %v", keys)
	}
	if keys := l.Keys("not a collection"); len(keys) != 0 {
		t.Fatalf("expected no keys for non-collection, got %v", keys)
	}
}

func TestList_ElementStoredAsIs(t *testing.T) {
	elem := fs.String()
	l := fs.List(elem)
	raw, ok := l.Props().Get("children")
	if !ok {
		t.Fatalf("expected children prop")
	}
	// stored as the single node, not wrapped in a keyed collection
	if raw != fs.Node(elem) {
		t.Fatalf("expected element schema stored as-is, got %T", raw)
	}
	if l.Children() != fs.Node(elem) {
		t.Fatalf("expected accessor to return the element schema")
	}
}

func TestListWith_MergesProps(t *testing.T) {
	l := fs.ListWith(fs.NewProps().Set("label", "Tags"), fs.String())
	if v, _ := l.Props().Get("label"); v != "Tags" {
		t.Fatalf("expected extra prop kept, got %v", v)
	}
}

func TestList_NilElementFailsFast(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil element schema")
		}
	}()
	fs.List(nil)
}

func TestList_Equals(t *testing.T) {
	l1 := fs.List(fs.String())
	l2 := fs.List(fs.String())
	l3 := fs.List(fs.Number())

	if !l1.Equals(l2) {
		t.Fatalf("expected equal lists")
	}
	if l1.Equals(l3) {
		t.Fatalf("expected inequality for differing element schema")
	}
}
