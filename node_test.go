package formschema_test

import (
	"reflect"
	"sync"
	"testing"

	fs "github.com/miguelsm/formschema"
)

func TestNode_PropsRoundTrip(t *testing.T) {
	p := fs.NewProps().Set("type", "number").Set("defaultValue", []any{1, 2})
	if got := fs.Scalar(p).Props(); !got.Equal(p) {
		t.Fatalf("expected constructed props to equal input, got %v", got)
	}
}

func TestNode_EqualsBasics(t *testing.T) {
	a := fs.Scalar(fs.NewProps().Set("type", "string").Set("defaultValue", "x"))
	b := fs.Scalar(fs.NewProps().Set("type", "string").Set("defaultValue", "x"))

	if !a.Equals(a) {
		t.Fatalf("expected reflexive equality")
	}
	if !a.Equals(b) || !b.Equals(a) {
		t.Fatalf("expected symmetric structural equality")
	}
	if a.Equals(nil) {
		t.Fatalf("expected false for nil")
	}
}

func TestNode_EqualsTypedNil(t *testing.T) {
	a := fs.String()
	var nilScalar *fs.ScalarNode
	if a.Equals(nilScalar) {
		t.Fatalf("expected false for typed-nil node")
	}
	var nilMapping *fs.MappingNode
	if a.Equals(nilMapping) {
		t.Fatalf("expected false for typed-nil composite")
	}
}

func TestNode_EqualsDifferentVariant(t *testing.T) {
	str := fs.String()
	num := fs.Number()
	mapping := fs.Mapping(fs.Field{Name: "a", Schema: fs.String()})
	list := fs.List(fs.String())

	if str.Equals(num) {
		t.Fatalf("string and number kinds must differ")
	}
	if mapping.Equals(list) || list.Equals(mapping) {
		t.Fatalf("mapping and list must differ")
	}
	if str.Equals(mapping) {
		t.Fatalf("leaf and composite must differ")
	}
}

func TestNode_EqualsDeepProps(t *testing.T) {
	a := fs.Scalar(fs.NewProps().Set("defaultValue", map[string]any{"k": 1}))
	b := fs.Scalar(fs.NewProps().Set("defaultValue", map[string]any{"k": 1}))
	c := fs.Scalar(fs.NewProps().Set("defaultValue", map[string]any{"k": 2}))

	if !a.Equals(b) {
		t.Fatalf("expected deep props equality")
	}
	if a.Equals(c) {
		t.Fatalf("expected deep props inequality")
	}
}

func TestNode_String(t *testing.T) {
	s := fs.Scalar(fs.NewProps().Set("type", "number").Set("defaultValue", 1))
	want := "number { type: number, defaultValue: 1 }"
	if got := s.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	m := fs.Mapping(fs.Field{Name: "a", Schema: fs.String()})
	if got := m.String(); got != m.String() {
		t.Fatalf("expected deterministic rendering, got %q", got)
	}
}

func TestNode_DefaultValueDeepConversion(t *testing.T) {
	s := fs.Scalar(fs.NewProps().Set("defaultValue", map[string]any{"b": 2, "a": 1}))
	dv := s.DefaultValue()
	p, ok := dv.(fs.Props)
	if !ok {
		t.Fatalf("expected Props default, got %T", dv)
	}
	keys := p.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("expected sorted conversion [a b], got %v", keys)
	}

	// no default declared
	if dv := fs.String().DefaultValue(); dv != nil {
		t.Fatalf("expected nil default, got %v", dv)
	}
}

func TestNode_DefaultValueMemoized(t *testing.T) {
	s := fs.Scalar(fs.NewProps().Set("defaultValue", []any{1, 2, 3}))

	first := s.DefaultValue()
	second := s.DefaultValue()
	p1 := reflect.ValueOf(first).Pointer()
	p2 := reflect.ValueOf(second).Pointer()
	if p1 != p2 {
		t.Fatalf("expected cached identity across reads")
	}

	// concurrent first access on a fresh node computes once
	s2 := fs.Scalar(fs.NewProps().Set("defaultValue", []any{"x"}))
	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s2.DefaultValue()
		}(i)
	}
	wg.Wait()
	base := reflect.ValueOf(results[0]).Pointer()
	for _, r := range results[1:] {
		if reflect.ValueOf(r).Pointer() != base {
			t.Fatalf("expected one cached value under concurrent access")
		}
	}
}

func TestKind_String(t *testing.T) {
	cases := map[fs.Kind]string{
		fs.KindString:  "string",
		fs.KindNumber:  "number",
		fs.KindMapping: "mapping",
		fs.KindList:    "list",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
