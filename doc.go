package formschema

// Package formschema describes the shape of structured data as an immutable
// tree of typed schema nodes:
//
// - Scalar leaves (string/number kinds) with Serialize/Deserialize at the
//   value<->text boundary
// - Mapping composites keyed by named children, insertion order preserved
// - List composites describing one homogeneous repeated element shape
// - Default-value derivation and path resolution over the finished tree
//
// Design policy:
// - Keep only public APIs in the root package; canonical messages live in
//   i18n/, the export projection in jsonschema/.
// - Schema-authoring mistakes fail fast (panic) while building the tree;
//   runtime data failures surface as Issues error values.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  schema := formschema.Mapping(
//      formschema.Field{Name: "name", Schema: formschema.String()},
//      formschema.Field{Name: "age", Schema: formschema.Number()},
//  )
//  node, err := formschema.Resolve(schema, "age")
//  v, err := node.(formschema.Leaf).Deserialize("42")
//
