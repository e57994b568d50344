// Package introspect defines the structural model the extractor reasons about
// and the Describer capability that supplies it.
//
// Key types:
//   - Describer: resolves a type name to a TypeDesc
//   - TypeDesc: fields, methods, constructor, parent and default values
//   - MethodDesc, ParamDesc, FieldDesc: members with visibility and annotations
//   - TypeRef: a raw type annotation
//   - Registry: an in-memory Describer, filled programmatically
package introspect
