// Package extractor infers property metadata from the structure of a type.
//
// A ReflectionExtractor answers four questions about a (type, property) pair
// using only what an introspect.Describer reports:
//   - Properties: which properties a type exposes (public fields plus names
//     implied by accessor and mutator methods)
//   - Types: the property type, taken from the first of mutator parameter,
//     accessor return, constructor parameter and default value that yields one
//   - IsReadable / IsWritable: whether a public field or a conventional
//     accessor/mutator exists
//   - IsInitializable: whether the constructor accepts the property
//
// Method names are matched against configurable prefixes ("get", "is",
// "set", "add", ...). Array-mutator prefixes ("add", "remove") address a
// single element, so "addAnalysis" is matched to the plural field "analyses".
//
// Every operation is total: an unresolvable type yields nil, false or
// ok == false instead of an error.
package extractor
