// Package analyze provides package loading and type description.
//
// It uses golang.org/x/tools/go/packages with go/types to describe the
// exported named types of Go packages in the structural form the
// extractor consumes.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeGraph: every loaded named type, keyed by TypeID
//   - Analyzer: loads packages and implements introspect.Describer
package analyze
