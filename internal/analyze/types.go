package analyze

import (
	"go/types"
	"sort"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "property-info/fixtures"
	Name    string // e.g., "Article"
}

// String returns the qualified name used to address the type.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a named type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type, never instantiable
	TypeKindBasic              // named basic type (e.g., type Status string)
	TypeKindOther              // named slice, map, func, etc.
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindBasic:
		return "basic"
	case TypeKindOther:
		return "other"
	default:
		return "unknown"
	}
}

// TypeInfo is a loaded named type.
type TypeInfo struct {
	ID      TypeID
	Kind    TypeKind
	Package *PackageInfo
	Obj     *types.TypeName
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// IDs returns every loaded type, ordered by qualified name.
func (g *TypeGraph) IDs() []TypeID {
	ids := make([]TypeID, 0, len(g.Types))
	for id := range g.Types {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string       // Import path
	Name  string       // Package name
	Types []TypeID     // Named types defined in this package
	Scope *types.Scope // Package scope, used to find constructors
}

func kindOf(obj *types.TypeName) TypeKind {
	switch obj.Type().Underlying().(type) {
	case *types.Struct:
		return TypeKindStruct
	case *types.Interface:
		return TypeKindInterface
	case *types.Basic:
		return TypeKindBasic
	default:
		return TypeKindOther
	}
}
