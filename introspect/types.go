package introspect

import (
	"errors"
	"strings"
)

// ErrTypeNotFound is returned (wrapped) when a type name cannot be resolved.
var ErrTypeNotFound = errors.New("type not found")

// Describer supplies the structural facts about a type.
type Describer interface {
	// DescribeType returns the description of the named type.
	// Unknown names yield an error wrapping ErrTypeNotFound.
	DescribeType(name string) (*TypeDesc, error)
}

// Visibility of a field or method.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityProtected
	VisibilityPrivate
)

// String returns a human-readable representation of the Visibility.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// TypeRef is a raw type annotation as declared on a parameter or return value.
type TypeRef struct {
	Name     string // e.g. "int", "array", "void", "self", "time.Time"
	Builtin  bool   // Name is a builtin kind rather than a named type
	Nullable bool   // null is accepted
}

// ParamDesc describes a method or constructor parameter.
type ParamDesc struct {
	Name     string
	Type     *TypeRef // nil when unannotated
	Optional bool
}

// MethodDesc describes a method.
type MethodDesc struct {
	Name          string
	Visibility    Visibility
	Static        bool
	Params        []ParamDesc
	Return        *TypeRef // nil when unannotated
	DeclaringType string   // exact name of the type declaring the method
}

// IsPublic returns true if the method is public.
func (m *MethodDesc) IsPublic() bool {
	return m.Visibility == VisibilityPublic
}

// RequiredParams returns the number of non-optional parameters.
func (m *MethodDesc) RequiredParams() int {
	n := 0
	for _, p := range m.Params {
		if !p.Optional {
			n++
		}
	}

	return n
}

// Param returns the parameter with the exact given name.
func (m *MethodDesc) Param(name string) (*ParamDesc, bool) {
	for i := range m.Params {
		if m.Params[i].Name == name {
			return &m.Params[i], true
		}
	}

	return nil, false
}

// FieldDesc describes a declared field.
type FieldDesc struct {
	Name       string
	Visibility Visibility
	Static     bool
}

// IsPublic returns true if the field is public.
func (f *FieldDesc) IsPublic() bool {
	return f.Visibility == VisibilityPublic
}

// TypeDesc is the full structural description of one type.
type TypeDesc struct {
	Name         string
	Fields       []FieldDesc    // declaration order, inherited fields included
	Methods      []MethodDesc   // inherited methods included
	Constructor  *MethodDesc    // nil when the type declares none
	Parent       string         // empty when the type has no parent
	Instantiable bool           // false for abstract types and interfaces
	Defaults     map[string]any // declared default values; a present nil is an explicit null
}

// Field returns the field with the exact given name.
func (t *TypeDesc) Field(name string) (*FieldDesc, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}

	return nil, false
}

// Method returns the method with the given name.
// Method names are matched case-insensitively.
func (t *TypeDesc) Method(name string) (*MethodDesc, bool) {
	for i := range t.Methods {
		if strings.EqualFold(t.Methods[i].Name, name) {
			return &t.Methods[i], true
		}
	}

	return nil, false
}

// FieldNames returns the names of all declared fields, whatever their visibility.
func (t *TypeDesc) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}

	return names
}
