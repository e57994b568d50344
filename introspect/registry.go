package introspect

import (
	"fmt"
	"strings"
	"sync"
)

// maxParentDepth bounds parent-chain walks.
const maxParentDepth = 64

// Registry is an in-memory Describer backed by a static type table.
//
// Types are registered with their own members only. DescribeType returns a
// merged view that also carries the non-private fields, methods and default
// values inherited from the parent chain, the way a reflection API would.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*TypeDesc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*TypeDesc),
	}
}

// Register adds or replaces a type. Methods without a DeclaringType are
// attributed to desc.Name. The registry keeps its own copy of desc.
func (r *Registry) Register(desc TypeDesc) *Registry {
	stored := cloneDesc(&desc)
	for i := range stored.Methods {
		if stored.Methods[i].DeclaringType == "" {
			stored.Methods[i].DeclaringType = stored.Name
		}
	}

	if stored.Constructor != nil && stored.Constructor.DeclaringType == "" {
		stored.Constructor.DeclaringType = stored.Name
	}

	r.mu.Lock()
	r.types[stored.Name] = stored
	r.mu.Unlock()

	return r
}

// Names returns the registered type names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	return names
}

// DescribeType implements Describer.
func (r *Registry) DescribeType(name string) (*TypeDesc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	own, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, name)
	}

	merged := cloneDesc(own)
	visited := map[string]bool{name: true}

	for parentName, depth := own.Parent, 0; parentName != "" && depth < maxParentDepth; depth++ {
		if visited[parentName] {
			break
		}
		visited[parentName] = true

		parent, ok := r.types[parentName]
		if !ok {
			break
		}

		inherit(merged, parent)
		parentName = parent.Parent
	}

	return merged, nil
}

// inherit copies the non-private members of parent that dst does not shadow.
func inherit(dst, parent *TypeDesc) {
	for _, f := range parent.Fields {
		if f.Visibility == VisibilityPrivate {
			continue
		}
		if _, exists := dst.Field(f.Name); exists {
			continue
		}
		dst.Fields = append(dst.Fields, f)
	}

	for _, m := range parent.Methods {
		if m.Visibility == VisibilityPrivate {
			continue
		}
		if _, exists := dst.Method(m.Name); exists {
			continue
		}
		dst.Methods = append(dst.Methods, cloneMethod(m))
	}

	for k, v := range parent.Defaults {
		if _, exists := dst.Defaults[k]; !exists {
			dst.Defaults[k] = v
		}
	}
}

func cloneDesc(src *TypeDesc) *TypeDesc {
	dst := &TypeDesc{
		Name:         src.Name,
		Fields:       append([]FieldDesc(nil), src.Fields...),
		Methods:      make([]MethodDesc, 0, len(src.Methods)),
		Parent:       src.Parent,
		Instantiable: src.Instantiable,
		Defaults:     make(map[string]any, len(src.Defaults)),
	}

	for _, m := range src.Methods {
		dst.Methods = append(dst.Methods, cloneMethod(m))
	}

	if src.Constructor != nil {
		c := cloneMethod(*src.Constructor)
		dst.Constructor = &c
	}

	for k, v := range src.Defaults {
		dst.Defaults[k] = v
	}

	return dst
}

func cloneMethod(m MethodDesc) MethodDesc {
	m.Params = append([]ParamDesc(nil), m.Params...)
	return m
}

// Ref builds a TypeRef for a named type. A leading "?" marks it nullable.
func Ref(name string) *TypeRef {
	nullable := strings.HasPrefix(name, "?")
	return &TypeRef{Name: strings.TrimPrefix(name, "?"), Nullable: nullable}
}

// BuiltinRef builds a TypeRef for a builtin kind. A leading "?" marks it nullable.
func BuiltinRef(name string) *TypeRef {
	ref := Ref(name)
	ref.Builtin = true

	return ref
}
