package extractor

import (
	"property-info/introspect"
)

// IsReadable reports whether property is a public field of class or has an accessor.
func (e *ReflectionExtractor) IsReadable(class, property string, _ ...ContextOption) bool {
	desc, ok := e.describe(class)
	if !ok {
		return false
	}

	if isPublicField(desc, property) {
		return true
	}

	_, _, found := e.accessorMethod(desc, property)

	return found
}

// IsWritable reports whether property is a public field of class or has a mutator.
func (e *ReflectionExtractor) IsWritable(class, property string, _ ...ContextOption) bool {
	desc, ok := e.describe(class)
	if !ok {
		return false
	}

	if isPublicField(desc, property) {
		return true
	}

	_, _, found := e.mutatorMethod(desc, property)

	return found
}

// IsInitializable reports whether property can be set through the constructor
// of class, or of the closest ancestor declaring one. ok is false when class
// cannot be resolved.
func (e *ReflectionExtractor) IsInitializable(class, property string, _ ...ContextOption) (initializable, ok bool) {
	desc, found := e.describe(class)
	if !found {
		return false, false
	}

	if !desc.Instantiable {
		return false, true
	}

	visited := map[string]bool{desc.Name: true}

	for depth := 0; depth < maxParentDepth; depth++ {
		if desc.Constructor != nil {
			_, declared := desc.Constructor.Param(property)
			return declared, true
		}

		if desc.Parent == "" || visited[desc.Parent] {
			break
		}
		visited[desc.Parent] = true

		if desc, found = e.describe(desc.Parent); !found {
			break
		}
	}

	return false, true
}

func isPublicField(desc *introspect.TypeDesc, property string) bool {
	f, ok := desc.Field(property)
	return ok && f.IsPublic()
}

// accessorMethod finds "<prefix><Property>" for each accessor prefix in order,
// skipping static methods and methods with required parameters.
func (e *ReflectionExtractor) accessorMethod(desc *introspect.TypeDesc, property string) (*introspect.MethodDesc, string, bool) {
	ucProperty := upperFirst(property)

	for _, prefix := range e.accessorPrefixes {
		m, ok := desc.Method(prefix + ucProperty)
		if !ok || m.Static || !m.IsPublic() {
			continue
		}

		if m.RequiredParams() == 0 {
			return m, prefix, true
		}
	}

	return nil, "", false
}

// mutatorMethod finds "<prefix><Property>" taking at least one parameter,
// also trying the singular forms of the property for array-mutator prefixes.
// Optional parameters count, so "setFoo(foo = null)" qualifies.
func (e *ReflectionExtractor) mutatorMethod(desc *introspect.TypeDesc, property string) (*introspect.MethodDesc, string, bool) {
	ucProperty := upperFirst(property)

	var singulars []string

	for _, prefix := range e.mutatorPrefixes {
		names := []string{ucProperty}
		if e.isArrayMutatorPrefix(prefix) {
			if singulars == nil {
				singulars = e.singularizer.Singularize(ucProperty)
			}
			names = append(names, singulars...)
		}

		for _, name := range names {
			m, ok := desc.Method(prefix + upperFirst(name))
			if !ok || m.Static || !m.IsPublic() {
				continue
			}

			if len(m.Params) >= 1 {
				return m, prefix, true
			}
		}
	}

	return nil, "", false
}
