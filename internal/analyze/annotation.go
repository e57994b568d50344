package analyze

import (
	"go/types"

	"property-info/introspect"
)

// typeRef maps a Go type to the annotation form the extractor understands.
//
//	*T              nullable T
//	integers        int
//	floats          float
//	slice/array/map array
//	chan            resource
//	func            callable
//	interface{}     mixed
//	named types     object, by qualified name
func typeRef(t types.Type) *introspect.TypeRef {
	switch tt := types.Unalias(t).(type) {
	case *types.Pointer:
		ref := typeRef(tt.Elem())
		ref.Nullable = true

		return ref
	case *types.Basic:
		return builtin(basicName(tt))
	case *types.Slice, *types.Array, *types.Map:
		return builtin("array")
	case *types.Chan:
		return builtin("resource")
	case *types.Signature:
		return builtin("callable")
	case *types.Interface:
		if tt.Empty() {
			return builtin("mixed")
		}

		return builtin("object")
	case *types.Struct:
		return builtin("object")
	case *types.TypeParam:
		return builtin("mixed")
	case *types.Named:
		return &introspect.TypeRef{Name: qualifiedName(tt.Obj())}
	default:
		return builtin(t.String())
	}
}

func builtin(name string) *introspect.TypeRef {
	return &introspect.TypeRef{Name: name, Builtin: true}
}

func basicName(b *types.Basic) string {
	info := b.Info()

	switch {
	case info&types.IsInteger != 0:
		return "int"
	case info&types.IsFloat != 0:
		return "float"
	case info&types.IsBoolean != 0:
		return "bool"
	case info&types.IsString != 0:
		return "string"
	case b.Kind() == types.UnsafePointer:
		return "resource"
	default:
		return b.Name()
	}
}
