package analyze

import (
	"go/types"
	"reflect"
	"strconv"

	"property-info/introspect"
)

// maxEmbedDepth bounds the walk through embedded structs.
const maxEmbedDepth = 16

// describe builds the structural description of a loaded named type.
//
// Fields are the struct's own fields in declaration order followed by
// exported fields promoted from embedded structs. Methods are the method
// set of *T: own methods first, then promoted ones. The first embedded
// named struct is the parent. New<T> returning T or *T is the constructor.
func describe(info *TypeInfo) *introspect.TypeDesc {
	named, ok := types.Unalias(info.Obj.Type()).(*types.Named)
	desc := &introspect.TypeDesc{
		Name:         info.ID.String(),
		Instantiable: info.Kind != TypeKindInterface,
		Defaults:     make(map[string]any),
	}
	if !ok {
		return desc
	}

	if st, isStruct := named.Underlying().(*types.Struct); isStruct {
		collectFields(desc, st, make(map[string]bool), 0)
		desc.Parent = parentOf(st)
	}

	desc.Methods = collectMethods(named, desc.Name)

	if info.Package != nil && info.Package.Scope != nil {
		desc.Constructor = constructorOf(info.Package.Scope, named, desc.Name)
	}

	return desc
}

// collectFields appends the fields of st not already seen. Unexported
// fields are only taken from the outermost struct.
func collectFields(desc *introspect.TypeDesc, st *types.Struct, seen map[string]bool, depth int) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if seen[field.Name()] || (depth > 0 && !field.Exported()) {
			continue
		}
		seen[field.Name()] = true

		desc.Fields = append(desc.Fields, introspect.FieldDesc{
			Name:       field.Name(),
			Visibility: visibility(field.Exported()),
		})

		if value, ok := parseDefault(reflect.StructTag(st.Tag(i)), field.Type()); ok {
			desc.Defaults[field.Name()] = value
		}
	}

	if depth >= maxEmbedDepth {
		return
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		if embedded, ok := embeddedStruct(field.Type()); ok {
			collectFields(desc, embedded, seen, depth+1)
		}
	}
}

// parentOf returns the qualified name of the first embedded named struct.
func parentOf(st *types.Struct) string {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		named, ok := deref(field.Type()).(*types.Named)
		if !ok {
			continue
		}

		if _, isStruct := named.Underlying().(*types.Struct); isStruct {
			return qualifiedName(named.Obj())
		}
	}

	return ""
}

// collectMethods lists the method set of *T, own methods first.
func collectMethods(named *types.Named, self string) []introspect.MethodDesc {
	seen := make(map[string]bool)

	var methods []introspect.MethodDesc

	add := func(fn *types.Func) {
		if seen[fn.Name()] {
			return
		}
		seen[fn.Name()] = true
		methods = append(methods, methodDesc(fn, self))
	}

	if iface, ok := named.Underlying().(*types.Interface); ok {
		for i := 0; i < iface.NumMethods(); i++ {
			add(iface.Method(i))
		}

		return methods
	}

	for i := 0; i < named.NumMethods(); i++ {
		add(named.Method(i))
	}

	// Promoted methods, including those of embedded interfaces.
	mset := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < mset.Len(); i++ {
		if fn, ok := mset.At(i).Obj().(*types.Func); ok {
			add(fn)
		}
	}

	return methods
}

func methodDesc(fn *types.Func, self string) introspect.MethodDesc {
	sig, _ := fn.Type().(*types.Signature)

	m := introspect.MethodDesc{
		Name:          fn.Name(),
		Visibility:    visibility(fn.Exported()),
		DeclaringType: self,
	}

	if sig == nil {
		return m
	}

	if recv := sig.Recv(); recv != nil {
		if named, ok := deref(recv.Type()).(*types.Named); ok {
			m.DeclaringType = qualifiedName(named.Obj())
		}
	}

	m.Params = paramDescs(sig)
	m.Return = resultRef(sig)

	return m
}

// constructorOf finds New<T> in the package scope.
func constructorOf(scope *types.Scope, named *types.Named, self string) *introspect.MethodDesc {
	fn, ok := scope.Lookup("New" + named.Obj().Name()).(*types.Func)
	if !ok {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() != nil || sig.Results().Len() == 0 {
		return nil
	}

	if result, ok := deref(sig.Results().At(0).Type()).(*types.Named); !ok || result.Obj() != named.Obj() {
		return nil
	}

	return &introspect.MethodDesc{
		Name:          fn.Name(),
		Visibility:    visibility(fn.Exported()),
		Params:        paramDescs(sig),
		Return:        resultRef(sig),
		DeclaringType: self,
	}
}

func paramDescs(sig *types.Signature) []introspect.ParamDesc {
	params := sig.Params()
	if params.Len() == 0 {
		return nil
	}

	out := make([]introspect.ParamDesc, 0, params.Len())
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		out = append(out, introspect.ParamDesc{
			Name:     p.Name(),
			Type:     typeRef(p.Type()),
			Optional: sig.Variadic() && i == params.Len()-1,
		})
	}

	return out
}

// resultRef maps the first result. A function without results returns void.
func resultRef(sig *types.Signature) *introspect.TypeRef {
	if sig.Results().Len() == 0 {
		return &introspect.TypeRef{Name: "void", Builtin: true}
	}

	return typeRef(sig.Results().At(0).Type())
}

// parseDefault reads the default tag. "null" yields a nil default; values
// that do not parse for the field's kind are ignored.
func parseDefault(tag reflect.StructTag, t types.Type) (any, bool) {
	raw, ok := tag.Lookup("default")
	if !ok {
		return nil, false
	}

	if raw == "null" || raw == "nil" {
		return nil, true
	}

	switch u := deref(t).Underlying().(type) {
	case *types.Basic:
		info := u.Info()
		switch {
		case info&types.IsInteger != 0:
			v, err := strconv.ParseInt(raw, 0, 64)
			return v, err == nil
		case info&types.IsFloat != 0:
			v, err := strconv.ParseFloat(raw, 64)
			return v, err == nil
		case info&types.IsBoolean != 0:
			v, err := strconv.ParseBool(raw)
			return v, err == nil
		case info&types.IsString != 0:
			return raw, true
		}
	case *types.Slice, *types.Array, *types.Map:
		return []any{}, true
	}

	return nil, false
}

func embeddedStruct(t types.Type) (*types.Struct, bool) {
	st, ok := deref(t).Underlying().(*types.Struct)
	return st, ok
}

func deref(t types.Type) types.Type {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		return types.Unalias(ptr.Elem())
	}

	return t
}

func qualifiedName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}.String()
}

func visibility(exported bool) introspect.Visibility {
	if exported {
		return introspect.VisibilityPublic
	}

	return introspect.VisibilityPrivate
}
