package extractor

import (
	"reflect"
	"strings"

	"go.uber.org/zap"

	"property-info/introspect"
	"property-info/typeinfo"
)

// nativeTypes maps the native kind of a default value to a builtin kind.
// Kinds not listed pass through.
var nativeTypes = map[string]typeinfo.BuiltinType{
	"integer": typeinfo.BuiltinInt,
	"boolean": typeinfo.BuiltinBool,
	"double":  typeinfo.BuiltinFloat,
}

// predicatePrefixes are accessor prefixes implying a boolean without annotation.
var predicatePrefixes = []string{"is", "can", "has"}

// Types infers the type of property on class. Strategies run in order
// (mutator, accessor, constructor, default value) and the first one that
// yields a type wins. It returns nil when nothing can be inferred.
func (e *ReflectionExtractor) Types(class, property string, opts ...ContextOption) []typeinfo.Type {
	types, _ := e.TypesWithStrategy(class, property, opts...)
	return types
}

// TypesWithStrategy is Types, also reporting which strategy produced the result.
func (e *ReflectionExtractor) TypesWithStrategy(class, property string, opts ...ContextOption) ([]typeinfo.Type, Strategy) {
	desc, ok := e.describe(class)
	if !ok {
		return nil, StrategyNone
	}

	ctx := e.newContext(opts)

	if types := e.fromMutator(desc, property); types != nil {
		return e.inferred(class, property, types, StrategyMutator)
	}

	if types := e.fromAccessor(desc, property); types != nil {
		return e.inferred(class, property, types, StrategyAccessor)
	}

	if *ctx.constructorExtraction {
		types, matched := e.fromConstructor(desc, property)
		if types != nil {
			return e.inferred(class, property, types, StrategyConstructor)
		}

		// An unannotated constructor parameter ends the search.
		if matched {
			return nil, StrategyNone
		}
	}

	if types := fromDefaultValue(desc, property); types != nil {
		return e.inferred(class, property, types, StrategyDefaultValue)
	}

	return nil, StrategyNone
}

func (e *ReflectionExtractor) inferred(class, property string, types []typeinfo.Type, strategy Strategy) ([]typeinfo.Type, Strategy) {
	e.logger.Debug("type inferred",
		zap.String("class", class),
		zap.String("property", property),
		zap.Stringer("strategy", strategy),
		zap.Stringer("type", types[0]))

	return types, strategy
}

func (e *ReflectionExtractor) fromMutator(desc *introspect.TypeDesc, property string) []typeinfo.Type {
	m, prefix, ok := e.mutatorMethod(desc, property)
	if !ok || m.Params[0].Type == nil {
		return nil
	}

	elem := e.typeFromRef(m.Params[0].Type, m)

	if e.isArrayMutatorPrefix(prefix) {
		key := typeinfo.New(typeinfo.BuiltinInt, false)
		return []typeinfo.Type{typeinfo.NewCollection(false, &key, &elem)}
	}

	return []typeinfo.Type{elem}
}

func (e *ReflectionExtractor) fromAccessor(desc *introspect.TypeDesc, property string) []typeinfo.Type {
	m, prefix, ok := e.accessorMethod(desc, property)
	if !ok {
		return nil
	}

	if m.Return != nil {
		return []typeinfo.Type{e.typeFromRef(m.Return, m)}
	}

	for _, p := range predicatePrefixes {
		if strings.EqualFold(p, prefix) {
			return []typeinfo.Type{typeinfo.New(typeinfo.BuiltinBool, false)}
		}
	}

	return nil
}

// fromConstructor looks for a constructor parameter named property, walking
// up the parent chain while the current type's constructor does not declare
// it. matched reports that a parameter was found, annotated or not.
func (e *ReflectionExtractor) fromConstructor(desc *introspect.TypeDesc, property string) (types []typeinfo.Type, matched bool) {
	visited := map[string]bool{desc.Name: true}

	for depth := 0; depth < maxParentDepth; depth++ {
		if ctor := desc.Constructor; ctor != nil {
			if p, ok := ctor.Param(property); ok {
				if p.Type == nil {
					return nil, true
				}

				return []typeinfo.Type{e.typeFromRef(p.Type, ctor)}, true
			}
		}

		if desc.Parent == "" || visited[desc.Parent] {
			return nil, false
		}
		visited[desc.Parent] = true

		var ok bool
		if desc, ok = e.describe(desc.Parent); !ok {
			return nil, false
		}
	}

	return nil, false
}

// fromDefaultValue maps the declared default of property to a builtin kind.
// A null default yields nothing.
func fromDefaultValue(desc *introspect.TypeDesc, property string) []typeinfo.Type {
	value, ok := desc.Defaults[property]
	if !ok || isNil(value) {
		return nil
	}

	kind := nativeKind(value)
	if builtin, mapped := nativeTypes[kind]; mapped {
		return []typeinfo.Type{typeinfo.New(builtin, false)}
	}

	return []typeinfo.Type{typeinfo.New(typeinfo.BuiltinType(kind), false)}
}

// typeFromRef converts an annotation declared on method into a Type.
func (e *ReflectionExtractor) typeFromRef(ref *introspect.TypeRef, method *introspect.MethodDesc) typeinfo.Type {
	switch {
	case ref.Name == string(typeinfo.BuiltinArray):
		return typeinfo.NewCollection(ref.Nullable, nil, nil)
	case ref.Name == "void":
		return typeinfo.New(typeinfo.BuiltinNull, ref.Nullable)
	case ref.Builtin:
		return typeinfo.New(typeinfo.BuiltinType(ref.Name), ref.Nullable)
	default:
		return typeinfo.NewObject(e.resolveTypeName(ref.Name, method), ref.Nullable)
	}
}

// resolveTypeName resolves "self" and "parent" relative to the type declaring method.
func (e *ReflectionExtractor) resolveTypeName(name string, method *introspect.MethodDesc) string {
	switch strings.ToLower(name) {
	case "self":
		return method.DeclaringType
	case "parent":
		if declaring, ok := e.describe(method.DeclaringType); ok && declaring.Parent != "" {
			return declaring.Parent
		}
	}

	return name
}

// nativeKind names the kind of a Go value the way a dynamic runtime would.
func nativeKind(value any) string {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "integer"
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "double"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array, reflect.Map:
		return "array"
	case reflect.Chan, reflect.UnsafePointer:
		return "resource"
	default:
		return "object"
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
