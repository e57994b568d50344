package extractor

import (
	"property-info/introspect"
)

const (
	dummy             = "Fixtures\\Dummy"
	parentDummy       = "Fixtures\\ParentDummy"
	noProperties      = "Fixtures\\NoProperties"
	adderRemover      = "Fixtures\\AdderRemoverDummy"
	ctorDummy         = "Fixtures\\ConstructorDummy"
	ctorParent        = "Fixtures\\ConstructorParent"
	ctorChild         = "Fixtures\\ConstructorChild"
	ctorChild2        = "Fixtures\\ConstructorChild2"
	ctorChild3        = "Fixtures\\ConstructorChild3"
	defaultValueDummy = "Fixtures\\DefaultValue"
	level0            = "Fixtures\\Level0"
	level1            = "Fixtures\\Level1"
	level2            = "Fixtures\\Level2"
	abstractDummy     = "Fixtures\\AbstractDummy"
	priorityDummy     = "Fixtures\\PriorityDummy"
)

func public(names ...string) []introspect.FieldDesc {
	fields := make([]introspect.FieldDesc, 0, len(names))
	for _, n := range names {
		fields = append(fields, introspect.FieldDesc{Name: n, Visibility: introspect.VisibilityPublic})
	}

	return fields
}

func getter(name string, ret *introspect.TypeRef) introspect.MethodDesc {
	return introspect.MethodDesc{Name: name, Return: ret}
}

func setter(name string, param *introspect.TypeRef) introspect.MethodDesc {
	return introspect.MethodDesc{Name: name, Params: []introspect.ParamDesc{{Name: "value", Type: param}}}
}

func ctor(params ...introspect.ParamDesc) *introspect.MethodDesc {
	return &introspect.MethodDesc{Name: "__construct", Params: params}
}

// newFixtures returns a registry modelled on a typical entity hierarchy:
// Dummy extends ParentDummy and mixes public fields, accessors, mutators,
// static methods, acronym names and self/parent annotations.
func newFixtures() *introspect.Registry {
	r := introspect.NewRegistry()

	r.Register(introspect.TypeDesc{
		Name:         parentDummy,
		Instantiable: true,
		Fields:       public("foo", "foo2", "foo3", "foo4", "foo5", "files"),
		Methods: []introspect.MethodDesc{
			getter("isC", nil),
			getter("canD", nil),
			setter("addE", nil),
			setter("addF", introspect.Ref("DateTime")),
			setter("removeF", introspect.Ref("DateTime")),
			getter("hasG", nil),
		},
	})

	dummyFields := public("bal", "parent", "collection", "B")
	dummyFields = append([]introspect.FieldDesc{
		{Name: "bar", Visibility: introspect.VisibilityPrivate},
		{Name: "baz", Visibility: introspect.VisibilityProtected},
	}, dummyFields...)
	dummyFields = append(dummyFields,
		introspect.FieldDesc{Name: "Id", Visibility: introspect.VisibilityProtected},
		introspect.FieldDesc{Name: "Guid", Visibility: introspect.VisibilityPublic},
		introspect.FieldDesc{Name: "array", Visibility: introspect.VisibilityPublic},
		introspect.FieldDesc{Name: "emptyVar", Visibility: introspect.VisibilityPublic},
		introspect.FieldDesc{Name: "instances", Visibility: introspect.VisibilityPublic, Static: true},
	)

	r.Register(introspect.TypeDesc{
		Name:         dummy,
		Parent:       parentDummy,
		Instantiable: true,
		Fields:       dummyFields,
		Methods: []introspect.MethodDesc{
			{Name: "getStatic", Static: true},
			{Name: "staticGetter", Static: true, Return: introspect.BuiltinRef("string")},
			{Name: "setStaticSetter", Static: true, Params: []introspect.ParamDesc{{Name: "d", Type: introspect.Ref("DateTime")}}},
			{Name: "getStaticGetter", Static: true, Return: introspect.BuiltinRef("string")},
			getter("getA", nil),
			{Name: "setB", Params: []introspect.ParamDesc{{Name: "parent", Type: introspect.Ref("?" + parentDummy), Optional: true}}},
			getter("getDOB", nil),
			getter("getId", nil),
			getter("get123", nil),
			setter("setSelf", introspect.Ref("self")),
			setter("setRealParent", introspect.Ref("parent")),
			{Name: "getPrivateThing", Visibility: introspect.VisibilityPrivate, Return: introspect.BuiltinRef("int")},
		},
	})

	r.Register(introspect.TypeDesc{Name: noProperties, Instantiable: true})

	r.Register(introspect.TypeDesc{
		Name:         adderRemover,
		Instantiable: true,
		Fields: []introspect.FieldDesc{
			{Name: "analyses", Visibility: introspect.VisibilityPrivate},
			{Name: "feet", Visibility: introspect.VisibilityPrivate},
		},
		Methods: []introspect.MethodDesc{
			setter("addAnalysis", introspect.Ref("Dummy")),
			setter("removeAnalysis", introspect.Ref("Dummy")),
			setter("addFoot", introspect.Ref("Dummy")),
			setter("removeFoot", introspect.Ref("Dummy")),
		},
	})

	r.Register(introspect.TypeDesc{
		Name:         ctorDummy,
		Instantiable: true,
		Fields: []introspect.FieldDesc{
			{Name: "string", Visibility: introspect.VisibilityPrivate},
			{Name: "stringOrNull", Visibility: introspect.VisibilityPrivate},
			{Name: "intPrivate", Visibility: introspect.VisibilityPrivate},
			{Name: "intWithAccessor", Visibility: introspect.VisibilityPrivate},
			{Name: "untyped", Visibility: introspect.VisibilityPrivate},
		},
		Methods: []introspect.MethodDesc{
			getter("getIntWithAccessor", introspect.BuiltinRef("int")),
		},
		Constructor: ctor(
			introspect.ParamDesc{Name: "string", Type: introspect.BuiltinRef("string")},
			introspect.ParamDesc{Name: "stringOrNull", Type: introspect.BuiltinRef("?string")},
			introspect.ParamDesc{Name: "intPrivate", Type: introspect.BuiltinRef("int")},
			introspect.ParamDesc{Name: "intWithAccessor", Type: introspect.BuiltinRef("string")},
			introspect.ParamDesc{Name: "untyped"},
		),
		Defaults: map[string]any{"untyped": "fallback"},
	})

	r.Register(introspect.TypeDesc{
		Name:         ctorParent,
		Instantiable: true,
		Constructor:  ctor(introspect.ParamDesc{Name: "string", Type: introspect.BuiltinRef("string")}),
	})
	r.Register(introspect.TypeDesc{Name: ctorChild, Parent: ctorParent, Instantiable: true})
	r.Register(introspect.TypeDesc{
		Name:         ctorChild2,
		Parent:       ctorParent,
		Instantiable: true,
		Constructor:  ctor(introspect.ParamDesc{Name: "x", Type: introspect.BuiltinRef("int")}),
	})
	r.Register(introspect.TypeDesc{Name: ctorChild3, Parent: ctorChild2, Instantiable: true})

	r.Register(introspect.TypeDesc{
		Name:         defaultValueDummy,
		Instantiable: true,
		Fields:       public("defaultInt", "defaultFloat", "defaultString", "defaultArray", "defaultNull", "defaultPtr", "defaultObject"),
		Defaults: map[string]any{
			"defaultInt":    42,
			"defaultFloat":  4.2,
			"defaultString": "foo",
			"defaultArray":  []any{},
			"defaultNull":   nil,
			"defaultPtr":    (*int)(nil),
			"defaultObject": struct{}{},
		},
	})

	r.Register(introspect.TypeDesc{
		Name:         level0,
		Instantiable: true,
		Methods:      []introspect.MethodDesc{getter("getNothing", introspect.Ref("parent"))},
	})
	r.Register(introspect.TypeDesc{
		Name:         level1,
		Parent:       level0,
		Instantiable: true,
		Methods: []introspect.MethodDesc{
			setter("setSelf", introspect.Ref("self")),
			setter("setUp", introspect.Ref("PARENT")),
			getter("getOrphan", introspect.Ref("parent")),
		},
	})
	r.Register(introspect.TypeDesc{
		Name:         level2,
		Parent:       level1,
		Instantiable: true,
		Methods: []introspect.MethodDesc{
			setter("setOwn", introspect.Ref("Self")),
			setter("setBase", introspect.Ref("?parent")),
		},
	})

	r.Register(introspect.TypeDesc{
		Name:        abstractDummy,
		Constructor: ctor(introspect.ParamDesc{Name: "foo", Type: introspect.BuiltinRef("string")}),
	})

	r.Register(introspect.TypeDesc{
		Name:         priorityDummy,
		Instantiable: true,
		Fields:       public("x"),
		Methods: []introspect.MethodDesc{
			getter("getX", introspect.BuiltinRef("string")),
			setter("setX", introspect.BuiltinRef("int")),
			getter("getVoid", introspect.BuiltinRef("void")),
			getter("getList", introspect.BuiltinRef("?array")),
			getter("isFlag", introspect.BuiltinRef("int")),
			{Name: "getRequired", Params: []introspect.ParamDesc{{Name: "arg"}}},
			{Name: "setNothing"},
		},
		Defaults: map[string]any{"x": "shadowed"},
	})

	return r
}
