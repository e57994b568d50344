package extractor

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"property-info/inflector"
	"property-info/introspect"
	"property-info/typeinfo"
)

func newExtractor(opts ...Option) *ReflectionExtractor {
	return New(newFixtures(), opts...)
}

func ptr(t typeinfo.Type) *typeinfo.Type { return &t }

// typeCmp compares descriptors through their unexported state.
var typeCmp = cmp.AllowUnexported(typeinfo.Type{})

func TestProperties(t *testing.T) {
	e := newExtractor()

	assert.Equal(t, []string{
		"bal",
		"parent",
		"collection",
		"B",
		"Guid",
		"array",
		"emptyVar",
		"foo",
		"foo2",
		"foo3",
		"foo4",
		"foo5",
		"files",
		"a",
		"DOB",
		"Id",
		"123",
		"self",
		"realParent",
		"c",
		"d",
		"e",
		"f",
		"g",
	}, e.Properties(dummy))

	assert.Nil(t, e.Properties(noProperties))
	assert.Nil(t, e.Properties("Fixtures\\DoesNotExist"))
}

func TestProperties_CustomPrefixes(t *testing.T) {
	e := newExtractor(
		WithMutatorPrefixes("add", "remove"),
		WithAccessorPrefixes("is", "can"),
	)

	assert.Equal(t, []string{
		"bal",
		"parent",
		"collection",
		"B",
		"Guid",
		"array",
		"emptyVar",
		"foo",
		"foo2",
		"foo3",
		"foo4",
		"foo5",
		"files",
		"c",
		"d",
		"e",
		"f",
	}, e.Properties(dummy))
}

func TestProperties_NoPrefixes(t *testing.T) {
	e := newExtractor(
		WithMutatorPrefixes(),
		WithAccessorPrefixes(),
		WithArrayMutatorPrefixes(),
	)

	assert.Equal(t, []string{
		"bal",
		"parent",
		"collection",
		"B",
		"Guid",
		"array",
		"emptyVar",
		"foo",
		"foo2",
		"foo3",
		"foo4",
		"foo5",
		"files",
	}, e.Properties(dummy))
}

func TestProperties_FieldAndAccessorListedOnce(t *testing.T) {
	assert.Equal(t,
		[]string{"x", "void", "list", "flag", "required", "nothing"},
		newExtractor().Properties(priorityDummy))
}

func TestProperties_NoDuplicates(t *testing.T) {
	e := newExtractor()

	for _, class := range []string{dummy, adderRemover, ctorDummy, level2, priorityDummy} {
		props := e.Properties(class)
		seen := make(map[string]bool)

		for _, p := range props {
			assert.False(t, seen[p], "%s lists %q twice", class, p)
			seen[p] = true
		}
	}
}

func TestProperties_AcronymLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   string
	}{
		{"default", DefaultAcronymLength, "DOB"},
		{"disabled", 0, "dOB"},
		{"three letters", 3, "DOB"},
		{"longer than name", 4, "dOB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := newExtractor(WithAcronymLength(tt.length)).Properties(dummy)
			assert.Contains(t, props, tt.want)
			assert.Contains(t, props, "Id", "declared field names keep their case")
		})
	}
}

func TestTypes(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		property string
		expected []typeinfo.Type
	}{
		{"a", nil},
		{"b", []typeinfo.Type{typeinfo.NewObject(parentDummy, true)}},
		{"c", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinBool, false)}},
		{"d", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinBool, false)}},
		{"e", nil},
		{"f", []typeinfo.Type{typeinfo.NewCollection(false,
			ptr(typeinfo.New(typeinfo.BuiltinInt, false)),
			ptr(typeinfo.NewObject("DateTime", false)))}},
		{"donotexist", nil},
		{"staticGetter", nil},
		{"staticSetter", nil},
		{"privateThing", nil},
		{"self", []typeinfo.Type{typeinfo.NewObject(dummy, false)}},
		{"realParent", []typeinfo.Type{typeinfo.NewObject(parentDummy, false)}},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			got := e.Types(dummy, tt.property)
			if diff := cmp.Diff(tt.expected, got, typeCmp); diff != "" {
				t.Errorf("Types(%q) mismatch (-want +got):\n%s\n%s", tt.property, diff, spew.Sdump(got))
			}
		})
	}
}

func TestTypes_Annotations(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		property string
		expected []typeinfo.Type
	}{
		{"x", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinInt, false)}},
		{"void", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinNull, false)}},
		{"list", []typeinfo.Type{typeinfo.NewCollection(true, nil, nil)}},
		{"flag", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinInt, false)}},
		{"required", nil},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Types(priorityDummy, tt.property))
		})
	}
}

func TestTypes_SelfAndParent(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		class    string
		property string
		expected typeinfo.Type
	}{
		{level2, "own", typeinfo.NewObject(level2, false)},
		{level2, "base", typeinfo.NewObject(level1, true)},
		{level2, "self", typeinfo.NewObject(level1, false)},
		{level2, "up", typeinfo.NewObject(level0, false)},
		{level2, "orphan", typeinfo.NewObject(level0, false)},
		{level1, "self", typeinfo.NewObject(level1, false)},
		{level1, "up", typeinfo.NewObject(level0, false)},
		{level0, "nothing", typeinfo.NewObject("parent", false)},
	}

	for _, tt := range tests {
		t.Run(tt.class+"::"+tt.property, func(t *testing.T) {
			assert.Equal(t, []typeinfo.Type{tt.expected}, e.Types(tt.class, tt.property))
		})
	}
}

func TestTypes_Constructor(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		property string
		expected []typeinfo.Type
	}{
		{"string", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinString, false)}},
		{"stringOrNull", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinString, true)}},
		{"intPrivate", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinInt, false)}},
		{"intWithAccessor", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinInt, false)}},
		{"untyped", nil},
		{"donotexist", nil},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Types(ctorDummy, tt.property))
		})
	}
}

func TestTypes_ConstructorExtractionDisabled(t *testing.T) {
	e := newExtractor()

	assert.Nil(t, e.Types(ctorDummy, "string", ConstructorExtraction(false)))
	assert.Equal(t,
		[]typeinfo.Type{typeinfo.New(typeinfo.BuiltinString, false)},
		e.Types(ctorDummy, "untyped", ConstructorExtraction(false)),
		"default value is used once the constructor is skipped")

	disabled := newExtractor(WithConstructorExtraction(false))
	assert.Nil(t, disabled.Types(ctorDummy, "string"))
	assert.Equal(t,
		[]typeinfo.Type{typeinfo.New(typeinfo.BuiltinString, false)},
		disabled.Types(ctorDummy, "string", ConstructorExtraction(true)),
		"per-call option overrides the construction default")
}

func TestTypes_ParentConstructor(t *testing.T) {
	e := newExtractor()
	expected := []typeinfo.Type{typeinfo.New(typeinfo.BuiltinString, false)}

	for _, class := range []string{ctorChild, ctorChild2, ctorChild3} {
		t.Run(class, func(t *testing.T) {
			assert.Equal(t, expected, e.Types(class, "string"))
		})
	}
}

func TestTypes_DefaultValue(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		property string
		expected []typeinfo.Type
	}{
		{"defaultInt", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinInt, false)}},
		{"defaultFloat", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinFloat, false)}},
		{"defaultString", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinString, false)}},
		{"defaultArray", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinArray, false)}},
		{"defaultObject", []typeinfo.Type{typeinfo.New(typeinfo.BuiltinObject, false)}},
		{"defaultNull", nil},
		{"defaultPtr", nil},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Types(defaultValueDummy, tt.property))
		})
	}
}

func TestTypesWithStrategy(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		class    string
		property string
		expected Strategy
	}{
		{priorityDummy, "x", StrategyMutator},
		{dummy, "c", StrategyAccessor},
		{ctorDummy, "string", StrategyConstructor},
		{defaultValueDummy, "defaultInt", StrategyDefaultValue},
		{dummy, "a", StrategyNone},
		{"Fixtures\\DoesNotExist", "a", StrategyNone},
	}

	for _, tt := range tests {
		t.Run(tt.class+"::"+tt.property, func(t *testing.T) {
			_, strategy := e.TypesWithStrategy(tt.class, tt.property)
			assert.Equal(t, tt.expected, strategy)
		})
	}
}

func TestIsReadable(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		property string
		expected bool
	}{
		{"bar", false},
		{"baz", false},
		{"parent", true},
		{"a", true},
		{"b", false},
		{"c", true},
		{"d", true},
		{"e", false},
		{"f", false},
		{"g", true},
		{"Id", true},
		{"id", true},
		{"Guid", true},
		{"guid", false},
		{"privateThing", false},
		{"staticGetter", false},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.IsReadable(dummy, tt.property))
		})
	}

	assert.False(t, e.IsReadable("Fixtures\\DoesNotExist", "a"))
	assert.False(t, e.IsReadable(priorityDummy, "required"))
}

func TestIsWritable(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		property string
		expected bool
	}{
		{"bar", false},
		{"baz", false},
		{"parent", true},
		{"a", false},
		{"b", true},
		{"c", false},
		{"d", false},
		{"e", true},
		{"f", true},
		{"g", false},
		{"Id", false},
		{"Guid", true},
		{"guid", false},
		{"staticSetter", false},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.IsWritable(dummy, tt.property))
		})
	}

	assert.False(t, e.IsWritable("Fixtures\\DoesNotExist", "a"))
	assert.False(t, e.IsWritable(priorityDummy, "nothing"))
}

func TestIsInitializable(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name          string
		class         string
		property      string
		initializable bool
		ok            bool
	}{
		{"unknown type", "Fixtures\\DoesNotExist", "foo", false, false},
		{"abstract", abstractDummy, "foo", false, true},
		{"own constructor", ctorDummy, "string", true, true},
		{"not a parameter", ctorDummy, "nope", false, true},
		{"no constructor anywhere", dummy, "foo", false, true},
		{"inherited constructor", ctorChild, "string", true, true},
		{"own constructor shadows parent", ctorChild2, "string", false, true},
		{"two levels up", ctorChild3, "x", true, true},
		{"two levels up, shadowed", ctorChild3, "string", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initializable, ok := e.IsInitializable(tt.class, tt.property)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.initializable, initializable)
		})
	}
}

func TestSingularize(t *testing.T) {
	e := newExtractor()

	assert.True(t, e.IsWritable(adderRemover, "analyses"))
	assert.True(t, e.IsWritable(adderRemover, "feet"))
	assert.Equal(t, []string{"analyses", "feet"}, e.Properties(adderRemover))

	assert.Equal(t, []typeinfo.Type{typeinfo.NewCollection(false,
		ptr(typeinfo.New(typeinfo.BuiltinInt, false)),
		ptr(typeinfo.NewObject("Dummy", false)))},
		e.Types(adderRemover, "analyses"))
}

func TestArrayMutatorElementType(t *testing.T) {
	e := newExtractor()

	types, strategy := e.TypesWithStrategy(adderRemover, "analyses")
	require.Len(t, types, 1)
	assert.Equal(t, StrategyMutator, strategy)

	key, ok := types[0].CollectionKeyType()
	require.True(t, ok)
	assert.Equal(t, typeinfo.BuiltinInt, key.BuiltinType())

	value, ok := types[0].CollectionValueType()
	require.True(t, ok)
	assert.Equal(t, typeinfo.BuiltinObject, value.BuiltinType())
	assert.Equal(t, "Dummy", value.ClassName())
	assert.False(t, value.IsCollection())

	assert.Equal(t, "array<int,object<Dummy>>", types[0].String())
}

func TestSingularize_MultipleCandidates(t *testing.T) {
	registry := introspect.NewRegistry().Register(introspect.TypeDesc{
		Name:   "Bag",
		Fields: []introspect.FieldDesc{{Name: "analyses", Visibility: introspect.VisibilityPrivate}},
		Methods: []introspect.MethodDesc{
			setter("addAnalyse", introspect.Ref("Item")),
			setter("removeAnalyse", introspect.Ref("Item")),
		},
	})

	candidates := inflector.Func(func(word string) []string {
		if strings.EqualFold(word, "analyses") {
			return []string{word[:len(word)-2], word[:len(word)-1], word[:len(word)-2] + "is"}
		}

		return []string{word}
	})

	e := New(registry, WithSingularizer(candidates))

	assert.Equal(t, []string{"analyses"}, e.Properties("Bag"))
	assert.True(t, e.IsWritable("Bag", "analyses"))
	assert.False(t, e.IsReadable("Bag", "analyses"))
}

func TestArrayMutatorPrefixNotAMutator(t *testing.T) {
	registry := introspect.NewRegistry().Register(introspect.TypeDesc{
		Name:    "Bag",
		Fields:  []introspect.FieldDesc{{Name: "items", Visibility: introspect.VisibilityPrivate}},
		Methods: []introspect.MethodDesc{setter("pushItem", introspect.BuiltinRef("string"))},
	})

	e := New(registry, WithArrayMutatorPrefixes("push"))

	assert.False(t, e.IsWritable("Bag", "items"), "an array-mutator prefix outside the mutator list never matches")
	assert.Nil(t, e.Properties("Bag"))
}

func TestNew_Defaults(t *testing.T) {
	e := New(introspect.NewRegistry())

	assert.Equal(t, []string{"add", "remove", "set"}, e.MutatorPrefixes())
	assert.Equal(t, []string{"is", "can", "get", "has"}, e.AccessorPrefixes())
	assert.Equal(t, []string{"add", "remove"}, e.ArrayMutatorPrefixes())
}

func TestNew_IndependentConfiguration(t *testing.T) {
	custom := newExtractor(WithMutatorPrefixes("set", "set", "", "put"))
	plain := newExtractor()

	assert.Equal(t, []string{"set", "put"}, custom.MutatorPrefixes())
	assert.Equal(t, DefaultMutatorPrefixes(), plain.MutatorPrefixes())

	prefixes := custom.MutatorPrefixes()
	prefixes[0] = "mutated"
	assert.Equal(t, []string{"set", "put"}, custom.MutatorPrefixes())
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := newExtractor(WithLogger(zap.New(core)))

	require.NotNil(t, e.Types(priorityDummy, "x"))

	inferred := logs.FilterMessage("type inferred").All()
	require.Len(t, inferred, 1)
	assert.Equal(t, "Mutator", inferred[0].ContextMap()["strategy"])
	assert.Equal(t, "int", inferred[0].ContextMap()["type"])

	assert.Nil(t, e.Properties("Fixtures\\DoesNotExist"))
	assert.Equal(t, 1, logs.FilterMessage("type not resolved").Len())
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "None", StrategyNone.String())
	assert.Equal(t, "DefaultValue", StrategyDefaultValue.String())
	assert.Equal(t, "Strategy(42)", Strategy(42).String())
}
