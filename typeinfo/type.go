// Package typeinfo holds the value object describing an inferred property type.
package typeinfo

import (
	"strings"
)

// BuiltinType is the builtin kind of a Type.
type BuiltinType string

const (
	BuiltinInt      BuiltinType = "int"
	BuiltinFloat    BuiltinType = "float"
	BuiltinString   BuiltinType = "string"
	BuiltinBool     BuiltinType = "bool"
	BuiltinResource BuiltinType = "resource"
	BuiltinObject   BuiltinType = "object"
	BuiltinArray    BuiltinType = "array"
	BuiltinNull     BuiltinType = "null"
	BuiltinCallable BuiltinType = "callable"
	BuiltinIterable BuiltinType = "iterable"
)

// Builtins lists the kinds every host is expected to recognize.
// Hosts may report others; they pass through unchanged.
var Builtins = []BuiltinType{
	BuiltinInt,
	BuiltinFloat,
	BuiltinString,
	BuiltinBool,
	BuiltinResource,
	BuiltinObject,
	BuiltinArray,
	BuiltinNull,
	BuiltinCallable,
	BuiltinIterable,
}

// IsKnown returns true if b is one of Builtins.
func (b BuiltinType) IsKnown() bool {
	for _, known := range Builtins {
		if b == known {
			return true
		}
	}

	return false
}

// Type describes one inferred type of a property.
//
// The zero value is not meaningful; use New, NewObject or NewCollection.
// Key and value types are only set on collections, the class name only on objects.
type Type struct {
	builtinType BuiltinType
	nullable    bool
	class       string
	collection  bool
	key         *Type
	value       *Type
}

// New returns a non-collection Type of the given builtin kind.
func New(builtinType BuiltinType, nullable bool) Type {
	return Type{builtinType: builtinType, nullable: nullable}
}

// NewObject returns an object Type referencing class.
func NewObject(class string, nullable bool) Type {
	return Type{builtinType: BuiltinObject, nullable: nullable, class: class}
}

// NewCollection returns an array Type flagged as a collection.
// key and value may be nil when the element types are unknown; they are
// copied, so later changes to the arguments do not affect the result.
func NewCollection(nullable bool, key, value *Type) Type {
	return Type{
		builtinType: BuiltinArray,
		nullable:    nullable,
		collection:  true,
		key:         clone(key),
		value:       clone(value),
	}
}

func clone(t *Type) *Type {
	if t == nil {
		return nil
	}

	c := *t

	return &c
}

// BuiltinType returns the builtin kind.
func (t Type) BuiltinType() BuiltinType { return t.builtinType }

// IsNullable reports whether null is an accepted value.
func (t Type) IsNullable() bool { return t.nullable }

// ClassName returns the referenced class for object types, or "".
func (t Type) ClassName() string { return t.class }

// IsCollection reports whether the type is a collection.
func (t Type) IsCollection() bool { return t.collection }

// CollectionKeyType returns the key type of a collection, if known.
func (t Type) CollectionKeyType() (Type, bool) {
	if t.key == nil {
		return Type{}, false
	}

	return *t.key, true
}

// CollectionValueType returns the value type of a collection, if known.
func (t Type) CollectionValueType() (Type, bool) {
	if t.value == nil {
		return Type{}, false
	}

	return *t.value, true
}

// String returns a compact representation such as "?int",
// "object<time.Time>" or "array<int,string>".
func (t Type) String() string {
	var sb strings.Builder

	if t.nullable {
		sb.WriteByte('?')
	}

	sb.WriteString(string(t.builtinType))

	switch {
	case t.class != "":
		sb.WriteString("<" + t.class + ">")
	case t.collection && (t.key != nil || t.value != nil):
		sb.WriteString("<" + elemString(t.key) + "," + elemString(t.value) + ">")
	}

	return sb.String()
}

func elemString(t *Type) string {
	if t == nil {
		return "mixed"
	}

	return t.String()
}
