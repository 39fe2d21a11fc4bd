package sqln

import (
	"fmt"
	"reflect"

	"github.com/mitranim/refut"
)

/*
Variant of `[]Node` conforming to the `ArgDict` interface. Supports only
ordinal arguments, not named arguments. Used by `Snippet.Format`.
*/
type List []Node

// Implement part of the `ArgDict` interface.
func (self List) Len() int { return len(self) }

// Implement part of the `ArgDict` interface.
func (self List) GotOrdinal(key int) (Node, bool) {
	if key >= 0 && key < len(self) {
		return self[key], true
	}
	return nil, false
}

// Implement part of the `ArgDict` interface. Always returns `nil, false`.
func (self List) GotNamed(string) (Node, bool) { return nil, false }

// Implement `OrdinalRanger` to automatically validate used/unused arguments.
func (self List) RangeOrdinal(fun func(int)) {
	if fun != nil {
		for ind := range self {
			fun(ind)
		}
	}
}

/*
Variant of `map[string]Node` conforming to the `ArgDict` interface. Supports
only named arguments, not ordinal arguments.
*/
type Dict map[string]Node

// Implement part of the `ArgDict` interface.
func (self Dict) Len() int { return len(self) }

// Implement part of the `ArgDict` interface. Always returns `nil, false`.
func (self Dict) GotOrdinal(int) (Node, bool) { return nil, false }

// Implement part of the `ArgDict` interface.
func (self Dict) GotNamed(key string) (Node, bool) {
	val, ok := self[key]
	return val, ok
}

// Implement `NamedRanger` to automatically validate used/unused arguments.
func (self Dict) RangeNamed(fun func(string)) {
	if fun != nil {
		for key := range self {
			fun(key)
		}
	}
}

/*
Implements `ArgDict` by reading struct fields tagged with "db". Supports only
named arguments, not ordinal arguments. The inner value must be either invalid
or a struct, possibly behind pointers; tagged field values must be nodes. See
the `StructArgs` shortcut.
*/
type StructDict [1]reflect.Value

// Returns a `StructDict` over the given struct value.
func StructArgs(val interface{}) StructDict {
	return StructDict{reflect.ValueOf(val)}
}

// Implement part of the `ArgDict` interface. Always returns 0.
func (self StructDict) Len() int { return 0 }

// Implement part of the `ArgDict` interface. Always returns `nil, false`.
func (self StructDict) GotOrdinal(int) (Node, bool) { return nil, false }

// Implement part of the `ArgDict` interface.
func (self StructDict) GotNamed(key string) (Node, bool) {
	var out Node
	var found bool

	traverseStructNodes(self[0], func(name string, rval reflect.Value) {
		if found || name != key {
			return
		}

		node, ok := rval.Interface().(Node)
		if !ok {
			panic(Err{
				Code:  ErrCodeInvalidInput,
				While: `reading struct argument`,
				Cause: fmt.Errorf(`expected field %q to be a node, got %#v`, key, rval.Interface()),
			})
		}

		out = node
		found = true
	})

	return out, found
}

// Implement `NamedRanger` to automatically validate used/unused arguments.
func (self StructDict) RangeNamed(fun func(string)) {
	if fun == nil {
		return
	}
	traverseStructNodes(self[0], func(name string, _ reflect.Value) {
		fun(name)
	})
}

func traverseStructNodes(rval reflect.Value, fun func(string, reflect.Value)) {
	if !rval.IsValid() {
		return
	}

	rtype := refut.RtypeDeref(rval.Type())
	if rtype.Kind() != reflect.Struct {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: `traversing struct arguments`,
			Cause: fmt.Errorf(`expected struct, got %q`, rtype),
		})
	}

	if refut.IsRvalNil(rval) {
		return
	}

	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		name := refut.TagIdent(sfield.Tag.Get(`db`))
		if name != `` {
			fun(name, rval)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
}
