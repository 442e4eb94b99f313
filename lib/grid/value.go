// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"fmt"
	"slices"
)

// Kind identifies the payload a [Value] holds.
type Kind int

const (
	// KindInvalid is the kind of the zero Value. Invalid values pass
	// construction and fail at format time.
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is one candidate value on a parameter axis: a scalar (string,
// int, float, bool) or a flat list of scalars. The kind is fixed at
// construction and resolved by an explicit [Value.Kind] switch when
// the value is rendered.
type Value struct {
	kind    Kind
	str     string
	integer int64
	real    float64
	boolean bool
	list    []Value
}

// StringVal returns a string-kind Value.
func StringVal(s string) Value { return Value{kind: KindString, str: s} }

// IntVal returns an int-kind Value.
func IntVal(i int64) Value { return Value{kind: KindInt, integer: i} }

// FloatVal returns a float-kind Value.
func FloatVal(f float64) Value { return Value{kind: KindFloat, real: f} }

// BoolVal returns a bool-kind Value.
func BoolVal(b bool) Value { return Value{kind: KindBool, boolean: b} }

// ListVal returns a list-kind Value holding the given elements. The
// elements are copied. Elements must themselves be scalars for the
// value to render; nesting is rejected at format time, not here.
func ListVal(elements ...Value) Value {
	return Value{kind: KindList, list: slices.Clone(elements)}
}

// StringsVal returns a list-kind Value of string elements.
func StringsVal(elements ...string) Value {
	list := make([]Value, len(elements))
	for i, s := range elements {
		list[i] = StringVal(s)
	}
	return Value{kind: KindList, list: list}
}

// IntsVal returns a list-kind Value of int elements.
func IntsVal(elements ...int64) Value {
	list := make([]Value, len(elements))
	for i, n := range elements {
		list[i] = IntVal(n)
	}
	return Value{kind: KindList, list: list}
}

// FloatsVal returns a list-kind Value of float elements.
func FloatsVal(elements ...float64) Value {
	list := make([]Value, len(elements))
	for i, f := range elements {
		list[i] = FloatVal(f)
	}
	return Value{kind: KindList, list: list}
}

// Kind reports which kind of value this is.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string payload. It panics when the kind is not
// KindString; callers switch on [Value.Kind] first.
func (v Value) AsString() string {
	v.mustBe(KindString)
	return v.str
}

// AsInt returns the int payload. It panics when the kind is not
// KindInt.
func (v Value) AsInt() int64 {
	v.mustBe(KindInt)
	return v.integer
}

// AsFloat returns the float payload. It panics when the kind is not
// KindFloat.
func (v Value) AsFloat() float64 {
	v.mustBe(KindFloat)
	return v.real
}

// AsBool returns the bool payload. It panics when the kind is not
// KindBool.
func (v Value) AsBool() bool {
	v.mustBe(KindBool)
	return v.boolean
}

// AsList returns a copy of the list elements. It panics when the kind
// is not KindList.
func (v Value) AsList() []Value {
	v.mustBe(KindList)
	return slices.Clone(v.list)
}

// Equal reports whether two values have the same kind and payload.
// List values compare element-wise.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.integer == other.integer
	case KindFloat:
		return v.real == other.real
	case KindBool:
		return v.boolean == other.boolean
	case KindList:
		return slices.EqualFunc(v.list, other.list, Value.Equal)
	default:
		return true
	}
}

func (v Value) mustBe(kind Kind) {
	if v.kind != kind {
		panic(fmt.Sprintf("grid: %s value accessed as %s", v.kind, kind))
	}
}
