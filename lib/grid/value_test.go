// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"testing"
)

func TestValueKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  Kind
	}{
		{"zero value", Value{}, KindInvalid},
		{"string", StringVal("gauss"), KindString},
		{"int", IntVal(3), KindInt},
		{"float", FloatVal(3.2), KindFloat},
		{"bool", BoolVal(true), KindBool},
		{"list", ListVal(IntVal(1), IntVal(2)), KindList},
		{"strings list", StringsVal("a", "b"), KindList},
		{"ints list", IntsVal(1, 2), KindList},
		{"floats list", FloatsVal(-0.5, 1.0), KindList},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.value.Kind(); got != test.want {
				t.Errorf("Kind() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	if got := StringVal("imq").AsString(); got != "imq" {
		t.Errorf("AsString() = %q, want %q", got, "imq")
	}
	if got := IntVal(-7).AsInt(); got != -7 {
		t.Errorf("AsInt() = %d, want %d", got, -7)
	}
	if got := FloatVal(-0.5).AsFloat(); got != -0.5 {
		t.Errorf("AsFloat() = %v, want %v", got, -0.5)
	}
	if got := BoolVal(true).AsBool(); !got {
		t.Error("AsBool() = false, want true")
	}

	list := FloatsVal(-0.5, 1.0).AsList()
	if len(list) != 2 {
		t.Fatalf("AsList() returned %d elements, want 2", len(list))
	}
	if got := list[0].AsFloat(); got != -0.5 {
		t.Errorf("AsList()[0] = %v, want %v", got, -0.5)
	}
}

func TestValueAccessorPanicsOnWrongKind(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("AsString on an int value did not panic")
		}
	}()
	IntVal(1).AsString()
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal strings", StringVal("a"), StringVal("a"), true},
		{"unequal strings", StringVal("a"), StringVal("b"), false},
		{"equal ints", IntVal(3), IntVal(3), true},
		{"equal floats", FloatVal(1.0), FloatVal(1.0), true},
		{"int vs float", IntVal(1), FloatVal(1.0), false},
		{"equal bools", BoolVal(false), BoolVal(false), true},
		{"equal lists", FloatsVal(-0.5, 1.0), FloatsVal(-0.5, 1.0), true},
		{"lists differ in element", FloatsVal(-0.5, 1.0), FloatsVal(-0.5, 2.0), false},
		{"lists differ in length", FloatsVal(-0.5), FloatsVal(-0.5, 1.0), false},
		{"zero values", Value{}, Value{}, true},
		{"zero vs string", Value{}, StringVal(""), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.a.Equal(test.b); got != test.want {
				t.Errorf("Equal() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestListValCopiesElements(t *testing.T) {
	t.Parallel()

	elements := []Value{StringVal("a"), StringVal("b")}
	value := ListVal(elements...)

	elements[0] = StringVal("mutated")

	if got := value.AsList()[0].AsString(); got != "a" {
		t.Errorf("element after caller mutation = %q, want %q", got, "a")
	}
}

func TestAsListCopies(t *testing.T) {
	t.Parallel()

	value := StringsVal("a", "b")
	first := value.AsList()
	first[0] = StringVal("mutated")

	if got := value.AsList()[0].AsString(); got != "a" {
		t.Errorf("element after copy mutation = %q, want %q", got, "a")
	}
}
