package interp

import "testing"

func TestReprForms(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{&IntegerValue{Value: 42}, "42"},
		{&IntegerValue{Value: -5}, "-5"},
		{&FloatValue{Value: 4.8}, "4.8"},
		{&FloatValue{Value: 3.0}, "3.0"},
		{&FloatValue{Value: 0.5}, "0.5"},
		{&StringValue{Value: "abc"}, "'abc'"},
		{&StringValue{Value: ""}, "''"},
		{&StringValue{Value: "'\""}, `'\'"'`},
		{&StringValue{Value: "\n"}, `'\n'`},
		{&StringValue{Value: `\`}, `'\\'`},
		{True, "True"},
		{False, "False"},
		{None, "None"},
		{&TupleValue{}, "()"},
		{&TupleValue{Elements: []Value{&IntegerValue{Value: 3}}}, "(3,)"},
		{&TupleValue{Elements: []Value{&IntegerValue{Value: 1}, &IntegerValue{Value: 2}}}, "(1, 2)"},
		{&ListValue{}, "[]"},
		{&ListValue{Elements: []Value{&IntegerValue{Value: 1}}}, "[1]"},
		{&ClassValue{Name: "A"}, "<class 'A'>"},
		{&ErrorValue{Kind: "AssertionError"}, "AssertionError"},
		{&ErrorValue{Kind: "AssertionError", Message: "message"}, "AssertionError: message"},
	}

	for i, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("tests[%d] - String() = %q, want %q", i, got, tt.expected)
		}
	}
}

func TestTruthy(t *testing.T) {
	falsy := []Value{
		False,
		None,
		&IntegerValue{Value: 0},
		&FloatValue{Value: 0},
		&StringValue{Value: ""},
		&TupleValue{},
		&ListValue{},
		NewSet(),
		NewDict(),
	}
	for i, v := range falsy {
		if Truthy(v) {
			t.Errorf("falsy[%d] - %s should be falsy", i, v.String())
		}
	}

	truthy := []Value{
		True,
		&IntegerValue{Value: -1},
		&FloatValue{Value: 0.1},
		&StringValue{Value: "x"},
		&TupleValue{Elements: []Value{None}},
		&ListValue{Elements: []Value{False}},
		&ClassValue{Name: "A"},
	}
	for i, v := range truthy {
		if !Truthy(v) {
			t.Errorf("truthy[%d] - %s should be truthy", i, v.String())
		}
	}
}

func TestValueEquals(t *testing.T) {
	tests := []struct {
		a, b     Value
		expected bool
	}{
		{&IntegerValue{Value: 3}, &IntegerValue{Value: 3}, true},
		{&IntegerValue{Value: 3}, &FloatValue{Value: 3.0}, true},
		{&IntegerValue{Value: 1}, True, true},
		{&IntegerValue{Value: 3}, &StringValue{Value: "3"}, false},
		{&StringValue{Value: "a"}, &StringValue{Value: "a"}, true},
		{None, None, true},
		{None, False, false},
		{
			&TupleValue{Elements: []Value{&IntegerValue{Value: 1}}},
			&TupleValue{Elements: []Value{&IntegerValue{Value: 1}}},
			true,
		},
		{
			&TupleValue{Elements: []Value{&IntegerValue{Value: 1}}},
			&ListValue{Elements: []Value{&IntegerValue{Value: 1}}},
			false,
		},
	}

	for i, tt := range tests {
		if got := valueEquals(tt.a, tt.b); got != tt.expected {
			t.Errorf("tests[%d] - valueEquals(%s, %s) = %v, want %v",
				i, tt.a.String(), tt.b.String(), got, tt.expected)
		}
	}
}

func TestSetDeduplicatesInInsertionOrder(t *testing.T) {
	set := NewSet()
	for _, n := range []int64{1, 2, 2, 1} {
		if err := set.Add(&IntegerValue{Value: n}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if got := set.String(); got != "{1, 2}" {
		t.Errorf("set repr %q, want %q", got, "{1, 2}")
	}
}

func TestSetRejectsUnhashable(t *testing.T) {
	if err := NewSet().Add(&ListValue{}); err == nil {
		t.Error("adding a list to a set must fail")
	}
}

func TestDictInsertionOrderAndDelete(t *testing.T) {
	d := NewDict()
	keys := []string{"a", "b", "c"}
	for i, k := range keys {
		if err := d.Set(&StringValue{Value: k}, &IntegerValue{Value: int64(i)}); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	if got := d.String(); got != "{'a': 0, 'b': 1, 'c': 2}" {
		t.Errorf("dict repr %q", got)
	}

	// Updating keeps the original position.
	if err := d.Set(&StringValue{Value: "a"}, &IntegerValue{Value: 9}); err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != "{'a': 9, 'b': 1, 'c': 2}" {
		t.Errorf("dict repr after update %q", got)
	}

	found, err := d.Delete(&StringValue{Value: "b"})
	if err != nil || !found {
		t.Fatalf("Delete failed: found=%v err=%v", found, err)
	}
	if got := d.String(); got != "{'a': 9, 'c': 2}" {
		t.Errorf("dict repr after delete %q", got)
	}

	// Remaining keys still resolve after reindexing.
	v, found, err := d.Get(&StringValue{Value: "c"})
	if err != nil || !found || v.String() != "2" {
		t.Errorf("Get('c') = %v found=%v err=%v", v, found, err)
	}
}

func TestHashNormalization(t *testing.T) {
	intKey, _ := hashOf(&IntegerValue{Value: 1})
	floatKey, _ := hashOf(&FloatValue{Value: 1.0})
	boolKey, _ := hashOf(True)
	if intKey != floatKey || intKey != boolKey {
		t.Errorf("1, 1.0 and True must hash equally: %q %q %q", intKey, floatKey, boolKey)
	}

	tupleKey, err := hashOf(&TupleValue{Elements: []Value{&IntegerValue{Value: 1}, &StringValue{Value: "x"}}})
	if err != nil {
		t.Fatalf("tuples of hashables must be hashable: %v", err)
	}
	if tupleKey == "" {
		t.Error("empty hash key for tuple")
	}

	if _, err := hashOf(&ListValue{}); err == nil {
		t.Error("lists must be unhashable")
	}
}

func TestEnvironmentChain(t *testing.T) {
	root := NewEnvironment()
	root.Set("x", &IntegerValue{Value: 1})

	child := NewEnclosedEnvironment(root)
	if v, ok := child.Get("x"); !ok || v.String() != "1" {
		t.Error("child lookup should reach the root frame")
	}

	child.Set("x", &IntegerValue{Value: 2})
	if v, _ := child.Get("x"); v.String() != "2" {
		t.Error("assignment binds in the topmost frame")
	}
	if v, _ := root.Get("x"); v.String() != "1" {
		t.Error("root binding must be shadowed, not replaced")
	}

	if !child.Delete("x") {
		t.Error("delete should remove the child binding")
	}
	if v, _ := child.Get("x"); v.String() != "1" {
		t.Error("after delete, the outer binding is visible again")
	}
}
