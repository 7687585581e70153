// Package interp implements the snek runtime: the value model, lexically
// scoped environments, and the tree-walking evaluator with its
// control-flow signal mechanism.
package interp

import (
	"strconv"
	"strings"

	"github.com/sneklang/go-snek/internal/ast"
)

// Value type name constants.
const (
	IntegerType     = "INTEGER"
	FloatType       = "FLOAT"
	StringType      = "STRING"
	BooleanType     = "BOOLEAN"
	NoneType        = "NONE"
	TupleType       = "TUPLE"
	ListType        = "LIST"
	SetType         = "SET"
	DictType        = "DICT"
	FunctionType    = "FUNCTION"
	BoundMethodType = "BOUND_METHOD"
	ClassType       = "CLASS"
	InstanceType    = "INSTANCE"
	BuiltinType     = "BUILTIN"
	ErrorType       = "ERROR"
)

// Value is the interface implemented by every runtime value.
type Value interface {
	// Type returns the type name of the value (e.g., "INTEGER", "STRING")
	Type() string
	// String returns the printed (repr-style) form of the value
	String() string
}

// Singletons for the immutable constants bound in the root environment.
var (
	True  = &BooleanValue{Value: true}
	False = &BooleanValue{Value: false}
	None  = &NoneValue{}
)

// IntegerValue represents an integer. Integers are host int64; arithmetic
// wraps silently on overflow (every transcript in the corpus fits).
type IntegerValue struct {
	Value int64
}

func (v *IntegerValue) Type() string   { return IntegerType }
func (v *IntegerValue) String() string { return strconv.FormatInt(v.Value, 10) }

// FloatValue represents a floating-point number.
type FloatValue struct {
	Value float64
}

func (v *FloatValue) Type() string { return FloatType }

// String prints with the host's shortest 'g' representation and appends
// ".0" when that has neither a decimal point nor an exponent, so 3.0
// prints as "3.0" while 1000000.0 prints as "1e+06".
func (v *FloatValue) String() string {
	s := strconv.FormatFloat(v.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// StringValue represents an immutable string.
type StringValue struct {
	Value string
}

func (v *StringValue) Type() string { return StringType }

// String quotes with single quotes, escaping embedded single quotes,
// backslashes and the recognized control escapes.
func (v *StringValue) String() string {
	var out strings.Builder
	out.WriteByte('\'')
	for _, r := range v.Value {
		switch r {
		case '\'':
			out.WriteString(`\'`)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\n`)
		case '\t':
			out.WriteString(`\t`)
		case '\r':
			out.WriteString(`\r`)
		default:
			out.WriteRune(r)
		}
	}
	out.WriteByte('\'')
	return out.String()
}

// BooleanValue is distinct from IntegerValue only in printing; arithmetic
// treats True/False as 1/0.
type BooleanValue struct {
	Value bool
}

func (v *BooleanValue) Type() string { return BooleanType }
func (v *BooleanValue) String() string {
	if v.Value {
		return "True"
	}
	return "False"
}

// NoneValue is the unit value.
type NoneValue struct{}

func (v *NoneValue) Type() string   { return NoneType }
func (v *NoneValue) String() string { return "None" }

// TupleValue is an immutable ordered sequence.
type TupleValue struct {
	Elements []Value
}

func (v *TupleValue) Type() string { return TupleType }
func (v *TupleValue) String() string {
	if len(v.Elements) == 1 {
		return "(" + v.Elements[0].String() + ",)"
	}
	return "(" + joinValues(v.Elements) + ")"
}

// ListValue is a mutable ordered sequence.
type ListValue struct {
	Elements []Value
}

func (v *ListValue) Type() string   { return ListType }
func (v *ListValue) String() string { return "[" + joinValues(v.Elements) + "]" }

// SetValue keeps unique elements in insertion order. keys mirrors
// Elements for O(1) membership.
type SetValue struct {
	Elements []Value
	keys     map[hashKey]bool
}

// NewSet creates an empty set.
func NewSet() *SetValue {
	return &SetValue{keys: make(map[hashKey]bool)}
}

// Add inserts a value unless an equal element is already present.
// The element must be hashable.
func (v *SetValue) Add(elem Value) *ErrorValue {
	k, err := hashOf(elem)
	if err != nil {
		return err
	}
	if v.keys[k] {
		return nil
	}
	v.keys[k] = true
	v.Elements = append(v.Elements, elem)
	return nil
}

func (v *SetValue) Type() string   { return SetType }
func (v *SetValue) String() string { return "{" + joinValues(v.Elements) + "}" }

// DictEntry is one key/value pair of a dict.
type DictEntry struct {
	Key   Value
	Value Value
}

// DictValue is an insertion-ordered mapping with hashable keys.
type DictValue struct {
	Entries []DictEntry
	index   map[hashKey]int
}

// NewDict creates an empty dict.
func NewDict() *DictValue {
	return &DictValue{index: make(map[hashKey]int)}
}

// Set inserts or updates a key. An updated key keeps its original
// position.
func (v *DictValue) Set(key, val Value) *ErrorValue {
	k, err := hashOf(key)
	if err != nil {
		return err
	}
	if i, ok := v.index[k]; ok {
		v.Entries[i].Value = val
		return nil
	}
	v.index[k] = len(v.Entries)
	v.Entries = append(v.Entries, DictEntry{Key: key, Value: val})
	return nil
}

// Get returns the value for key and whether it was present.
func (v *DictValue) Get(key Value) (Value, bool, *ErrorValue) {
	k, err := hashOf(key)
	if err != nil {
		return nil, false, err
	}
	if i, ok := v.index[k]; ok {
		return v.Entries[i].Value, true, nil
	}
	return nil, false, nil
}

// Delete removes a key, reporting whether it was present.
func (v *DictValue) Delete(key Value) (bool, *ErrorValue) {
	k, err := hashOf(key)
	if err != nil {
		return false, err
	}
	i, ok := v.index[k]
	if !ok {
		return false, nil
	}
	v.Entries = append(v.Entries[:i], v.Entries[i+1:]...)
	delete(v.index, k)
	for key2, j := range v.index {
		if j > i {
			v.index[key2] = j - 1
		}
	}
	return true, nil
}

func (v *DictValue) Type() string { return DictType }
func (v *DictValue) String() string {
	parts := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		parts[i] = e.Key.String() + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FunctionValue is a user-defined function: parameters with their default
// values (evaluated at definition time), the body, and a live reference
// to the defining environment.
type FunctionValue struct {
	Name     string
	Params   []string
	Defaults []Value // parallel to Params; nil where no default
	Body     *ast.BlockStatement
	Env      *Environment
}

func (v *FunctionValue) Type() string   { return FunctionType }
func (v *FunctionValue) String() string { return "<function '" + v.Name + "'>" }

// BoundMethodValue pairs a function with the instance it was read from;
// calling it prepends the instance as the first argument.
type BoundMethodValue struct {
	Fn   *FunctionValue
	Self *InstanceValue
}

func (v *BoundMethodValue) Type() string   { return BoundMethodType }
func (v *BoundMethodValue) String() string { return "<bound method '" + v.Fn.Name + "'>" }

// ClassValue has a name, an optional single base class, and an attribute
// map populated by executing the class body in a fresh scope.
type ClassValue struct {
	Name  string
	Base  *ClassValue
	Attrs map[string]Value
}

func (v *ClassValue) Type() string   { return ClassType }
func (v *ClassValue) String() string { return "<class '" + v.Name + "'>" }

// lookup walks the base chain for a class attribute.
func (v *ClassValue) lookup(name string) (Value, bool) {
	for c := v; c != nil; c = c.Base {
		if val, ok := c.Attrs[name]; ok {
			return val, true
		}
	}
	return nil, false
}

// InstanceValue holds a non-owning reference to its class plus its own
// attribute map.
type InstanceValue struct {
	Class *ClassValue
	Attrs map[string]Value
}

func (v *InstanceValue) Type() string   { return InstanceType }
func (v *InstanceValue) String() string { return "<" + v.Class.Name + " instance>" }

// BuiltinFunction wraps a native function exposed in the root
// environment.
type BuiltinFunction struct {
	Name string
	Fn   func(args []Value) (Value, *ErrorValue)
}

func (v *BuiltinFunction) Type() string   { return BuiltinType }
func (v *BuiltinFunction) String() string { return "<builtin '" + v.Name + "'>" }

// ErrorValue is a runtime error: a kind from the fixed taxonomy plus an
// optional message. Runtime errors are ordinary raised values and travel
// through the same signal mechanism as user raises.
type ErrorValue struct {
	Kind    string
	Message string
}

func (v *ErrorValue) Type() string { return ErrorType }
func (v *ErrorValue) String() string {
	if v.Message == "" {
		return v.Kind
	}
	return v.Kind + ": " + v.Message
}

func joinValues(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// hashKey is the canonical map key for hashable values. Booleans and
// whole floats normalize to their integer form so that equal values hash
// equally.
type hashKey string

// hashOf computes the hash key of a value, or a TypeError for unhashable
// (mutable) values.
func hashOf(v Value) (hashKey, *ErrorValue) {
	switch val := v.(type) {
	case *IntegerValue:
		return hashKey("i:" + strconv.FormatInt(val.Value, 10)), nil
	case *BooleanValue:
		if val.Value {
			return hashKey("i:1"), nil
		}
		return hashKey("i:0"), nil
	case *FloatValue:
		if val.Value == float64(int64(val.Value)) {
			return hashKey("i:" + strconv.FormatInt(int64(val.Value), 10)), nil
		}
		return hashKey("f:" + strconv.FormatFloat(val.Value, 'b', -1, 64)), nil
	case *StringValue:
		return hashKey("s:" + val.Value), nil
	case *NoneValue:
		return hashKey("n"), nil
	case *TupleValue:
		parts := make([]string, len(val.Elements))
		for i, e := range val.Elements {
			k, err := hashOf(e)
			if err != nil {
				return "", err
			}
			parts[i] = string(k)
		}
		return hashKey("t:(" + strings.Join(parts, ",") + ")"), nil
	}
	return "", typeError("unhashable type: '%s'", strings.ToLower(v.Type()))
}

// Truthy implements the language's truthiness rules: False, None, zero
// numbers and empty containers are falsy; everything else is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *BooleanValue:
		return val.Value
	case *NoneValue:
		return false
	case *IntegerValue:
		return val.Value != 0
	case *FloatValue:
		return val.Value != 0
	case *StringValue:
		return len(val.Value) > 0
	case *TupleValue:
		return len(val.Elements) > 0
	case *ListValue:
		return len(val.Elements) > 0
	case *SetValue:
		return len(val.Elements) > 0
	case *DictValue:
		return len(val.Entries) > 0
	}
	return true
}

// boolOf returns the shared True/False singleton.
func boolOf(b bool) *BooleanValue {
	if b {
		return True
	}
	return False
}
