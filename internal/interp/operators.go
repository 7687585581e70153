package interp

import (
	"math"
	"strings"
)

// asNumeric extracts a numeric operand. Booleans participate in
// arithmetic as 1/0.
func asNumeric(v Value) (i int64, f float64, isFloat bool, ok bool) {
	switch val := v.(type) {
	case *IntegerValue:
		return val.Value, 0, false, true
	case *BooleanValue:
		if val.Value {
			return 1, 0, false, true
		}
		return 0, 0, false, true
	case *FloatValue:
		return 0, val.Value, true, true
	}
	return 0, 0, false, false
}

// asInt extracts an integer operand (integers and booleans only).
func asInt(v Value) (int64, bool) {
	switch val := v.(type) {
	case *IntegerValue:
		return val.Value, true
	case *BooleanValue:
		if val.Value {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func typeName(v Value) string {
	return strings.ToLower(strings.ReplaceAll(v.Type(), "_", " "))
}

func operandTypeError(op string, left, right Value) *ErrorValue {
	return typeError("unsupported operand types for %s: '%s' and '%s'", op, typeName(left), typeName(right))
}

// binaryOp implements the arithmetic and bitwise binary operators.
func binaryOp(op string, left, right Value) (Value, *ErrorValue) {
	switch op {
	case "+":
		if ls, ok := left.(*StringValue); ok {
			if rs, ok := right.(*StringValue); ok {
				return &StringValue{Value: ls.Value + rs.Value}, nil
			}
			return nil, operandTypeError(op, left, right)
		}
		if ll, ok := left.(*ListValue); ok {
			if rl, ok := right.(*ListValue); ok {
				elems := make([]Value, 0, len(ll.Elements)+len(rl.Elements))
				elems = append(elems, ll.Elements...)
				elems = append(elems, rl.Elements...)
				return &ListValue{Elements: elems}, nil
			}
			return nil, operandTypeError(op, left, right)
		}
		if lt, ok := left.(*TupleValue); ok {
			if rt, ok := right.(*TupleValue); ok {
				elems := make([]Value, 0, len(lt.Elements)+len(rt.Elements))
				elems = append(elems, lt.Elements...)
				elems = append(elems, rt.Elements...)
				return &TupleValue{Elements: elems}, nil
			}
			return nil, operandTypeError(op, left, right)
		}
		return numericOp(op, left, right)
	case "-", "*", "/", "%":
		return numericOp(op, left, right)
	case "&", "|":
		li, lok := asInt(left)
		ri, rok := asInt(right)
		if !lok || !rok {
			return nil, operandTypeError(op, left, right)
		}
		if op == "&" {
			return &IntegerValue{Value: li & ri}, nil
		}
		return &IntegerValue{Value: li | ri}, nil
	}
	return nil, operandTypeError(op, left, right)
}

// numericOp applies an arithmetic operator to two numbers. int op int
// stays int except for /, which is truthful division and always yields a
// float. Modulo follows floored-division semantics, so the result takes
// the sign of the divisor.
func numericOp(op string, left, right Value) (Value, *ErrorValue) {
	li, lf, lfloat, lok := asNumeric(left)
	ri, rf, rfloat, rok := asNumeric(right)
	if !lok || !rok {
		return nil, operandTypeError(op, left, right)
	}

	if lfloat || rfloat || op == "/" {
		if !lfloat {
			lf = float64(li)
		}
		if !rfloat {
			rf = float64(ri)
		}
		switch op {
		case "+":
			return &FloatValue{Value: lf + rf}, nil
		case "-":
			return &FloatValue{Value: lf - rf}, nil
		case "*":
			return &FloatValue{Value: lf * rf}, nil
		case "/":
			if rf == 0 {
				return nil, zeroDivisionError("division by zero")
			}
			return &FloatValue{Value: lf / rf}, nil
		case "%":
			if rf == 0 {
				return nil, zeroDivisionError("modulo by zero")
			}
			m := math.Mod(lf, rf)
			if m != 0 && (m < 0) != (rf < 0) {
				m += rf
			}
			return &FloatValue{Value: m}, nil
		}
	}

	switch op {
	case "+":
		return &IntegerValue{Value: li + ri}, nil
	case "-":
		return &IntegerValue{Value: li - ri}, nil
	case "*":
		return &IntegerValue{Value: li * ri}, nil
	case "%":
		if ri == 0 {
			return nil, zeroDivisionError("modulo by zero")
		}
		m := li % ri
		if m != 0 && (m < 0) != (ri < 0) {
			m += ri
		}
		return &IntegerValue{Value: m}, nil
	}
	return nil, operandTypeError(op, left, right)
}

// unaryOp implements - + ~ (and leaves 'not' to the evaluator, which
// needs only truthiness).
func unaryOp(op string, operand Value) (Value, *ErrorValue) {
	switch op {
	case "-", "+":
		i, f, isFloat, ok := asNumeric(operand)
		if !ok {
			return nil, typeError("bad operand type for unary %s: '%s'", op, typeName(operand))
		}
		if isFloat {
			if op == "-" {
				return &FloatValue{Value: -f}, nil
			}
			return &FloatValue{Value: f}, nil
		}
		if op == "-" {
			return &IntegerValue{Value: -i}, nil
		}
		return &IntegerValue{Value: i}, nil
	case "~":
		i, ok := asInt(operand)
		if !ok {
			return nil, typeError("bad operand type for unary ~: '%s'", typeName(operand))
		}
		return &IntegerValue{Value: ^i}, nil
	}
	return nil, typeError("bad unary operator %s", op)
}

// valueEquals is structural equality. It never errors: cross-type
// comparisons are simply unequal, except that integers, floats and
// booleans compare by numeric value.
func valueEquals(a, b Value) bool {
	ai, af, afloat, aok := asNumeric(a)
	bi, bf, bfloat, bok := asNumeric(b)
	if aok && bok {
		if afloat || bfloat {
			if !afloat {
				af = float64(ai)
			}
			if !bfloat {
				bf = float64(bi)
			}
			return af == bf
		}
		return ai == bi
	}

	switch av := a.(type) {
	case *StringValue:
		bv, ok := b.(*StringValue)
		return ok && av.Value == bv.Value
	case *NoneValue:
		_, ok := b.(*NoneValue)
		return ok
	case *TupleValue:
		bv, ok := b.(*TupleValue)
		return ok && sequenceEquals(av.Elements, bv.Elements)
	case *ListValue:
		bv, ok := b.(*ListValue)
		return ok && sequenceEquals(av.Elements, bv.Elements)
	case *SetValue:
		bv, ok := b.(*SetValue)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for k := range av.keys {
			if !bv.keys[k] {
				return false
			}
		}
		return true
	case *DictValue:
		bv, ok := b.(*DictValue)
		if !ok || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for _, e := range av.Entries {
			other, found, err := bv.Get(e.Key)
			if err != nil || !found || !valueEquals(e.Value, other) {
				return false
			}
		}
		return true
	case *ErrorValue:
		bv, ok := b.(*ErrorValue)
		return ok && av.Kind == bv.Kind && av.Message == bv.Message
	}
	// Functions, methods, classes and instances compare by identity.
	return a == b
}

func sequenceEquals(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valueEquals(a[i], b[i]) {
			return false
		}
	}
	return true
}

// compareValues orders two values: numbers with numbers, strings with
// strings. Any other pairing is a TypeError.
func compareValues(a, b Value) (int, *ErrorValue) {
	ai, af, afloat, aok := asNumeric(a)
	bi, bf, bfloat, bok := asNumeric(b)
	if aok && bok {
		if afloat || bfloat {
			if !afloat {
				af = float64(ai)
			}
			if !bfloat {
				bf = float64(bi)
			}
			switch {
			case af < bf:
				return -1, nil
			case af > bf:
				return 1, nil
			}
			return 0, nil
		}
		switch {
		case ai < bi:
			return -1, nil
		case ai > bi:
			return 1, nil
		}
		return 0, nil
	}
	if as, ok := a.(*StringValue); ok {
		if bs, ok := b.(*StringValue); ok {
			return strings.Compare(as.Value, bs.Value), nil
		}
	}
	return 0, typeError("unorderable types: '%s' and '%s'", typeName(a), typeName(b))
}

// compareOp applies one link of a comparison chain.
func compareOp(op string, left, right Value) (Value, *ErrorValue) {
	switch op {
	case "==":
		return boolOf(valueEquals(left, right)), nil
	case "!=":
		return boolOf(!valueEquals(left, right)), nil
	case "<", "<=", ">", ">=":
		c, err := compareValues(left, right)
		if err != nil {
			return nil, err
		}
		switch op {
		case "<":
			return boolOf(c < 0), nil
		case "<=":
			return boolOf(c <= 0), nil
		case ">":
			return boolOf(c > 0), nil
		default:
			return boolOf(c >= 0), nil
		}
	case "in", "not in":
		return nil, unimplementedError()
	}
	return nil, typeError("bad comparison operator %s", op)
}
