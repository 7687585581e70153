package interp

import (
	"github.com/sneklang/go-snek/internal/ast"
)

// eval evaluates an expression. The returned *Control is non-nil only
// for a raise; expression evaluation produces no other signals.
func (i *Interpreter) eval(node ast.Expression, env *Environment) (Value, *Control) {
	switch n := node.(type) {
	case *ast.Identifier:
		v, ok := env.Get(n.Value)
		if !ok {
			return nil, raiseError(nameError(n.Value))
		}
		return v, nil

	case *ast.IntegerLiteral:
		return &IntegerValue{Value: n.Value}, nil

	case *ast.FloatLiteral:
		return &FloatValue{Value: n.Value}, nil

	case *ast.StringLiteral:
		return &StringValue{Value: n.Value}, nil

	case *ast.TupleLiteral:
		elems, ctrl := i.evalAll(n.Elements, env)
		if ctrl != nil {
			return nil, ctrl
		}
		return &TupleValue{Elements: elems}, nil

	case *ast.ListLiteral:
		elems, ctrl := i.evalAll(n.Elements, env)
		if ctrl != nil {
			return nil, ctrl
		}
		return &ListValue{Elements: elems}, nil

	case *ast.SetLiteral:
		set := NewSet()
		for _, el := range n.Elements {
			v, ctrl := i.eval(el, env)
			if ctrl != nil {
				return nil, ctrl
			}
			if err := set.Add(v); err != nil {
				return nil, raiseError(err)
			}
		}
		return set, nil

	case *ast.DictLiteral:
		dict := NewDict()
		for idx := range n.Keys {
			k, ctrl := i.eval(n.Keys[idx], env)
			if ctrl != nil {
				return nil, ctrl
			}
			v, ctrl := i.eval(n.Values[idx], env)
			if ctrl != nil {
				return nil, ctrl
			}
			if err := dict.Set(k, v); err != nil {
				return nil, raiseError(err)
			}
		}
		return dict, nil

	case *ast.UnaryExpression:
		v, ctrl := i.eval(n.Right, env)
		if ctrl != nil {
			return nil, ctrl
		}
		if n.Operator == "not" {
			return boolOf(!Truthy(v)), nil
		}
		res, err := unaryOp(n.Operator, v)
		if err != nil {
			return nil, raiseError(err)
		}
		return res, nil

	case *ast.BinaryExpression:
		left, ctrl := i.eval(n.Left, env)
		if ctrl != nil {
			return nil, ctrl
		}
		right, ctrl := i.eval(n.Right, env)
		if ctrl != nil {
			return nil, ctrl
		}
		res, err := binaryOp(n.Operator, left, right)
		if err != nil {
			return nil, raiseError(err)
		}
		return res, nil

	case *ast.LogicalExpression:
		left, ctrl := i.eval(n.Left, env)
		if ctrl != nil {
			return nil, ctrl
		}
		// Short-circuit: the determining operand is the result.
		if n.Operator == "and" {
			if !Truthy(left) {
				return left, nil
			}
		} else {
			if Truthy(left) {
				return left, nil
			}
		}
		return i.eval(n.Right, env)

	case *ast.CompareExpression:
		return i.evalCompare(n, env)

	case *ast.ConditionalExpression:
		cond, ctrl := i.eval(n.Cond, env)
		if ctrl != nil {
			return nil, ctrl
		}
		if Truthy(cond) {
			return i.eval(n.Then, env)
		}
		return i.eval(n.Else, env)

	case *ast.CallExpression:
		callee, ctrl := i.eval(n.Callee, env)
		if ctrl != nil {
			return nil, ctrl
		}
		args, ctrl := i.evalAll(n.Arguments, env)
		if ctrl != nil {
			return nil, ctrl
		}
		return i.call(callee, args)

	case *ast.AttributeExpression:
		obj, ctrl := i.eval(n.Object, env)
		if ctrl != nil {
			return nil, ctrl
		}
		v, err := getAttr(obj, n.Name)
		if err != nil {
			return nil, raiseError(err)
		}
		return v, nil

	case *ast.IndexExpression:
		obj, ctrl := i.eval(n.Object, env)
		if ctrl != nil {
			return nil, ctrl
		}
		idx, ctrl := i.eval(n.Index, env)
		if ctrl != nil {
			return nil, ctrl
		}
		v, err := getItem(obj, idx)
		if err != nil {
			return nil, raiseError(err)
		}
		return v, nil

	case *ast.SliceExpression:
		obj, ctrl := i.eval(n.Object, env)
		if ctrl != nil {
			return nil, ctrl
		}
		var low, high Value
		if n.Low != nil {
			if low, ctrl = i.eval(n.Low, env); ctrl != nil {
				return nil, ctrl
			}
		}
		if n.High != nil {
			if high, ctrl = i.eval(n.High, env); ctrl != nil {
				return nil, ctrl
			}
		}
		v, err := getSlice(obj, low, high)
		if err != nil {
			return nil, raiseError(err)
		}
		return v, nil
	}

	return nil, raiseError(&ErrorValue{Kind: RuntimeErrorKind, Message: "unhandled expression node"})
}

// evalAll evaluates expressions left-to-right, stopping at the first
// raise.
func (i *Interpreter) evalAll(exprs []ast.Expression, env *Environment) ([]Value, *Control) {
	vals := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v, ctrl := i.eval(e, env)
		if ctrl != nil {
			return nil, ctrl
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// evalCompare walks a comparison chain, evaluating each operand exactly
// once and short-circuiting on the first false link.
func (i *Interpreter) evalCompare(n *ast.CompareExpression, env *Environment) (Value, *Control) {
	left, ctrl := i.eval(n.Operands[0], env)
	if ctrl != nil {
		return nil, ctrl
	}
	for idx, op := range n.Operators {
		right, ctrl := i.eval(n.Operands[idx+1], env)
		if ctrl != nil {
			return nil, ctrl
		}
		res, err := compareOp(op, left, right)
		if err != nil {
			return nil, raiseError(err)
		}
		if !Truthy(res) {
			return False, nil
		}
		left = right
	}
	return True, nil
}
