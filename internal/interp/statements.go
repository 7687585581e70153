package interp

import (
	"github.com/sneklang/go-snek/internal/ast"
)

// exec executes one statement and returns its control-flow signal; nil
// means normal completion.
func (i *Interpreter) exec(stmt ast.Statement, env *Environment) *Control {
	switch n := stmt.(type) {
	case *ast.ExpressionStatement:
		_, ctrl := i.eval(n.Expression, env)
		return ctrl

	case *ast.PassStatement:
		return nil

	case *ast.BlockStatement:
		return i.execBlock(n, env)

	case *ast.AssignStatement:
		v, ctrl := i.eval(n.Value, env)
		if ctrl != nil {
			return ctrl
		}
		for _, target := range n.Targets {
			if ctrl := i.assign(target, v, env); ctrl != nil {
				return ctrl
			}
		}
		return nil

	case *ast.AugAssignStatement:
		return i.execAugAssign(n, env)

	case *ast.DelStatement:
		return i.execDel(n, env)

	case *ast.IfStatement:
		cond, ctrl := i.eval(n.Cond, env)
		if ctrl != nil {
			return ctrl
		}
		if Truthy(cond) {
			return i.execBlock(n.Consequence, env)
		}
		if n.Alternative != nil {
			return i.exec(n.Alternative, env)
		}
		return nil

	case *ast.WhileStatement:
		return i.execWhile(n, env)

	case *ast.ForStatement:
		return i.execFor(n, env)

	case *ast.BreakStatement:
		return breakSignal()

	case *ast.ContinueStatement:
		return continueSignal()

	case *ast.ReturnStatement:
		if n.Value == nil {
			return returnSignal(None)
		}
		v, ctrl := i.eval(n.Value, env)
		if ctrl != nil {
			return ctrl
		}
		return returnSignal(v)

	case *ast.FunctionStatement:
		return i.execDef(n, env)

	case *ast.ClassStatement:
		return i.execClass(n, env)

	case *ast.TryStatement:
		return i.execTry(n, env)

	case *ast.RaiseStatement:
		if n.Value == nil {
			if i.active != nil {
				return raiseSignal(i.active)
			}
			return raiseError(&ErrorValue{Kind: RuntimeErrorKind, Message: "No active exception to re-raise"})
		}
		v, ctrl := i.eval(n.Value, env)
		if ctrl != nil {
			return ctrl
		}
		return raiseSignal(v)

	case *ast.AssertStatement:
		cond, ctrl := i.eval(n.Cond, env)
		if ctrl != nil {
			return ctrl
		}
		if Truthy(cond) {
			return nil
		}
		msg := ""
		if n.Message != nil {
			mv, ctrl := i.eval(n.Message, env)
			if ctrl != nil {
				return ctrl
			}
			if s, ok := mv.(*StringValue); ok {
				msg = s.Value
			} else {
				msg = mv.String()
			}
		}
		return raiseError(&ErrorValue{Kind: AssertionErrorKind, Message: msg})

	case *ast.GlobalStatement:
		return raiseError(unimplementedError())

	case *ast.ImportStatement:
		return raiseError(moduleNotFoundError(n.Modules[0].Name))

	case *ast.FromImportStatement:
		return raiseError(moduleNotFoundError(n.Module))
	}

	return raiseError(&ErrorValue{Kind: RuntimeErrorKind, Message: "unhandled statement node"})
}

// assign binds a value to one target: a name, attribute, subscript, or a
// (possibly nested) tuple/list target unpacked element by element.
func (i *Interpreter) assign(target ast.Expression, v Value, env *Environment) *Control {
	switch t := target.(type) {
	case *ast.Identifier:
		env.Set(t.Value, v)
		return nil

	case *ast.TupleLiteral:
		return i.unpack(t.Elements, v, env)

	case *ast.ListLiteral:
		return i.unpack(t.Elements, v, env)

	case *ast.AttributeExpression:
		obj, ctrl := i.eval(t.Object, env)
		if ctrl != nil {
			return ctrl
		}
		if err := setAttr(obj, t.Name, v); err != nil {
			return raiseError(err)
		}
		return nil

	case *ast.IndexExpression:
		obj, ctrl := i.eval(t.Object, env)
		if ctrl != nil {
			return ctrl
		}
		idx, ctrl := i.eval(t.Index, env)
		if ctrl != nil {
			return ctrl
		}
		if err := setItem(obj, idx, v); err != nil {
			return raiseError(err)
		}
		return nil

	case *ast.SliceExpression:
		return raiseError(typeError("slice assignment is not supported"))
	}
	return raiseError(typeError("invalid assignment target"))
}

// unpack destructures a value across a tuple/list target, recursing on
// nested targets.
func (i *Interpreter) unpack(targets []ast.Expression, v Value, env *Environment) *Control {
	elems, err := iterate(v)
	if err != nil {
		return raiseError(typeError("cannot unpack '%s' object", typeName(v)))
	}
	if len(elems) != len(targets) {
		return raiseError(typeError("cannot unpack %d values into %d targets", len(elems), len(targets)))
	}
	for idx, target := range targets {
		if ctrl := i.assign(target, elems[idx], env); ctrl != nil {
			return ctrl
		}
	}
	return nil
}

// execAugAssign performs target = target OP value, evaluating the
// target's container and key exactly once for attribute and subscript
// forms.
func (i *Interpreter) execAugAssign(n *ast.AugAssignStatement, env *Environment) *Control {
	switch t := n.Target.(type) {
	case *ast.Identifier:
		cur, ok := env.Get(t.Value)
		if !ok {
			return raiseError(nameError(t.Value))
		}
		res, ctrl := i.augResult(n, cur, env)
		if ctrl != nil {
			return ctrl
		}
		env.Set(t.Value, res)
		return nil

	case *ast.AttributeExpression:
		obj, ctrl := i.eval(t.Object, env)
		if ctrl != nil {
			return ctrl
		}
		cur, err := getAttr(obj, t.Name)
		if err != nil {
			return raiseError(err)
		}
		res, ctrl := i.augResult(n, cur, env)
		if ctrl != nil {
			return ctrl
		}
		if err := setAttr(obj, t.Name, res); err != nil {
			return raiseError(err)
		}
		return nil

	case *ast.IndexExpression:
		obj, ctrl := i.eval(t.Object, env)
		if ctrl != nil {
			return ctrl
		}
		idx, ctrl := i.eval(t.Index, env)
		if ctrl != nil {
			return ctrl
		}
		cur, err := getItem(obj, idx)
		if err != nil {
			return raiseError(err)
		}
		res, ctrl := i.augResult(n, cur, env)
		if ctrl != nil {
			return ctrl
		}
		if err := setItem(obj, idx, res); err != nil {
			return raiseError(err)
		}
		return nil
	}
	return raiseError(typeError("invalid augmented assignment target"))
}

func (i *Interpreter) augResult(n *ast.AugAssignStatement, cur Value, env *Environment) (Value, *Control) {
	rhs, ctrl := i.eval(n.Value, env)
	if ctrl != nil {
		return nil, ctrl
	}
	res, err := binaryOp(n.Operator, cur, rhs)
	if err != nil {
		return nil, raiseError(err)
	}
	return res, nil
}

// execDel implements del(x) name unbinding and del(x, k) item/attribute
// removal.
func (i *Interpreter) execDel(n *ast.DelStatement, env *Environment) *Control {
	switch len(n.Args) {
	case 1:
		id, ok := n.Args[0].(*ast.Identifier)
		if !ok {
			return raiseError(typeError("del() of a single argument requires a name"))
		}
		if !env.Delete(id.Value) {
			return raiseError(nameError(id.Value))
		}
		return nil
	case 2:
		container, ctrl := i.eval(n.Args[0], env)
		if ctrl != nil {
			return ctrl
		}
		key, ctrl := i.eval(n.Args[1], env)
		if ctrl != nil {
			return ctrl
		}
		if err := delItem(container, key); err != nil {
			return raiseError(err)
		}
		return nil
	}
	return raiseError(typeError("del() takes 1 or 2 arguments (%d given)", len(n.Args)))
}

// execWhile runs a while loop. break ends the loop without the else
// clause; the else clause runs iff the condition went false normally.
func (i *Interpreter) execWhile(n *ast.WhileStatement, env *Environment) *Control {
	for {
		cond, ctrl := i.eval(n.Cond, env)
		if ctrl != nil {
			return ctrl
		}
		if !Truthy(cond) {
			break
		}
		if ctrl := i.execBlock(n.Body, env); ctrl != nil {
			switch ctrl.Kind {
			case ctrlBreak:
				return nil
			case ctrlContinue:
				continue
			default:
				return ctrl
			}
		}
	}
	if n.Else != nil {
		return i.execBlock(n.Else, env)
	}
	return nil
}

// execFor binds each element of the iterable to the target with the same
// rules as assignment, then runs the body.
func (i *Interpreter) execFor(n *ast.ForStatement, env *Environment) *Control {
	iterable, ctrl := i.eval(n.Iterable, env)
	if ctrl != nil {
		return ctrl
	}
	elems, err := iterate(iterable)
	if err != nil {
		return raiseError(err)
	}
	for _, elem := range elems {
		if ctrl := i.assign(n.Target, elem, env); ctrl != nil {
			return ctrl
		}
		if ctrl := i.execBlock(n.Body, env); ctrl != nil {
			switch ctrl.Kind {
			case ctrlBreak:
				return nil
			case ctrlContinue:
				continue
			default:
				return ctrl
			}
		}
	}
	if n.Else != nil {
		return i.execBlock(n.Else, env)
	}
	return nil
}

// execDef builds a function value, evaluating parameter defaults at
// definition time and capturing the defining environment by reference.
func (i *Interpreter) execDef(n *ast.FunctionStatement, env *Environment) *Control {
	fn := &FunctionValue{
		Name:     n.Name,
		Params:   make([]string, len(n.Params)),
		Defaults: make([]Value, len(n.Params)),
		Body:     n.Body,
		Env:      env,
	}
	for idx, p := range n.Params {
		fn.Params[idx] = p.Name
		if p.Default != nil {
			d, ctrl := i.eval(p.Default, env)
			if ctrl != nil {
				return ctrl
			}
			fn.Defaults[idx] = d
		}
	}
	env.Set(n.Name, fn)
	return nil
}

// execClass executes the class body in a fresh scope and snapshots its
// bindings as the class attribute map.
func (i *Interpreter) execClass(n *ast.ClassStatement, env *Environment) *Control {
	var base *ClassValue
	if n.Base != nil {
		bv, ctrl := i.eval(n.Base, env)
		if ctrl != nil {
			return ctrl
		}
		cls, ok := bv.(*ClassValue)
		if !ok {
			return raiseError(typeError("class base must be a class, not '%s'", typeName(bv)))
		}
		base = cls
	}
	clsEnv := NewEnclosedEnvironment(env)
	if ctrl := i.execBlock(n.Body, clsEnv); ctrl != nil {
		if ctrl.Kind == ctrlRaise {
			return ctrl
		}
		return raiseError(&ErrorValue{Kind: RuntimeErrorKind, Message: "invalid control flow in class body"})
	}
	env.Set(n.Name, &ClassValue{Name: n.Name, Base: base, Attrs: clsEnv.Snapshot()})
	return nil
}

// execTry implements try/except/else/finally unwinding. The finally body
// runs on every exit path; a non-normal signal from finally replaces the
// pending one.
func (i *Interpreter) execTry(n *ast.TryStatement, env *Environment) *Control {
	ctrl := i.execBlock(n.Body, env)

	if ctrl != nil && ctrl.Kind == ctrlRaise {
		raised := ctrl.Value
		for _, h := range n.Handlers {
			matched := true
			if h.Match != nil {
				mv, mctrl := i.eval(h.Match, env)
				if mctrl != nil {
					ctrl = mctrl
					matched = false
					break
				}
				matched = valueEquals(mv, raised)
			}
			if !matched {
				continue
			}
			if h.Name != "" {
				env.Set(h.Name, raised)
			}
			prev := i.active
			i.active = raised
			ctrl = i.execBlock(h.Body, env)
			i.active = prev
			break
		}
	} else if ctrl == nil && n.Else != nil {
		ctrl = i.execBlock(n.Else, env)
	}

	if n.Finally != nil {
		if fctrl := i.execBlock(n.Finally, env); fctrl != nil {
			ctrl = fctrl
		}
	}
	return ctrl
}
