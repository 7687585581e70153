package interp

// call dispatches a call over the callable protocol: builtins, user
// functions, bound methods, and classes (instantiation).
func (i *Interpreter) call(callee Value, args []Value) (Value, *Control) {
	switch fn := callee.(type) {
	case *BuiltinFunction:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, raiseError(err)
		}
		return v, nil
	case *FunctionValue:
		return i.callFunction(fn, args)
	case *BoundMethodValue:
		return i.callFunction(fn.Fn, append([]Value{fn.Self}, args...))
	case *ClassValue:
		return i.instantiate(fn, args)
	}
	return nil, raiseError(typeError("'%s' object is not callable", typeName(callee)))
}

// callFunction binds positional arguments left-to-right, fills the rest
// from declared defaults, and executes the body in a fresh frame whose
// parent is the function's defining environment.
func (i *Interpreter) callFunction(fn *FunctionValue, args []Value) (Value, *Control) {
	if len(args) > len(fn.Params) {
		return nil, raiseError(typeError("%s() takes at most %d arguments (%d given)",
			fn.Name, len(fn.Params), len(args)))
	}
	env := NewEnclosedEnvironment(fn.Env)
	for idx, name := range fn.Params {
		switch {
		case idx < len(args):
			env.Set(name, args[idx])
		case fn.Defaults[idx] != nil:
			env.Set(name, fn.Defaults[idx])
		default:
			return nil, raiseError(typeError("%s() missing required argument '%s'", fn.Name, name))
		}
	}
	ctrl := i.execBlock(fn.Body, env)
	if ctrl != nil {
		switch ctrl.Kind {
		case ctrlReturn:
			return ctrl.Value, nil
		case ctrlRaise:
			return nil, ctrl
		case ctrlBreak:
			return nil, raiseError(&ErrorValue{Kind: RuntimeErrorKind, Message: "'break' outside loop"})
		case ctrlContinue:
			return nil, raiseError(&ErrorValue{Kind: RuntimeErrorKind, Message: "'continue' outside loop"})
		}
	}
	return None, nil
}

// instantiate creates an instance with an empty attribute map and runs
// __init__ (found anywhere on the base chain) bound to it.
func (i *Interpreter) instantiate(cls *ClassValue, args []Value) (Value, *Control) {
	inst := &InstanceValue{Class: cls, Attrs: make(map[string]Value)}
	init, ok := cls.lookup("__init__")
	if !ok {
		if len(args) > 0 {
			return nil, raiseError(typeError("%s() takes no arguments (%d given)", cls.Name, len(args)))
		}
		return inst, nil
	}
	fn, ok := init.(*FunctionValue)
	if !ok {
		return nil, raiseError(typeError("__init__ of class '%s' is not a function", cls.Name))
	}
	if _, ctrl := i.callFunction(fn, append([]Value{inst}, args...)); ctrl != nil {
		return nil, ctrl
	}
	return inst, nil
}
