package interp

// registerBuiltins installs the built-in bindings into the root
// environment. True, False and None are ordinary names resolved here;
// they are not keywords.
func registerBuiltins(env *Environment) {
	env.Set("True", True)
	env.Set("False", False)
	env.Set("None", None)

	env.Set("len", &BuiltinFunction{
		Name: "len",
		Fn:   builtinLen,
	})
}

func builtinLen(args []Value) (Value, *ErrorValue) {
	if len(args) != 1 {
		return nil, typeError("len() takes exactly one argument (%d given)", len(args))
	}
	switch v := args[0].(type) {
	case *StringValue:
		return &IntegerValue{Value: int64(len([]rune(v.Value)))}, nil
	case *TupleValue:
		return &IntegerValue{Value: int64(len(v.Elements))}, nil
	case *ListValue:
		return &IntegerValue{Value: int64(len(v.Elements))}, nil
	case *SetValue:
		return &IntegerValue{Value: int64(len(v.Elements))}, nil
	case *DictValue:
		return &IntegerValue{Value: int64(len(v.Entries))}, nil
	}
	return nil, typeError("object of type '%s' has no len()", typeName(args[0]))
}
