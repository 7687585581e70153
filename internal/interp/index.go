package interp

// Indexing, slicing, attribute access and the corresponding mutation
// paths. All helpers return *ErrorValue rather than signalling so the
// evaluator decides how to propagate.

// seqIndex normalizes an index into a sequence of the given length.
// Negative indices count from the end; out of range is an IndexError.
func seqIndex(length int, idx Value) (int, *ErrorValue) {
	n, ok := asInt(idx)
	if !ok {
		return 0, typeError("indices must be integers, not '%s'", typeName(idx))
	}
	if n < 0 {
		n += int64(length)
	}
	if n < 0 || n >= int64(length) {
		return 0, indexError()
	}
	return int(n), nil
}

// sliceBounds normalizes slice bounds: omitted bounds default to the
// ends, negative bounds are adjusted by the length, and everything clips
// to the valid range.
func sliceBounds(length int, low, high Value) (int, int, *ErrorValue) {
	lo, hi := 0, length
	if low != nil {
		n, ok := asInt(low)
		if !ok {
			return 0, 0, typeError("slice indices must be integers, not '%s'", typeName(low))
		}
		if n < 0 {
			n += int64(length)
		}
		lo = clamp(n, length)
	}
	if high != nil {
		n, ok := asInt(high)
		if !ok {
			return 0, 0, typeError("slice indices must be integers, not '%s'", typeName(high))
		}
		if n < 0 {
			n += int64(length)
		}
		hi = clamp(n, length)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi, nil
}

func clamp(n int64, length int) int {
	if n < 0 {
		return 0
	}
	if n > int64(length) {
		return length
	}
	return int(n)
}

// getItem implements obj[idx]. Dict lookup of a missing key yields None.
func getItem(obj, idx Value) (Value, *ErrorValue) {
	switch o := obj.(type) {
	case *StringValue:
		runes := []rune(o.Value)
		n, err := seqIndex(len(runes), idx)
		if err != nil {
			return nil, err
		}
		return &StringValue{Value: string(runes[n])}, nil
	case *ListValue:
		n, err := seqIndex(len(o.Elements), idx)
		if err != nil {
			return nil, err
		}
		return o.Elements[n], nil
	case *TupleValue:
		n, err := seqIndex(len(o.Elements), idx)
		if err != nil {
			return nil, err
		}
		return o.Elements[n], nil
	case *DictValue:
		v, found, err := o.Get(idx)
		if err != nil {
			return nil, err
		}
		if !found {
			return None, nil
		}
		return v, nil
	}
	return nil, typeError("'%s' object is not subscriptable", typeName(obj))
}

// getSlice implements obj[a:b] for strings, lists and tuples, producing
// a value of the same kind.
func getSlice(obj, low, high Value) (Value, *ErrorValue) {
	switch o := obj.(type) {
	case *StringValue:
		runes := []rune(o.Value)
		lo, hi, err := sliceBounds(len(runes), low, high)
		if err != nil {
			return nil, err
		}
		return &StringValue{Value: string(runes[lo:hi])}, nil
	case *ListValue:
		lo, hi, err := sliceBounds(len(o.Elements), low, high)
		if err != nil {
			return nil, err
		}
		elems := make([]Value, hi-lo)
		copy(elems, o.Elements[lo:hi])
		return &ListValue{Elements: elems}, nil
	case *TupleValue:
		lo, hi, err := sliceBounds(len(o.Elements), low, high)
		if err != nil {
			return nil, err
		}
		elems := make([]Value, hi-lo)
		copy(elems, o.Elements[lo:hi])
		return &TupleValue{Elements: elems}, nil
	}
	return nil, typeError("'%s' object is not sliceable", typeName(obj))
}

// setItem implements obj[idx] = v for lists and dicts.
func setItem(obj, idx, v Value) *ErrorValue {
	switch o := obj.(type) {
	case *ListValue:
		n, err := seqIndex(len(o.Elements), idx)
		if err != nil {
			return err
		}
		o.Elements[n] = v
		return nil
	case *DictValue:
		return o.Set(idx, v)
	}
	return typeError("'%s' object does not support item assignment", typeName(obj))
}

// delItem implements del(obj, key): item removal from lists and dicts,
// attribute removal from classes and instances.
func delItem(obj, key Value) *ErrorValue {
	switch o := obj.(type) {
	case *ListValue:
		n, err := seqIndex(len(o.Elements), key)
		if err != nil {
			return err
		}
		o.Elements = append(o.Elements[:n], o.Elements[n+1:]...)
		return nil
	case *DictValue:
		found, err := o.Delete(key)
		if err != nil {
			return err
		}
		if !found {
			return &ErrorValue{Kind: KeyErrorKind, Message: key.String()}
		}
		return nil
	case *InstanceValue:
		return delAttrFrom(o.Attrs, key, "instance")
	case *ClassValue:
		return delAttrFrom(o.Attrs, key, "class")
	}
	return typeError("cannot delete from '%s' object", typeName(obj))
}

func delAttrFrom(attrs map[string]Value, key Value, what string) *ErrorValue {
	s, ok := key.(*StringValue)
	if !ok {
		return typeError("%s attribute name must be a string", what)
	}
	if _, ok := attrs[s.Value]; !ok {
		return typeError("%s has no attribute '%s'", what, s.Value)
	}
	delete(attrs, s.Value)
	return nil
}

// getAttr implements obj.name. Reading a class function through an
// instance produces a bound method; __superclass__ on a class yields its
// base or None.
func getAttr(obj Value, name string) (Value, *ErrorValue) {
	switch o := obj.(type) {
	case *InstanceValue:
		if v, ok := o.Attrs[name]; ok {
			return v, nil
		}
		if v, ok := o.Class.lookup(name); ok {
			if fn, ok := v.(*FunctionValue); ok {
				return &BoundMethodValue{Fn: fn, Self: o}, nil
			}
			return v, nil
		}
		return nil, typeError("'%s' instance has no attribute '%s'", o.Class.Name, name)
	case *ClassValue:
		if name == "__superclass__" {
			if o.Base != nil {
				return o.Base, nil
			}
			return None, nil
		}
		if v, ok := o.lookup(name); ok {
			return v, nil
		}
		return nil, typeError("class '%s' has no attribute '%s'", o.Name, name)
	}
	return nil, typeError("'%s' object has no attribute '%s'", typeName(obj), name)
}

// setAttr implements obj.name = v on instances and classes.
func setAttr(obj Value, name string, v Value) *ErrorValue {
	switch o := obj.(type) {
	case *InstanceValue:
		o.Attrs[name] = v
		return nil
	case *ClassValue:
		o.Attrs[name] = v
		return nil
	}
	return typeError("'%s' object does not support attribute assignment", typeName(obj))
}

// iterate yields a for loop's element sequence. Dicts iterate their
// entries as (key, value) tuples; strings yield single-character
// strings. The returned slice is a copy, so mutating the container
// during iteration does not disturb the loop.
func iterate(v Value) ([]Value, *ErrorValue) {
	switch val := v.(type) {
	case *TupleValue:
		return append([]Value(nil), val.Elements...), nil
	case *ListValue:
		return append([]Value(nil), val.Elements...), nil
	case *SetValue:
		return append([]Value(nil), val.Elements...), nil
	case *DictValue:
		elems := make([]Value, len(val.Entries))
		for i, e := range val.Entries {
			elems[i] = &TupleValue{Elements: []Value{e.Key, e.Value}}
		}
		return elems, nil
	case *StringValue:
		runes := []rune(val.Value)
		elems := make([]Value, len(runes))
		for i, r := range runes {
			elems[i] = &StringValue{Value: string(r)}
		}
		return elems, nil
	}
	return nil, typeError("'%s' object is not iterable", typeName(v))
}
