package interp

import "fmt"

// Error kind names from the fixed taxonomy.
const (
	IndexErrorKind          = "IndexError"
	KeyErrorKind            = "KeyError"
	NameErrorKind           = "NameError"
	TypeErrorKind           = "TypeError"
	ZeroDivisionErrorKind   = "ZeroDivisionError"
	AssertionErrorKind      = "AssertionError"
	ModuleNotFoundErrorKind = "ModuleNotFoundError"
	UnimplementedErrorKind  = "UnimplementedError"
	RuntimeErrorKind        = "RuntimeError"
)

func typeError(format string, args ...any) *ErrorValue {
	return &ErrorValue{Kind: TypeErrorKind, Message: fmt.Sprintf(format, args...)}
}

func nameError(name string) *ErrorValue {
	return &ErrorValue{Kind: NameErrorKind, Message: fmt.Sprintf("name '%s' is not defined", name)}
}

func indexError() *ErrorValue {
	return &ErrorValue{Kind: IndexErrorKind, Message: "index out of range"}
}

func zeroDivisionError(msg string) *ErrorValue {
	return &ErrorValue{Kind: ZeroDivisionErrorKind, Message: msg}
}

func unimplementedError() *ErrorValue {
	return &ErrorValue{Kind: UnimplementedErrorKind}
}

func moduleNotFoundError(name string) *ErrorValue {
	return &ErrorValue{Kind: ModuleNotFoundErrorKind, Message: fmt.Sprintf("No module named '%s'", name)}
}
