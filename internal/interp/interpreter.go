package interp

import (
	"github.com/sneklang/go-snek/internal/ast"
)

// Interpreter owns the persistent global environment and walks programs
// against it. It is strictly single-threaded: one Run at a time.
type Interpreter struct {
	globals *Environment

	// active is the exception being handled by the innermost except
	// clause, which is what a bare raise re-raises.
	active Value
}

// New creates an interpreter whose root environment holds the built-ins.
// The root environment lives for the lifetime of the interpreter.
func New() *Interpreter {
	env := NewEnvironment()
	registerBuiltins(env)
	return &Interpreter{globals: env}
}

// Globals returns the root environment.
func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Run executes a parsed chunk against the global environment. It returns
// the value of the last top-level expression-statement (nil when the
// chunk had none), or the raised value if evaluation failed. Partial
// effects of a failed chunk remain; there is no rollback.
func (i *Interpreter) Run(prog *ast.Program) (Value, Value) {
	var last Value
	for _, stmt := range prog.Statements {
		if es, ok := stmt.(*ast.ExpressionStatement); ok {
			v, ctrl := i.eval(es.Expression, i.globals)
			if ctrl != nil {
				return nil, ctrl.Value
			}
			last = v
			continue
		}
		if ctrl := i.exec(stmt, i.globals); ctrl != nil {
			switch ctrl.Kind {
			case ctrlRaise:
				return nil, ctrl.Value
			case ctrlBreak:
				return nil, &ErrorValue{Kind: RuntimeErrorKind, Message: "'break' outside loop"}
			case ctrlContinue:
				return nil, &ErrorValue{Kind: RuntimeErrorKind, Message: "'continue' outside loop"}
			case ctrlReturn:
				return nil, &ErrorValue{Kind: RuntimeErrorKind, Message: "'return' outside function"}
			}
		}
	}
	return last, nil
}

// execBlock runs a suite, stopping at the first non-normal signal.
func (i *Interpreter) execBlock(block *ast.BlockStatement, env *Environment) *Control {
	for _, stmt := range block.Statements {
		if ctrl := i.exec(stmt, env); ctrl != nil {
			return ctrl
		}
	}
	return nil
}
