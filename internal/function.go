package internal

import "fmt"

// callable is anything that can appear on the left of a call
// expression: a user function, a bound method, a class (which
// constructs an instance) or a native function like clock.
type callable interface {
	arity() int
	call(interp *Interpreter, arguments []interface{}) interface{}
	String() string
}

// loxFunction pairs a function declaration with the environment in
// force when it was declared — the closure (spec §3.5). It is
// immutable after creation; bind returns a new loxFunction rather
// than mutating this one, so the same declaration can be bound to
// many instances independently.
type loxFunction struct {
	declaration   *functionStmt
	closure       *environment
	isInitializer bool
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

func (f *loxFunction) call(interp *Interpreter, arguments []interface{}) (result interface{}) {
	env := newEnvironment(f.closure)
	for i := range f.declaration.params {
		env.define(f.declaration.params[i].lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, isReturn := r.(returnSignal)
			if !isReturn {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.getAt(0, "this")
				return
			}
			result = ret.value
		}
	}()

	interp.executeBlock(f.declaration.body, env)

	if f.isInitializer {
		return f.closure.getAt(0, "this")
	}
	return nil
}

// bind returns a new loxFunction whose closure is a fresh child of
// this one's closure with `this` bound to instance (spec §3.5).
func (f *loxFunction) bind(instance *loxInstance) *loxFunction {
	env := newEnvironment(f.closure)
	env.define("this", instance)
	return &loxFunction{
		declaration:   f.declaration,
		closure:       env,
		isInitializer: f.isInitializer,
	}
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

// nativeFunction wraps a Go closure as a callable, indistinguishable
// from a user-defined function at the call site (spec §4.3 "Native
// function clock").
type nativeFunction struct {
	name       string
	arityValue int
	fn         func(interp *Interpreter, arguments []interface{}) interface{}
}

func (n *nativeFunction) arity() int {
	return n.arityValue
}

func (n *nativeFunction) call(interp *Interpreter, arguments []interface{}) interface{} {
	return n.fn(interp, arguments)
}

func (n *nativeFunction) String() string {
	return "<native fn>"
}
