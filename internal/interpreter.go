package internal

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// Interpreter walks the AST produced by the parser and resolver and
// evaluates it directly, grounded on the teacher's archive/internal/exec.go
// and jlox's Interpreter.java. One Interpreter is built per Session;
// its globals and locals table live as long as the Session, across
// every Run call made on it.
type Interpreter struct {
	state   *interpreterState
	globals *environment
	env     *environment

	// locals mirrors jlox's IdentityHashMap<Expr,Integer>: a Go
	// interface value holding a pointer compares equal to another iff
	// the pointers do, so a plain map keyed on expr works the same way.
	locals map[expr]int

	stdout io.Writer
}

func newInterpreter(state *interpreterState, stdout io.Writer) *Interpreter {
	globals := newEnvironment(nil)
	interp := &Interpreter{
		state:   state,
		globals: globals,
		env:     globals,
		locals:  make(map[expr]int),
		stdout:  stdout,
	}
	interp.defineGlobals()
	return interp
}

// defineGlobals registers the native functions available in every Lox
// program (spec §4.3 "Native function clock").
func (interp *Interpreter) defineGlobals() {
	interp.globals.define("clock", &nativeFunction{
		name:       "clock",
		arityValue: 0,
		fn: func(interp *Interpreter, arguments []interface{}) interface{} {
			return float64(time.Now().UnixNano()) / float64(time.Second)
		},
	})
}

func (interp *Interpreter) resolve(e expr, depth int) {
	interp.locals[e] = depth
}

// Interpret runs every top-level statement in order. A panicked
// *runtimeError is caught here and returned to the caller, which
// reports it; anything else propagates (a bug, not a Lox program
// error).
func (interp *Interpreter) Interpret(stmts []stmt) (rerr *runtimeError) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*runtimeError); ok {
				rerr = re
				return
			}
			panic(r)
		}
	}()

	for _, s := range stmts {
		interp.execute(s)
	}
	return nil
}

func (interp *Interpreter) execute(s stmt) {
	s.accept(interp)
}

func (interp *Interpreter) evaluate(e expr) interface{} {
	return e.accept(interp)
}

// executeBlock runs statements against env, restoring the previous
// environment afterward even if a return or runtime error panics
// through — grounded on jlox's try/finally in executeBlock.
func (interp *Interpreter) executeBlock(stmts []stmt, env *environment) {
	previous := interp.env
	defer func() { interp.env = previous }()

	interp.env = env
	for _, s := range stmts {
		interp.execute(s)
	}
}

// --- stmtVisitor ---

func (interp *Interpreter) visitExpressionStmt(s *expressionStmt) R {
	interp.evaluate(s.expression)
	return nil
}

func (interp *Interpreter) visitPrintStmt(s *printStmt) R {
	value := interp.evaluate(s.expression)
	fmt.Fprintln(interp.stdout, stringify(value))
	return nil
}

func (interp *Interpreter) visitVarStmt(s *varStmt) R {
	var value interface{}
	if s.initializer != nil {
		value = interp.evaluate(s.initializer)
	}
	interp.env.define(s.name.lexeme, value)
	return nil
}

func (interp *Interpreter) visitBlockStmt(s *blockStmt) R {
	interp.executeBlock(s.statements, newEnvironment(interp.env))
	return nil
}

func (interp *Interpreter) visitIfStmt(s *ifStmt) R {
	if isTruthy(interp.evaluate(s.condition)) {
		interp.execute(s.thenBranch)
	} else if s.elseBranch != nil {
		interp.execute(s.elseBranch)
	}
	return nil
}

func (interp *Interpreter) visitWhileStmt(s *whileStmt) R {
	for isTruthy(interp.evaluate(s.condition)) {
		interp.execute(s.body)
	}
	return nil
}

func (interp *Interpreter) visitFunctionStmt(s *functionStmt) R {
	fn := &loxFunction{declaration: s, closure: interp.env, isInitializer: false}
	interp.env.define(s.name.lexeme, fn)
	return nil
}

func (interp *Interpreter) visitReturnStmt(s *returnStmt) R {
	var value interface{}
	if s.value != nil {
		value = interp.evaluate(s.value)
	}
	panic(returnSignal{value: value})
}

// visitClassStmt follows jlox's exact sequence: evaluate the
// superclass expression and check it's a class, declare the class
// name, open a scope holding "super" if there's a superclass, build
// every method as a closure over the current environment (flagging
// isInitializer for "init"), then close that scope and assign the
// class to the name declared earlier (spec §4.3 "Class declaration
// execution").
func (interp *Interpreter) visitClassStmt(s *classStmt) R {
	var superclass *loxClass
	if s.superclass != nil {
		sc := interp.evaluate(s.superclass)
		var ok bool
		superclass, ok = sc.(*loxClass)
		if !ok {
			panic(newRuntimeError(s.superclass.name, errSuperclassMustBeClass))
		}
	}

	interp.env.define(s.name.lexeme, nil)

	if s.superclass != nil {
		interp.env = newEnvironment(interp.env)
		interp.env.define("super", superclass)
	}

	methods := make(map[string]*loxFunction)
	for _, method := range s.methods {
		fn := &loxFunction{
			declaration:   method,
			closure:       interp.env,
			isInitializer: method.name.lexeme == "init",
		}
		methods[method.name.lexeme] = fn
	}

	class := &loxClass{name: s.name.lexeme, superclass: superclass, methods: methods}

	if s.superclass != nil {
		interp.env = interp.env.enclosing
	}

	interp.env.assign(s.name, class)
	return nil
}

// --- exprVisitor ---

func (interp *Interpreter) visitLiteralExpr(e *literalExpr) R {
	return e.value
}

func (interp *Interpreter) visitGroupingExpr(e *groupingExpr) R {
	return interp.evaluate(e.expression)
}

func (interp *Interpreter) visitUnaryExpr(e *unaryExpr) R {
	right := interp.evaluate(e.right)

	switch e.operator.kind {
	case tkMinus:
		n := interp.checkNumberOperand(e.operator, right)
		return -n
	case tkBang:
		return !isTruthy(right)
	}

	panic(newRuntimeError(e.operator, errOperandMustBeNumber))
}

func (interp *Interpreter) visitBinaryExpr(e *binaryExpr) R {
	left := interp.evaluate(e.left)
	right := interp.evaluate(e.right)

	switch e.operator.kind {
	case tkGreater:
		l, r := interp.checkNumberOperands(e.operator, left, right)
		return l > r
	case tkGreaterEqual:
		l, r := interp.checkNumberOperands(e.operator, left, right)
		return l >= r
	case tkLess:
		l, r := interp.checkNumberOperands(e.operator, left, right)
		return l < r
	case tkLessEqual:
		l, r := interp.checkNumberOperands(e.operator, left, right)
		return l <= r
	case tkBangEqual:
		return !isEqual(left, right)
	case tkEqualEqual:
		return isEqual(left, right)
	case tkMinus:
		l, r := interp.checkNumberOperands(e.operator, left, right)
		return l - r
	case tkSlash:
		l, r := interp.checkNumberOperands(e.operator, left, right)
		return l / r
	case tkStar:
		l, r := interp.checkNumberOperands(e.operator, left, right)
		return l * r
	case tkPlus:
		return interp.plus(e.operator, left, right)
	}

	panic(newRuntimeError(e.operator, errOperandsMustBeNumbers))
}

// plus overloads '+' over numbers and strings, matching jlox's
// Interpreter.plusImpl exactly: any other operand combination is a
// runtime error naming both accepted pairings.
func (interp *Interpreter) plus(operator *token, left, right interface{}) interface{} {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r
		}
	}
	panic(newRuntimeError(operator, errOperandsMustMatch))
}

func (interp *Interpreter) visitLogicalExpr(e *logicalExpr) R {
	left := interp.evaluate(e.left)

	if e.operator.kind == tkOr {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}

	return interp.evaluate(e.right)
}

func (interp *Interpreter) visitVariableExpr(e *variableExpr) R {
	return interp.lookUpVariable(e.name, e)
}

func (interp *Interpreter) lookUpVariable(name *token, e expr) interface{} {
	if distance, ok := interp.locals[e]; ok {
		return interp.env.getAt(distance, name.lexeme)
	}
	return interp.globals.get(name)
}

func (interp *Interpreter) visitAssignExpr(e *assignExpr) R {
	value := interp.evaluate(e.value)

	if distance, ok := interp.locals[e]; ok {
		interp.env.assignAt(distance, e.name, value)
	} else {
		interp.globals.assign(e.name, value)
	}

	return value
}

func (interp *Interpreter) visitCallExpr(e *callExpr) R {
	callee := interp.evaluate(e.callee)

	arguments := make([]interface{}, len(e.arguments))
	for i, arg := range e.arguments {
		arguments[i] = interp.evaluate(arg)
	}

	fn, ok := callee.(callable)
	if !ok {
		panic(newRuntimeError(e.paren, errOnlyCallableValues))
	}

	if len(arguments) != fn.arity() {
		panic(newRuntimeError(e.paren, errArity(fn.arity(), len(arguments))))
	}

	return fn.call(interp, arguments)
}

func (interp *Interpreter) visitGetExpr(e *getExpr) R {
	object := interp.evaluate(e.object)
	if instance, ok := object.(*loxInstance); ok {
		return instance.get(e.name)
	}
	panic(newRuntimeError(e.name, errOnlyInstancesHaveProperties))
}

func (interp *Interpreter) visitSetExpr(e *setExpr) R {
	object := interp.evaluate(e.object)
	instance, ok := object.(*loxInstance)
	if !ok {
		panic(newRuntimeError(e.name, errOnlyInstancesHaveFields))
	}
	value := interp.evaluate(e.value)
	instance.set(e.name, value)
	return value
}

func (interp *Interpreter) visitThisExpr(e *thisExpr) R {
	return interp.lookUpVariable(e.keyword, e)
}

// visitSuperExpr reads the superclass at the resolved distance, then
// `this` exactly one scope closer — bind() pushes an extra environment
// frame between the "super" scope and the method body, so `this` is
// always one hop nearer than `super` (spec §4.3, grounded on jlox's
// Interpreter.visitSuperExpr).
func (interp *Interpreter) visitSuperExpr(e *superExpr) R {
	distance := interp.locals[e]
	superclass, _ := interp.env.getAt(distance, "super").(*loxClass)

	object, _ := interp.env.getAt(distance-1, "this").(*loxInstance)

	method := superclass.findMethod(e.method.lexeme)
	if method == nil {
		panic(newRuntimeError(e.method, errUndefinedProperty(e.method.lexeme)))
	}

	return method.bind(object)
}

// --- operand checks ---

func (interp *Interpreter) checkNumberOperand(operator *token, operand interface{}) float64 {
	if n, ok := operand.(float64); ok {
		return n
	}
	panic(newRuntimeError(operator, errOperandMustBeNumber))
}

func (interp *Interpreter) checkNumberOperands(operator *token, left, right interface{}) (float64, float64) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if lok && rok {
		return l, r
	}
	panic(newRuntimeError(operator, errOperandsMustBeNumbers))
}

// --- value helpers ---

// isTruthy treats nil and false as falsey, everything else (including
// 0 and "") as truthy, matching jlox exactly.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual mirrors jlox's isEqual: nil equals only nil, everything else
// uses Go's == which for float64/string/bool behaves the same way
// Java's .equals does here.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders a Lox value for `print` and for literals in the
// AST printer, matching
// jlox's Interpreter.stringify. Go's FormatFloat with prec -1 already
// renders 3.0 as "3", so unlike jlox there's no trailing ".0" to strip.
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if n, ok := value.(float64); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	if b, ok := value.(bool); ok {
		if b {
			return "true"
		}
		return "false"
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
