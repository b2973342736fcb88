package internal

import (
	"errors"
	"strconv"
)

// Lexer errors.
var errIllegalChar = errors.New("Unexpected character.")
var errUnclosedString = errors.New("Unterminated string.")

// Parser errors.
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectedProp = errors.New("Expect property name after '.'.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedSemicolon = errors.New("Expect ';' after value.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectedSemicolonReturn = errors.New("Expect ';' after return value.")
var errExpectedLeftBrace = errors.New("Expect '{' before block.")
var errExpectedRightBrace = errors.New("Expect '}' after block.")
var errExpectedLeftParen = errors.New("Expect '(' after statement keyword.")
var errExpectedRightParen = errors.New("Expect ')' after statement clause.")
var errExpectedFunctionName = errors.New("Expect function name.")
var errExpectedMethodName = errors.New("Expect method name.")
var errExpectedParamName = errors.New("Expect parameter name.")
var errExpectedDot = errors.New("Expect '.' after 'super'.")
var errExpectedSuperMethod = errors.New("Expect superclass method name.")
var errExpectedSuperclassName = errors.New("Expect superclass name.")
var errExpectedExpression = errors.New("Expect expression.")
var errInvalidAssignTarget = errors.New("Invalid assignment target.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")

// Resolver errors.
var errDuplicateLocal = errors.New("Already a variable with this name in this scope.")
var errReadOwnInitializer = errors.New("Can't read local variable in its own initializer.")
var errReturnOutsideFunction = errors.New("Can't return from top-level code.")
var errReturnValueFromInit = errors.New("Can't return a value from an initializer.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errSuperOutsideClass = errors.New("Can't use 'super' outside of a class.")
var errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
var errClassInheritsSelf = errors.New("A class can't inherit from itself.")

// Runtime errors.
var errOperandMustBeNumber = errors.New("Operand must be a number.")
var errOperandsMustBeNumbers = errors.New("Operands must be numbers.")
var errOperandsMustMatch = errors.New("Operands must be two numbers or two strings.")
var errOnlyCallableValues = errors.New("Can only call functions and classes.")
var errOnlyInstancesHaveFields = errors.New("Only instances have fields.")
var errOnlyInstancesHaveProperties = errors.New("Only instances have properties.")
var errSuperclassMustBeClass = errors.New("Superclass must be a class.")

func errUndefinedVariable(name string) error {
	return errors.New("Undefined variable '" + name + "'.")
}

func errUndefinedProperty(name string) error {
	return errors.New("Undefined property '" + name + "'.")
}

func errArity(want, got int) error {
	return errors.New(
		"Expected " + strconv.Itoa(want) + " arguments but got " + strconv.Itoa(got) + ".",
	)
}

// runtimeError is the non-local control-transfer signal carrying a
// runtime failure up to the call frame that started interpretation.
// It is panicked and recovered, distinct in kind from returnSignal so
// the two are never confused by a recover() type switch.
type runtimeError struct {
	token *token
	err   error
}

func (r *runtimeError) Error() string {
	return r.err.Error()
}

func newRuntimeError(tk *token, err error) *runtimeError {
	return &runtimeError{token: tk, err: err}
}
