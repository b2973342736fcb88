package internal

// functionType tracks what kind of function body the resolver is
// currently inside, grounded on linhyee/lox's FunctionType enum — it
// governs whether `return` is legal and whether it may carry a value.
type functionType int

const (
	ftNone functionType = iota
	ftFunction
	ftInitializer
	ftMethod
)

// classType tracks whether the resolver is inside a class body and
// whether that class has a superclass, grounded on linhyee/lox's
// ClassType enum — it governs whether `this` and `super` are legal.
type classType int

const (
	ctNone classType = iota
	ctClass
	ctSubclass
)

// resolver is a static analysis pass between parsing and interpreting
// that assigns every variable reference a lexical scope distance,
// grounded on linhyee/lox's resolver.go and jlox's Resolver.java. It
// never executes anything; it only walks the AST once, tracking a
// stack of block scopes the way the interpreter's environment chain
// will at runtime, and records the result in interp.locals.
type resolver struct {
	state       *interpreterState
	interpreter *Interpreter

	scopes []map[string]bool

	currentFunction functionType
	currentClass    classType
}

func newResolver(state *interpreterState, interp *Interpreter) *resolver {
	return &resolver{state: state, interpreter: interp}
}

func (r *resolver) resolveStmts(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	s.accept(r)
}

func (r *resolver) resolveExpr(e expr) {
	e.accept(r)
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present but not yet initialized in the
// innermost scope, so `var a = a;` can be caught as a self-reference
// (spec §4.2). Re-declaring a name already present in the same scope
// is an error.
func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.lexeme]; ok {
		r.state.tokenError(name, errDuplicateLocal)
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; the hop
// count at which it finds the name is exactly the depth the
// interpreter's environment.getAt/assignAt will later walk.
func (r *resolver) resolveLocal(e expr, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.interpreter.resolve(e, len(r.scopes)-1-i)
			return
		}
	}
	// Not found in any scope: treated as global, resolved at runtime.
}

func (r *resolver) resolveFunction(fn *functionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// --- stmtVisitor ---

func (r *resolver) visitExpressionStmt(s *expressionStmt) R {
	r.resolveExpr(s.expression)
	return nil
}

func (r *resolver) visitPrintStmt(s *printStmt) R {
	r.resolveExpr(s.expression)
	return nil
}

func (r *resolver) visitVarStmt(s *varStmt) R {
	r.declare(s.name)
	if s.initializer != nil {
		r.resolveExpr(s.initializer)
	}
	r.define(s.name)
	return nil
}

func (r *resolver) visitBlockStmt(s *blockStmt) R {
	r.beginScope()
	r.resolveStmts(s.statements)
	r.endScope()
	return nil
}

func (r *resolver) visitIfStmt(s *ifStmt) R {
	r.resolveExpr(s.condition)
	r.resolveStmt(s.thenBranch)
	if s.elseBranch != nil {
		r.resolveStmt(s.elseBranch)
	}
	return nil
}

func (r *resolver) visitWhileStmt(s *whileStmt) R {
	r.resolveExpr(s.condition)
	r.resolveStmt(s.body)
	return nil
}

func (r *resolver) visitFunctionStmt(s *functionStmt) R {
	r.declare(s.name)
	r.define(s.name)
	r.resolveFunction(s, ftFunction)
	return nil
}

func (r *resolver) visitReturnStmt(s *returnStmt) R {
	if r.currentFunction == ftNone {
		r.state.tokenError(s.keyword, errReturnOutsideFunction)
	}
	if s.value != nil {
		if r.currentFunction == ftInitializer {
			r.state.tokenError(s.keyword, errReturnValueFromInit)
		}
		r.resolveExpr(s.value)
	}
	return nil
}

func (r *resolver) visitClassStmt(s *classStmt) R {
	enclosingClass := r.currentClass
	r.currentClass = ctClass

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.lexeme == s.name.lexeme {
			r.state.tokenError(s.superclass.name, errClassInheritsSelf)
		}
		r.currentClass = ctSubclass
		r.resolveExpr(s.superclass)
	}

	if s.superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.methods {
		kind := ftMethod
		if method.name.lexeme == "init" {
			kind = ftInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil
}

// --- exprVisitor ---

func (r *resolver) visitVariableExpr(e *variableExpr) R {
	if len(r.scopes) > 0 {
		if initialized, ok := r.scopes[len(r.scopes)-1][e.name.lexeme]; ok && !initialized {
			r.state.tokenError(e.name, errReadOwnInitializer)
		}
	}
	r.resolveLocal(e, e.name)
	return nil
}

func (r *resolver) visitAssignExpr(e *assignExpr) R {
	r.resolveExpr(e.value)
	r.resolveLocal(e, e.name)
	return nil
}

func (r *resolver) visitBinaryExpr(e *binaryExpr) R {
	r.resolveExpr(e.left)
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitLogicalExpr(e *logicalExpr) R {
	r.resolveExpr(e.left)
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitCallExpr(e *callExpr) R {
	r.resolveExpr(e.callee)
	for _, arg := range e.arguments {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *resolver) visitGetExpr(e *getExpr) R {
	r.resolveExpr(e.object)
	return nil
}

func (r *resolver) visitSetExpr(e *setExpr) R {
	r.resolveExpr(e.value)
	r.resolveExpr(e.object)
	return nil
}

func (r *resolver) visitGroupingExpr(e *groupingExpr) R {
	r.resolveExpr(e.expression)
	return nil
}

func (r *resolver) visitLiteralExpr(e *literalExpr) R {
	return nil
}

func (r *resolver) visitUnaryExpr(e *unaryExpr) R {
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitThisExpr(e *thisExpr) R {
	if r.currentClass == ctNone {
		r.state.tokenError(e.keyword, errThisOutsideClass)
		return nil
	}
	r.resolveLocal(e, e.keyword)
	return nil
}

func (r *resolver) visitSuperExpr(e *superExpr) R {
	if r.currentClass == ctNone {
		r.state.tokenError(e.keyword, errSuperOutsideClass)
	} else if r.currentClass != ctSubclass {
		r.state.tokenError(e.keyword, errSuperWithoutSuperclass)
	}
	r.resolveLocal(e, e.keyword)
	return nil
}
