package internal

// R is the generic visitor return type, matching the teacher's
// reader.go convention — expressions evaluate to a Lox value, blocks
// of statements don't, so both visitors return this single alias
// rather than committing to two different concrete types.
type R interface{}

// expr is the sum type of every expression node. Nodes are created
// once by the parser and never mutated; the resolver keys its
// side-table by the pointer identity of these nodes — a Go interface
// value holding a pointer compares equal to another iff the pointers
// do, the same role Java's IdentityHashMap<Expr, Integer> plays in
// jlox's Interpreter.locals.
type expr interface {
	accept(exprVisitor) R
}

type exprVisitor interface {
	visitLiteralExpr(expr *literalExpr) R
	visitUnaryExpr(expr *unaryExpr) R
	visitBinaryExpr(expr *binaryExpr) R
	visitLogicalExpr(expr *logicalExpr) R
	visitGroupingExpr(expr *groupingExpr) R
	visitVariableExpr(expr *variableExpr) R
	visitAssignExpr(expr *assignExpr) R
	visitCallExpr(expr *callExpr) R
	visitGetExpr(expr *getExpr) R
	visitSetExpr(expr *setExpr) R
	visitThisExpr(expr *thisExpr) R
	visitSuperExpr(expr *superExpr) R
}

type literalExpr struct {
	value interface{}
}

func (s *literalExpr) accept(visitor exprVisitor) R {
	return visitor.visitLiteralExpr(s)
}

type unaryExpr struct {
	operator *token
	right    expr
}

func (s *unaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitUnaryExpr(s)
}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (s *binaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitBinaryExpr(s)
}

type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

func (s *logicalExpr) accept(visitor exprVisitor) R {
	return visitor.visitLogicalExpr(s)
}

type groupingExpr struct {
	expression expr
}

func (s *groupingExpr) accept(visitor exprVisitor) R {
	return visitor.visitGroupingExpr(s)
}

type variableExpr struct {
	name *token
}

func (s *variableExpr) accept(visitor exprVisitor) R {
	return visitor.visitVariableExpr(s)
}

// assignExpr is produced by the parser re-interpreting an already
// parsed r-value expression when it sees a trailing '=' (spec §4.1 —
// assignment is right-associative and not LL(1)).
type assignExpr struct {
	name  *token
	value expr
}

func (s *assignExpr) accept(visitor exprVisitor) R {
	return visitor.visitAssignExpr(s)
}

type callExpr struct {
	callee    expr
	paren     *token
	arguments []expr
}

func (s *callExpr) accept(visitor exprVisitor) R {
	return visitor.visitCallExpr(s)
}

type getExpr struct {
	object expr
	name   *token
}

func (s *getExpr) accept(visitor exprVisitor) R {
	return visitor.visitGetExpr(s)
}

type setExpr struct {
	object expr
	name   *token
	value  expr
}

func (s *setExpr) accept(visitor exprVisitor) R {
	return visitor.visitSetExpr(s)
}

type thisExpr struct {
	keyword *token
}

func (s *thisExpr) accept(visitor exprVisitor) R {
	return visitor.visitThisExpr(s)
}

type superExpr struct {
	keyword *token
	method  *token
}

func (s *superExpr) accept(visitor exprVisitor) R {
	return visitor.visitSuperExpr(s)
}
