package internal

// stmt is the sum type of every statement node. There is no `for`
// variant: the parser desugars `for` entirely into `while` plus a
// `block` (spec §4.1), so no dedicated AST node for it exists.
type stmt interface {
	accept(stmtVisitor) R
}

type stmtVisitor interface {
	visitExpressionStmt(stmt *expressionStmt) R
	visitPrintStmt(stmt *printStmt) R
	visitVarStmt(stmt *varStmt) R
	visitBlockStmt(stmt *blockStmt) R
	visitIfStmt(stmt *ifStmt) R
	visitWhileStmt(stmt *whileStmt) R
	visitFunctionStmt(stmt *functionStmt) R
	visitReturnStmt(stmt *returnStmt) R
	visitClassStmt(stmt *classStmt) R
}

type expressionStmt struct {
	expression expr
}

func (s *expressionStmt) accept(visitor stmtVisitor) R {
	return visitor.visitExpressionStmt(s)
}

type printStmt struct {
	expression expr
}

func (s *printStmt) accept(visitor stmtVisitor) R {
	return visitor.visitPrintStmt(s)
}

type varStmt struct {
	name        *token
	initializer expr
}

func (s *varStmt) accept(visitor stmtVisitor) R {
	return visitor.visitVarStmt(s)
}

type blockStmt struct {
	statements []stmt
}

func (s *blockStmt) accept(visitor stmtVisitor) R {
	return visitor.visitBlockStmt(s)
}

type ifStmt struct {
	condition  expr
	thenBranch stmt
	elseBranch stmt
}

func (s *ifStmt) accept(visitor stmtVisitor) R {
	return visitor.visitIfStmt(s)
}

type whileStmt struct {
	condition expr
	body      stmt
}

func (s *whileStmt) accept(visitor stmtVisitor) R {
	return visitor.visitWhileStmt(s)
}

type functionStmt struct {
	name   *token
	params []*token
	body   []stmt
}

func (s *functionStmt) accept(visitor stmtVisitor) R {
	return visitor.visitFunctionStmt(s)
}

type returnStmt struct {
	keyword *token
	value   expr
}

func (s *returnStmt) accept(visitor stmtVisitor) R {
	return visitor.visitReturnStmt(s)
}

type classStmt struct {
	name       *token
	superclass *variableExpr
	methods    []*functionStmt
}

func (s *classStmt) accept(visitor stmtVisitor) R {
	return visitor.visitClassStmt(s)
}
