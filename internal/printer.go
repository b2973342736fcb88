package internal

import "strings"

// printer renders a parsed tree back to a fully parenthesized prefix
// form, grounded on the teacher's reader.go stringVisitor. It exists
// so a parse→print round trip can be tested without depending on the
// interpreter (spec's Testable Property #1) and so the CLI's `-ast`
// flag has something to print instead of running the program.
type printer struct{}

// Print renders a full program: one parenthesized form per top-level
// statement, newline-separated.
func (p *printer) Print(stmts []stmt) string {
	var b strings.Builder
	for i, s := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.printStmt(s))
	}
	return b.String()
}

func (p *printer) printStmt(s stmt) string {
	return s.accept(p).(string)
}

func (p *printer) printExpr(e expr) string {
	return e.accept(p).(string)
}

func (p *printer) parenthesize(name string, exprs ...expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(p.printExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *printer) parenthesizeStmts(name string, stmts ...stmt) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, s := range stmts {
		b.WriteByte(' ')
		b.WriteString(p.printStmt(s))
	}
	b.WriteByte(')')
	return b.String()
}

// --- exprVisitor ---

func (p *printer) visitLiteralExpr(e *literalExpr) R {
	if e.value == nil {
		return "nil"
	}
	return stringify(e.value)
}

func (p *printer) visitUnaryExpr(e *unaryExpr) R {
	return p.parenthesize(e.operator.lexeme, e.right)
}

func (p *printer) visitBinaryExpr(e *binaryExpr) R {
	return p.parenthesize(e.operator.lexeme, e.left, e.right)
}

func (p *printer) visitLogicalExpr(e *logicalExpr) R {
	return p.parenthesize(e.operator.lexeme, e.left, e.right)
}

func (p *printer) visitGroupingExpr(e *groupingExpr) R {
	return p.parenthesize("group", e.expression)
}

func (p *printer) visitVariableExpr(e *variableExpr) R {
	return e.name.lexeme
}

func (p *printer) visitAssignExpr(e *assignExpr) R {
	return p.parenthesize("= "+e.name.lexeme, e.value)
}

func (p *printer) visitCallExpr(e *callExpr) R {
	return p.parenthesize("call", append([]expr{e.callee}, e.arguments...)...)
}

func (p *printer) visitGetExpr(e *getExpr) R {
	return p.parenthesize("get "+e.name.lexeme, e.object)
}

func (p *printer) visitSetExpr(e *setExpr) R {
	return p.parenthesize("set "+e.name.lexeme, e.object, e.value)
}

func (p *printer) visitThisExpr(e *thisExpr) R {
	return "this"
}

func (p *printer) visitSuperExpr(e *superExpr) R {
	return "(super " + e.method.lexeme + ")"
}

// --- stmtVisitor ---

func (p *printer) visitExpressionStmt(s *expressionStmt) R {
	return p.printExpr(s.expression)
}

func (p *printer) visitPrintStmt(s *printStmt) R {
	return p.parenthesize("print", s.expression)
}

func (p *printer) visitVarStmt(s *varStmt) R {
	if s.initializer == nil {
		return "(var " + s.name.lexeme + ")"
	}
	return "(var " + s.name.lexeme + " " + p.printExpr(s.initializer) + ")"
}

func (p *printer) visitBlockStmt(s *blockStmt) R {
	return p.parenthesizeStmts("block", s.statements...)
}

func (p *printer) visitIfStmt(s *ifStmt) R {
	var b strings.Builder
	b.WriteString("(if ")
	b.WriteString(p.printExpr(s.condition))
	b.WriteByte(' ')
	b.WriteString(p.printStmt(s.thenBranch))
	if s.elseBranch != nil {
		b.WriteByte(' ')
		b.WriteString(p.printStmt(s.elseBranch))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *printer) visitWhileStmt(s *whileStmt) R {
	return "(while " + p.printExpr(s.condition) + " " + p.printStmt(s.body) + ")"
}

func (p *printer) visitFunctionStmt(s *functionStmt) R {
	var b strings.Builder
	b.WriteString("(fun ")
	b.WriteString(s.name.lexeme)
	b.WriteString(" (")
	for i, param := range s.params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(param.lexeme)
	}
	b.WriteString(")")
	for _, bodyStmt := range s.body {
		b.WriteByte(' ')
		b.WriteString(p.printStmt(bodyStmt))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *printer) visitReturnStmt(s *returnStmt) R {
	if s.value == nil {
		return "(return)"
	}
	return p.parenthesize("return", s.value)
}

func (p *printer) visitClassStmt(s *classStmt) R {
	var b strings.Builder
	b.WriteString("(class ")
	b.WriteString(s.name.lexeme)
	if s.superclass != nil {
		b.WriteString(" < ")
		b.WriteString(s.superclass.name.lexeme)
	}
	for _, method := range s.methods {
		b.WriteByte(' ')
		b.WriteString(p.printStmt(method))
	}
	b.WriteByte(')')
	return b.String()
}
