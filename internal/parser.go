package internal

// parser is a recursive-descent, Pratt-style precedence-climbing
// parser over a flat token stream, grounded in the teacher's
// parser.go (match/check/consume/advance/peek/previous/synchronize)
// and generalized to the Lox grammar of spec §4.1.
type parser struct {
	state   *interpreterState
	tokens  []token
	current int
}

func newParser(state *interpreterState) *parser {
	return &parser{state: state, tokens: state.tokens}
}

const maxArgs = 255

// parse runs the full `program → declaration* EOF` grammar, recording
// any statements it manages to recover and every error it hits on
// state. The interpreter must never run if state.HadError().
func (p *parser) parse() []stmt {
	var stmts []stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// parseError is panicked by consume/primary on a malformed construct
// and recovered by declaration's synchronize, so one bad statement
// doesn't abort the whole parse.
type parseError struct{}

func (p *parser) declaration() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				s = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(tkClass) {
		return p.classDecl()
	}
	if p.match(tkFun) {
		return p.function("function")
	}
	if p.match(tkVar) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) classDecl() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	var superclass *variableExpr
	if p.match(tkLess) {
		p.consume(tkIdentifier, errExpectedSuperclassName)
		superclass = &variableExpr{name: p.previous()}
	}

	p.consume(tkLeftBrace, errExpectedLeftBrace)

	var methods []*functionStmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(tkRightBrace, errExpectedRightBrace)

	return &classStmt{name: name, superclass: superclass, methods: methods}
}

func (p *parser) function(kind string) *functionStmt {
	nameErr := errExpectedFunctionName
	if kind == "method" {
		nameErr = errExpectedMethodName
	}
	name := p.consume(tkIdentifier, nameErr)

	p.consume(tkLeftParen, errExpectedLeftParen)
	var params []*token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), errMaxParameters)
			}
			params = append(params, p.consume(tkIdentifier, errExpectedParamName))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errExpectedRightParen)

	p.consume(tkLeftBrace, errExpectedLeftBrace)
	body := p.block()

	return &functionStmt{name: name, params: params, body: body}
}

func (p *parser) varDecl() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	var initializer expr
	if p.match(tkEqual) {
		initializer = p.expression()
	}

	p.consume(tkSemicolon, errExpectedSemicolonVar)
	return &varStmt{name: name, initializer: initializer}
}

func (p *parser) statement() stmt {
	if p.match(tkFor) {
		return p.forStmt()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkReturn) {
		return p.returnStmt()
	}
	if p.match(tkWhile) {
		return p.whileStmt()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{statements: p.block()}
	}
	return p.expressionStmt()
}

// forStmt desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }` (spec §4.1) — no dedicated
// `For` AST node ever exists past this point.
func (p *parser) forStmt() stmt {
	p.consume(tkLeftParen, errExpectedLeftParen)

	var initializer stmt
	if p.match(tkSemicolon) {
		initializer = nil
	} else if p.match(tkVar) {
		initializer = p.varDecl()
	} else {
		initializer = p.expressionStmt()
	}

	var condition expr
	if !p.check(tkSemicolon) {
		condition = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolon)

	var increment expr
	if !p.check(tkRightParen) {
		increment = p.expression()
	}
	p.consume(tkRightParen, errExpectedRightParen)

	body := p.statement()

	if increment != nil {
		body = &blockStmt{statements: []stmt{body, &expressionStmt{expression: increment}}}
	}

	if condition == nil {
		condition = &literalExpr{value: true}
	}
	body = &whileStmt{condition: condition, body: body}

	if initializer != nil {
		body = &blockStmt{statements: []stmt{initializer, body}}
	}

	return body
}

func (p *parser) ifStmt() stmt {
	p.consume(tkLeftParen, errExpectedLeftParen)
	condition := p.expression()
	p.consume(tkRightParen, errExpectedRightParen)

	thenBranch := p.statement()
	var elseBranch stmt
	if p.match(tkElse) {
		elseBranch = p.statement()
	}

	return &ifStmt{condition: condition, thenBranch: thenBranch, elseBranch: elseBranch}
}

func (p *parser) printStmt() stmt {
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &printStmt{expression: value}
}

func (p *parser) returnStmt() stmt {
	keyword := p.previous()
	var value expr
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonReturn)
	return &returnStmt{keyword: keyword, value: value}
}

func (p *parser) whileStmt() stmt {
	p.consume(tkLeftParen, errExpectedLeftParen)
	condition := p.expression()
	p.consume(tkRightParen, errExpectedRightParen)
	body := p.statement()
	return &whileStmt{condition: condition, body: body}
}

func (p *parser) block() []stmt {
	var stmts []stmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(tkRightBrace, errExpectedRightBrace)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonExpr)
	return &expressionStmt{expression: value}
}

func (p *parser) expression() expr {
	return p.assignment()
}

// assignment parses an r-value expression, then — seeing a trailing
// '=' — re-interprets what it just parsed: a variableExpr becomes an
// assignExpr, a getExpr becomes a setExpr, anything else is a syntax
// error at the '=' token (spec §4.1).
func (p *parser) assignment() expr {
	e := p.or()

	if p.match(tkEqual) {
		equals := p.previous()
		value := p.assignment()

		switch target := e.(type) {
		case *variableExpr:
			return &assignExpr{name: target.name, value: value}
		case *getExpr:
			return &setExpr{object: target.object, name: target.name, value: value}
		default:
			p.errorAt(equals, errInvalidAssignTarget)
		}
	}

	return e
}

func (p *parser) or() expr {
	e := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		e = &logicalExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) and() expr {
	e := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		e = &logicalExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) equality() expr {
	e := p.comparison()
	for p.match(tkBangEqual, tkEqualEqual) {
		operator := p.previous()
		right := p.comparison()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) comparison() expr {
	e := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) term() expr {
	e := p.factor()
	for p.match(tkMinus, tkPlus) {
		operator := p.previous()
		right := p.factor()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) factor() expr {
	e := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{operator: operator, right: right}
	}
	return p.call()
}

func (p *parser) call() expr {
	e := p.primary()
	for {
		if p.match(tkLeftParen) {
			e = p.finishCall(e)
		} else if p.match(tkDot) {
			name := p.consume(tkIdentifier, errExpectedProp)
			e = &getExpr{object: e, name: name}
		} else {
			break
		}
	}
	return e
}

func (p *parser) finishCall(callee expr) expr {
	var arguments []expr
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxArgs {
				p.errorAt(p.peek(), errMaxArguments)
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errUnclosedParen)
	return &callExpr{callee: callee, paren: paren, arguments: arguments}
}

func (p *parser) primary() expr {
	switch {
	case p.match(tkFalse):
		return &literalExpr{value: false}
	case p.match(tkTrue):
		return &literalExpr{value: true}
	case p.match(tkNil):
		return &literalExpr{value: nil}
	case p.match(tkNumber, tkString):
		return &literalExpr{value: p.previous().literal}
	case p.match(tkSuper):
		keyword := p.previous()
		p.consume(tkDot, errExpectedDot)
		method := p.consume(tkIdentifier, errExpectedSuperMethod)
		return &superExpr{keyword: keyword, method: method}
	case p.match(tkThis):
		return &thisExpr{keyword: p.previous()}
	case p.match(tkIdentifier):
		return &variableExpr{name: p.previous()}
	case p.match(tkLeftParen):
		e := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: e}
	}

	p.errorAt(p.peek(), errExpectedExpression)
	return nil
}

// --- token-stream primitives ---

func (p *parser) match(kinds ...tokenType) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(kind tokenType) bool {
	return p.peek().kind == kind
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().kind == tkEOF
}

func (p *parser) peek() *token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.tokens[p.current-1]
}

func (p *parser) consume(kind tokenType, err error) *token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAt(p.peek(), err)
	return p.peek()
}

func (p *parser) errorAt(tk *token, err error) {
	p.state.tokenError(tk, err)
	panic(parseError{})
}

// synchronize discards tokens until it's past a likely statement
// boundary, so the next declaration() call has a reasonable chance of
// resuming cleanly (spec §4.1 "Error recovery").
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.tokens[p.current-1].kind == tkSemicolon {
			return
		}
		switch p.peek().kind {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}
