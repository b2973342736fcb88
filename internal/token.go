package internal

// tokenType enumerates the lexical categories the lexer can emit.
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"for":    tkFor,
	"fun":    tkFun,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

// token is an immutable lexeme produced by the lexer and consumed by
// the parser and resolver. Tokens are never mutated after creation;
// the AST nodes built from them carry their own identity.
type token struct {
	kind    tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t *token) String() string {
	return t.lexeme
}
