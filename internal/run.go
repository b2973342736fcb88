package internal

import (
	"io"
	"strconv"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// ExitCode mirrors jlox's main() exit codes (spec §6), so a CLI driver
// can translate a Run result directly into os.Exit without knowing
// anything about the pipeline's internals.
type ExitCode int

const (
	ExitOK          ExitCode = 0
	ExitUsageError  ExitCode = 64
	ExitStaticError ExitCode = 65
	ExitRuntimeErr  ExitCode = 70
)

// Session holds the state that must persist across multiple Run calls
// within one REPL invocation: the global environment and the locals
// side-table both need to survive from one typed line to the next, so
// a variable declared on one line is visible on subsequent lines
// (spec §4's REPL note). grotsky's RunSourceWithPrinter, which this
// is grounded on, builds fresh state on every call; Session keeps it.
type Session struct {
	log     *logrus.Logger
	interp  *Interpreter
	globals *environment
}

// NewSession builds one long-lived interpreter for a REPL. Each
// subsequent Run call against the returned Session reuses the same
// global environment, so definitions made on one line persist to the
// next.
func NewSession(log *logrus.Logger) *Session {
	if log == nil {
		log = newLogger(nil)
	}
	state := newInterpreterState("", log)
	interp := newInterpreter(state, io.Discard)
	return &Session{log: log, interp: interp, globals: interp.globals}
}

// Run lexes, parses, resolves and interprets source against the
// session's persistent global environment, writing `print` output to
// stdout and static errors to stderr. It never runs the toolchain
// itself; it is the one place lexer, parser, resolver and interpreter
// are wired together (grounded on grotsky's interp.go
// RunSourceWithPrinter).
func (sess *Session) Run(source string, stdout, stderr io.Writer) ExitCode {
	state := newInterpreterState(source, sess.log)

	lx := newLexer(state)
	state.tokens = lx.scan()
	if state.HadError() {
		state.PrintErrors(stderr)
		return ExitStaticError
	}

	p := newParser(state)
	stmts := p.parse()
	if state.HadError() {
		state.PrintErrors(stderr)
		return ExitStaticError
	}

	sess.interp.state = state
	sess.interp.stdout = stdout
	sess.interp.env = sess.globals

	res := newResolver(state, sess.interp)
	res.resolveStmts(stmts)
	if state.HadError() {
		state.PrintErrors(stderr)
		return ExitStaticError
	}

	if rerr := sess.interp.Interpret(stmts); rerr != nil {
		reportRuntimeError(stderr, rerr)
		return ExitRuntimeErr
	}

	return ExitOK
}

// Run is the one-shot form used for file-mode execution: it builds a
// fresh Session and runs source exactly once (spec §6).
func Run(source string, stdout, stderr io.Writer, log *logrus.Logger) ExitCode {
	return NewSession(log).Run(source, stdout, stderr)
}

// PrintAST lexes and parses source and renders its AST in fully
// parenthesized prefix form instead of running it (SPEC_FULL §4's
// `-ast` CLI flag). It never resolves or interprets, so a program that
// would fail to resolve or fail at runtime can still be printed.
func PrintAST(source string, stderr io.Writer, log *logrus.Logger) (string, ExitCode) {
	state := newInterpreterState(source, log)

	lx := newLexer(state)
	state.tokens = lx.scan()
	if state.HadError() {
		state.PrintErrors(stderr)
		return "", ExitStaticError
	}

	stmts := newParser(state).parse()
	if state.HadError() {
		state.PrintErrors(stderr)
		return "", ExitStaticError
	}

	p := &printer{}
	return p.Print(stmts), ExitOK
}

// reportRuntimeError writes the failing expression's message and line,
// colored yellow the way SPEC_FULL §2.2 calls for runtime errors (as
// opposed to the red used for static errors in state.PrintErrors).
func reportRuntimeError(w io.Writer, rerr *runtimeError) {
	line := 0
	if rerr.token != nil {
		line = rerr.token.line
	}
	io.WriteString(w, color.Yellow(rerr.Error())+"\n")
	io.WriteString(w, color.Yellow("[line "+strconv.Itoa(line)+"]")+"\n")
}
