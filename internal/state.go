package internal

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// staticError is a syntax or resolve-time error tied to a token.
type staticError struct {
	token   *token
	line    int
	message string
}

// interpreterState carries everything a single run of the pipeline
// shares between lexer, parser, resolver and interpreter: the source
// text, the accumulated token/statement lists and every static error
// seen so far. It is the `state` the teacher threads through lexer,
// parser and exec in mliezun/grotsky, generalized to also gate
// resolver errors (spec §4.1 "the interpreter is never invoked" on
// error).
type interpreterState struct {
	source string

	tokens []token
	stmts  []stmt

	errors []staticError

	log *logrus.Logger
}

func newInterpreterState(source string, log *logrus.Logger) *interpreterState {
	if log == nil {
		log = newLogger(nil)
	}
	return &interpreterState{source: source, log: log}
}

func (s *interpreterState) setError(err error, line, pos int) {
	s.errors = append(s.errors, staticError{line: line, message: err.Error()})
	s.log.WithField("line", line).Debug("static error: " + err.Error())
}

func (s *interpreterState) tokenError(tk *token, err error) {
	s.errors = append(s.errors, staticError{token: tk, line: tk.line, message: err.Error()})
	s.log.WithField("line", tk.line).Debug("static error: " + err.Error())
}

// HadError reports whether any lexer, parser or resolver error was
// recorded. The interpreter is never invoked when this is true.
func (s *interpreterState) HadError() bool {
	return len(s.errors) > 0
}

// PrintErrors writes every accumulated static error to w in the
// `[line N] Error<at ...>: message` format spec §6 requires, colored
// red the way SPEC_FULL §2.2 calls for syntax/resolve errors.
func (s *interpreterState) PrintErrors(w io.Writer) {
	for _, e := range s.errors {
		where := ""
		if e.token != nil {
			if e.token.kind == tkEOF {
				where = " at end"
			} else {
				where = " at '" + e.token.lexeme + "'"
			}
		}
		line := fmt.Sprintf("[line %d] Error%s: %s", e.line, where, e.message)
		fmt.Fprintln(w, color.Red(line))
	}
}
