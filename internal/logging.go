package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a text-formatted logrus.Logger for the interpreter's
// own operational diagnostics (static errors, at debug level). It is
// distinct from a Lox program's `print` output, which is written to
// whatever io.Writer Run/Session.Run were given. Passing a nil writer
// discards log output, matching the zero-config default of the CLI
// when run as a library (tests, embedding).
func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if w == nil {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(w)
	}
	return log
}
