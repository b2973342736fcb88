package internal

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunReturnsStaticErrorExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run("var;", &stdout, &stderr, nil)
	if code != ExitStaticError {
		t.Errorf("got exit code %d, want %d", code, ExitStaticError)
	}
	if stderr.Len() == 0 {
		t.Errorf("expected a static error message on stderr")
	}
}

func TestRunReturnsRuntimeErrorExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(`print 1 + "two";`, &stdout, &stderr, nil)
	if code != ExitRuntimeErr {
		t.Errorf("got exit code %d, want %d", code, ExitRuntimeErr)
	}
}

func TestRunReturnsOKOnSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(`print "hello";`, &stdout, &stderr, nil)
	if code != ExitOK {
		t.Errorf("got exit code %d, want %d", code, ExitOK)
	}
	if strings.TrimSpace(stdout.String()) != "hello" {
		t.Errorf("got stdout %q, want %q", stdout.String(), "hello")
	}
}

func TestPrintASTRendersParsedTree(t *testing.T) {
	var stderr bytes.Buffer
	tree, code := PrintAST(`var a = 1 + 2;`, &stderr, nil)
	if code != ExitOK {
		t.Fatalf("got exit code %d, want %d (stderr: %s)", code, ExitOK, stderr.String())
	}
	if want := "(var a (+ 1 2))"; tree != want {
		t.Errorf("PrintAST() = %q, want %q", tree, want)
	}
}

func TestPrintASTReportsStaticErrorsWithoutRunning(t *testing.T) {
	var stderr bytes.Buffer
	tree, code := PrintAST(`var;`, &stderr, nil)
	if code != ExitStaticError {
		t.Errorf("got exit code %d, want %d", code, ExitStaticError)
	}
	if tree != "" {
		t.Errorf("got tree %q, want empty on error", tree)
	}
	if stderr.Len() == 0 {
		t.Errorf("expected a static error message on stderr")
	}
}

func TestSessionPersistsGlobalsAcrossRunCalls(t *testing.T) {
	sess := NewSession(nil)
	var out bytes.Buffer

	if code := sess.Run(`var count = 1;`, &out, &out); code != ExitOK {
		t.Fatalf("first line failed with code %d: %s", code, out.String())
	}
	out.Reset()

	if code := sess.Run(`count = count + 1; print count;`, &out, &out); code != ExitOK {
		t.Fatalf("second line failed with code %d: %s", code, out.String())
	}
	if got := strings.TrimSpace(out.String()); got != "2" {
		t.Errorf("got %q, want %q (globals should persist across Run calls)", got, "2")
	}
}
