package internal

import "testing"

func parseStmts(t *testing.T, source string) []stmt {
	t.Helper()
	state := newInterpreterState(source, nil)
	state.tokens = newLexer(state).scan()
	if state.HadError() {
		t.Fatalf("lex errors for %q: %v", source, state.errors)
	}
	stmts := newParser(state).parse()
	if state.HadError() {
		t.Fatalf("parse errors for %q: %v", source, state.errors)
	}
	return stmts
}

func parseExpression(t *testing.T, source string) expr {
	t.Helper()
	stmts := parseStmts(t, source+";")
	if len(stmts) != 1 {
		t.Fatalf("expected exactly one statement, got %d", len(stmts))
	}
	es, ok := stmts[0].(*expressionStmt)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", stmts[0])
	}
	return es.expression
}

func TestPrinterParenthesizesByPrecedence(t *testing.T) {
	cases := map[string]string{
		"1 + 2 * 3":       "(+ 1 (* 2 3))",
		"(1 + 2) * 3":     "(* (group (+ 1 2)) 3)",
		"-1 + 2":          "(+ (- 1) 2)",
		"1 == 2 and true": "(and (== 1 2) true)",
	}

	p := &printer{}
	for source, want := range cases {
		e := parseExpression(t, source)
		got := p.printExpr(e)
		if got != want {
			t.Errorf("printExpr(%q) = %q, want %q", source, got, want)
		}
	}
}

func TestPrinterPrintsVariableAndCall(t *testing.T) {
	e := parseExpression(t, "foo(1, bar)")
	p := &printer{}
	got := p.printExpr(e)
	want := "(call foo 1 bar)"
	if got != want {
		t.Errorf("printExpr() = %q, want %q", got, want)
	}
}

func TestPrinterPrintsStatementForms(t *testing.T) {
	stmts := parseStmts(t, `
		var a = 1;
		print a;
		if (a) print "yes"; else print "no";
	`)
	p := &printer{}
	got := p.Print(stmts)
	want := "(var a 1)\n(print a)\n(if a (print yes) (print no))"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrinterPrintsClassWithSuperclassAndMethods(t *testing.T) {
	stmts := parseStmts(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
			}
		}
	`)
	p := &printer{}
	got := p.Print(stmts)
	want := "(class Animal (fun speak () (print ...)))\n" +
		"(class Dog < Animal (fun speak () (call (super speak))))"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}
