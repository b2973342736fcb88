package internal

import "testing"

// TestResolverIsDeterministic checks that resolving the same parsed
// tree against two independent Interpreters assigns identical scope
// distances every time — the resolver has no hidden dependency on
// map iteration order or prior runs.
func TestResolverIsDeterministic(t *testing.T) {
	source := `
		var a = 1;
		{
			var a = 2;
			{
				var a = 3;
				print a;
			}
		}
	`
	state := newInterpreterState(source, nil)
	state.tokens = newLexer(state).scan()
	if state.HadError() {
		t.Fatalf("unexpected lex errors: %v", state.errors)
	}
	stmts := newParser(state).parse()
	if state.HadError() {
		t.Fatalf("unexpected parse errors: %v", state.errors)
	}

	interpA := newInterpreter(state, nil)
	newResolver(state, interpA).resolveStmts(stmts)

	interpB := newInterpreter(state, nil)
	newResolver(state, interpB).resolveStmts(stmts)

	if len(interpA.locals) != len(interpB.locals) {
		t.Fatalf("got %d resolved locals vs %d on the second pass", len(interpA.locals), len(interpB.locals))
	}
	for e, distA := range interpA.locals {
		distB, ok := interpB.locals[e]
		if !ok {
			t.Fatalf("expression resolved on pass A is missing on pass B")
		}
		if distA != distB {
			t.Errorf("got distance %d on pass A, %d on pass B for the same expression", distA, distB)
		}
	}
}

func TestResolverDuplicateLocalDeclarationIsAnError(t *testing.T) {
	state := newInterpreterState(`{ var a = 1; var a = 2; }`, nil)
	state.tokens = newLexer(state).scan()
	stmts := newParser(state).parse()
	interp := newInterpreter(state, nil)
	newResolver(state, interp).resolveStmts(stmts)
	if !state.HadError() {
		t.Fatalf("expected a duplicate-local-declaration error")
	}
}

func TestResolverRejectsSuperWithoutSuperclass(t *testing.T) {
	state := newInterpreterState(`
		class Lonely {
			speak() {
				super.speak();
			}
		}
	`, nil)
	state.tokens = newLexer(state).scan()
	stmts := newParser(state).parse()
	interp := newInterpreter(state, nil)
	newResolver(state, interp).resolveStmts(stmts)
	if !state.HadError() {
		t.Fatalf("expected a 'super' without a superclass error")
	}
}
