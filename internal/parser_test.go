package internal

import "testing"

func parseSource(t *testing.T, source string) ([]stmt, *interpreterState) {
	t.Helper()
	state := newInterpreterState(source, nil)
	state.tokens = newLexer(state).scan()
	if state.HadError() {
		t.Fatalf("lex errors: %v", state.errors)
	}
	return newParser(state).parse(), state
}

func TestParserDesugarsForIntoWhile(t *testing.T) {
	stmts, state := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if state.HadError() {
		t.Fatalf("unexpected parse errors: %v", state.errors)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	block, ok := stmts[0].(*blockStmt)
	if !ok {
		t.Fatalf("expected a block wrapping the initializer, got %T", stmts[0])
	}
	if len(block.statements) != 2 {
		t.Fatalf("expected initializer + while, got %d statements", len(block.statements))
	}
	if _, ok := block.statements[0].(*varStmt); !ok {
		t.Errorf("expected first statement to be the initializer varStmt, got %T", block.statements[0])
	}
	whileS, ok := block.statements[1].(*whileStmt)
	if !ok {
		t.Fatalf("expected second statement to be a whileStmt, got %T", block.statements[1])
	}
	bodyBlock, ok := whileS.body.(*blockStmt)
	if !ok {
		t.Fatalf("expected while body to be a block wrapping body+increment, got %T", whileS.body)
	}
	if len(bodyBlock.statements) != 2 {
		t.Errorf("expected body + increment, got %d statements", len(bodyBlock.statements))
	}
}

func TestParserClassWithSuperclassAndMethods(t *testing.T) {
	stmts, state := parseSource(t, `
		class Animal {
			speak() { return "..."; }
		}
		class Dog < Animal {
			speak() { return "Woof"; }
		}
	`)
	if state.HadError() {
		t.Fatalf("unexpected parse errors: %v", state.errors)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected two class declarations, got %d", len(stmts))
	}
	dog, ok := stmts[1].(*classStmt)
	if !ok {
		t.Fatalf("expected classStmt, got %T", stmts[1])
	}
	if dog.superclass == nil || dog.superclass.name.lexeme != "Animal" {
		t.Errorf("expected Dog's superclass to be Animal, got %+v", dog.superclass)
	}
	if len(dog.methods) != 1 || dog.methods[0].name.lexeme != "speak" {
		t.Errorf("expected a single 'speak' method, got %+v", dog.methods)
	}
}

func TestParserAssignmentTargetReinterpretation(t *testing.T) {
	stmts, state := parseSource(t, "a.b = 1;")
	if state.HadError() {
		t.Fatalf("unexpected parse errors: %v", state.errors)
	}
	es := stmts[0].(*expressionStmt)
	if _, ok := es.expression.(*setExpr); !ok {
		t.Fatalf("expected a setExpr, got %T", es.expression)
	}
}

func TestParserInvalidAssignmentTargetIsAnError(t *testing.T) {
	_, state := parseSource(t, "1 + 2 = 3;")
	if !state.HadError() {
		t.Fatalf("expected an invalid assignment target error")
	}
}

func TestParserSynchronizeRecoversAtNextSemicolon(t *testing.T) {
	stmts, state := parseSource(t, "print ;\nvar b = 2;")
	if !state.HadError() {
		t.Fatalf("expected a missing-expression error")
	}
	// synchronize consumes through the ';' that triggered the error,
	// leaving the next statement intact for declaration() to parse.
	found := false
	for _, s := range stmts {
		if v, ok := s.(*varStmt); ok && v.name.lexeme == "b" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected parser to recover and still parse 'var b = 2;', got %+v", stmts)
	}
}
