package internal

import "testing"

func scanSource(t *testing.T, source string) ([]token, *interpreterState) {
	state := newInterpreterState(source, nil)
	lx := newLexer(state)
	tokens := lx.scan()
	return tokens, state
}

func TestLexerSingleAndDoubleCharTokens(t *testing.T) {
	tokens, state := scanSource(t, "!= == <= >= ! < > = + - * /")
	if state.HadError() {
		t.Fatalf("unexpected lex errors: %v", state.errors)
	}

	want := []tokenType{
		tkBangEqual, tkEqualEqual, tkLessEqual, tkGreaterEqual,
		tkBang, tkLess, tkGreater, tkEqual,
		tkPlus, tkMinus, tkStar, tkSlash, tkEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].kind != k {
			t.Errorf("token %d: got kind %d, want %d (lexeme %q)", i, tokens[i].kind, k, tokens[i].lexeme)
		}
	}
}

func TestLexerTwoCharTokensConsumeBothChars(t *testing.T) {
	tokens, state := scanSource(t, "a != b")
	if state.HadError() {
		t.Fatalf("unexpected lex errors: %v", state.errors)
	}
	// identifier, !=, identifier, EOF
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(tokens), tokens)
	}
	if tokens[1].kind != tkBangEqual || tokens[1].lexeme != "!=" {
		t.Errorf("got %+v, want a bangEqual token with lexeme '!='", tokens[1])
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	tokens, state := scanSource(t, "class fun var hello")
	if state.HadError() {
		t.Fatalf("unexpected lex errors: %v", state.errors)
	}
	want := []tokenType{tkClass, tkFun, tkVar, tkIdentifier, tkEOF}
	for i, k := range want {
		if tokens[i].kind != k {
			t.Errorf("token %d: got kind %d, want %d", i, tokens[i].kind, k)
		}
	}
}

func TestLexerStringAndNumberLiterals(t *testing.T) {
	tokens, state := scanSource(t, `"hi" 3.5`)
	if state.HadError() {
		t.Fatalf("unexpected lex errors: %v", state.errors)
	}
	if tokens[0].kind != tkString || tokens[0].literal != "hi" {
		t.Errorf("got %+v, want string literal 'hi'", tokens[0])
	}
	if tokens[1].kind != tkNumber || tokens[1].literal != 3.5 {
		t.Errorf("got %+v, want number literal 3.5", tokens[1])
	}
}

func TestLexerUnterminatedStringReportsError(t *testing.T) {
	_, state := scanSource(t, `"unterminated`)
	if !state.HadError() {
		t.Fatalf("expected an unterminated string error")
	}
}

func TestLexerLineCommentsAreIgnored(t *testing.T) {
	tokens, state := scanSource(t, "1 // comment\n2")
	if state.HadError() {
		t.Fatalf("unexpected lex errors: %v", state.errors)
	}
	if len(tokens) != 3 || tokens[0].literal != 1.0 || tokens[1].literal != 2.0 {
		t.Fatalf("got %+v, want two numbers and EOF", tokens)
	}
	if tokens[1].line != 2 {
		t.Errorf("got line %d for second token, want 2", tokens[1].line)
	}
}
