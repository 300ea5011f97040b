package water

import "testing"

func TestTokenizeArithmetic(t *testing.T) {
	tokens, errs := Tokenize("1 + 2 * 3;", "test.water")
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	wantKinds := []TokenKind{NumberLiteral, Builtin, NumberLiteral, Builtin, NumberLiteral, Builtin, EOF}
	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(wantKinds), tokens)
	}
	for i, k := range wantKinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v (%q)", i, tokens[i].Kind, k, tokens[i].Text)
		}
	}
}

func TestTokenizeNotEqualMaximalMunch(t *testing.T) {
	tokens, errs := Tokenize("a != b;", "test.water")
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	// Identifier, "!=", Identifier, ";", EOF
	if len(tokens) != 5 {
		t.Fatalf("got %d tokens, want 5: %v", len(tokens), tokens)
	}
	if tokens[1].Kind != Builtin || tokens[1].Text != "!=" {
		t.Errorf("token 1 = %+v, want Builtin \"!=\"", tokens[1])
	}
}

func TestTokenizeLoneBangIsInvalid(t *testing.T) {
	tokens, errs := Tokenize("a ! b;", "test.water")
	if len(errs) == 0 {
		t.Fatalf("expected a lex error for a lone '!', got none: %v", tokens)
	}
	foundInvalid := false
	for _, tok := range tokens {
		if tok.Kind == InvalidToken && tok.Text == "!" {
			foundInvalid = true
		}
	}
	if !foundInvalid {
		t.Errorf("expected an Invalid token for the lone '!', got %v", tokens)
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, errs := Tokenize(`"a\nb\tc\\d";`, "test.water")
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	if tokens[0].Kind != StringLiteral {
		t.Fatalf("token 0 kind = %v, want StringLiteral", tokens[0].Kind)
	}
	want := "a\nb\tc\\d"
	if tokens[0].Str != want {
		t.Errorf("decoded string = %q, want %q", tokens[0].Str, want)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, errs := Tokenize(`"abc`, "test.water")
	if len(errs) == 0 {
		t.Fatalf("expected an unterminated-string error")
	}
}

func TestTokenizeTrailingDotError(t *testing.T) {
	tokens, errs := Tokenize("1. + 2;", "test.water")
	if len(errs) == 0 {
		t.Fatalf("expected a malformed-number error for trailing '.'")
	}
	if tokens[0].Kind != NumberLiteral || tokens[0].Number != 1 {
		t.Errorf("token 0 = %+v, want NumberLiteral(1)", tokens[0])
	}
}

func TestTokenizeLineAndBlockComments(t *testing.T) {
	src := "1 # a line comment\n+ #- a block\ncomment -# 2;"
	tokens, errs := Tokenize(src, "test.water")
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	var kinds []TokenKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{NumberLiteral, Comment, Builtin, Comment, NumberLiteral, Builtin, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got kinds %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}
	if tokens[1].Text != "# a line comment" {
		t.Errorf("line comment text = %q, want %q", tokens[1].Text, "# a line comment")
	}
	if tokens[3].Text != "#- a block\ncomment -#" {
		t.Errorf("block comment text = %q, want %q", tokens[3].Text, "#- a block\ncomment -#")
	}
}

func TestTokenizeUnterminatedBlockComment(t *testing.T) {
	tokens, errs := Tokenize("1 #- never closed", "test.water")
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one unterminated-block-comment error", errs)
	}
	if tokens[0].Kind != NumberLiteral || tokens[1].Kind != Comment || tokens[2].Kind != EOF {
		t.Fatalf("tokens = %+v, want [NumberLiteral Comment EOF]", tokens)
	}
}

func TestTokenizeKeywordVsIdentifier(t *testing.T) {
	tokens, _ := Tokenize("let x = true;", "test.water")
	if tokens[0].Kind != Builtin || tokens[0].Text != "let" {
		t.Errorf("token 0 = %+v, want Builtin \"let\"", tokens[0])
	}
	if tokens[1].Kind != Identifier || tokens[1].Text != "x" {
		t.Errorf("token 1 = %+v, want Identifier \"x\"", tokens[1])
	}
	if tokens[3].Kind != Builtin || tokens[3].Text != "true" {
		t.Errorf("token 3 = %+v, want Builtin \"true\"", tokens[3])
	}
}
