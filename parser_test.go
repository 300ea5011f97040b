package water

import "testing"

func parseSource(t *testing.T, src string) (*Node, []error) {
	t.Helper()
	tokens, lexErrs := Tokenize(src, "test.water")
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	global := NewGlobalParseScope(BuiltinNames())
	return Parse(tokens, global)
}

func TestParsePrecedence(t *testing.T) {
	root, errs := parseSource(t, "1 + 2 * 3;")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(root.Children))
	}
	top := root.Children[0]
	if top.Kind != NodeBinaryOperator || top.Op != OpAdd {
		t.Fatalf("top node = %+v, want BinaryOperator(Add)", top)
	}
	if top.Left.Kind != NodeNumberLiteral || top.Left.Number != 1 {
		t.Errorf("left = %+v, want NumberLiteral(1)", top.Left)
	}
	mul := top.Right
	if mul.Kind != NodeBinaryOperator || mul.Op != OpMul {
		t.Fatalf("right = %+v, want BinaryOperator(Mul)", mul)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	root, errs := parseSource(t, "var a = 0; var b = 0; a = b = 5;")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	assign := root.Children[2]
	if assign.Kind != NodeBinaryOperator || assign.Op != OpAssign {
		t.Fatalf("assign = %+v, want BinaryOperator(Assign)", assign)
	}
	if assign.Left.Kind != NodeIdentifier || assign.Left.Name != "a" {
		t.Errorf("outer lhs = %+v, want Identifier(a)", assign.Left)
	}
	inner := assign.Right
	if inner.Kind != NodeBinaryOperator || inner.Op != OpAssign || inner.Left.Name != "b" {
		t.Errorf("inner assignment = %+v, want Assign(b = 5)", inner)
	}
}

func TestParseRedeclarationIsAnError(t *testing.T) {
	_, errs := parseSource(t, "let a = 1; let a = 2;")
	if len(errs) == 0 {
		t.Fatalf("expected a redeclaration error")
	}
}

func TestParseAssignToConstIsAnError(t *testing.T) {
	_, errs := parseSource(t, "let a = 1; a = 2;")
	if len(errs) == 0 {
		t.Fatalf("expected an assign-to-constant error")
	}
}

func TestParseBreakOutsideLoopIsAnError(t *testing.T) {
	_, errs := parseSource(t, "break;")
	if len(errs) == 0 {
		t.Fatalf("expected a break-outside-loop error")
	}
}

func TestParseBreakInsideLoopIsFine(t *testing.T) {
	_, errs := parseSource(t, "while (true) { break; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
}

func TestParseUndeclaredIdentifierIsAnError(t *testing.T) {
	_, errs := parseSource(t, "x;")
	if len(errs) == 0 {
		t.Fatalf("expected an undeclared-identifier error")
	}
}

func TestParseFunctionLiteralAndCall(t *testing.T) {
	root, errs := parseSource(t, "let add = func(a, b) { return a + b; }; add(1, 2);")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	decl := root.Children[0]
	if decl.Kind != NodeDeclaration || decl.Name != "add" {
		t.Fatalf("decl = %+v, want Declaration(add)", decl)
	}
	fn := decl.Right
	if fn.Kind != NodeFunctionDeclaration {
		t.Fatalf("fn = %+v, want FunctionDeclaration", fn)
	}
	if len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
		t.Errorf("params = %v, want [a b]", fn.Params)
	}
	call := root.Children[1]
	if call.Kind != NodeFunctionCall || call.Left.Name != "add" || len(call.Children) != 2 {
		t.Errorf("call = %+v, want FunctionCall(add, 2 args)", call)
	}
}

func TestParseArrayAndObjectLiterals(t *testing.T) {
	root, errs := parseSource(t, `let arr = [1, 2, 3]; let obj = { a: 1, b: 2 };`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	arr := root.Children[0].Right
	if arr.Kind != NodeArrayLiteral || len(arr.Children) != 3 {
		t.Fatalf("arr = %+v, want ArrayLiteral of 3", arr)
	}
	obj := root.Children[1].Right
	if obj.Kind != NodeObjectLiteral || len(obj.Keys) != 2 || obj.Keys[0] != "a" || obj.Keys[1] != "b" {
		t.Fatalf("obj = %+v, want ObjectLiteral{a, b}", obj)
	}
}

func TestParseForLoopHeader(t *testing.T) {
	root, errs := parseSource(t, "let xs = [1, 2]; for (let x : xs) { println(x); }")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	forNode := root.Children[1]
	if forNode.Kind != NodeForStatement || forNode.Name != "x" {
		t.Fatalf("forNode = %+v, want ForStatement(x)", forNode)
	}
}
