package water

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func runSource(src string) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	opts := Options{
		Stdout: &outBuf,
		Stderr: &errBuf,
		Stdin:  bufio.NewReader(strings.NewReader("")),
	}
	code = Run(src, "test.water", opts)
	return outBuf.String(), errBuf.String(), code
}

func TestRunSuccessExitsZero(t *testing.T) {
	out, errOut, code := runSource(`println("hi");`)
	if code != 0 {
		t.Errorf("code = %d, want 0 (stderr: %s)", code, errOut)
	}
	if out != "hi\n" {
		t.Errorf("stdout = %q, want %q", out, "hi\n")
	}
	if errOut != "" {
		t.Errorf("stderr = %q, want empty", errOut)
	}
}

func TestRunLexErrorExitsNegativeOne(t *testing.T) {
	_, errOut, code := runSource(`let x = "unterminated;`)
	if code != -1 {
		t.Errorf("code = %d, want -1", code)
	}
	if !strings.HasPrefix(errOut, "ERROR ") {
		t.Errorf("stderr = %q, want it to start with \"ERROR \"", errOut)
	}
}

func TestRunParseErrorExitsNegativeOne(t *testing.T) {
	_, errOut, code := runSource(`let x = ;`)
	if code != -1 {
		t.Errorf("code = %d, want -1", code)
	}
	if !strings.Contains(errOut, "ERROR") {
		t.Errorf("stderr = %q, want an ERROR diagnostic", errOut)
	}
}

func TestRunRuntimeErrorExitsNegativeOne(t *testing.T) {
	_, errOut, code := runSource(`let xs = [1]; println(xs[9]);`)
	if code != -1 {
		t.Errorf("code = %d, want -1", code)
	}
	if !strings.Contains(errOut, "OutOfBounds") {
		t.Errorf("stderr = %q, want an OutOfBounds diagnostic", errOut)
	}
}

func TestRunIgnoreErrorsStillEvaluates(t *testing.T) {
	// A harmless trailing comment typo (unterminated block comment) is a lex
	// error, but the statements before it should still run under
	// --ignore-errors.
	src := "println(1 + 1); #- oops"
	var outBuf, errBuf bytes.Buffer
	opts := Options{
		IgnoreErrors: true,
		Stdout:       &outBuf,
		Stderr:       &errBuf,
		Stdin:        bufio.NewReader(strings.NewReader("")),
	}
	code := Run(src, "test.water", opts)
	if outBuf.String() != "2\n" {
		t.Errorf("stdout = %q, want %q", outBuf.String(), "2\n")
	}
	if code != -1 {
		t.Errorf("code = %d, want -1 (errors were reported even though ignored for evaluation)", code)
	}
}

func TestRunPrintTokensAndAST(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	opts := Options{
		PrintTokens: true,
		PrintAST:    true,
		Stdout:      &outBuf,
		Stderr:      &errBuf,
		Stdin:       bufio.NewReader(strings.NewReader("")),
	}
	code := Run(`println(1);`, "test.water", opts)
	if code != 0 {
		t.Fatalf("code = %d, want 0 (stderr: %s)", code, errBuf.String())
	}
	if !strings.Contains(outBuf.String(), "NumberLiteral") {
		t.Errorf("expected token dump to mention NumberLiteral, got %q", outBuf.String())
	}
	if !strings.Contains(outBuf.String(), "FunctionCall") {
		t.Errorf("expected AST dump to mention FunctionCall, got %q", outBuf.String())
	}
}

func TestSessionPersistsDeclarationsAcrossLines(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	session := NewSession(&outBuf, &errBuf, bufio.NewReader(strings.NewReader("")))
	if !session.EvalLine("let x = 41;") {
		t.Fatalf("unexpected failure evaluating declaration: %s", errBuf.String())
	}
	if !session.EvalLine("println(x + 1);") {
		t.Fatalf("unexpected failure evaluating reference: %s", errBuf.String())
	}
	if outBuf.String() != "42\n" {
		t.Errorf("stdout = %q, want %q", outBuf.String(), "42\n")
	}
}
