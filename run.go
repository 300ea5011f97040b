// run.go — orchestration tying lexer, parser, and evaluator together for
// driver use (spec.md §6, §7).
//
// Run implements the static-vs-runtime error policy: lex/parse diagnostics
// are collected and printed, and evaluation is skipped unless there were
// none (or the caller passed IgnoreErrors, matching the CLI's
// -E/--ignore-errors flag) — mirroring original_source/source/main.cpp's
// tokenize -> check error count -> parse -> check error count -> evaluate
// flow.
package water

import (
	"bufio"
	"fmt"
	"io"
)

// Options configures one Run call.
type Options struct {
	IgnoreErrors bool
	PrintTokens  bool
	PrintAST     bool

	Stdout io.Writer
	Stderr io.Writer
	Stdin  *bufio.Reader
}

// Run lexes, parses, and (if error-free or IgnoreErrors is set) evaluates
// source attributed to filename. It returns the process exit code spec.md
// §6 mandates: 0 on success, -1 if any diagnostic was ever emitted.
func Run(source, filename string, opts Options) int {
	tokens, lexErrs := Tokenize(source, filename)
	if opts.PrintTokens {
		fmt.Fprint(opts.Stdout, DumpTokens(tokens))
	}

	globalParse := NewGlobalParseScope(BuiltinNames())
	program, parseErrs := Parse(tokens, globalParse)

	for _, e := range lexErrs {
		fmt.Fprintln(opts.Stderr, FormatDiagnostic(e))
	}
	for _, e := range parseErrs {
		fmt.Fprintln(opts.Stderr, FormatDiagnostic(e))
	}

	if opts.PrintAST {
		fmt.Fprint(opts.Stdout, DumpAST(program))
	}

	hadStaticErrors := len(lexErrs) > 0 || len(parseErrs) > 0
	if hadStaticErrors && !opts.IgnoreErrors {
		return -1
	}

	global := NewGlobalScope()
	RegisterStdlib(global, opts.Stdout, opts.Stdin)

	if _, err := Evaluate(program, global); err != nil {
		fmt.Fprintln(opts.Stderr, FormatDiagnostic(err))
		return -1
	}

	if hadStaticErrors {
		return -1
	}
	return 0
}

// Session is a persistent interpreter state used by the CLI's interactive
// REPL (cmd/water/main.go): each line is lexed/parsed/evaluated against the
// same ParseScope/Scope pair, so a `let`/`var` declared on one line is
// visible on the next, matching how original_source/source/main.cpp's
// interactive mode behaves.
type Session struct {
	parseScope *ParseScope
	scope      *Scope
	stdout     io.Writer
	stderr     io.Writer
}

// NewSession creates a REPL session with the standard library already
// registered.
func NewSession(stdout, stderr io.Writer, stdin *bufio.Reader) *Session {
	parseScope := NewGlobalParseScope(BuiltinNames())
	scope := NewGlobalScope()
	RegisterStdlib(scope, stdout, stdin)
	return &Session{parseScope: parseScope, scope: scope, stdout: stdout, stderr: stderr}
}

// EvalLine lexes, parses, and evaluates one line of input in place against
// the session's persistent scopes. It reports diagnostics to s.stderr and
// returns false if the line produced any error (lexical, parse, or
// runtime) so the REPL loop can track an overall exit status.
func (s *Session) EvalLine(line string) bool {
	tokens, lexErrs := Tokenize(line, "<repl>")
	for _, e := range lexErrs {
		fmt.Fprintln(s.stderr, FormatDiagnostic(e))
	}
	if len(lexErrs) > 0 {
		return false
	}

	program, parseErrs := Parse(tokens, s.parseScope)
	for _, e := range parseErrs {
		fmt.Fprintln(s.stderr, FormatDiagnostic(e))
	}
	if len(parseErrs) > 0 {
		return false
	}

	result, err := Evaluate(program, s.scope)
	if err != nil {
		fmt.Fprintln(s.stderr, FormatDiagnostic(err))
		return false
	}
	if !result.IsNull() {
		fmt.Fprintln(s.stdout, Stringify(result))
	}
	return true
}
