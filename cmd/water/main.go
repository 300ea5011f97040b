// Command water is the Water language CLI driver (spec.md §6): it runs a
// source file, a -r/--run string, or stdin, optionally dumping tokens/AST
// along the way.
//
// Flag parsing follows podhmo-go-scan's pflag usage; the interactive
// fallback (stdin attached to a terminal, no file or -r given) uses
// peterh/liner for line editing, the same library daios-ai-msg's
// cmd/msg/main.go reaches for in its own REPL.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	water "github.com/embooglement/water"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		runString    = flag.StringP("run", "r", "", "run the given string as a Water program instead of a file")
		printTokens  = flag.BoolP("print-tokens", "t", false, "print the token stream before running")
		printAST     = flag.BoolP("print-ast", "a", false, "print the parsed AST before running")
		ignoreErrors = flag.BoolP("ignore-errors", "E", false, "evaluate even if lexing/parsing reported errors")
	)
	// --pt / --pa are long-form aliases matching spec.md §6's flag names.
	// pflag shorthands are limited to a single rune (-t/-a, registered
	// above), so the single-dash -pt / -pa spellings are rewritten to
	// --pt / --pa before parsing.
	flag.CommandLine.BoolVarP(printTokens, "pt", "", false, "alias for --print-tokens")
	flag.CommandLine.BoolVarP(printAST, "pa", "", false, "alias for --print-ast")
	cliArgs := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if a == "-pt" || a == "-pa" {
			a = "-" + a
		}
		cliArgs = append(cliArgs, a)
	}
	_ = flag.CommandLine.Parse(cliArgs)

	opts := water.Options{
		IgnoreErrors: *ignoreErrors,
		PrintTokens:  *printTokens,
		PrintAST:     *printAST,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Stdin:        bufio.NewReader(os.Stdin),
	}

	if *runString != "" {
		return water.Run(*runString, "<string>", opts)
	}

	if args := flag.Args(); len(args) > 0 {
		path := args[0]
		contents, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: could not read %s: %v\n", path, err)
			return -1
		}
		return water.Run(string(contents), path, opts)
	}

	if isTerminal(os.Stdin) {
		return runREPL(opts)
	}

	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not read stdin: %v\n", err)
		return -1
	}
	return water.Run(string(contents), "<stdin>", opts)
}

// runREPL drives an interactive session via liner: each line is lexed,
// parsed, and evaluated immediately against a persistent environment
// (water.Session), and its result is printed when non-null.
func runREPL(opts water.Options) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	session := water.NewSession(opts.Stdout, opts.Stderr, opts.Stdin)
	exitCode := 0
	for {
		text, err := line.Prompt("water> ")
		if err != nil { // io.EOF or liner.ErrPromptAborted
			return exitCode
		}
		line.AppendHistory(text)
		if !session.EvalLine(text) {
			exitCode = -1
		}
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
