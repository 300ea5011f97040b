// stdlib.go — the standard library registration entry point (spec.md
// §4.6).
//
// The builtin library is a small, closed, fixed surface: IO, introspection,
// collection helpers, math, and functional combinators. Builtins are native
// Go closures wrapped in a FunctionValue, following the teacher's
// RegisterNative/un1-style registration idiom (daios-ai-msg's
// builtin_misc.go un1/bin helpers): define() below is the generalized
// equivalent, adapted to Water's simpler (type-system-free) argument model.
package water

import (
	"bufio"
	"io"
)

// define creates a native FunctionValue and binds it as a constant in
// scope. argCount < 0 means variable arity (the evaluator skips the arity
// check and the builtin validates its own argument count).
func define(scope *Scope, name string, argCount int, fn func(args []Value, loc Location) Value) {
	scope.Define(name, FunctionValueOf(&FunctionValue{Name: name, Native: fn, ArgCount: argCount}), true)
}

func defineConst(scope *Scope, name string, v Value) {
	scope.Define(name, v, true)
}

// BuiltinNames lists every standard-library name the parser must recognize
// as pre-declared in the global ParseScope, so programs may reference them
// without a `let`/`var` declaration of their own (spec.md §4.6).
func BuiltinNames() []string {
	var names []string
	names = append(names, ioBuiltinNames...)
	names = append(names, introspectionBuiltinNames...)
	names = append(names, collectionsBuiltinNames...)
	names = append(names, mathBuiltinNames...)
	names = append(names, functionalBuiltinNames...)
	return names
}

// RegisterStdlib defines every builtin into global. stdout/stdin back the
// IO builtins (print/println/read/readln); the CLI driver (cmd/water)
// passes os.Stdout and a buffered os.Stdin, while tests can substitute an
// in-memory buffer and string reader.
func RegisterStdlib(global *Scope, stdout io.Writer, stdin *bufio.Reader) {
	registerIO(global, stdout, stdin)
	registerIntrospection(global)
	registerCollections(global)
	registerMath(global)
	registerFunctional(global)
}
