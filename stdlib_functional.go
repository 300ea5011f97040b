// stdlib_functional.go — id/constant/bind/compose (spec.md §4.6 functional
// combinator builtins).
package water

import "strings"

var functionalBuiltinNames = []string{"id", "constant", "bind", "compose"}

func registerFunctional(scope *Scope) {
	define(scope, "id", 1, func(args []Value, loc Location) Value {
		return args[0]
	})

	define(scope, "constant", 1, func(args []Value, loc Location) Value {
		captured := args[0]
		return FunctionValueOf(&FunctionValue{
			Name:     "constant(...)",
			ArgCount: -1,
			Native: func(_ []Value, _ Location) Value {
				return captured
			},
		})
	})

	// bind(f, a...) partially applies f's leading arguments, returning a
	// function of f's remaining arguments.
	define(scope, "bind", -1, func(args []Value, loc Location) Value {
		if len(args) < 1 {
			fail(InvalidArgumentCount, loc, "bind expects at least 1 argument(s), got %d", len(args))
		}
		fnVal, bound := args[0], args[1:]
		if fnVal.Tag != TagFunction {
			fail(TypeError, loc, "bind() requires a Function as its first argument, got %s", fnVal.Tag)
		}
		fn := fnVal.AsFunction()
		return FunctionValueOf(&FunctionValue{
			Name:     "bind(" + fn.Name + ", ...)",
			ArgCount: -1,
			Native: func(rest []Value, callLoc Location) Value {
				full := append(append([]Value{}, bound...), rest...)
				return ApplyFunction(fn, full, callLoc)
			},
		})
	})

	// compose(f, g, ...) returns a one-argument function that applies its
	// functions right to left: compose(f, g)(x) is f(g(x)).
	define(scope, "compose", -1, func(args []Value, loc Location) Value {
		if len(args) < 1 {
			fail(InvalidArgumentCount, loc, "compose expects at least 1 argument(s), got %d", len(args))
		}
		fns := make([]*FunctionValue, len(args))
		names := make([]string, len(args))
		for i, a := range args {
			if a.Tag != TagFunction {
				fail(TypeError, loc, "compose() requires Functions, got %s", a.Tag)
			}
			fns[i] = a.AsFunction()
			names[i] = fns[i].Name
		}
		return FunctionValueOf(&FunctionValue{
			Name:     "compose(" + strings.Join(names, ", ") + ")",
			ArgCount: 1,
			Native: func(callArgs []Value, callLoc Location) Value {
				result := ApplyFunction(fns[len(fns)-1], callArgs, callLoc)
				for i := len(fns) - 2; i >= 0; i-- {
					result = ApplyFunction(fns[i], []Value{result}, callLoc)
				}
				return result
			},
		})
	})
}
