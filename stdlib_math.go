// stdlib_math.go — the PI/E constants and the fixed math function set
// (spec.md §4.6), grounded on daios-ai-msg's builtin_misc.go math section,
// which registers the same one-argument-math-function-to-native-closure
// pattern via its un1() helper.
package water

import "math"

var mathBuiltinNames = []string{
	"PI", "E",
	"abs", "sqrt", "floor", "ceil", "round",
	"sin", "cos", "tan", "log", "exp", "min", "max",
}

func registerMath(scope *Scope) {
	defineConst(scope, "PI", NumberValue(math.Pi))
	defineConst(scope, "E", NumberValue(math.E))

	unary := func(name string, f func(float64) float64) {
		define(scope, name, 1, func(args []Value, loc Location) Value {
			if args[0].Tag != TagNumber {
				fail(TypeError, loc, "%s() requires a Number, got %s", name, args[0].Tag)
			}
			return NumberValue(f(args[0].AsNumber()))
		})
	}

	unary("abs", math.Abs)
	unary("sqrt", math.Sqrt)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("round", math.Round)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("log", math.Log)
	unary("exp", math.Exp)

	define(scope, "min", 2, func(args []Value, loc Location) Value {
		if args[0].Tag != TagNumber || args[1].Tag != TagNumber {
			fail(TypeError, loc, "min() requires two Numbers")
		}
		return NumberValue(math.Min(args[0].AsNumber(), args[1].AsNumber()))
	})
	define(scope, "max", 2, func(args []Value, loc Location) Value {
		if args[0].Tag != TagNumber || args[1].Tag != TagNumber {
			fail(TypeError, loc, "max() requires two Numbers")
		}
		return NumberValue(math.Max(args[0].AsNumber(), args[1].AsNumber()))
	})
}
