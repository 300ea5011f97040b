// stdlib_io.go — print/println/read/readln (spec.md §4.6 IO builtins).
package water

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var ioBuiltinNames = []string{"print", "println", "read", "readln"}
var introspectionBuiltinNames = []string{"reference_equals"}

func registerIO(scope *Scope, stdout io.Writer, stdin *bufio.Reader) {
	define(scope, "print", -1, func(args []Value, loc Location) Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = Stringify(a)
		}
		fmt.Fprint(stdout, strings.Join(parts, " "))
		return NullValue
	})

	define(scope, "println", -1, func(args []Value, loc Location) Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = Stringify(a)
		}
		fmt.Fprintln(stdout, strings.Join(parts, " "))
		return NullValue
	})

	define(scope, "read", 0, func(args []Value, loc Location) Value {
		b, err := stdin.ReadByte()
		if err != nil {
			return NullValue
		}
		return StringValueOf(string(b))
	})

	define(scope, "readln", 0, func(args []Value, loc Location) Value {
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return NullValue
		}
		return StringValueOf(strings.TrimRight(line, "\r\n"))
	})
}

func registerIntrospection(scope *Scope) {
	define(scope, "reference_equals", 2, func(args []Value, loc Location) Value {
		return BoolValue(ReferenceEquals(args[0], args[1]))
	})
}
