// stdlib_collections.go — length/keys (spec.md §4.6 collection builtins).
package water

var collectionsBuiltinNames = []string{"length", "keys"}

func registerCollections(scope *Scope) {
	define(scope, "length", 1, func(args []Value, loc Location) Value {
		switch args[0].Tag {
		case TagArray:
			return NumberValue(float64(len(args[0].AsArray().Elems)))
		case TagString:
			return NumberValue(float64(len(args[0].AsString())))
		case TagObject:
			return NumberValue(float64(args[0].AsObject().Len()))
		default:
			fail(TypeError, loc, "length() requires an Array, String, or Object, got %s", args[0].Tag)
			panic("unreachable")
		}
	})

	define(scope, "keys", 1, func(args []Value, loc Location) Value {
		if args[0].Tag != TagObject {
			fail(TypeError, loc, "keys() requires an Object, got %s", args[0].Tag)
		}
		ks := args[0].AsObject().Keys()
		elems := make([]Value, len(ks))
		for i, k := range ks {
			elems[i] = StringValueOf(k)
		}
		return ArrayValueOf(elems)
	})
}
