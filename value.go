// value.go — the runtime Value variant (spec.md §3 Data Model).
//
// Null/Boolean/Number are copied on assignment; String/Array/Object/Function
// are reference types, shared by every Value that holds them. As with
// Node, this is a tagged struct rather than an interface hierarchy: spec.md
// §9 prescribes the same tradeoff for values as for AST nodes. Grounded on
// daios-ai-msg's types.go Value{Tag, Data} shape, generalized to the
// closed Null/Boolean/Number/String/Array/Object/Function set spec.md's
// Data Model names (the teacher's richer type-lattice Tag set is trimmed
// down since Water has no structural type system, per spec.md's Non-goals).
package water

import "github.com/iancoleman/orderedmap"

// ValueTag discriminates the Value variant.
type ValueTag int

const (
	TagNull ValueTag = iota
	TagBoolean
	TagNumber
	TagString
	TagArray
	TagObject
	TagFunction
)

func (t ValueTag) String() string {
	switch t {
	case TagNull:
		return "Null"
	case TagBoolean:
		return "Boolean"
	case TagNumber:
		return "Number"
	case TagString:
		return "String"
	case TagArray:
		return "Array"
	case TagObject:
		return "Object"
	case TagFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Value is a single Water runtime value.
type Value struct {
	Tag ValueTag

	boolean bool
	number  float64

	// str, arr, obj, fn are shared by reference: copying a Value that holds
	// one of them does not duplicate the underlying storage. str holds the
	// *StringValue box; Water strings are immutable so they never strictly
	// need the indirection, but it keeps Value's zero-allocation comparison
	// (==) meaningful only for comparing identity, never content — callers
	// must use StructuralEquals.
	str *StringValue
	arr *ArrayValue
	obj *ObjectValue
	fn  *FunctionValue
}

// StringValue boxes an immutable Go string so two Values can share one
// underlying allocation and so reference_equals() (spec.md §4.6) has an
// identity to compare.
type StringValue struct {
	S string
}

// ArrayValue is a mutable, reference-shared, growable sequence of Values.
type ArrayValue struct {
	Elems []Value
}

// ObjectValue is a mutable, reference-shared string-keyed map of Values that
// preserves insertion order (spec.md §3: objects are not test-observable for
// order, but the teacher's ecosystem choice for ordered maps is carried
// through regardless since it costs nothing and matches how the original
// implementation's object behaves under iteration/printing).
type ObjectValue struct {
	m *orderedmap.OrderedMap
}

// NewObjectValue creates an empty object.
func NewObjectValue() *ObjectValue {
	return &ObjectValue{m: orderedmap.New()}
}

func (o *ObjectValue) Get(key string) (Value, bool) {
	raw, ok := o.m.Get(key)
	if !ok {
		return Value{}, false
	}
	return raw.(Value), true
}

func (o *ObjectValue) Set(key string, v Value) {
	o.m.Set(key, v)
}

func (o *ObjectValue) Delete(key string) {
	o.m.Delete(key)
}

func (o *ObjectValue) Keys() []string {
	return o.m.Keys()
}

func (o *ObjectValue) Len() int {
	return len(o.m.Keys())
}

// FunctionValue is either a user-defined closure or a native builtin.
type FunctionValue struct {
	Name   string
	Params []string

	// Body/Closure are set for user-defined functions.
	Body    *Node
	Closure *Scope

	// Native is set for builtins; it receives already-evaluated arguments
	// and the call-site Location for error reporting.
	Native func(args []Value, loc Location) Value

	// Variadic native builtins (e.g. bind, compose) may accept any argument
	// count; ArgCount < 0 means "not fixed", skipping the
	// InvalidArgumentCount arity check the evaluator otherwise performs.
	ArgCount int
}

func (f *FunctionValue) IsNative() bool { return f.Native != nil }

// NullValue is the single Null value.
var NullValue = Value{Tag: TagNull}

func BoolValue(b bool) Value   { return Value{Tag: TagBoolean, boolean: b} }
func NumberValue(n float64) Value { return Value{Tag: TagNumber, number: n} }
func StringValueOf(s string) Value {
	return Value{Tag: TagString, str: &StringValue{S: s}}
}
func ArrayValueOf(elems []Value) Value {
	return Value{Tag: TagArray, arr: &ArrayValue{Elems: elems}}
}
func ObjectValueOf(o *ObjectValue) Value {
	return Value{Tag: TagObject, obj: o}
}
func FunctionValueOf(f *FunctionValue) Value {
	return Value{Tag: TagFunction, fn: f}
}

func (v Value) IsNull() bool   { return v.Tag == TagNull }
func (v Value) AsBool() bool   { return v.boolean }
func (v Value) AsNumber() float64 { return v.number }
func (v Value) AsString() string  { return v.str.S }
func (v Value) AsArray() *ArrayValue     { return v.arr }
func (v Value) AsObject() *ObjectValue   { return v.obj }
func (v Value) AsFunction() *FunctionValue { return v.fn }

// Truthy implements the boolean-coercion rule of the unary `not` operator:
// only `false` and `null` are falsy, every other value — including 0 and
// "" — is truthy. If/while conditions and `and`/`or` operands do not use it;
// they require a Boolean (requireBoolean in evaluator_ops.go).
func (v Value) Truthy() bool {
	switch v.Tag {
	case TagNull:
		return false
	case TagBoolean:
		return v.boolean
	default:
		return true
	}
}

// ReferenceEquals reports whether a and b are the same underlying storage,
// backing the reference_equals() builtin (spec.md §4.6). Value-type tags
// (Null/Boolean/Number) compare by value since they have no separate
// identity; it is always true that a value-typed Value reference_equals an
// equal copy of itself.
func ReferenceEquals(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNull:
		return true
	case TagBoolean:
		return a.boolean == b.boolean
	case TagNumber:
		return a.number == b.number
	case TagString:
		return a.str == b.str
	case TagArray:
		return a.arr == b.arr
	case TagObject:
		return a.obj == b.obj
	case TagFunction:
		return a.fn == b.fn
	default:
		return false
	}
}

// StructuralEquals implements == / != (spec.md §4.5): Null/Boolean/Number/
// String compare by value; Array/Object/Function compare by identity (two
// distinct arrays with equal contents are not ==).
func StructuralEquals(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagString:
		return a.str.S == b.str.S
	default:
		return ReferenceEquals(a, b)
	}
}
