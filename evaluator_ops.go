// evaluator_ops.go — operator semantics, lvalue assignment, and function
// calls (spec.md §4.5).
package water

import "math"

func evalArrayLiteral(n *Node, scope *Scope) Value {
	elems := make([]Value, len(n.Children))
	for i, c := range n.Children {
		elems[i] = eval(c, scope)
	}
	return ArrayValueOf(elems)
}

func evalObjectLiteral(n *Node, scope *Scope) Value {
	obj := NewObjectValue()
	for i, c := range n.Children {
		obj.Set(n.Keys[i], eval(c, scope))
	}
	return ObjectValueOf(obj)
}

func evalSubscript(n *Node, scope *Scope) Value {
	base := eval(n.Left, scope)
	index := eval(n.Right, scope)
	return subscriptGet(base, index, n.Location)
}

func subscriptGet(base, index Value, loc Location) Value {
	switch base.Tag {
	case TagArray:
		if index.Tag != TagNumber {
			fail(TypeError, loc, "array index must be a Number, got %s", index.Tag)
		}
		elems := base.AsArray().Elems
		i := int(index.AsNumber())
		if i < 0 || i >= len(elems) {
			fail(OutOfBounds, loc, "array index %d out of bounds (length %d)", i, len(elems))
		}
		return elems[i]
	case TagObject:
		key := objectKey(index, loc)
		v, ok := base.AsObject().Get(key)
		if !ok {
			return NullValue
		}
		return v
	case TagString:
		if index.Tag != TagNumber {
			fail(TypeError, loc, "string index must be a Number, got %s", index.Tag)
		}
		s := base.AsString()
		i := int(index.AsNumber())
		if i < 0 || i >= len(s) {
			fail(OutOfBounds, loc, "string index %d out of bounds (length %d)", i, len(s))
		}
		return StringValueOf(string(s[i]))
	default:
		fail(TypeError, loc, "cannot subscript a %s", base.Tag)
		panic("unreachable")
	}
}

// objectKey implements spec.md §4.5 Object's subscript coercion: a String
// index is used as-is, a Number index is coerced to its string
// representation, anything else is a TypeError.
func objectKey(index Value, loc Location) string {
	switch index.Tag {
	case TagString:
		return index.AsString()
	case TagNumber:
		return Stringify(index)
	default:
		fail(TypeError, loc, "object key must be a String or Number, got %s", index.Tag)
		panic("unreachable")
	}
}

func evalAccessMember(n *Node, scope *Scope) Value {
	base := eval(n.Left, scope)
	return accessMemberGet(base, n.Name, n.Location)
}

func accessMemberGet(base Value, name string, loc Location) Value {
	switch base.Tag {
	case TagObject:
		v, ok := base.AsObject().Get(name)
		if !ok {
			return NullValue
		}
		return v
	case TagArray:
		switch name {
		case "length":
			return NumberValue(float64(len(base.AsArray().Elems)))
		case "push":
			return arrayPushMethod(base.AsArray())
		}
		fail(InvalidProperty, loc, "array has no member %q", name)
	case TagString:
		if name == "length" {
			return NumberValue(float64(len(base.AsString())))
		}
		fail(InvalidProperty, loc, "string has no member %q", name)
	}
	fail(TypeError, loc, "cannot access member %q of a %s", name, base.Tag)
	panic("unreachable")
}

// arrayPushMethod binds arr.push(...) to a native function value that
// appends its arguments to arr in place and returns the array's new length
// (spec.md §4.5 Array: "Member access exposes read-only length and a method
// push that appends its arguments").
func arrayPushMethod(arr *ArrayValue) Value {
	return FunctionValueOf(&FunctionValue{
		Name:     "push",
		ArgCount: -1,
		Native: func(args []Value, loc Location) Value {
			arr.Elems = append(arr.Elems, args...)
			return NumberValue(float64(len(arr.Elems)))
		},
	})
}

func evalBinaryOperator(n *Node, scope *Scope) Value {
	if n.Op.IsAssignOp() {
		return evalAssignment(n, scope)
	}
	switch n.Op {
	case OpAnd:
		left := requireBoolean(eval(n.Left, scope), n.Location)
		if !left {
			return BoolValue(false)
		}
		return BoolValue(requireBoolean(eval(n.Right, scope), n.Location))
	case OpOr:
		left := requireBoolean(eval(n.Left, scope), n.Location)
		if left {
			return BoolValue(true)
		}
		return BoolValue(requireBoolean(eval(n.Right, scope), n.Location))
	}

	left := eval(n.Left, scope)
	right := eval(n.Right, scope)

	switch n.Op {
	case OpEqual:
		return BoolValue(StructuralEquals(left, right))
	case OpNotEqual:
		return BoolValue(!StructuralEquals(left, right))
	}

	return arithmeticOrComparison(n.Op, left, right, n.Location)
}

// requireBoolean implements spec.md's strict toBoolean coercion rule (Design
// Notes: "toBoolean ... strict ... throw TypeError when the value's kind
// does not match") for if/while conditions and and/or operands.
func requireBoolean(v Value, loc Location) bool {
	if v.Tag != TagBoolean {
		fail(TypeError, loc, "condition requires a Boolean, got %s", v.Tag)
	}
	return v.AsBool()
}

// arithmeticOrComparison implements the strictly-Number-only operators
// (spec.md §9 Design Notes: arithmetic and ordering comparisons require both
// operands to be Number, with no implicit coercion — string concatenation on
// '+' is explicitly not a defined behavior).
func arithmeticOrComparison(op NodeOp, left, right Value, loc Location) Value {
	if left.Tag != TagNumber || right.Tag != TagNumber {
		fail(TypeError, loc, "operator requires two Numbers, got %s and %s", left.Tag, right.Tag)
	}
	a, b := left.AsNumber(), right.AsNumber()
	switch op {
	case OpAdd:
		return NumberValue(a + b)
	case OpSub:
		return NumberValue(a - b)
	case OpMul:
		return NumberValue(a * b)
	case OpDiv:
		if b == 0 {
			fail(TypeError, loc, "division by zero")
		}
		return NumberValue(a / b)
	case OpMod:
		if b == 0 {
			fail(TypeError, loc, "modulus by zero")
		}
		return NumberValue(math.Mod(a, b))
	case OpExp:
		return NumberValue(math.Pow(a, b))
	case OpLess:
		return BoolValue(a < b)
	case OpLessEq:
		return BoolValue(a <= b)
	case OpGreater:
		return BoolValue(a > b)
	case OpGreaterEq:
		return BoolValue(a >= b)
	default:
		fail(InterpreterError, loc, "unhandled binary operator %d", op)
		panic("unreachable")
	}
}

func evalUnaryOperator(n *Node, scope *Scope) Value {
	switch n.Op {
	case OpNegate:
		v := eval(n.Right, scope)
		if v.Tag != TagNumber {
			fail(TypeError, n.Location, "unary '-' requires a Number, got %s", v.Tag)
		}
		return NumberValue(-v.AsNumber())
	case OpNot:
		v := eval(n.Right, scope)
		return BoolValue(!v.Truthy())
	case OpAddAssign, OpSubAssign:
		// Desugared ++x / --x (parser.go's prefixOpFor): read, adjust by one,
		// assign, and yield the new value.
		old := eval(n.Right, scope)
		if old.Tag != TagNumber {
			fail(TypeError, n.Location, "increment/decrement requires a Number, got %s", old.Tag)
		}
		delta := 1.0
		if n.Op == OpSubAssign {
			delta = -1.0
		}
		updated := NumberValue(old.AsNumber() + delta)
		assignTo(n.Right, scope, updated)
		return updated
	default:
		fail(InterpreterError, n.Location, "unhandled unary operator %d", n.Op)
		panic("unreachable")
	}
}

// evalAssignment implements '=' and the compound assignment operators. The
// right-hand side is always evaluated before the left-hand side is written,
// and a compound assignment first reads the current value of the target.
func evalAssignment(n *Node, scope *Scope) Value {
	rhs := eval(n.Right, scope)
	if n.Op != OpAssign {
		current := eval(n.Left, scope)
		rhs = arithmeticCompound(n.Op.ArithmeticOp(), current, rhs, n.Location)
	}
	assignTo(n.Left, scope, rhs)
	return rhs
}

// arithmeticCompound applies a compound assignment's underlying operator.
func arithmeticCompound(op NodeOp, current, rhs Value, loc Location) Value {
	return arithmeticOrComparison(op, current, rhs, loc)
}

// assignTo writes value into the storage location target denotes. target
// must satisfy target.IsLValue() (the parser has already rejected every
// other case at parse time).
func assignTo(target *Node, scope *Scope, value Value) {
	switch target.Kind {
	case NodeIdentifier:
		scope.Set(target.Name, value, target.Location)
	case NodeSubscript:
		base := eval(target.Left, scope)
		index := eval(target.Right, scope)
		subscriptSet(base, index, value, target.Location)
	case NodeAccessMember:
		base := eval(target.Left, scope)
		accessMemberSet(base, target.Name, value, target.Location)
	default:
		fail(InterpreterError, target.Location, "assignment target is not an lvalue")
	}
}

func subscriptSet(base, index, value Value, loc Location) {
	switch base.Tag {
	case TagArray:
		if index.Tag != TagNumber {
			fail(TypeError, loc, "array index must be a Number, got %s", index.Tag)
		}
		elems := base.AsArray().Elems
		i := int(index.AsNumber())
		if i < 0 || i >= len(elems) {
			fail(OutOfBounds, loc, "array index %d out of bounds (length %d)", i, len(elems))
		}
		elems[i] = value
	case TagObject:
		base.AsObject().Set(objectKey(index, loc), value)
	default:
		fail(TypeError, loc, "cannot assign into a %s by subscript", base.Tag)
	}
}

func accessMemberSet(base Value, name string, value Value, loc Location) {
	if base.Tag != TagObject {
		fail(TypeError, loc, "cannot assign member %q of a %s", name, base.Tag)
	}
	base.AsObject().Set(name, value)
}

// evalFunctionCall evaluates the callee and arguments, then dispatches to a
// native builtin or enters a fresh call frame for a user-defined function.
func evalFunctionCall(n *Node, scope *Scope) Value {
	callee := eval(n.Left, scope)
	if callee.Tag != TagFunction {
		fail(TypeError, n.Location, "cannot call a %s", callee.Tag)
	}
	fn := callee.AsFunction()

	args := make([]Value, len(n.Children))
	for i, a := range n.Children {
		args[i] = eval(a, scope)
	}

	return ApplyFunction(fn, args, n.Location)
}

// ApplyFunction invokes fn (native or user-defined) with args, performing
// the same arity check and call-frame setup evalFunctionCall does. Exported
// within the package for the functional-combinator builtins (bind, compose)
// to call back into user-supplied functions.
func ApplyFunction(fn *FunctionValue, args []Value, loc Location) Value {
	if fn.IsNative() {
		if fn.ArgCount >= 0 && len(args) != fn.ArgCount {
			fail(InvalidArgumentCount, loc, "%s expects %d argument(s), got %d", fn.Name, fn.ArgCount, len(args))
		}
		return fn.Native(args, loc)
	}

	if len(args) != len(fn.Params) {
		fail(InvalidArgumentCount, loc, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	call := fn.Closure.Child(true)
	for i, param := range fn.Params {
		call.Define(param, args[i], false)
	}
	return callFunctionBody(fn.Body, call)
}

// callFunctionBody evaluates a function body, translating a returnSignal
// panic into its value and defaulting to Null when the body falls off the
// end without an explicit return statement.
func callFunctionBody(body *Node, call *Scope) (result Value) {
	defer func() {
		if r := recover(); r != nil {
			if rs, ok := r.(returnSignal); ok {
				result = rs.value
				return
			}
			panic(r)
		}
	}()
	eval(body, call)
	return NullValue
}
