// evaluator.go — the tree-walking evaluator's dispatch and statement forms
// (spec.md §4.5).
//
// Evaluate is the single recover point for the rtErr panic/recover
// discipline errors.go documents: every recursive eval() call below it may
// panic with an rtErr, and Evaluate converts exactly one such panic back
// into a returned *RuntimeError. Sentinels for return/break/continue are
// implemented the same way, as distinct panic payload types recovered by
// the nearest enclosing construct that knows how to handle them (a function
// call frame for returnSignal, a loop body for breakSignal/continueSignal) —
// this mirrors the discipline the teacher's interpreter_exec.go uses for its
// own control-flow signals, adapted from exception-based control flow in
// original_source/source/interpreter.cpp.
package water

// returnSignal unwinds a function body up to its call frame.
type returnSignal struct{ value Value }

// breakSignal and continueSignal unwind a loop body up to its enclosing
// loop construct.
type breakSignal struct{}
type continueSignal struct{}

// Evaluate runs program (the root Block Node returned by Parse) against
// global (normally NewGlobalScope() with the standard library already
// Defined into it). It returns the program's result value — the value of
// its final expression-statement, or Null — and a non-nil *RuntimeError if
// evaluation panicked with one.
func Evaluate(program *Node, global *Scope) (result Value, err *RuntimeError) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(rtErr); ok {
				err = re.err
				return
			}
			panic(r)
		}
	}()
	// The program root is evaluated directly against global rather than
	// through evalBlock's usual "create a fresh child scope" rule: the
	// caller's global scope already IS the top-level environment (and, for
	// the REPL, must accumulate declarations across calls instead of
	// discarding them when each call's root block scope is thrown away).
	result = NullValue
	for _, stmt := range program.Children {
		result = eval(stmt, global)
	}
	return result, nil
}

// eval dispatches a single Node to its evaluation rule. It is the sole
// switch over NodeKind in the evaluator; every case either returns a Value
// directly or delegates to a helper in evaluator_ops.go.
func eval(n *Node, scope *Scope) Value {
	switch n.Kind {
	case NodeNumberLiteral:
		return NumberValue(n.Number)
	case NodeStringLiteral:
		return StringValueOf(n.Str)
	case NodeBooleanLiteral:
		return BoolValue(n.Bool)
	case NodeNullLiteral:
		return NullValue
	case NodeIdentifier:
		return scope.Get(n.Name, n.Location)
	case NodeArrayLiteral:
		return evalArrayLiteral(n, scope)
	case NodeObjectLiteral:
		return evalObjectLiteral(n, scope)
	case NodeSubscript:
		return evalSubscript(n, scope)
	case NodeAccessMember:
		return evalAccessMember(n, scope)
	case NodeBinaryOperator:
		return evalBinaryOperator(n, scope)
	case NodeUnaryOperator:
		return evalUnaryOperator(n, scope)
	case NodeFunctionCall:
		return evalFunctionCall(n, scope)
	case NodeBlock:
		return evalBlock(n, scope)
	case NodeIfStatement:
		return evalIf(n, scope)
	case NodeWhileStatement:
		return evalWhile(n, scope)
	case NodeForStatement:
		return evalFor(n, scope)
	case NodeDeclaration:
		return evalDeclaration(n, scope)
	case NodeFunctionDeclaration:
		return evalFunctionDeclaration(n, scope)
	case NodeReturn:
		var v Value = NullValue
		if n.Right != nil {
			v = eval(n.Right, scope)
		}
		panic(returnSignal{value: v})
	case NodeBreak:
		panic(breakSignal{})
	case NodeContinue:
		panic(continueSignal{})
	default:
		fail(InterpreterError, n.Location, "unhandled node kind %d", n.Kind)
		panic("unreachable")
	}
}

// evalBlock creates a fresh child scope of scope (a new runtime frame per
// entry, never the parse-time scope captured on the node — see scope.go's
// header comment) and evaluates each statement in order, returning the last
// statement's value (spec.md's "program result is its final statement's
// value" convention) or Null for an empty block.
func evalBlock(n *Node, scope *Scope) Value {
	inner := scope.Child(n.IsFunctionScope)
	result := NullValue
	for _, stmt := range n.Children {
		result = eval(stmt, inner)
	}
	return result
}

func evalIf(n *Node, scope *Scope) Value {
	if requireBoolean(eval(n.Left, scope), n.Location) {
		return eval(n.Right, scope)
	}
	if n.Else != nil {
		return eval(n.Else, scope)
	}
	return NullValue
}

func evalWhile(n *Node, scope *Scope) Value {
	for requireBoolean(eval(n.Left, scope), n.Location) {
		if runLoopBody(n.Right, scope) {
			break
		}
	}
	return NullValue
}

// evalFor iterates n.Left (an Array, by element, or an Object, by key) and
// evaluates n.Right once per element in a fresh per-iteration child scope
// binding n.Name (spec.md §4.5's for-loop semantics).
func evalFor(n *Node, scope *Scope) Value {
	iterable := eval(n.Left, scope)
	switch iterable.Tag {
	case TagArray:
		for _, elem := range iterable.AsArray().Elems {
			iter := scope.Child(false)
			iter.Define(n.Name, elem, n.IsConst)
			if runLoopBody(n.Right, iter) {
				break
			}
		}
	case TagObject:
		for _, key := range iterable.AsObject().Keys() {
			iter := scope.Child(false)
			iter.Define(n.Name, StringValueOf(key), n.IsConst)
			if runLoopBody(n.Right, iter) {
				break
			}
		}
	default:
		fail(TypeError, n.Location, "for-loop requires an Array or Object, got %s", iterable.Tag)
	}
	return NullValue
}

// runLoopBody evaluates a loop's body statement, absorbing continueSignal
// (ends the current iteration) and reporting whether breakSignal fired
// (ends the whole loop).
func runLoopBody(body *Node, scope *Scope) (broke bool) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				broke = true
			case continueSignal:
				broke = false
			default:
				panic(r)
			}
		}
	}()
	eval(body, scope)
	return false
}

func evalDeclaration(n *Node, scope *Scope) Value {
	v := NullValue
	if n.Right != nil {
		v = eval(n.Right, scope)
	}
	scope.Define(n.Name, v, n.IsConst)
	return NullValue
}

// evalFunctionDeclaration evaluates an anonymous function literal into a
// closure Value, capturing scope itself (not a copy) as the function's
// defining environment so later mutations to enclosing variables remain
// visible through the closure. There is no name to bind here — a function
// literal is an ordinary expression; whatever it is assigned to (typically a
// let/var declaration) is what gives it a name in the scope chain.
func evalFunctionDeclaration(n *Node, scope *Scope) Value {
	fn := &FunctionValue{Params: n.Params, Body: n.Right, Closure: scope, ArgCount: len(n.Params)}
	return FunctionValueOf(fn)
}
