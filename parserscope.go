// parserscope.go — the parse-time lexical scope table (spec.md §3 Data
// Model, §4.4's declaration/shadowing rules).
//
// The parser threads a ParseScope chain through statement parsing purely to
// validate declarations ahead of evaluation: reject redeclaration within one
// scope, reject assignment to a name declared const, and reject a block
// scope shadowing a name visible through its parent chain unless a function
// scope intervenes. None of this chain is consulted at runtime — runtime
// name resolution walks a freshly built Scope chain (scope.go) parented
// dynamically by the caller, exactly as original_source's evaluate(scope)
// threads its Scope argument rather than reading astnode._meta.scope(). The
// parse-time chain's only runtime-visible trace is the invariant that every
// Node's Scope field equals the innermost ParseScope in effect at its
// location (spec.md Data Model).
package water

// identifierInfo records what the parser knows about one declared name,
// mirroring original_source/source/scope.h's IdentifierInfo.
type identifierInfo struct {
	isConst bool
}

// ParseScope is one link in the parser's lexical scope chain.
type ParseScope struct {
	parent          *ParseScope
	names           map[string]identifierInfo
	isFunctionScope bool
}

// NewGlobalParseScope creates the root ParseScope, pre-populated with the
// given builtin names (none of them const: builtins may be shadowed by
// local declarations, per spec.md §4.6).
func NewGlobalParseScope(builtinNames []string) *ParseScope {
	ps := &ParseScope{names: make(map[string]identifierInfo, len(builtinNames)), isFunctionScope: true}
	for _, name := range builtinNames {
		ps.names[name] = identifierInfo{isConst: false}
	}
	return ps
}

// Child creates a nested ParseScope. isFunctionScope marks the boundary a
// function body introduces: an inner scope may shadow a name from an
// enclosing scope only if a function-scope boundary lies between them.
func (ps *ParseScope) Child(isFunctionScope bool) *ParseScope {
	return &ParseScope{parent: ps, names: make(map[string]identifierInfo), isFunctionScope: isFunctionScope}
}

// declaredInSameScope reports whether name is already declared directly in
// ps (not in an ancestor).
func (ps *ParseScope) declaredInSameScope(name string) bool {
	_, ok := ps.names[name]
	return ok
}

// visibleAcrossBlocksOnly reports whether name is visible by walking up
// through ps's ancestor chain only as far as the nearest function-scope
// boundary (not crossing it) — the set of names a non-function child scope
// is forbidden to shadow.
func (ps *ParseScope) visibleAcrossBlocksOnly(name string) bool {
	for s := ps; s != nil; s = s.parent {
		if _, ok := s.names[name]; ok {
			return true
		}
		if s.isFunctionScope {
			break
		}
	}
	return false
}

// Declare records a new binding for name in ps. It returns false if name is
// already declared directly in ps, or if ps is a non-function (block) scope
// and name is visible through its enclosing block-scope chain (redeclaration
// and illegal-shadowing are both rejected at parse time, spec.md §4.4).
func (ps *ParseScope) Declare(name string, isConst bool) bool {
	if ps.declaredInSameScope(name) {
		return false
	}
	if !ps.isFunctionScope && ps.parent != nil && ps.parent.visibleAcrossBlocksOnly(name) {
		return false
	}
	ps.names[name] = identifierInfo{isConst: isConst}
	return true
}

// Lookup finds the ParseScope in ps's chain (including ps itself) that
// declares name, or (nil, false) if no such declaration exists.
func (ps *ParseScope) Lookup(name string) (*ParseScope, bool) {
	for s := ps; s != nil; s = s.parent {
		if _, ok := s.names[name]; ok {
			return s, true
		}
	}
	return nil, false
}

// IsConst reports whether name, as visible from ps, was declared const. The
// caller is expected to have already confirmed via Lookup that name exists.
func (ps *ParseScope) IsConst(name string) bool {
	if s, ok := ps.Lookup(name); ok {
		return s.names[name].isConst
	}
	return false
}

// loopDepthTracker is a small stack the parser uses to reject break/continue
// outside of any enclosing loop (spec.md §4.4 edge cases). It is carried
// alongside (not inside) the ParseScope chain since loop nesting and lexical
// scope nesting are distinct axes: a function literal defined inside a loop
// resets the loop depth to zero for statements inside its own body.
type loopDepthTracker struct {
	// frames[i] is the loop-nesting depth of the i-th enclosing function
	// frame (frames[0] is the top-level program frame).
	frames []int
}

func newLoopDepthTracker() *loopDepthTracker { return &loopDepthTracker{frames: []int{0}} }

func (t *loopDepthTracker) enterLoop() { t.frames[len(t.frames)-1]++ }
func (t *loopDepthTracker) exitLoop()  { t.frames[len(t.frames)-1]-- }

// enterFunction pushes a fresh, independent loop-nesting frame so that
// break/continue inside a nested function body cannot target a loop in the
// enclosing function.
func (t *loopDepthTracker) enterFunction() { t.frames = append(t.frames, 0) }
func (t *loopDepthTracker) exitFunction()  { t.frames = t.frames[:len(t.frames)-1] }

// insideLoop reports whether the innermost function frame has at least one
// enclosing loop.
func (t *loopDepthTracker) insideLoop() bool {
	return t.frames[len(t.frames)-1] > 0
}
