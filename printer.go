// printer.go — value stringification and the -pt/-pa debug dumpers.
//
// Stringify is the single display-conversion rule shared by the print/
// println builtins (stdlib_io.go) and evaluator_ops.go's objectKey (a Number
// used as an object subscript is coerced through the same rule), so "5" as a
// printed value and "5" as a coerced object key never disagree. The
// token/AST dumpers back the CLI's --print-tokens/--print-ast flags
// (spec.md §6); they are explicitly an outer-surface concern, not part of
// the core language, so they live in their own file rather than inside
// lexer.go/parser.go.
package water

import (
	"fmt"
	"strconv"
	"strings"
)

// Stringify renders v the way print/println display it.
func Stringify(v Value) string {
	switch v.Tag {
	case TagNull:
		return "null"
	case TagBoolean:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case TagNumber:
		return strconv.FormatFloat(v.AsNumber(), 'g', -1, 64)
	case TagString:
		return v.AsString()
	case TagArray:
		parts := make([]string, len(v.AsArray().Elems))
		for i, e := range v.AsArray().Elems {
			parts[i] = quoteIfString(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TagObject:
		obj := v.AsObject()
		keys := obj.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			val, _ := obj.Get(k)
			parts[i] = fmt.Sprintf("%s: %s", k, quoteIfString(val))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case TagFunction:
		fn := v.AsFunction()
		if fn.Name != "" {
			return fmt.Sprintf("<function %s>", fn.Name)
		}
		return "<function>"
	default:
		return "<unknown>"
	}
}

func quoteIfString(v Value) string {
	if v.Tag == TagString {
		return strconv.Quote(v.AsString())
	}
	return Stringify(v)
}

// DumpTokens renders tokens one per line as `KIND "text" file:line:col`,
// the format --print-tokens emits.
func DumpTokens(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		fmt.Fprintln(&b, t.String())
	}
	return b.String()
}

// DumpAST renders an indented S-expression-style tree, the format
// --print-ast emits.
func DumpAST(n *Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s", indent, nodeKindName(n.Kind))
	switch n.Kind {
	case NodeIdentifier, NodeAccessMember, NodeDeclaration, NodeForStatement:
		fmt.Fprintf(b, " %q", n.Name)
	case NodeNumberLiteral:
		fmt.Fprintf(b, " %v", n.Number)
	case NodeStringLiteral:
		fmt.Fprintf(b, " %q", n.Str)
	case NodeBooleanLiteral:
		fmt.Fprintf(b, " %v", n.Bool)
	case NodeBinaryOperator, NodeUnaryOperator:
		fmt.Fprintf(b, " op=%d", n.Op)
	}
	fmt.Fprintf(b, " @%s\n", n.Location)

	for _, child := range []*Node{n.Left, n.Right, n.Else} {
		dumpNode(b, child, depth+1)
	}
	for _, child := range n.Children {
		dumpNode(b, child, depth+1)
	}
}

func nodeKindName(k NodeKind) string {
	switch k {
	case NodeIdentifier:
		return "Identifier"
	case NodeNumberLiteral:
		return "NumberLiteral"
	case NodeStringLiteral:
		return "StringLiteral"
	case NodeBooleanLiteral:
		return "BooleanLiteral"
	case NodeNullLiteral:
		return "NullLiteral"
	case NodeArrayLiteral:
		return "ArrayLiteral"
	case NodeObjectLiteral:
		return "ObjectLiteral"
	case NodeSubscript:
		return "Subscript"
	case NodeAccessMember:
		return "AccessMember"
	case NodeBinaryOperator:
		return "BinaryOperator"
	case NodeUnaryOperator:
		return "UnaryOperator"
	case NodeFunctionCall:
		return "FunctionCall"
	case NodeBlock:
		return "Block"
	case NodeIfStatement:
		return "IfStatement"
	case NodeWhileStatement:
		return "WhileStatement"
	case NodeForStatement:
		return "ForStatement"
	case NodeDeclaration:
		return "Declaration"
	case NodeFunctionDeclaration:
		return "FunctionDeclaration"
	case NodeReturn:
		return "Return"
	case NodeBreak:
		return "Break"
	case NodeContinue:
		return "Continue"
	default:
		return "Unknown"
	}
}
