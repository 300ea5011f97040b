// builtins.go — the fixed table mapping surface syntax to internal symbolic
// kinds.
//
// OVERVIEW
// --------
// Every keyword and operator glyph Water recognizes is a "builtin": an
// enumerated Kind with a canonical text, an operator/arity flag pair, an
// integer precedence, and a binding direction. One text may map to more than
// one Kind (e.g. "-" is both Subtraction and Negation; "(" opens grouping,
// call argument lists, and control-flow conditions) — the lexer and parser
// resolve which Kind applies positionally, never by text alone.
//
// The symbol-character set and keyword set used by the lexer are derived
// from this table rather than hand-maintained, so adding a builtin here is
// enough to make the lexer recognize its characters/keyword.
package water

// Kind enumerates every builtin symbol: keywords, operator glyphs, and
// punctuation recognized by the lexer/parser.
type Kind int

const (
	Invalid Kind = iota

	Assignment
	AccessMember
	StatementDelimiter
	ArgumentDelimiter

	OpenParen
	CloseParen

	OpenFunctionCall
	CloseFunctionCall

	OpenControlFlowCondition
	CloseControlFlowCondition

	OpenBlock
	CloseBlock

	OpenArrayLiteral
	CloseArrayLiteral
	OpenSubscript
	CloseSubscript
	ElementDelimiter

	OpenObjectLiteral
	CloseObjectLiteral
	KeyValueDelimiter

	Addition
	AdditionAssignment
	Increment

	Subtraction
	SubtractionAssignment
	Decrement
	Negation

	Multiplication
	MultiplicationAssignment

	Division
	DivisionAssignment

	Modulus
	ModulusAssignment

	Exponent
	ExponentAssignment

	LessThan
	LessThanOrEqual

	GreaterThan
	GreaterThanOrEqual

	EqualTo
	NotEqualTo

	LogicalAnd
	LogicalOr
	LogicalNot

	Exists

	VariableDeclarator
	ConstantDeclarator

	IfStatement
	ElseStatement
	WhileStatement
	ForStatement
	ForIterationDelimiter

	TrueLiteral
	FalseLiteral
	NullLiteral

	FunctionDeclaration
	FunctionOpenArgumentList
	FunctionCloseArgumentList

	Return
	Break
	Continue
)

// BindingDirection classifies how an operator combines with its operand(s).
type BindingDirection int

const (
	None BindingDirection = iota
	LeftAssociative
	RightAssociative
	Prefix
	Postfix
)

// Info describes a builtin Kind's operator behavior.
type Info struct {
	IsOperator       bool
	IsBinary         bool
	Precedence       int
	BindingDirection BindingDirection
}

// Precedence ladder, lowest to highest, as specified in spec.md §4.1.
const (
	AssignmentLevel = iota
	LogicalOrLevel
	LogicalAndLevel
	EqualityLevel
	OrderingLevel
	AdditiveLevel
	MultiplicativeLevel
	NegationLevel
	ExponentialLevel
	LogicalNotLevel
	ExistentialLevel
	IncrementalLevel
	MemberAccessLevel
)

// builtinText maps each Kind to its canonical surface text. Several Kinds
// share a text (e.g. OpenParen/OpenFunctionCall/OpenControlFlowCondition all
// render as "("); the mapping is intentionally many-to-one in that direction.
var builtinText = map[Kind]string{
	Assignment:         "=",
	AccessMember:       ".",
	StatementDelimiter: ";",
	ArgumentDelimiter:  ",",

	OpenParen:  "(",
	CloseParen: ")",

	OpenFunctionCall:  "(",
	CloseFunctionCall: ")",

	OpenControlFlowCondition:  "(",
	CloseControlFlowCondition: ")",

	OpenBlock: "{",
	CloseBlock: "}",

	OpenArrayLiteral:  "[",
	CloseArrayLiteral: "]",
	OpenSubscript:     "[",
	CloseSubscript:    "]",
	ElementDelimiter:  ",",

	OpenObjectLiteral:  "{",
	CloseObjectLiteral: "}",
	KeyValueDelimiter:  ":",

	Addition:           "+",
	AdditionAssignment: "+=",
	Increment:          "++",

	Subtraction:           "-",
	SubtractionAssignment: "-=",
	Decrement:             "--",
	Negation:              "-",

	Multiplication:           "*",
	MultiplicationAssignment: "*=",

	Division:           "/",
	DivisionAssignment: "/=",

	Modulus:           "%",
	ModulusAssignment: "%=",

	Exponent:           "^",
	ExponentAssignment: "^=",

	LessThan:      "<",
	LessThanOrEqual: "<=",

	GreaterThan:      ">",
	GreaterThanOrEqual: ">=",

	EqualTo:    "==",
	NotEqualTo: "!=",

	LogicalAnd: "and",
	LogicalOr:  "or",
	LogicalNot: "not",

	Exists: "exists",

	VariableDeclarator: "var",
	ConstantDeclarator: "let",

	IfStatement:           "if",
	ElseStatement:         "else",
	WhileStatement:        "while",
	ForStatement:          "for",
	ForIterationDelimiter: ":",

	TrueLiteral:  "true",
	FalseLiteral: "false",
	NullLiteral:  "null",

	FunctionDeclaration:      "func",
	FunctionOpenArgumentList:  "(",
	FunctionCloseArgumentList: ")",

	Return:   "return",
	Break:    "break",
	Continue: "continue",
}

// builtinInfo describes operator precedence/associativity for operator
// Kinds. Non-operator Kinds (punctuation, keywords that aren't operators)
// simply don't appear here; Info{} is returned for them.
var builtinInfo = map[Kind]Info{
	Assignment:                {true, true, AssignmentLevel, RightAssociative},
	AdditionAssignment:        {true, true, AssignmentLevel, RightAssociative},
	SubtractionAssignment:     {true, true, AssignmentLevel, RightAssociative},
	MultiplicationAssignment:  {true, true, AssignmentLevel, RightAssociative},
	DivisionAssignment:        {true, true, AssignmentLevel, RightAssociative},
	ModulusAssignment:         {true, true, AssignmentLevel, RightAssociative},
	ExponentAssignment:        {true, true, AssignmentLevel, RightAssociative},

	LogicalOr: {true, true, LogicalOrLevel, LeftAssociative},

	LogicalAnd: {true, true, LogicalAndLevel, LeftAssociative},

	EqualTo:    {true, true, EqualityLevel, LeftAssociative},
	NotEqualTo: {true, true, EqualityLevel, LeftAssociative},

	LessThan:           {true, true, OrderingLevel, LeftAssociative},
	LessThanOrEqual:    {true, true, OrderingLevel, LeftAssociative},
	GreaterThan:        {true, true, OrderingLevel, LeftAssociative},
	GreaterThanOrEqual: {true, true, OrderingLevel, LeftAssociative},

	Addition:    {true, true, AdditiveLevel, LeftAssociative},
	Subtraction: {true, true, AdditiveLevel, LeftAssociative},

	Multiplication: {true, true, MultiplicativeLevel, LeftAssociative},
	Division:       {true, true, MultiplicativeLevel, LeftAssociative},
	Modulus:        {true, true, MultiplicativeLevel, LeftAssociative},

	Negation: {true, false, NegationLevel, Prefix},

	Exponent: {true, true, ExponentialLevel, RightAssociative},

	LogicalNot: {true, false, LogicalNotLevel, Prefix},

	Exists: {true, false, ExistentialLevel, Postfix},

	Increment: {true, false, IncrementalLevel, Prefix},
	Decrement: {true, false, IncrementalLevel, Prefix},

	AccessMember: {true, true, MemberAccessLevel, LeftAssociative},
}

// keywordKinds indexes builtinText for every Kind whose canonical text
// starts with a letter; used by the lexer to promote identifiers.
var keywordKinds map[string]Kind

// symbolChars is the set of every non-alphabetic byte appearing in any
// builtin's canonical text; used by the lexer's maximal-munch scan.
var symbolChars map[byte]bool

func init() {
	keywordKinds = make(map[string]Kind)
	symbolChars = make(map[byte]bool)

	for kind, text := range builtinText {
		if text == "" {
			continue
		}
		if isAsciiLetter(text[0]) {
			keywordKinds[text] = kind
			continue
		}
		for i := 0; i < len(text); i++ {
			symbolChars[text[i]] = true
		}
	}
}

func isAsciiLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsBuiltin reports whether text matches the canonical text of any builtin.
func IsBuiltin(text string) bool {
	for _, t := range builtinText {
		if t == text {
			return true
		}
	}
	return false
}

// IsBuiltinKind reports whether text is the canonical text of the given Kind.
func IsBuiltinKind(text string, kind Kind) bool {
	t, ok := builtinText[kind]
	return ok && t == text
}

// BinaryBuiltinFor resolves text to a binary-operator Kind, or Invalid.
func BinaryBuiltinFor(text string) Kind {
	for kind, t := range builtinText {
		if t == text && builtinInfo[kind].IsBinary {
			return kind
		}
	}
	return Invalid
}

// UnaryBuiltinFor resolves text to a unary-operator Kind, or Invalid.
func UnaryBuiltinFor(text string) Kind {
	for kind, t := range builtinText {
		if t == text {
			if info, ok := builtinInfo[kind]; ok && !info.IsBinary {
				return kind
			}
		}
	}
	return Invalid
}

// CanonicalText returns the canonical surface text for kind.
func CanonicalText(kind Kind) string {
	if t, ok := builtinText[kind]; ok {
		return t
	}
	return "(unknown builtin)"
}

// BuiltinInfo returns operator metadata for kind; zero-value Info for
// non-operator kinds.
func BuiltinInfo(kind Kind) Info {
	return builtinInfo[kind]
}

// IsSymbolChar reports whether b is part of some builtin's operator text.
func IsSymbolChar(b byte) bool {
	return symbolChars[b]
}

// IsKeyword reports whether text is a reserved keyword (a builtin whose
// canonical text begins with a letter).
func IsKeyword(text string) bool {
	_, ok := keywordKinds[text]
	return ok
}

// KeywordKind resolves a keyword's text to its Kind, or (Invalid, false).
func KeywordKind(text string) (Kind, bool) {
	k, ok := keywordKinds[text]
	return k, ok
}

// IsAssignmentOperator reports whether kind is one of the assignment-level
// operators (=, +=, -=, *=, /=, %=, ^=).
func IsAssignmentOperator(kind Kind) bool {
	info, ok := builtinInfo[kind]
	return ok && info.Precedence == AssignmentLevel
}
