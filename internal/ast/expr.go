package ast

import "github.com/arnodel/jslint/internal/token"

// Invalid is the sentinel leaf synthesized by the error-recovery policy
// (spec.md §4.7): it carries a range but no other information.
type Invalid struct {
	NodeBase
}

func (*Invalid) ExprKind() ExprKind { return InvalidExpr }

// Literal covers number, string, regex, boolean, null, `this`, and a
// template with no substitutions. spec.md's table gives them all "range
// only" children, distinguished by Kind.
type Literal struct {
	NodeBase
	Kind LiteralKind
	Raw  string
}

func (*Literal) ExprKind() ExprKind { return LiteralExpr }

// Variable is a reference to a binding by name.
type Variable struct {
	NodeBase
	Name token.Identifier
}

func (*Variable) ExprKind() ExprKind { return VariableExpr }

// UnaryOperator is a prefix unary operator (`! ~ + - typeof void delete
// await` are modeled as UnaryOperator except `await`, which gets its own
// node per spec.md's table; `delete`/`typeof`/`void`/unary `+`/`-`/`!`/`~`
// live here).
type UnaryOperator struct {
	NodeBase
	Operator token.Kind
	Operand  Expr
}

func (*UnaryOperator) ExprKind() ExprKind { return UnaryOperatorExpr }

// BinaryOperator is a flattened chain of >=2 operands at the same
// precedence level (spec.md §4.4): `a+b-c` is one BinaryOperator with
// Operands [a,b,c] and Operators [+,-], not a left-leaning tree of
// two-operand nodes. len(Operators) == len(Operands)-1; Operators[i] is
// the operator between Operands[i] and Operands[i+1]. Comma chains are
// represented the same way with every operator token.Comma.
type BinaryOperator struct {
	NodeBase
	Operands  []Expr
	Operators []token.Kind
}

func (*BinaryOperator) ExprKind() ExprKind { return BinaryOperatorExpr }

// Assignment is a plain `=` assignment.
type Assignment struct {
	NodeBase
	Left, Right Expr
}

func (*Assignment) ExprKind() ExprKind { return AssignmentExpr }

// UpdatingAssignment is a compound assignment (`+=`, `*=`, ...).
type UpdatingAssignment struct {
	NodeBase
	Operator    token.Kind
	Left, Right Expr
}

func (*UpdatingAssignment) ExprKind() ExprKind { return UpdatingAssignmentExpr }

// RWUnaryPrefix is prefix `++`/`--`.
type RWUnaryPrefix struct {
	NodeBase
	Operator token.Kind
	Operand  Expr
}

func (*RWUnaryPrefix) ExprKind() ExprKind { return RWUnaryPrefixExpr }

// RWUnarySuffix is postfix `++`/`--`.
type RWUnarySuffix struct {
	NodeBase
	Operator token.Kind
	Operand  Expr
}

func (*RWUnarySuffix) ExprKind() ExprKind { return RWUnarySuffixExpr }

// Conditional is `test ? consequent : alternate`, right-associative.
type Conditional struct {
	NodeBase
	Test, Consequent, Alternate Expr
}

func (*Conditional) ExprKind() ExprKind { return ConditionalExpr }

// Dot is `object.identifier`.
type Dot struct {
	NodeBase
	Object     Expr
	Identifier token.Identifier
}

func (*Dot) ExprKind() ExprKind { return DotExpr }

// Index is `object[subscript]`.
type Index struct {
	NodeBase
	Object, Subscript Expr
}

func (*Index) ExprKind() ExprKind { return IndexExpr }

// Call is `callee(args...)`.
type Call struct {
	NodeBase
	Callee Expr
	Args   []Expr
}

func (*Call) ExprKind() ExprKind { return CallExpr }

// New is `new Callee(args...)`; Args is nil when the argument list (and
// its parens) is omitted entirely.
type New struct {
	NodeBase
	Callee Expr
	Args   []Expr
	HasArgs bool
}

func (*New) ExprKind() ExprKind { return NewExpr }

// Template is a tagged template literal (with or without substitutions)
// or an untagged one with at least one substitution; Tag is nil for an
// untagged template.
type Template struct {
	NodeBase
	Tag           Expr
	Substitutions []Expr
}

func (*Template) ExprKind() ExprKind { return TemplateExpr }

// Array is an array literal; elided holes are dropped from Elements per
// spec.md's table.
type Array struct {
	NodeBase
	Elements []Expr
}

func (*Array) ExprKind() ExprKind { return ArrayExpr }

// ObjectEntry is one entry of an object literal. Property is nil for a
// spread entry (`...expr`).
type ObjectEntry struct {
	Property Expr
	Value    Expr
	Computed bool
	Method   bool
	Shorthand bool
}

// Object is an object literal.
type Object struct {
	NodeBase
	Entries []ObjectEntry
}

func (*Object) ExprKind() ExprKind { return ObjectExpr }

// Spread is `...expr` in an argument, array, or object position.
type Spread struct {
	NodeBase
	Operand Expr
}

func (*Spread) ExprKind() ExprKind { return SpreadExpr }

// Await is `await expr`.
type Await struct {
	NodeBase
	Operand Expr
}

func (*Await) ExprKind() ExprKind { return AwaitExpr }

// Super is a bare `super` reference (as `super.x`'s object, or
// `super(...)`'s callee).
type Super struct {
	NodeBase
}

func (*Super) ExprKind() ExprKind { return SuperExpr }

// Import is a bare `import` reference, used as the callee of
// `import(url)` or the object of `import.meta`.
type Import struct {
	NodeBase
}

func (*Import) ExprKind() ExprKind { return ImportExpr }

// Function is an anonymous function expression.
type Function struct {
	NodeBase
	Params     []Pattern
	Body       *Block
	Attributes Attributes
	Generator  bool
}

func (*Function) ExprKind() ExprKind { return FunctionExpr }

// NamedFunction is a named function expression (the name is visible
// inside the function's own body only).
type NamedFunction struct {
	NodeBase
	Name       token.Identifier
	Params     []Pattern
	Body       *Block
	Attributes Attributes
	Generator  bool
}

func (*NamedFunction) ExprKind() ExprKind { return NamedFunctionExpr }

// ArrowFunctionWithExpression is `(params) => expr`.
type ArrowFunctionWithExpression struct {
	NodeBase
	Parameters []Pattern
	Body       Expr
	Attributes Attributes
}

func (*ArrowFunctionWithExpression) ExprKind() ExprKind { return ArrowFunctionWithExpressionExpr }

// ArrowFunctionWithStatements is `(params) => { ...statements }`.
type ArrowFunctionWithStatements struct {
	NodeBase
	Parameters []Pattern
	Body       *Block
	Attributes Attributes
}

func (*ArrowFunctionWithStatements) ExprKind() ExprKind { return ArrowFunctionWithStatementsExpr }

// Class is a class expression; class declarations wrap the same shape in
// a ClassDeclaration statement node.
type Class struct {
	NodeBase
	Name       *token.Identifier
	SuperClass Expr
	Members    []ClassMember
}

func (*Class) ExprKind() ExprKind { return ClassExprKind }

type MemberKind uint8

const (
	MethodMember MemberKind = iota
	GetterMember
	SetterMember
	FieldMember
)

type ClassMember struct {
	Key      Expr
	Value    Expr // *Function for methods/accessors, an Expr or nil for fields
	Kind     MemberKind
	Static   bool
	Computed bool
}
