// Package ast defines the AST node model the parser produces: a tagged
// variant over expression and statement kinds, plus a Walk for read-only,
// scope-independent queries over a tree (see internal/resolve's
// with-statement check; the scope-aware resolution pass drives its own
// traversal instead, since Walk has no exit callback to pop a scope on).
package ast

import (
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

// Node is implemented by every AST node. All node types embed NodeBase,
// which implements it.
type Node interface {
	Range() sourcecode.Span
}

// NodeBase gives every concrete node type a Span. Every node covers all
// of its syntax, and every child's span is contained in its parent's.
type NodeBase struct {
	Span sourcecode.Span
}

func (b NodeBase) Range() sourcecode.Span { return b.Span }

// ExprKind tags the variant of an Expr, mirroring spec.md's Expression AST
// Node table.
type ExprKind uint8

const (
	InvalidExpr ExprKind = iota
	LiteralExpr
	VariableExpr
	UnaryOperatorExpr
	BinaryOperatorExpr
	AssignmentExpr
	UpdatingAssignmentExpr
	RWUnaryPrefixExpr
	RWUnarySuffixExpr
	ConditionalExpr
	DotExpr
	IndexExpr
	CallExpr
	NewExpr
	TemplateExpr
	ArrayExpr
	ObjectExpr
	SpreadExpr
	AwaitExpr
	SuperExpr
	ImportExpr
	FunctionExpr
	NamedFunctionExpr
	ArrowFunctionWithExpressionExpr
	ArrowFunctionWithStatementsExpr
	ClassExprKind
)

// Expr is implemented by every expression node.
type Expr interface {
	Node
	ExprKind() ExprKind
}

// Attributes marks a function/arrow as normal or async, per spec.md §3.
type Attributes uint8

const (
	Normal Attributes = iota
	AsyncAttr
)

// StmtKind tags the variant of a Stmt.
type StmtKind uint8

const (
	InvalidStmt StmtKind = iota
	ExpressionStmt
	VariableDeclarationStmt
	FunctionDeclarationStmt
	ClassDeclarationStmt
	BlockStmt
	IfStmt
	ForStmt
	ForInStmt
	ForOfStmt
	WhileStmt
	DoWhileStmt
	SwitchStmt
	TryStmt
	ThrowStmt
	ReturnStmt
	BreakStmt
	ContinueStmt
	WithStmt
	EmptyStmt
	LabeledStmt
	ImportDeclarationStmt
	ExportDeclarationStmt
	DebuggerStmt
)

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	StmtKind() StmtKind
}

// ScopeFlavor names the kind of lexical scope a construct introduces, for
// the visitor's visit_enter_scope/visit_exit_scope events.
type ScopeFlavor uint8

const (
	BlockScope ScopeFlavor = iota
	FunctionScope
	ForScope
	CatchScope
)

// VariableKind names the declaration form a binding was introduced with.
type VariableKind uint8

const (
	VarKind VariableKind = iota
	LetKind
	ConstKind
	FunctionKind  // function declarations, hoisted like var
	ClassKind     // class declarations, block scoped like let
	ParameterKind // function/arrow parameters
	CatchKind     // catch clause bindings
	ImportKind    // imported bindings
)

// LiteralKind distinguishes the primitive literal forms, all represented
// by LiteralExprNode per spec.md's table ("literal | range only").
type LiteralKind uint8

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	RegexpLiteral
	BooleanLiteral
	NullLiteral
	ThisLiteral
	TemplateLiteralComplete
)

// TokenKind re-exports token.Kind so callers of this package rarely need
// to import internal/token directly for the common case.
type TokenKind = token.Kind
