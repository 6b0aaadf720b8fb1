package ast

import "github.com/arnodel/jslint/internal/token"

// ExpressionStatement is an expression followed by `;` or ASI.
type ExpressionStatement struct {
	NodeBase
	Expression Expr
}

func (*ExpressionStatement) StmtKind() StmtKind { return ExpressionStmt }

// Declarator is one `name = init` (or bare `name`) inside a
// var/let/const declaration.
type Declarator struct {
	Target Pattern
	Init   Expr // nil if omitted
}

// VariableDeclaration is a `var`/`let`/`const` statement.
type VariableDeclaration struct {
	NodeBase
	Kind        VariableKind
	Declarators []Declarator
}

func (*VariableDeclaration) StmtKind() StmtKind { return VariableDeclarationStmt }

// FunctionDeclaration is a top-level/block-level `function name(...) {}`.
type FunctionDeclaration struct {
	NodeBase
	Name       token.Identifier
	Params     []Pattern
	Body       *Block
	Attributes Attributes
	Generator  bool
}

func (*FunctionDeclaration) StmtKind() StmtKind { return FunctionDeclarationStmt }

// ClassDeclaration is a `class Name extends Super {...}` statement.
type ClassDeclaration struct {
	NodeBase
	Name       token.Identifier
	SuperClass Expr
	Members    []ClassMember
}

func (*ClassDeclaration) StmtKind() StmtKind { return ClassDeclarationStmt }

// Block is `{ statements... }`; it also stands in for a function or
// arrow-with-statements body.
type Block struct {
	NodeBase
	Statements []Stmt
}

func (*Block) StmtKind() StmtKind { return BlockStmt }

// If is `if (test) consequent else alternate`; Alternate is nil when
// there is no else branch.
type If struct {
	NodeBase
	Test             Expr
	Consequent       Stmt
	Alternate        Stmt
}

func (*If) StmtKind() StmtKind { return IfStmt }

// For is the classic three-clause `for`. Each clause is nil if omitted.
type For struct {
	NodeBase
	Init   Node // *VariableDeclaration or Expr, or nil
	Test   Expr
	Update Expr
	Body   Stmt
}

func (*For) StmtKind() StmtKind { return ForStmt }

// ForIn is `for (left in right) body`.
type ForIn struct {
	NodeBase
	Left  Node // *VariableDeclaration or Expr
	Right Expr
	Body  Stmt
}

func (*ForIn) StmtKind() StmtKind { return ForInStmt }

// ForOf is `for [await] (left of right) body`.
type ForOf struct {
	NodeBase
	Await bool
	Left  Node
	Right Expr
	Body  Stmt
}

func (*ForOf) StmtKind() StmtKind { return ForOfStmt }

// While is `while (test) body`.
type While struct {
	NodeBase
	Test Expr
	Body Stmt
}

func (*While) StmtKind() StmtKind { return WhileStmt }

// DoWhile is `do body while (test)`.
type DoWhile struct {
	NodeBase
	Body Stmt
	Test Expr
}

func (*DoWhile) StmtKind() StmtKind { return DoWhileStmt }

// SwitchCase is one `case test:`/`default:` arm.
type SwitchCase struct {
	Test       Expr // nil for `default`
	Consequent []Stmt
}

// Switch is `switch (discriminant) { cases... }`.
type Switch struct {
	NodeBase
	Discriminant Expr
	Cases        []SwitchCase
}

func (*Switch) StmtKind() StmtKind { return SwitchStmt }

// Catch is the `catch (param) { body }` clause of a Try; Param is nil
// for parameterless catch.
type Catch struct {
	Param Pattern
	Body  *Block
}

// Try is `try { } catch (e) { } finally { }`; Catch and Finally are nil
// when absent.
type Try struct {
	NodeBase
	Body    *Block
	Catch   *Catch
	Finally *Block
}

func (*Try) StmtKind() StmtKind { return TryStmt }

// Throw is `throw expr;`.
type Throw struct {
	NodeBase
	Value Expr
}

func (*Throw) StmtKind() StmtKind { return ThrowStmt }

// Return is `return [expr];`; Value is nil for a bare return.
type Return struct {
	NodeBase
	Value Expr
}

func (*Return) StmtKind() StmtKind { return ReturnStmt }

// Break is `break [label];`.
type Break struct {
	NodeBase
	Label *token.Identifier
}

func (*Break) StmtKind() StmtKind { return BreakStmt }

// Continue is `continue [label];`.
type Continue struct {
	NodeBase
	Label *token.Identifier
}

func (*Continue) StmtKind() StmtKind { return ContinueStmt }

// With is `with (object) body`; diagnosed (E040) but parsed, per
// SPEC_FULL.md §11.
type With struct {
	NodeBase
	Object Expr
	Body   Stmt
}

func (*With) StmtKind() StmtKind { return WithStmt }

// Empty is a bare `;`.
type Empty struct {
	NodeBase
}

func (*Empty) StmtKind() StmtKind { return EmptyStmt }

// Labeled is `label: statement`.
type Labeled struct {
	NodeBase
	Label token.Identifier
	Body  Stmt
}

func (*Labeled) StmtKind() StmtKind { return LabeledStmt }

// Debugger is a bare `debugger;` statement.
type Debugger struct {
	NodeBase
}

func (*Debugger) StmtKind() StmtKind { return DebuggerStmt }

// ImportSpecifier is one named import (`{ a as b }`), a default import,
// or a namespace import (`* as ns`).
type ImportSpecifier struct {
	Imported *token.Identifier // nil for default/namespace
	Local    token.Identifier
	Default  bool
	Namespace bool
}

// ImportDeclaration is `import ... from "module"` or a bare
// `import "module"`.
type ImportDeclaration struct {
	NodeBase
	Specifiers []ImportSpecifier
	Source     string
}

func (*ImportDeclaration) StmtKind() StmtKind { return ImportDeclarationStmt }

// ExportSpecifier is one `{ a as b }` entry of a named export clause.
type ExportSpecifier struct {
	Local    token.Identifier
	Exported token.Identifier
}

// ExportDeclaration covers `export <decl>`, `export default <expr>`,
// `export { ... } [from "module"]`, and `export * from "module"`.
type ExportDeclaration struct {
	NodeBase
	Default     Expr // set for `export default`
	Declaration Stmt // set for `export <declaration>`
	Specifiers  []ExportSpecifier
	Source      *string
	Star        bool
}

func (*ExportDeclaration) StmtKind() StmtKind { return ExportDeclarationStmt }

// InvalidStatement is the statement-level error-recovery sentinel.
type InvalidStatement struct {
	NodeBase
}

func (*InvalidStatement) StmtKind() StmtKind { return InvalidStmt }
