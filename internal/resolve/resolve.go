// Package resolve implements the variable-resolution visitor spec.md §4.5
// describes as sitting on top of the parser's events: it walks the parsed
// statement list, tracks lexical scopes (block/function/for/catch), and
// diagnoses undeclared-variable use, redeclaration, assignment to `const`,
// and `await` outside an async function.
//
// ast.Walk only fires on entry, with no matching exit callback (see
// internal/ast/walk.go), which is unworkable for scope push/pop, so this
// package drives its own recursive traversal instead of riding on Walk,
// getting natural enter/exit semantics from Go's call stack.
package resolve

import (
	"fmt"

	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/astutil"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
)

type bindingInfo struct {
	kind ast.VariableKind
	span sourcecode.Span
}

type scope struct {
	parent   *scope
	flavor   ast.ScopeFlavor
	bindings map[string]bindingInfo
}

func newScope(parent *scope, flavor ast.ScopeFlavor) *scope {
	return &scope{parent: parent, flavor: flavor, bindings: make(map[string]bindingInfo)}
}

// Resolver holds the scope stack and the async-function-context stack for
// one resolution pass over a parsed program.
type Resolver struct {
	diags   *diagnostic.Collector
	loc     *sourcecode.Locator
	current *scope

	// asyncStack mirrors the enclosing function-like nesting; its top
	// says whether `await` is legal at the current point. The module's
	// own top-level frame is non-async, so top-level `await` is flagged
	// like any other; spec.md does not carve out an exception.
	asyncStack []bool

	// labels tracks the statement labels currently in scope, to catch a
	// label shadowing one already active in the same function.
	labels []string
}

// Resolve walks program, a full parsed statement list, reporting semantic
// diagnostics into diags.
func Resolve(program []ast.Stmt, diags *diagnostic.Collector, loc *sourcecode.Locator) {
	diagnoseWithStatements(program, diags, loc)

	r := &Resolver{diags: diags, loc: loc, asyncStack: []bool{false}}
	r.current = newScope(nil, ast.FunctionScope)
	r.hoistVarsAndFunctions(program)
	r.resolveStmts(program)
}

func (r *Resolver) errorAt(code, message string, span sourcecode.Span) {
	r.diags.Error(code, message, r.loc.Range(span))
}

func (r *Resolver) warnAt(code, message string, span sourcecode.Span) {
	r.diags.Warning(code, message, r.loc.Range(span))
}

func (r *Resolver) enterScope(flavor ast.ScopeFlavor) {
	r.current = newScope(r.current, flavor)
}

func (r *Resolver) exitScope() {
	r.current = r.current.parent
}

// declare registers name in the current scope. var/function bindings may
// coexist with other var/function bindings or parameters of the same name
// (ordinary JS redeclaration); any other pair, including anything touching
// let/const/class, conflicts (spec.md's redeclaration_of_variable, E034).
func (r *Resolver) declare(name string, kind ast.VariableKind, span sourcecode.Span) {
	if existing, ok := r.current.bindings[name]; ok {
		if !((isHoistable(existing.kind) || existing.kind == ast.ParameterKind) && isHoistable(kind)) {
			r.errorAt(diagnostic.CodeRedeclaration, fmt.Sprintf("%q is already declared in this scope", name), span)
		}
		return
	}
	r.current.bindings[name] = bindingInfo{kind: kind, span: span}
}

func isHoistable(k ast.VariableKind) bool {
	return k == ast.VarKind || k == ast.FunctionKind
}

func (r *Resolver) declarePattern(pat ast.Pattern, kind ast.VariableKind) {
	switch pt := pat.(type) {
	case nil:
	case *ast.PatternIdentifierNode:
		r.declare(pt.Name.Name, kind, pt.Name.Span)
	case *ast.PatternArrayNode:
		for _, el := range pt.Elements {
			if el != nil {
				r.declarePattern(el, kind)
			}
		}
		if pt.Rest != nil {
			r.declarePattern(pt.Rest, kind)
		}
	case *ast.PatternObjectNode:
		for _, prop := range pt.Properties {
			r.declarePattern(prop.Value, kind)
		}
		if pt.Rest != nil {
			r.declarePattern(pt.Rest, kind)
		}
	case *ast.PatternAssignmentNode:
		r.declarePattern(pt.Target, kind)
	case *ast.PatternRestNode:
		r.declarePattern(pt.Target, kind)
	}
}

// hoistVarsAndFunctions pre-registers every `var` declarator and function
// declaration reachable from stmts without crossing a nested
// function/arrow boundary, so they are visible to uses that lexically
// precede them, ordinary JS hoisting. It runs once per function/module
// scope, right after that scope is entered, against that scope's full
// statement tree (blocks, if/for/while/switch/try nest transparently;
// function and class bodies do not).
func (r *Resolver) hoistVarsAndFunctions(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.hoistStmt(s)
	}
}

func (r *Resolver) hoistStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.VariableDeclaration:
		if st.Kind == ast.VarKind {
			for _, d := range st.Declarators {
				r.declarePattern(d.Target, ast.VarKind)
			}
		}
	case *ast.FunctionDeclaration:
		r.declare(st.Name.Name, ast.FunctionKind, st.Name.Span)
	case *ast.Block:
		r.hoistVarsAndFunctions(st.Statements)
	case *ast.If:
		r.hoistStmt(st.Consequent)
		if st.Alternate != nil {
			r.hoistStmt(st.Alternate)
		}
	case *ast.For:
		if decl, ok := st.Init.(*ast.VariableDeclaration); ok && decl.Kind == ast.VarKind {
			for _, d := range decl.Declarators {
				r.declarePattern(d.Target, ast.VarKind)
			}
		}
		r.hoistStmt(st.Body)
	case *ast.ForIn:
		if decl, ok := st.Left.(*ast.VariableDeclaration); ok && decl.Kind == ast.VarKind {
			for _, d := range decl.Declarators {
				r.declarePattern(d.Target, ast.VarKind)
			}
		}
		r.hoistStmt(st.Body)
	case *ast.ForOf:
		if decl, ok := st.Left.(*ast.VariableDeclaration); ok && decl.Kind == ast.VarKind {
			for _, d := range decl.Declarators {
				r.declarePattern(d.Target, ast.VarKind)
			}
		}
		r.hoistStmt(st.Body)
	case *ast.While:
		r.hoistStmt(st.Body)
	case *ast.DoWhile:
		r.hoistStmt(st.Body)
	case *ast.Switch:
		for _, c := range st.Cases {
			r.hoistVarsAndFunctions(c.Consequent)
		}
	case *ast.Try:
		r.hoistVarsAndFunctions(st.Body.Statements)
		if st.Catch != nil {
			r.hoistVarsAndFunctions(st.Catch.Body.Statements)
		}
		if st.Finally != nil {
			r.hoistVarsAndFunctions(st.Finally.Statements)
		}
	case *ast.Labeled:
		r.hoistStmt(st.Body)
	case *ast.With:
		r.hoistStmt(st.Body)
	}
}

func (r *Resolver) lookup(name string) (bindingInfo, bool) {
	for sc := r.current; sc != nil; sc = sc.parent {
		if info, ok := sc.bindings[name]; ok {
			return info, true
		}
	}
	return bindingInfo{}, false
}

// useOrAssign resolves one name reference: visit_variable_use when
// isAssignment is false, visit_variable_assignment otherwise. An
// unresolved name is use_of_undeclared_variable (E030, warning);
// assigning to a resolved `const` binding is assignment_to_const_variable
// (E033, error).
func (r *Resolver) useOrAssign(name string, span sourcecode.Span, isAssignment bool) {
	info, found := r.lookup(name)
	if !found {
		r.warnAt(diagnostic.CodeUndeclaredVariable, fmt.Sprintf("%q is not declared", name), span)
		return
	}
	if isAssignment && info.kind == ast.ConstKind {
		r.errorAt(diagnostic.CodeConstAssignment, fmt.Sprintf("cannot assign to const variable %q", name), span)
	}
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.ExpressionStatement:
		r.resolveExpr(st.Expression)
	case *ast.VariableDeclaration:
		for _, d := range st.Declarators {
			if st.Kind != ast.VarKind {
				r.declarePattern(d.Target, st.Kind)
			}
			if d.Init != nil {
				r.resolveExpr(d.Init)
			}
		}
	case *ast.FunctionDeclaration:
		r.resolveFunction(st.Params, st.Body, st.Attributes == ast.AsyncAttr)
	case *ast.ClassDeclaration:
		r.declare(st.Name.Name, ast.ClassKind, st.Name.Span)
		r.resolveClassMembers(st.SuperClass, st.Members)
	case *ast.Block:
		r.enterScope(ast.BlockScope)
		r.resolveStmts(st.Statements)
		r.exitScope()
	case *ast.If:
		r.resolveExpr(st.Test)
		r.resolveStmt(st.Consequent)
		if st.Alternate != nil {
			r.resolveStmt(st.Alternate)
		}
	case *ast.For:
		r.enterScope(ast.ForScope)
		if decl, ok := st.Init.(*ast.VariableDeclaration); ok {
			for _, d := range decl.Declarators {
				if decl.Kind != ast.VarKind {
					r.declarePattern(d.Target, decl.Kind)
				}
				if d.Init != nil {
					r.resolveExpr(d.Init)
				}
			}
		} else if initExpr, ok := st.Init.(ast.Expr); ok {
			r.resolveExpr(initExpr)
		}
		if st.Test != nil {
			r.resolveExpr(st.Test)
		}
		if st.Update != nil {
			r.resolveExpr(st.Update)
		}
		r.resolveStmt(st.Body)
		r.exitScope()
	case *ast.ForIn:
		r.resolveForHead(st.Left, st.Right)
		r.resolveStmt(st.Body)
		r.exitScope()
	case *ast.ForOf:
		r.resolveForHead(st.Left, st.Right)
		r.resolveStmt(st.Body)
		r.exitScope()
	case *ast.While:
		r.resolveExpr(st.Test)
		r.resolveStmt(st.Body)
	case *ast.DoWhile:
		r.resolveStmt(st.Body)
		r.resolveExpr(st.Test)
	case *ast.Switch:
		r.resolveExpr(st.Discriminant)
		r.enterScope(ast.BlockScope)
		for _, c := range st.Cases {
			if c.Test != nil {
				r.resolveExpr(c.Test)
			}
			r.resolveStmts(c.Consequent)
		}
		r.exitScope()
	case *ast.Try:
		r.enterScope(ast.BlockScope)
		r.resolveStmts(st.Body.Statements)
		r.exitScope()
		if st.Catch != nil {
			r.enterScope(ast.CatchScope)
			if st.Catch.Param != nil {
				r.declarePattern(st.Catch.Param, ast.CatchKind)
			}
			r.resolveStmts(st.Catch.Body.Statements)
			r.exitScope()
		}
		if st.Finally != nil {
			r.enterScope(ast.BlockScope)
			r.resolveStmts(st.Finally.Statements)
			r.exitScope()
		}
	case *ast.Throw:
		r.resolveExpr(st.Value)
	case *ast.Return:
		if st.Value != nil {
			r.resolveExpr(st.Value)
		}
	case *ast.With:
		r.resolveExpr(st.Object)
		r.resolveStmt(st.Body)
	case *ast.Labeled:
		pushed := !astutil.SliceContains(r.labels, st.Label.Name)
		if pushed {
			r.labels = append(r.labels, st.Label.Name)
		} else {
			r.errorAt(diagnostic.CodeRedeclaration, fmt.Sprintf("label %q is already active", st.Label.Name), st.Label.Span)
		}
		r.resolveStmt(st.Body)
		if pushed {
			r.labels = r.labels[:len(r.labels)-1]
		}
	case *ast.ImportDeclaration:
		for _, spec := range st.Specifiers {
			r.declare(spec.Local.Name, ast.ImportKind, spec.Local.Span)
		}
	case *ast.ExportDeclaration:
		if st.Declaration != nil {
			r.resolveStmt(st.Declaration)
		}
		if st.Default != nil {
			r.resolveExpr(st.Default)
		}
	}
}

// resolveForHead enters the for-loop's own scope (for-in/for-of bindings
// are visible only to the test/body, not the enclosing scope) and
// resolves its left-hand side; the caller resolves the body and exits
// the scope once that's done.
func (r *Resolver) resolveForHead(left ast.Node, right ast.Expr) {
	r.enterScope(ast.ForScope)
	if decl, ok := left.(*ast.VariableDeclaration); ok {
		for _, d := range decl.Declarators {
			if decl.Kind != ast.VarKind {
				r.declarePattern(d.Target, decl.Kind)
			}
		}
	} else if leftExpr, ok := left.(ast.Expr); ok {
		r.resolveAssignmentTarget(leftExpr)
	}
	r.resolveExpr(right)
}

// resolveFunction pushes a fresh function scope, declares params, hoists
// the body's own vars/functions into it, and resolves the body. Shared
// by function declarations/expressions, methods, accessors, and
// statement-bodied arrows.
func (r *Resolver) resolveFunction(params []ast.Pattern, body *ast.Block, async bool) {
	r.enterScope(ast.FunctionScope)
	for _, pr := range params {
		r.declarePattern(pr, ast.ParameterKind)
	}
	r.asyncStack = append(r.asyncStack, async)
	outerLabels := r.labels
	r.labels = nil
	r.hoistVarsAndFunctions(body.Statements)
	r.resolveStmts(body.Statements)
	r.labels = outerLabels
	r.asyncStack = r.asyncStack[:len(r.asyncStack)-1]
	r.exitScope()
}

// resolveArrowExpr is resolveFunction's counterpart for `(params) => expr`,
// whose body is a single expression rather than a block.
func (r *Resolver) resolveArrowExpr(params []ast.Pattern, body ast.Expr, async bool) {
	r.enterScope(ast.FunctionScope)
	for _, pr := range params {
		r.declarePattern(pr, ast.ParameterKind)
	}
	r.asyncStack = append(r.asyncStack, async)
	r.resolveExpr(body)
	r.asyncStack = r.asyncStack[:len(r.asyncStack)-1]
	r.exitScope()
}

func (r *Resolver) resolveClassMembers(super ast.Expr, members []ast.ClassMember) {
	if super != nil {
		r.resolveExpr(super)
	}
	for _, m := range members {
		if m.Computed && m.Key != nil {
			r.resolveExpr(m.Key)
		}
		switch m.Kind {
		case ast.MethodMember, ast.GetterMember, ast.SetterMember:
			if fn, ok := m.Value.(*ast.Function); ok {
				r.resolveFunction(fn.Params, fn.Body, fn.Attributes == ast.AsyncAttr)
			}
		case ast.FieldMember:
			if m.Value != nil {
				r.resolveExpr(m.Value)
			}
		}
	}
}

// resolveAssignmentTarget resolves the left-hand side of an assignment or
// update: a bare variable is visit_variable_assignment; a member
// expression only has its object/subscript visited as uses (the member
// itself isn't a binding); array/object patterns (reachable when an
// assignment's LHS was itself a destructuring literal) recurse
// per-element.
func (r *Resolver) resolveAssignmentTarget(e ast.Expr) {
	switch v := e.(type) {
	case nil:
	case *ast.Variable:
		r.useOrAssign(v.Name.Name, v.Name.Span, true)
	case *ast.Dot:
		r.resolveExpr(v.Object)
	case *ast.Index:
		r.resolveExpr(v.Object)
		r.resolveExpr(v.Subscript)
	case *ast.Array:
		for _, el := range v.Elements {
			r.resolveAssignmentTarget(el)
		}
	case *ast.Object:
		for _, entry := range v.Entries {
			if entry.Value != nil {
				r.resolveAssignmentTarget(entry.Value)
			}
		}
	case *ast.Spread:
		r.resolveAssignmentTarget(v.Operand)
	case *ast.Assignment:
		r.resolveAssignmentTarget(v.Left)
		r.resolveExpr(v.Right)
	default:
		r.resolveExpr(e)
	}
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch v := e.(type) {
	case nil, *ast.Invalid, *ast.Literal, *ast.Super, *ast.Import:
		return
	case *ast.Variable:
		r.useOrAssign(v.Name.Name, v.Name.Span, false)
	case *ast.UnaryOperator:
		if v.Operand != nil {
			r.resolveExpr(v.Operand)
		}
	case *ast.BinaryOperator:
		for _, op := range v.Operands {
			r.resolveExpr(op)
		}
	case *ast.Assignment:
		r.resolveAssignmentTarget(v.Left)
		r.resolveExpr(v.Right)
	case *ast.UpdatingAssignment:
		r.resolveAssignmentTarget(v.Left)
		r.resolveExpr(v.Right)
	case *ast.RWUnaryPrefix:
		r.resolveAssignmentTarget(v.Operand)
	case *ast.RWUnarySuffix:
		r.resolveAssignmentTarget(v.Operand)
	case *ast.Conditional:
		r.resolveExpr(v.Test)
		r.resolveExpr(v.Consequent)
		r.resolveExpr(v.Alternate)
	case *ast.Dot:
		r.resolveExpr(v.Object)
	case *ast.Index:
		r.resolveExpr(v.Object)
		r.resolveExpr(v.Subscript)
	case *ast.Call:
		r.resolveExpr(v.Callee)
		for _, a := range v.Args {
			r.resolveExpr(a)
		}
	case *ast.New:
		r.resolveExpr(v.Callee)
		for _, a := range v.Args {
			r.resolveExpr(a)
		}
	case *ast.Template:
		if v.Tag != nil {
			r.resolveExpr(v.Tag)
		}
		for _, s := range v.Substitutions {
			r.resolveExpr(s)
		}
	case *ast.Array:
		for _, el := range v.Elements {
			r.resolveExpr(el)
		}
	case *ast.Object:
		for _, entry := range v.Entries {
			if entry.Computed && entry.Property != nil {
				r.resolveExpr(entry.Property)
			}
			if entry.Value != nil {
				r.resolveExpr(entry.Value)
			}
		}
	case *ast.Spread:
		r.resolveExpr(v.Operand)
	case *ast.Await:
		if !r.asyncStack[len(r.asyncStack)-1] {
			r.errorAt(diagnostic.CodeAwaitOutsideAsync, "await outside async function", v.Range())
		}
		if v.Operand != nil {
			r.resolveExpr(v.Operand)
		}
	case *ast.Function:
		r.resolveFunction(v.Params, v.Body, v.Attributes == ast.AsyncAttr)
	case *ast.NamedFunction:
		r.enterScope(ast.FunctionScope)
		r.declare(v.Name.Name, ast.FunctionKind, v.Name.Span)
		r.resolveFunction(v.Params, v.Body, v.Attributes == ast.AsyncAttr)
		r.exitScope()
	case *ast.ArrowFunctionWithExpression:
		r.resolveArrowExpr(v.Parameters, v.Body, v.Attributes == ast.AsyncAttr)
	case *ast.ArrowFunctionWithStatements:
		r.resolveFunction(v.Parameters, v.Body, v.Attributes == ast.AsyncAttr)
	case *ast.Class:
		if v.Name != nil {
			r.enterScope(ast.BlockScope)
			r.declare(v.Name.Name, ast.ClassKind, v.Name.Span)
			r.resolveClassMembers(v.SuperClass, v.Members)
			r.exitScope()
		} else {
			r.resolveClassMembers(v.SuperClass, v.Members)
		}
	}
}
