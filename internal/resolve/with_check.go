package resolve

import (
	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
)

// diagnoseWithStatements flags every `with` statement in program
// (with_statement_not_allowed, E040, warning; SPEC_FULL.md §11; spec.md
// §4.5 says `with` is "diagnosed but parsed"). Finding a `with` node needs
// no scope state, so this runs as a single read-only ast.Walk pass rather
// than folding into resolveStmt's scope-aware switch.
func diagnoseWithStatements(program []ast.Stmt, diags *diagnostic.Collector, loc *sourcecode.Locator) {
	for _, s := range program {
		ast.Walk(s, func(node, parent ast.Node) bool {
			if w, ok := node.(*ast.With); ok {
				diags.Warning(diagnostic.CodeWithStatement, "`with` statements are not allowed", loc.Range(w.Range()))
			}
			return true
		})
	}
}
