package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/parser"
	"github.com/arnodel/jslint/internal/sourcecode"
)

func resolveSrc(src string) *diagnostic.Collector {
	diags := diagnostic.NewCollector()
	loc := sourcecode.NewLocator([]byte(src))
	program := parser.Parse([]byte(src), diags, loc)
	Resolve(program, diags, loc)
	return diags
}

func TestScenarios(t *testing.T) {
	t.Run("redeclaring a let binding is an error", func(t *testing.T) {
		diags := resolveSrc("let x; let x;")
		require.Len(t, diags.All(), 1)
		d := diags.All()[0]
		assert.Equal(t, diagnostic.CodeRedeclaration, d.Code)
		assert.Equal(t, diagnostic.Error, d.Severity)
		assert.Equal(t, int32(11), d.Range.Begin)
		assert.Equal(t, int32(12), d.Range.End)
	})

	t.Run("undeclared variable use is a warning", func(t *testing.T) {
		diags := resolveSrc("undeclaredVariable;")
		require.Len(t, diags.All(), 1)
		d := diags.All()[0]
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, d.Code)
		assert.Equal(t, diagnostic.Warning, d.Severity)
		assert.Equal(t, int32(0), d.Range.Begin)
		assert.Equal(t, int32(18), d.Range.End)
	})

	t.Run("redeclaring var with var is legal", func(t *testing.T) {
		diags := resolveSrc("var x; var x;")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("redeclaring var with function is legal", func(t *testing.T) {
		diags := resolveSrc("var f; function f() {}")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("redeclaring let with var is an error", func(t *testing.T) {
		diags := resolveSrc("let x; var x;")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeRedeclaration, diags.All()[0].Code)
	})

	t.Run("var hoists above its use", func(t *testing.T) {
		diags := resolveSrc("x; var x;")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("var hoists through a nested block", func(t *testing.T) {
		diags := resolveSrc("function f() { x; if (true) { var x; } }")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("function declaration hoists above its use", func(t *testing.T) {
		diags := resolveSrc("f(); function f() {}")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("let does not hoist above its use", func(t *testing.T) {
		diags := resolveSrc("x; let x;")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags.All()[0].Code)
	})

	t.Run("assigning to a const binding is an error", func(t *testing.T) {
		diags := resolveSrc("const x = 1; x = 2;")
		require.Len(t, diags.All(), 1)
		d := diags.All()[0]
		assert.Equal(t, diagnostic.CodeConstAssignment, d.Code)
		assert.Equal(t, diagnostic.Error, d.Severity)
	})

	t.Run("assigning to a let binding is not an error", func(t *testing.T) {
		diags := resolveSrc("let x = 1; x = 2;")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("await inside an async function is legal", func(t *testing.T) {
		diags := resolveSrc("async function f() { await 1; }")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("await outside any async function is an error", func(t *testing.T) {
		diags := resolveSrc("await 1;")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeAwaitOutsideAsync, diags.All()[0].Code)
	})

	t.Run("await inside a non-async function nested in an async one is an error", func(t *testing.T) {
		diags := resolveSrc("async function f() { function g() { await 1; } }")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeAwaitOutsideAsync, diags.All()[0].Code)
	})

	t.Run("a catch parameter is scoped to its own block", func(t *testing.T) {
		diags := resolveSrc("try {} catch (e) { e; }")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("a catch parameter does not leak past its block", func(t *testing.T) {
		diags := resolveSrc("try {} catch (e) {} e;")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags.All()[0].Code)
	})

	t.Run("a for-loop binding does not leak past the loop", func(t *testing.T) {
		diags := resolveSrc("for (let i = 0; i < 1; i++) {} i;")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags.All()[0].Code)
	})

	t.Run("a for-of binding is visible in the body", func(t *testing.T) {
		diags := resolveSrc("for (const x of [1, 2]) { x; }")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("a block-scoped binding does not leak past its block", func(t *testing.T) {
		diags := resolveSrc("{ let x; } x;")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags.All()[0].Code)
	})

	t.Run("a nested label shadowing an active one is an error", func(t *testing.T) {
		diags := resolveSrc("outer: while (true) { outer: while (true) { break outer; } }")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeRedeclaration, diags.All()[0].Code)
	})

	t.Run("two sibling labels of the same name are not shadowing", func(t *testing.T) {
		diags := resolveSrc("outer: while (true) { break outer; } outer: while (true) { break outer; }")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("a function parameter shadows an outer binding without conflict", func(t *testing.T) {
		diags := resolveSrc("let x; function f(x) { x; }")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("a named function expression's own name is visible only inside its body", func(t *testing.T) {
		diags := resolveSrc("const f = function g() { g(); };")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("a named function expression's own name does not leak outside", func(t *testing.T) {
		diags := resolveSrc("const f = function g() {}; g();")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags.All()[0].Code)
	})

	t.Run("a named class expression's own name is visible only inside its body", func(t *testing.T) {
		diags := resolveSrc("const C = class D { static m() { return D; } };")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("a named class expression's own name does not leak outside", func(t *testing.T) {
		diags := resolveSrc("const C = class D {}; D;")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags.All()[0].Code)
	})

	t.Run("a class declaration's own name is visible after it", func(t *testing.T) {
		diags := resolveSrc("class C {} C;")
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("destructuring declarations bind every target", func(t *testing.T) {
		diags := resolveSrc("const { a, b: [c, ...d] } = obj; a; c; d;")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags.All()[0].Code)
		assert.Contains(t, diags.All()[0].Message, "obj")
	})

	t.Run("a with statement is flagged but its body still resolves", func(t *testing.T) {
		diags := resolveSrc("let x; with (x) { y; }")
		require.Len(t, diags.All(), 2)
		assert.Equal(t, diagnostic.CodeWithStatement, diags.All()[0].Code)
		assert.Equal(t, diagnostic.Warning, diags.All()[0].Severity)
		assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags.All()[1].Code)
	})

	t.Run("destructuring assignment targets resolve as assignments", func(t *testing.T) {
		diags := resolveSrc("const x = 1; [x] = [2];")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeConstAssignment, diags.All()[0].Code)
	})
}
