package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

func parseSrc(src string) ([]ast.Stmt, *diagnostic.Collector) {
	diags := diagnostic.NewCollector()
	loc := sourcecode.NewLocator([]byte(src))
	return Parse([]byte(src), diags, loc), diags
}

func exprStmt(t *testing.T, stmts []ast.Stmt, i int) ast.Expr {
	t.Helper()
	require.Greater(t, len(stmts), i)
	es, ok := stmts[i].(*ast.ExpressionStatement)
	require.True(t, ok, "statement %d is %T, not an ExpressionStatement", i, stmts[i])
	return es.Expression
}

func TestScenarios(t *testing.T) {
	t.Run("bare identifier", func(t *testing.T) {
		stmts, diags := parseSrc("x")
		require.Equal(t, 0, diags.Len())
		v, ok := exprStmt(t, stmts, 0).(*ast.Variable)
		require.True(t, ok)
		assert.Equal(t, "x", v.Name.Name)
	})

	t.Run("simple binary", func(t *testing.T) {
		stmts, diags := parseSrc("2+2")
		require.Equal(t, 0, diags.Len())
		bin, ok := exprStmt(t, stmts, 0).(*ast.BinaryOperator)
		require.True(t, ok)
		require.Len(t, bin.Operands, 2)
		require.Len(t, bin.Operators, 1)
		assert.Equal(t, token.Plus, bin.Operators[0])
	})

	t.Run("same-precedence chain flattens", func(t *testing.T) {
		stmts, diags := parseSrc("x+y-z")
		require.Equal(t, 0, diags.Len())
		bin, ok := exprStmt(t, stmts, 0).(*ast.BinaryOperator)
		require.True(t, ok)
		require.Len(t, bin.Operands, 3)
		require.Equal(t, []token.Kind{token.Plus, token.Minus}, bin.Operators)
		for i, name := range []string{"x", "y", "z"} {
			v, ok := bin.Operands[i].(*ast.Variable)
			require.True(t, ok)
			assert.Equal(t, name, v.Name.Name)
		}
	})

	t.Run("nested conditional is right associative", func(t *testing.T) {
		stmts, diags := parseSrc("a ? b : c ? d : e")
		require.Equal(t, 0, diags.Len())
		outer, ok := exprStmt(t, stmts, 0).(*ast.Conditional)
		require.True(t, ok)
		inner, ok := outer.Alternate.(*ast.Conditional)
		require.True(t, ok)
		assert.Equal(t, "c", inner.Test.(*ast.Variable).Name.Name)
		assert.Equal(t, "d", inner.Consequent.(*ast.Variable).Name.Name)
		assert.Equal(t, "e", inner.Alternate.(*ast.Variable).Name.Name)
	})

	t.Run("missing operand", func(t *testing.T) {
		stmts, diags := parseSrc("2+")
		require.Equal(t, 1, diags.Len())
		assert.Equal(t, diagnostic.CodeMissingOperand, diags.All()[0].Code)
		assert.Equal(t, int32(1), diags.All()[0].Range.Begin)
		assert.Equal(t, int32(2), diags.All()[0].Range.End)
		bin, ok := exprStmt(t, stmts, 0).(*ast.BinaryOperator)
		require.True(t, ok)
		_, ok = bin.Operands[1].(*ast.Invalid)
		assert.True(t, ok)
	})

	t.Run("repeated missing operands", func(t *testing.T) {
		stmts, diags := parseSrc("2 & & & 2")
		require.Len(t, diags.All(), 2)
		assert.Equal(t, diagnostic.CodeMissingOperand, diags.All()[0].Code)
		assert.Equal(t, int32(2), diags.All()[0].Range.Begin)
		assert.Equal(t, int32(3), diags.All()[0].Range.End)
		assert.Equal(t, diagnostic.CodeMissingOperand, diags.All()[1].Code)
		assert.Equal(t, int32(4), diags.All()[1].Range.Begin)
		assert.Equal(t, int32(5), diags.All()[1].Range.End)

		bin, ok := exprStmt(t, stmts, 0).(*ast.BinaryOperator)
		require.True(t, ok)
		require.Len(t, bin.Operands, 4)
		_, ok = bin.Operands[1].(*ast.Invalid)
		assert.True(t, ok)
		_, ok = bin.Operands[2].(*ast.Invalid)
		assert.True(t, ok)
		_, ok = bin.Operands[3].(*ast.Literal)
		assert.True(t, ok)
	})

	t.Run("innermost unmatched paren reported first", func(t *testing.T) {
		_, diags := parseSrc("2 * (3 + (4")
		require.Len(t, diags.All(), 2)
		assert.Equal(t, diagnostic.CodeUnmatchedParenthesis, diags.All()[0].Code)
		assert.Equal(t, int32(9), diags.All()[0].Range.Begin)
		assert.Equal(t, diagnostic.CodeUnmatchedParenthesis, diags.All()[1].Code)
		assert.Equal(t, int32(4), diags.All()[1].Range.Begin)
	})

	t.Run("invalid assignment target", func(t *testing.T) {
		stmts, diags := parseSrc("x+y=z")
		require.Len(t, diags.All(), 1)
		assert.Equal(t, diagnostic.CodeInvalidAssignmentTarget, diags.All()[0].Code)
		assert.Equal(t, int32(0), diags.All()[0].Range.Begin)
		assert.Equal(t, int32(3), diags.All()[0].Range.End)
		assign, ok := exprStmt(t, stmts, 0).(*ast.Assignment)
		require.True(t, ok)
		_, ok = assign.Left.(*ast.BinaryOperator)
		assert.True(t, ok)
	})

	t.Run("ASI splits postfix across a newline", func(t *testing.T) {
		stmts, diags := parseSrc("x\n++\ny")
		require.Equal(t, 0, diags.Len())
		require.Len(t, stmts, 2)
		v, ok := exprStmt(t, stmts, 0).(*ast.Variable)
		require.True(t, ok)
		assert.Equal(t, "x", v.Name.Name)
		prefix, ok := exprStmt(t, stmts, 1).(*ast.RWUnaryPrefix)
		require.True(t, ok)
		assert.Equal(t, token.Increment, prefix.Operator)
		operand, ok := prefix.Operand.(*ast.Variable)
		require.True(t, ok)
		assert.Equal(t, "y", operand.Name.Name)
	})

	t.Run("async arrow with a statement body", func(t *testing.T) {
		stmts, diags := parseSrc("async (x, y, z) => { w; }")
		require.Equal(t, 0, diags.Len())
		arrow, ok := exprStmt(t, stmts, 0).(*ast.ArrowFunctionWithStatements)
		require.True(t, ok)
		assert.Equal(t, ast.AsyncAttr, arrow.Attributes)
		require.Len(t, arrow.Parameters, 3)
		for i, name := range []string{"x", "y", "z"} {
			p, ok := arrow.Parameters[i].(*ast.PatternIdentifierNode)
			require.True(t, ok)
			assert.Equal(t, name, p.Name.Name)
		}
		require.Len(t, arrow.Body.Statements, 1)
	})

	t.Run("array literal drops elided holes", func(t *testing.T) {
		stmts, diags := parseSrc("[,,x,,y,,]")
		require.Equal(t, 0, diags.Len())
		arr, ok := exprStmt(t, stmts, 0).(*ast.Array)
		require.True(t, ok)
		require.Len(t, arr.Elements, 2)
		assert.Equal(t, "x", arr.Elements[0].(*ast.Variable).Name.Name)
		assert.Equal(t, "y", arr.Elements[1].(*ast.Variable).Name.Name)
	})

	t.Run("slash reinterpreted as regex, not division", func(t *testing.T) {
		stmts, diags := parseSrc("/hello/.test(s)")
		require.Equal(t, 0, diags.Len())
		call, ok := exprStmt(t, stmts, 0).(*ast.Call)
		require.True(t, ok)
		dot, ok := call.Callee.(*ast.Dot)
		require.True(t, ok)
		assert.Equal(t, "test", dot.Identifier.Name)
		lit, ok := dot.Object.(*ast.Literal)
		require.True(t, ok)
		assert.Equal(t, ast.RegexpLiteral, lit.Kind)
		require.Len(t, call.Args, 1)
		assert.Equal(t, "s", call.Args[0].(*ast.Variable).Name.Name)
	})
}
