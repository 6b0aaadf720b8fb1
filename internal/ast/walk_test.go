package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/jslint/internal/token"
)

func ident(name string) *Variable {
	return &Variable{Name: token.Identifier{Name: name}}
}

func TestWalk(t *testing.T) {
	t.Run("visits every descendant in pre-order", func(t *testing.T) {
		tree := &BinaryOperator{
			Operands: []Expr{ident("a"), ident("b"), ident("c")},
		}

		var visited []Node
		Walk(tree, func(node, parent Node) bool {
			visited = append(visited, node)
			return true
		})

		require.Len(t, visited, 4)
		assert.Same(t, tree, visited[0])
		assert.Same(t, tree.Operands[0], visited[1])
		assert.Same(t, tree.Operands[1], visited[2])
		assert.Same(t, tree.Operands[2], visited[3])
	})

	t.Run("returning false prunes children", func(t *testing.T) {
		pruned := &BinaryOperator{Operands: []Expr{ident("a"), ident("b")}}
		tree := &UnaryOperator{Operand: pruned}

		var visited []Node
		Walk(tree, func(node, parent Node) bool {
			visited = append(visited, node)
			return node != Node(pruned)
		})

		require.Len(t, visited, 2)
		assert.Same(t, tree, visited[0])
		assert.Same(t, pruned, visited[1])
	})

	t.Run("passes the correct parent", func(t *testing.T) {
		child := ident("x")
		tree := &ExpressionStatement{Expression: child}

		var gotParent Node
		Walk(tree, func(node, parent Node) bool {
			if node == Node(child) {
				gotParent = parent
			}
			return true
		})

		assert.Same(t, tree, gotParent)
	})

	t.Run("nil node is a no-op", func(t *testing.T) {
		calls := 0
		Walk(nil, func(node, parent Node) bool {
			calls++
			return true
		})
		assert.Equal(t, 0, calls)
	})
}
