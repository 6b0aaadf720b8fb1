package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/jslint/internal/sourcecode"
)

func TestCollector(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		c := NewCollector()
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, c.All())
	})

	t.Run("Error and Warning append in call order", func(t *testing.T) {
		c := NewCollector()
		c.Error(CodeMissingOperand, "oops", sourcecode.Range{Span: sourcecode.Span{Begin: 0, End: 1}})
		c.Warning(CodeUndeclaredVariable, "hm", sourcecode.Range{Span: sourcecode.Span{Begin: 2, End: 3}})

		require.Equal(t, 2, c.Len())
		all := c.All()
		assert.Equal(t, CodeMissingOperand, all[0].Code)
		assert.Equal(t, Error, all[0].Severity)
		assert.Equal(t, CodeUndeclaredVariable, all[1].Code)
		assert.Equal(t, Warning, all[1].Severity)
	})

	t.Run("Add appends a raw Diagnostic", func(t *testing.T) {
		c := NewCollector()
		c.Add(Diagnostic{Code: CodeRedeclaration, Severity: Error, Message: "dup"})
		require.Equal(t, 1, c.Len())
		assert.Equal(t, CodeRedeclaration, c.All()[0].Code)
	})
}
