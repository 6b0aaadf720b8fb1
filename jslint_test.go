package jslint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodel/jslint/internal/diagnostic"
)

func TestDocumentLintRoundTrip(t *testing.T) {
	doc, err := NewDocumentFromSource([]byte("let x; let x;"))
	require.NoError(t, err)

	diags := doc.Lint()
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.CodeRedeclaration, diags[0].Code)
}

func TestDocumentReplaceTextInvalidatesPreviousParse(t *testing.T) {
	doc, err := NewDocumentFromSource([]byte("let x;"))
	require.NoError(t, err)
	require.Empty(t, doc.Lint())

	doc.ReplaceText(0, 6, 0, 6, " let x;")
	diags := doc.Lint()
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.CodeRedeclaration, diags[0].Code)
}

func TestDocumentReplaceWholeEmptyDocumentConvention(t *testing.T) {
	doc := NewDocument()
	require.Empty(t, doc.Lint())

	doc.ReplaceText(0, 0, 1, 0, "let x;")
	assert.Empty(t, doc.Lint())
}

func TestNewDocumentFromSourceRejectsInvalidUTF8(t *testing.T) {
	_, err := NewDocumentFromSource([]byte{0xff, 0xfe, 0x00})
	require.Error(t, err)
}

func TestDocumentIDIsStableAcrossEdits(t *testing.T) {
	doc, err := NewDocumentFromSource([]byte("x;"))
	require.NoError(t, err)
	id := doc.ID()

	doc.Lint()
	doc.ReplaceText(0, 0, 0, 2, "y;")
	doc.Lint()

	assert.Equal(t, id, doc.ID())
}

func TestDocumentUndeclaredVariableIsAWarning(t *testing.T) {
	doc, err := NewDocumentFromSource([]byte("undeclaredVariable;"))
	require.NoError(t, err)

	diags := doc.Lint()
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.CodeUndeclaredVariable, diags[0].Code)
	assert.Equal(t, diagnostic.Warning, diags[0].Severity)
}
