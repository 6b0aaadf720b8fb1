package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

func newLexer(src string) (*Lexer, *diagnostic.Collector) {
	diags := diagnostic.NewCollector()
	loc := sourcecode.NewLocator([]byte(src))
	return New([]byte(src), diags, loc), diags
}

func collectKinds(t *testing.T, l *Lexer) []token.Kind {
	t.Helper()
	var kinds []token.Kind
	for {
		tok := l.Peek()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			return kinds
		}
		l.Skip()
	}
}

func TestLexer(t *testing.T) {
	t.Run("identifiers and keywords", func(t *testing.T) {
		l, _ := newLexer("let x = foo")
		assert.Equal(t, []token.Kind{token.Let, token.Ident, token.Assign, token.Ident, token.EOF}, collectKinds(t, l))
	})

	t.Run("numbers", func(t *testing.T) {
		for _, src := range []string{"0", "123", "0x1F", "0o17", "0b101", "1.5", "1e10", "1_000"} {
			l, diags := newLexer(src)
			tok := l.Peek()
			assert.Equal(t, token.Number, tok.Kind, src)
			assert.Equal(t, int32(len(src)), tok.Span.End, src)
			assert.Equal(t, 0, diags.Len(), src)
		}
	})

	t.Run("division vs regex", func(t *testing.T) {
		l, _ := newLexer("/hello/.test(s)")
		tok := l.ReparseAsRegexp()
		assert.Equal(t, token.RegExp, tok.Kind)
		assert.Equal(t, int32(7), tok.Span.End)
		l.Skip()
		assert.Equal(t, token.Dot, l.Peek().Kind)
	})

	t.Run("ASI newline tracking", func(t *testing.T) {
		l, _ := newLexer("x\n++y")
		assert.False(t, l.Peek().HasLeadingNewline)
		l.Skip()
		assert.True(t, l.Peek().HasLeadingNewline)
	})

	t.Run("block comment hides newline", func(t *testing.T) {
		l, _ := newLexer("x /* a\nb */ y")
		l.Skip()
		assert.True(t, l.Peek().HasLeadingNewline)
	})

	t.Run("unclosed string literal", func(t *testing.T) {
		l, diags := newLexer("\"abc\ndef")
		assert.Equal(t, token.String, l.Peek().Kind)
		assert.Equal(t, 1, diags.Len())
		assert.Equal(t, diagnostic.CodeUnclosedStringLiteral, diags.All()[0].Code)
	})

	t.Run("string with escapes and line continuation", func(t *testing.T) {
		l, diags := newLexer("\"a\\nb\\\nc\"")
		tok := l.Peek()
		assert.Equal(t, token.String, tok.Kind)
		assert.Equal(t, 0, diags.Len())
	})

	t.Run("template with substitution", func(t *testing.T) {
		l, _ := newLexer("`a${1}b`")
		head := l.Peek()
		assert.Equal(t, token.TemplateHead, head.Kind)
		l.Skip() // number inside substitution
		assert.Equal(t, token.Number, l.Peek().Kind)
		l.Skip()
		assert.Equal(t, token.RBrace, l.Peek().Kind)
		tail := l.SkipInTemplate()
		assert.Equal(t, token.TemplateTail, tail.Kind)
	})

	t.Run("complete template with no substitution", func(t *testing.T) {
		l, _ := newLexer("`hello`")
		assert.Equal(t, token.TemplateComplete, l.Peek().Kind)
	})

	t.Run("unicode identifier escape", func(t *testing.T) {
		src := "\\u0061b"
		l, diags := newLexer(src)
		tok := l.Peek()
		assert.Equal(t, token.Ident, tok.Kind)
		assert.Equal(t, 0, diags.Len())
		assert.Equal(t, "ab", DecodeIdentifierName([]byte(src), tok.Span))
	})
}
