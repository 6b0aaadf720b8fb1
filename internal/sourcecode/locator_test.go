package sourcecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocator(t *testing.T) {
	t.Run("offset and position round-trip across lines", func(t *testing.T) {
		l := NewLocator([]byte("abc\ndef\nghi"))
		assert.Equal(t, Position{Line: 0, Character: 1}, l.Position(1))
		assert.Equal(t, Position{Line: 1, Character: 0}, l.Position(4))
		assert.Equal(t, Position{Line: 2, Character: 2}, l.Position(10))

		assert.Equal(t, int32(1), l.Offset(Position{Line: 0, Character: 1}))
		assert.Equal(t, int32(4), l.Offset(Position{Line: 1, Character: 0}))
		assert.Equal(t, int32(10), l.Offset(Position{Line: 2, Character: 2}))
	})

	t.Run("recognizes CRLF as a single line break", func(t *testing.T) {
		l := NewLocator([]byte("a\r\nb"))
		assert.Equal(t, Position{Line: 1, Character: 0}, l.Position(3))
	})

	t.Run("recognizes U+2028 and U+2029 as line breaks", func(t *testing.T) {
		lineSep := string(rune(0x2028))
		paraSep := string(rune(0x2029))
		src := "a" + lineSep + "b" + paraSep + "c"
		l := NewLocator([]byte(src))
		assert.Equal(t, Position{Line: 1, Character: 0}, l.Position(4))
		assert.Equal(t, Position{Line: 2, Character: 0}, l.Position(8))
	})

	t.Run("a 4-byte character counts 2 UTF-16 units", func(t *testing.T) {
		l := NewLocator([]byte("a\U0001F600b")) // a, an emoji (surrogate pair), b
		assert.Equal(t, Position{Line: 0, Character: 3}, l.Position(l.Len()-1))
	})

	t.Run("offset past the end of a line clamps to the next line's start", func(t *testing.T) {
		l := NewLocator([]byte("ab\ncd"))
		assert.Equal(t, int32(3), l.Offset(Position{Line: 0, Character: 100}))
	})

	t.Run("offset past the last line clamps to the source length", func(t *testing.T) {
		l := NewLocator([]byte("abc"))
		assert.Equal(t, int32(3), l.Offset(Position{Line: 5, Character: 0}))
	})

	t.Run("a negative line clamps to the start", func(t *testing.T) {
		l := NewLocator([]byte("abc"))
		assert.Equal(t, int32(0), l.Offset(Position{Line: -1, Character: 0}))
	})

	t.Run("replacing an empty document's single line clamps to offset 0", func(t *testing.T) {
		l := NewLocator(nil)
		assert.Equal(t, int32(0), l.Offset(Position{Line: 1, Character: 0}))
	})

	t.Run("Range carries both endpoints' positions", func(t *testing.T) {
		l := NewLocator([]byte("abc\ndef"))
		r := l.Range(Span{Begin: 1, End: 5})
		assert.Equal(t, Span{Begin: 1, End: 5}, r.Span)
		assert.Equal(t, Position{Line: 0, Character: 1}, r.StartPos)
		assert.Equal(t, Position{Line: 1, Character: 1}, r.EndPos)
	})

	t.Run("Reset rebuilds the line index for new content", func(t *testing.T) {
		l := NewLocator([]byte("abc"))
		assert.Equal(t, int32(3), l.Len())
		l.Reset([]byte("a\nb\nc"))
		assert.Equal(t, int32(5), l.Len())
		assert.Equal(t, Position{Line: 2, Character: 0}, l.Position(4))
	})
}
