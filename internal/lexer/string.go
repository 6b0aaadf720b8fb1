package lexer

import (
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

// scanString consumes a '...' or "..." string literal, honoring standard
// escape sequences and line continuations (a backslash immediately
// followed by a line terminator). An unescaped line terminator before the
// closing quote is unclosed_string_literal.
func (l *Lexer) scanString(begin int32, newline bool, quote byte) token.Token {
	l.pos++ // opening quote

	for {
		if l.eof() {
			l.errorAt(diagnostic.CodeUnclosedStringLiteral, "unclosed string literal", sourcecode.Span{Begin: begin, End: l.pos})
			return l.make(token.String, begin, newline)
		}

		r, size := l.runeAt(l.pos)

		if byte(r) == quote && size == 1 {
			l.pos++
			return l.make(token.String, begin, newline)
		}

		if isLineTerminator(r) {
			l.errorAt(diagnostic.CodeUnclosedStringLiteral, "unclosed string literal", sourcecode.Span{Begin: begin, End: l.pos})
			return l.make(token.String, begin, newline)
		}

		if r == '\\' {
			l.pos += int32(size)
			l.consumeEscapeSequence()
			continue
		}

		l.pos += int32(size)
	}
}

// consumeEscapeSequence consumes one escape body after a backslash has
// already been consumed: a line continuation, \xHH, \uXXXX / \u{...}, or
// any other single escaped character.
func (l *Lexer) consumeEscapeSequence() {
	if l.eof() {
		return
	}

	r, size := l.runeAt(l.pos)
	switch r {
	case '\r':
		l.pos += int32(size)
		if l.byteAt(l.pos) == '\n' {
			l.pos++
		}
		return
	case '\n', 0x2028, 0x2029:
		l.pos += int32(size)
		return
	case 'x':
		start := l.pos
		l.pos++
		if isHexDigit(l.byteAt(l.pos)) && isHexDigit(l.byteAt(l.pos+1)) {
			l.pos += 2
			return
		}
		l.errorAt(diagnostic.CodeInvalidHexEscape, "invalid hex escape", sourcecode.Span{Begin: start, End: l.pos})
		return
	case 'u':
		start := l.pos
		if _, n, ok := decodeUnicodeEscape(l.src, l.pos); ok {
			l.pos += int32(n)
			return
		}
		l.pos++
		l.errorAt(diagnostic.CodeInvalidUnicodeEscape, "invalid unicode escape", sourcecode.Span{Begin: start, End: l.pos})
		return
	default:
		l.pos += int32(size)
	}
}
