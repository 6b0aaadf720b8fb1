package lexer

import (
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

// scanRegexpFrom rescans from a slash, previously lexed conservatively as
// division, as a regex literal body up to the terminating unescaped `/`
// followed by flag identifier characters. Grounded on the same
// char-class-in-brackets handling as evanw/esbuild's ScanRegExp: an
// unescaped `/` inside `[...]` does not terminate the literal.
func (l *Lexer) scanRegexpFrom(begin int32) token.Token {
	l.pos = begin + 1 // leading '/'
	inClass := false

	for {
		if l.eof() {
			l.errorAt(diagnostic.CodeUnclosedRegexpLiteral, "unclosed regular expression literal", sourcecode.Span{Begin: begin, End: l.pos})
			return l.make(token.RegExp, begin, false)
		}

		r, size := l.runeAt(l.pos)

		if isLineTerminator(r) {
			l.errorAt(diagnostic.CodeUnclosedRegexpLiteral, "unclosed regular expression literal", sourcecode.Span{Begin: begin, End: l.pos})
			return l.make(token.RegExp, begin, false)
		}

		switch {
		case r == '\\':
			l.pos += int32(size)
			if !l.eof() {
				_, size2 := l.runeAt(l.pos)
				l.pos += int32(size2)
			}
			continue
		case r == '[':
			inClass = true
		case r == ']':
			inClass = false
		case r == '/' && !inClass:
			l.pos += int32(size)
			for !l.eof() {
				r2, size2 := l.runeAt(l.pos)
				if !isIdentifierContinue(r2) {
					break
				}
				l.pos += int32(size2)
			}
			return l.make(token.RegExp, begin, false)
		}

		l.pos += int32(size)
	}
}
