package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

// scanIdentifier consumes an identifier or reserved word, ASCII fast path
// first, falling back to full Unicode classification and \u escapes.
func (l *Lexer) scanIdentifier(begin int32, newline bool) token.Token {
	sawEscape := false

	for !l.eof() {
		if l.byteAt(l.pos) == '\\' && l.byteAt(l.pos+1) == 'u' {
			sawEscape = true
			if _, size, ok := decodeUnicodeEscape(l.src, l.pos+1); ok {
				l.pos += 1 + int32(size)
				continue
			}
			l.errorAt(diagnostic.CodeInvalidUnicodeEscape, "invalid unicode escape in identifier", sourcecode.Span{Begin: l.pos, End: l.pos + 2})
			l.pos += 2
			continue
		}

		r, size := l.runeAt(l.pos)
		if l.pos == begin {
			if !isIdentifierStart(r) {
				break
			}
		} else if !isIdentifierContinue(r) {
			break
		}
		l.pos += int32(size)
	}

	kind := token.Ident
	if !sawEscape {
		raw := string(l.src[begin:l.pos])
		if k, ok := token.ReservedWords[raw]; ok {
			kind = k
		}
	}
	return l.make(kind, begin, newline)
}

// decodeUnicodeEscape decodes a `\uXXXX` or `\u{X...}` escape starting at
// the 'u' (i.e. src[at] == 'u'). Returns the decoded rune, the number of
// bytes consumed after the leading backslash, and whether decoding
// succeeded.
func decodeUnicodeEscape(src []byte, at int32) (rune, int, bool) {
	if at >= int32(len(src)) || src[at] != 'u' {
		return 0, 0, false
	}
	pos := at + 1

	if pos < int32(len(src)) && src[pos] == '{' {
		start := pos + 1
		end := start
		for end < int32(len(src)) && src[end] != '}' {
			if !isHexDigit(src[end]) {
				return 0, 0, false
			}
			end++
		}
		if end >= int32(len(src)) || end == start {
			return 0, 0, false
		}
		v, err := strconv.ParseInt(string(src[start:end]), 16, 32)
		if err != nil || v > 0x10FFFF {
			return 0, 0, false
		}
		return rune(v), int(end + 1 - at), true
	}

	if pos+4 > int32(len(src)) {
		return 0, 0, false
	}
	for i := pos; i < pos+4; i++ {
		if !isHexDigit(src[i]) {
			return 0, 0, false
		}
	}
	v, err := strconv.ParseInt(string(src[pos:pos+4]), 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(v), int(pos + 4 - at), true
}

// DecodeIdentifierName decodes the raw source bytes of an identifier
// token's span into the Unicode text identifier equality is computed on.
// Tokens are transient (spec.md §3's Lifecycle invariant), so this is the
// parser's job, not the lexer's, done once per identifier as it is turned
// into an ast.Variable/Identifier.
func DecodeIdentifierName(src []byte, span sourcecode.Span) string {
	raw := src[span.Begin:span.End]
	hasEscape := false
	for i := 0; i < len(raw)-1; i++ {
		if raw[i] == '\\' && raw[i+1] == 'u' {
			hasEscape = true
			break
		}
	}
	if !hasEscape {
		return string(raw)
	}

	var out []rune
	for i := int32(0); i < int32(len(raw)); {
		if raw[i] == '\\' && i+1 < int32(len(raw)) && raw[i+1] == 'u' {
			if r, size, ok := decodeUnicodeEscape(raw, i+1); ok {
				out = append(out, r)
				i += 1 + int32(size)
				continue
			}
		}
		r, size := utf8.DecodeRune(raw[i:])
		out = append(out, r)
		i += int32(size)
	}
	return string(out)
}
