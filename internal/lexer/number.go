package lexer

import "github.com/arnodel/jslint/internal/token"

// scanNumber consumes a decimal, 0x/0o/0b integer, or a decimal with
// fractional/exponent part. Underscores are accepted as digit separators
// wherever a digit is expected.
func (l *Lexer) scanNumber(begin int32, newline bool) token.Token {
	if l.byteAt(l.pos) == '0' {
		switch l.byteAt(l.pos + 1) {
		case 'x', 'X':
			l.pos += 2
			l.consumeDigits(isHexDigit)
			l.consumeBigIntSuffix()
			return l.make(token.Number, begin, newline)
		case 'o', 'O':
			l.pos += 2
			l.consumeDigits(isOctalDigit)
			l.consumeBigIntSuffix()
			return l.make(token.Number, begin, newline)
		case 'b', 'B':
			l.pos += 2
			l.consumeDigits(isBinaryDigit)
			l.consumeBigIntSuffix()
			return l.make(token.Number, begin, newline)
		}
	}

	l.consumeDigits(isDigit)

	if l.byteAt(l.pos) == '.' {
		l.pos++
		l.consumeDigits(isDigit)
	}

	if c := l.byteAt(l.pos); c == 'e' || c == 'E' {
		next := l.pos + 1
		if s := l.byteAt(next); s == '+' || s == '-' {
			next++
		}
		if isDigit(l.byteAt(next)) {
			l.pos = next
			l.consumeDigits(isDigit)
		}
	}

	l.consumeBigIntSuffix()

	return l.make(token.Number, begin, newline)
}

func (l *Lexer) consumeDigits(valid func(byte) bool) {
	for {
		c := l.byteAt(l.pos)
		if valid(c) {
			l.pos++
			continue
		}
		if c == '_' && valid(l.byteAt(l.pos+1)) {
			l.pos++
			continue
		}
		break
	}
}

func (l *Lexer) consumeBigIntSuffix() {
	if l.byteAt(l.pos) == 'n' {
		l.pos++
	}
}
