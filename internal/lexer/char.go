package lexer

import "unicode"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }

func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }

// isAsciiIdentifierStart/Continue are the fast path for the overwhelming
// majority of JS source; isIdentifierStart/Continue below fall back to
// full Unicode classification, mirroring the ASCII-fast-path idiom the
// teacher's parser uses throughout (e.g. isAlphaOrUndescore in
// parse_low_level.go) generalized to JS's wider identifier grammar.
func isAsciiIdentifierStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAsciiIdentifierContinue(c byte) bool {
	return isAsciiIdentifierStart(c) || isDigit(c)
}

func isIdentifierStart(r rune) bool {
	if r < 0x80 {
		return isAsciiIdentifierStart(byte(r))
	}
	return unicode.IsLetter(r) || r == 0x200C || r == 0x200D
}

func isIdentifierContinue(r rune) bool {
	if r < 0x80 {
		return isAsciiIdentifierContinue(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == 0x200C || r == 0x200D
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', 0xA0, 0xFEFF:
		return true
	}
	return r != '\n' && r != '\r' && unicode.Is(unicode.Zs, r)
}
