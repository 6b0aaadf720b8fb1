// Package lexer implements the JavaScript-specific scanner: a one-token
// lookahead stream with on-demand reinterpretation for the regex/division
// ambiguity and for resuming inside template substitutions.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

// Lexer holds the source buffer and a single-token lookahead, mirroring
// the teacher's byte/rune-indexed parser struct (internal/parse/parser.go)
// but split out as its own type, since spec.md requires a lexer/parser
// split the teacher's combined design does not have.
type Lexer struct {
	src   []byte
	pos   int32
	diags *diagnostic.Collector
	loc   *sourcecode.Locator

	peek  token.Token
	valid bool // whether peek holds a real lookahead (New fills it before returning)
}

// New creates a Lexer over src. diags receives lexical diagnostics; loc is
// used only to turn byte offsets into positions when reporting them.
func New(src []byte, diags *diagnostic.Collector, loc *sourcecode.Locator) *Lexer {
	l := &Lexer{src: src, diags: diags, loc: loc}
	l.peek = l.scan()
	l.valid = true
	return l
}

// Peek returns the current lookahead token without consuming it.
func (l *Lexer) Peek() token.Token {
	return l.peek
}

// Skip consumes the current lookahead and returns the new one.
func (l *Lexer) Skip() token.Token {
	l.peek = l.scan()
	return l.peek
}

// Pos returns the current scanning position, i.e. the end of the last
// token produced.
func (l *Lexer) Pos() int32 {
	return l.pos
}

func (l *Lexer) errorAt(code, message string, span sourcecode.Span) {
	l.diags.Error(code, message, l.loc.Range(span))
}

// ReparseAsRegexp discards the tentatively-lexed division token currently
// held as Peek (kind Slash or SlashEqual) and rescans from its start
// offset as a regex literal. The parser calls this, and only this, at an
// expression-start position, see spec.md §4.3/§9.
func (l *Lexer) ReparseAsRegexp() token.Token {
	start := l.peek.Span.Begin
	newline := l.peek.HasLeadingNewline
	l.pos = start
	l.peek = l.scanRegexpFrom(start)
	l.peek.HasLeadingNewline = newline
	return l.peek
}

// SkipInTemplate resumes lexing at the `}` currently held as Peek and
// returns either another TemplateMiddle or the closing TemplateTail. The
// parser calls this immediately after finishing a `${...}` substitution
// expression, instead of Skip.
func (l *Lexer) SkipInTemplate() token.Token {
	start := l.peek.Span.Begin // the '}'
	l.pos = start + 1
	l.peek = l.scanTemplateContinuation(start)
	return l.peek
}

func (l *Lexer) make(kind token.Kind, begin int32, newline bool) token.Token {
	return token.Token{Kind: kind, Span: sourcecode.Span{Begin: begin, End: l.pos}, HasLeadingNewline: newline}
}

func (l *Lexer) eof() bool { return l.pos >= int32(len(l.src)) }

func (l *Lexer) byteAt(off int32) byte {
	if off < 0 || off >= int32(len(l.src)) {
		return 0
	}
	return l.src[off]
}

func (l *Lexer) runeAt(off int32) (rune, int) {
	if off >= int32(len(l.src)) {
		return -1, 0
	}
	r, size := utf8.DecodeRune(l.src[off:])
	return r, size
}

// scan skips trivia (whitespace/comments), tracking whether a line
// terminator was crossed, then lexes the next real token.
func (l *Lexer) scan() token.Token {
	newline := l.skipTrivia()
	begin := l.pos

	if l.eof() {
		return l.make(token.EOF, begin, newline)
	}

	r, size := l.runeAt(l.pos)

	switch {
	case r == '"' || r == '\'':
		return l.scanString(begin, newline, byte(r))
	case r == '`':
		return l.scanTemplateHead(begin, newline)
	case isDigit(byte(r)) && r < 0x80:
		return l.scanNumber(begin, newline)
	case r == '.' && isDigit(l.byteAt(l.pos+1)):
		return l.scanNumber(begin, newline)
	case isIdentifierStart(r):
		return l.scanIdentifier(begin, newline)
	case r == '\\' && l.byteAt(l.pos+1) == 'u':
		return l.scanIdentifier(begin, newline)
	default:
		return l.scanPunctuator(begin, newline, r, size)
	}
}

// skipTrivia advances past whitespace and comments, returning true iff at
// least one line terminator (including one hidden inside a block comment)
// was crossed.
func (l *Lexer) skipTrivia() bool {
	newline := false
	for !l.eof() {
		r, size := l.runeAt(l.pos)
		switch {
		case isLineTerminator(r):
			newline = true
			l.pos += int32(size)
		case isWhitespace(r):
			l.pos += int32(size)
		case r == '/' && l.byteAt(l.pos+1) == '/':
			l.pos += 2
			for !l.eof() {
				r2, size2 := l.runeAt(l.pos)
				if isLineTerminator(r2) {
					break
				}
				l.pos += int32(size2)
			}
		case r == '/' && l.byteAt(l.pos+1) == '*':
			start := l.pos
			l.pos += 2
			closed := false
			for !l.eof() {
				r2, size2 := l.runeAt(l.pos)
				if isLineTerminator(r2) {
					newline = true
				}
				if r2 == '*' && l.byteAt(l.pos+1) == '/' {
					l.pos += 2
					closed = true
					break
				}
				l.pos += int32(size2)
			}
			if !closed {
				l.errorAt(diagnostic.CodeUnclosedBlockComment, "unclosed block comment", sourcecode.Span{Begin: start, End: l.pos})
			}
		default:
			return newline
		}
	}
	return newline
}

func (l *Lexer) scanPunctuator(begin int32, newline bool, r rune, size int) token.Token {
	two := func(a byte) bool { return l.byteAt(l.pos+1) == a }

	switch r {
	case '(':
		l.pos++
		return l.make(token.LParen, begin, newline)
	case ')':
		l.pos++
		return l.make(token.RParen, begin, newline)
	case '{':
		l.pos++
		return l.make(token.LBrace, begin, newline)
	case '}':
		l.pos++
		return l.make(token.RBrace, begin, newline)
	case '[':
		l.pos++
		return l.make(token.LBracket, begin, newline)
	case ']':
		l.pos++
		return l.make(token.RBracket, begin, newline)
	case ';':
		l.pos++
		return l.make(token.Semicolon, begin, newline)
	case ',':
		l.pos++
		return l.make(token.Comma, begin, newline)
	case ':':
		l.pos++
		return l.make(token.Colon, begin, newline)
	case '~':
		l.pos++
		return l.make(token.Tilde, begin, newline)
	case '.':
		if two('.') && l.byteAt(l.pos+2) == '.' {
			l.pos += 3
			return l.make(token.DotDotDot, begin, newline)
		}
		l.pos++
		return l.make(token.Dot, begin, newline)
	case '?':
		if two('.') && !isDigit(l.byteAt(l.pos+2)) {
			l.pos += 2
			return l.make(token.QuestionDot, begin, newline)
		}
		if two('?') {
			l.pos += 2
			if l.byteAt(l.pos) == '=' {
				l.pos++
				return l.make(token.QuestionQuestionAssign, begin, newline)
			}
			return l.make(token.QuestionQuestion, begin, newline)
		}
		l.pos++
		return l.make(token.QuestionMark, begin, newline)
	case '=':
		if two('=') && l.byteAt(l.pos+2) == '=' {
			l.pos += 3
			return l.make(token.StrictEq, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.Eq, begin, newline)
		}
		if two('>') {
			l.pos += 2
			return l.make(token.Arrow, begin, newline)
		}
		l.pos++
		return l.make(token.Assign, begin, newline)
	case '!':
		if two('=') && l.byteAt(l.pos+2) == '=' {
			l.pos += 3
			return l.make(token.StrictNotEq, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.NotEq, begin, newline)
		}
		l.pos++
		return l.make(token.Bang, begin, newline)
	case '<':
		if two('<') {
			l.pos += 2
			if l.byteAt(l.pos) == '=' {
				l.pos++
				return l.make(token.ShlAssign, begin, newline)
			}
			return l.make(token.Shl, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.Le, begin, newline)
		}
		l.pos++
		return l.make(token.Lt, begin, newline)
	case '>':
		if two('>') && l.byteAt(l.pos+2) == '>' {
			l.pos += 3
			if l.byteAt(l.pos) == '=' {
				l.pos++
				return l.make(token.UShrAssign, begin, newline)
			}
			return l.make(token.UShr, begin, newline)
		}
		if two('>') {
			l.pos += 2
			if l.byteAt(l.pos) == '=' {
				l.pos++
				return l.make(token.ShrAssign, begin, newline)
			}
			return l.make(token.Shr, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.Ge, begin, newline)
		}
		l.pos++
		return l.make(token.Gt, begin, newline)
	case '+':
		if two('+') {
			l.pos += 2
			return l.make(token.Increment, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.PlusAssign, begin, newline)
		}
		l.pos++
		return l.make(token.Plus, begin, newline)
	case '-':
		if two('-') {
			l.pos += 2
			return l.make(token.Decrement, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.MinusAssign, begin, newline)
		}
		l.pos++
		return l.make(token.Minus, begin, newline)
	case '*':
		if two('*') {
			l.pos += 2
			if l.byteAt(l.pos) == '=' {
				l.pos++
				return l.make(token.StarStarAssign, begin, newline)
			}
			return l.make(token.StarStar, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.StarAssign, begin, newline)
		}
		l.pos++
		return l.make(token.Star, begin, newline)
	case '/':
		// Lexed conservatively as division; the parser calls
		// ReparseAsRegexp at an expression-start position.
		if two('=') {
			l.pos += 2
			return l.make(token.SlashEqual, begin, newline)
		}
		l.pos++
		return l.make(token.Slash, begin, newline)
	case '%':
		if two('=') {
			l.pos += 2
			return l.make(token.PercentAssign, begin, newline)
		}
		l.pos++
		return l.make(token.Percent, begin, newline)
	case '&':
		if two('&') {
			l.pos += 2
			if l.byteAt(l.pos) == '=' {
				l.pos++
				return l.make(token.AndAndAssign, begin, newline)
			}
			return l.make(token.AmpAmp, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.AndAssign, begin, newline)
		}
		l.pos++
		return l.make(token.Amp, begin, newline)
	case '|':
		if two('|') {
			l.pos += 2
			if l.byteAt(l.pos) == '=' {
				l.pos++
				return l.make(token.OrOrAssign, begin, newline)
			}
			return l.make(token.PipePipe, begin, newline)
		}
		if two('=') {
			l.pos += 2
			return l.make(token.OrAssign, begin, newline)
		}
		l.pos++
		return l.make(token.Pipe, begin, newline)
	case '^':
		if two('=') {
			l.pos += 2
			return l.make(token.XorAssign, begin, newline)
		}
		l.pos++
		return l.make(token.Caret, begin, newline)
	case '#':
		l.pos++
		if isIdentifierStart(l.peekRune()) {
			return l.scanPrivateIdentifier(begin, newline)
		}
		return l.make(token.Invalid, begin, newline)
	}

	l.errorAt(diagnostic.CodeUnexpectedToken, fmt.Sprintf("unexpected character %q", r), sourcecode.Span{Begin: begin, End: begin + int32(size)})
	l.pos += int32(size)
	return l.make(token.Invalid, begin, newline)
}

func (l *Lexer) peekRune() rune {
	r, _ := l.runeAt(l.pos)
	return r
}

func (l *Lexer) scanPrivateIdentifier(begin int32, newline bool) token.Token {
	for !l.eof() {
		r, size := l.runeAt(l.pos)
		if !isIdentifierContinue(r) {
			break
		}
		l.pos += int32(size)
	}
	return l.make(token.PrivateIdentifier, begin, newline)
}
