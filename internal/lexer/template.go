package lexer

import (
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

// scanTemplateHead consumes a backtick-prefixed template chunk. If no
// `${` appears before the closing backtick it is a complete template
// (TemplateComplete); otherwise it is a head (TemplateHead) and the
// parser must parse a substitution expression before calling
// SkipInTemplate to resume.
func (l *Lexer) scanTemplateHead(begin int32, newline bool) token.Token {
	l.pos++ // opening backtick
	return l.scanTemplateBody(begin, newline, token.TemplateComplete, token.TemplateHead)
}

// scanTemplateContinuation resumes lexing right after a substitution's
// closing `}`, starting the next chunk of template text.
func (l *Lexer) scanTemplateContinuation(begin int32) token.Token {
	return l.scanTemplateBody(begin, false, token.TemplateTail, token.TemplateMiddle)
}

func (l *Lexer) scanTemplateBody(begin int32, newline bool, completeKind, middleKind token.Kind) token.Token {
	for {
		if l.eof() {
			l.errorAt(diagnostic.CodeUnclosedTemplate, "unclosed template literal", sourcecode.Span{Begin: begin, End: l.pos})
			return l.make(completeKind, begin, newline)
		}

		r, size := l.runeAt(l.pos)

		switch {
		case r == '`':
			l.pos++
			return l.make(completeKind, begin, newline)
		case r == '$' && l.byteAt(l.pos+1) == '{':
			l.pos += 2
			return l.make(middleKind, begin, newline)
		case r == '\\':
			l.pos += int32(size)
			l.consumeEscapeSequence()
		default:
			l.pos += int32(size)
		}
	}
}
