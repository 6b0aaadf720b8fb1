// Package parser implements the expression and statement parser: a
// hand-written Pratt precedence climber over internal/lexer's token
// stream, producing the internal/ast node tree. The parser never aborts;
// every error path synthesizes a best-effort node and keeps going, per
// spec.md's error-recovery policy.
package parser

import (
	"fmt"

	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/lexer"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

// Parser holds the token stream and diagnostic sink for one parse. It is
// not reused across parses, mirroring the teacher's single-use *parser
// built fresh for each ParseChunk call.
type Parser struct {
	lex   *lexer.Lexer
	diags *diagnostic.Collector
	loc   *sourcecode.Locator
	src   []byte

	lastEnd int32 // end offset of the most recently consumed token
}

// exprConfig threads the handful of contextual flags expression parsing
// needs down through the precedence ladder.
type exprConfig struct {
	noIn bool // true inside the init clause of a classic for(;;) loop
}

// Parse parses src in full and returns the top-level statement list. diags
// receives every lexical, syntactic, and (by composing with
// internal/resolve) later semantic diagnostic; loc must already be built
// over src.
func Parse(src []byte, diags *diagnostic.Collector, loc *sourcecode.Locator) []ast.Stmt {
	p := &Parser{
		lex:   lexer.New(src, diags, loc),
		diags: diags,
		loc:   loc,
		src:   src,
	}
	return p.parseStatementList(token.EOF)
}

func (p *Parser) cur() token.Token {
	return p.lex.Peek()
}

func (p *Parser) peekKind() token.Kind {
	return p.lex.Peek().Kind
}

// skip consumes the current lookahead token and returns it (not the new
// lookahead; most call sites already captured the token they care about
// via cur() and just want to advance past it).
func (p *Parser) skip() token.Token {
	tok := p.lex.Peek()
	p.lastEnd = tok.Span.End
	p.lex.Skip()
	return tok
}

// spelling returns an identifier-like token's raw source text, used to
// recognize contextual keywords (async/await/yield/get/set/of/static) by
// spelling rather than kind, since the lexer always emits Ident for
// these (internal/token's ContextualKeywords table documents why).
func (p *Parser) spelling(tok token.Token) string {
	return string(p.src[tok.Span.Begin:tok.Span.End])
}

func (p *Parser) isContextual(tok token.Token, word string) bool {
	return tok.Kind == token.Ident && p.spelling(tok) == word
}

func (p *Parser) errorAt(code, message string, span sourcecode.Span) {
	p.diags.Error(code, message, p.loc.Range(span))
}

func (p *Parser) warnAt(code, message string, span sourcecode.Span) {
	p.diags.Warning(code, message, p.loc.Range(span))
}

func nb(begin, end int32) ast.NodeBase {
	return ast.NodeBase{Span: sourcecode.Span{Begin: begin, End: end}}
}

func spanOf(first, last ast.Node) sourcecode.Span {
	return sourcecode.Span{Begin: first.Range().Begin, End: last.Range().End}
}

// identifierFromToken decodes tok (assumed Identifier/PrivateIdentifier or
// a reserved/contextual word used in a name position) into an
// ast-level Identifier.
func (p *Parser) identifierFromToken(tok token.Token) token.Identifier {
	return token.Identifier{Span: tok.Span, Name: lexer.DecodeIdentifierName(p.src, tok.Span)}
}

// expectIdentifierName consumes the current token as a property/binding
// name, accepting any identifier-like spelling including reserved and
// contextual keywords (`.class`, `.default`, `get`, `static`, ... are all
// legal member names). On a token that cannot plausibly be a name it
// synthesizes an empty name and reports unexpected_token without
// consuming, so the enclosing construct's own closer can still match.
func (p *Parser) expectIdentifierName() token.Identifier {
	tok := p.cur()
	if isNameLike(tok.Kind) {
		p.skip()
		return p.identifierFromToken(tok)
	}
	p.errorAt(diagnostic.CodeUnexpectedToken, fmt.Sprintf("expected a name, found %v", tok.Kind), tok.Span)
	return token.Identifier{Span: sourcecode.Span{Begin: p.lastEnd, End: p.lastEnd}}
}

// isNameLike reports whether kind is an identifier or any reserved /
// contextual keyword: all of these are valid property names, label
// names, and (module) binding names in various grammar slots.
func isNameLike(kind token.Kind) bool {
	if kind == token.Ident || kind == token.PrivateIdentifier {
		return true
	}
	return kind >= token.Break && kind <= token.Static
}

func (p *Parser) expect(kind token.Kind, what string) (token.Token, bool) {
	if p.peekKind() == kind {
		return p.skip(), true
	}
	p.errorAt(diagnostic.CodeUnexpectedToken, fmt.Sprintf("expected %s, found %v", what, p.peekKind()), p.cur().Span)
	return token.Token{}, false
}

// expectRParenOrRecover closes a `(` opened at openBegin. On success it
// consumes the `)` and returns its end offset; otherwise it reports
// unmatched_parenthesis at the opener (spec.md §4.4/§4.7) without
// consuming whatever token stopped the enclosed construct, and returns
// the end of the last consumed token as a best-effort close point.
// Recursive call structure (inner groups close, and so report, before
// their enclosing group's own check runs) gives innermost-first ordering
// for free, see spec.md's `2 * (3 + (4` scenario.
func (p *Parser) expectRParenOrRecover(openBegin int32) int32 {
	return p.expectCloserOrRecover(token.RParen, openBegin)
}

func (p *Parser) expectRBracketOrRecover(openBegin int32) int32 {
	return p.expectCloserOrRecover(token.RBracket, openBegin)
}

func (p *Parser) expectCloserOrRecover(closer token.Kind, openBegin int32) int32 {
	if p.peekKind() == closer {
		tok := p.skip()
		return tok.Span.End
	}
	p.errorAt(diagnostic.CodeUnmatchedParenthesis, "unmatched opening bracket", sourcecode.Span{Begin: openBegin, End: openBegin + 1})
	return p.lastEnd
}

// canStartExpression reports whether tok could begin a unary/primary
// expression, used to detect a missing operand (spec.md §4.4's
// missing_operand_for_operator) without consuming the offending token.
func canStartExpression(tok token.Token) bool {
	switch tok.Kind {
	case token.Ident, token.PrivateIdentifier, token.Number, token.String,
		token.TemplateHead, token.TemplateComplete, token.Slash, token.SlashEqual,
		token.LParen, token.LBracket, token.LBrace,
		token.Function, token.Class, token.New, token.This, token.Super, token.Import,
		token.True, token.False, token.Null,
		token.Bang, token.Tilde, token.Plus, token.Minus,
		token.Typeof, token.Void, token.Delete,
		token.Increment, token.Decrement:
		return true
	}
	return false
}
