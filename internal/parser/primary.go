package parser

import (
	"fmt"

	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/astutil"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/token"
)

// parsePrimary is level 20: literals, identifiers, parenthesized/cover
// grammar groups, array and object literals, functions, classes, `new`,
// `super`, `import`, and regex (reparsed from a conservatively-lexed
// division token).
func (p *Parser) parsePrimary(cfg exprConfig) ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case token.Number:
		p.skip()
		return &ast.Literal{NodeBase: nb(tok.Begin(), tok.End()), Kind: ast.NumberLiteral, Raw: p.spelling(tok)}
	case token.String:
		p.skip()
		return &ast.Literal{NodeBase: nb(tok.Begin(), tok.End()), Kind: ast.StringLiteral, Raw: p.spelling(tok)}
	case token.True, token.False:
		p.skip()
		return &ast.Literal{NodeBase: nb(tok.Begin(), tok.End()), Kind: ast.BooleanLiteral, Raw: p.spelling(tok)}
	case token.Null:
		p.skip()
		return &ast.Literal{NodeBase: nb(tok.Begin(), tok.End()), Kind: ast.NullLiteral, Raw: p.spelling(tok)}
	case token.This:
		p.skip()
		return &ast.Literal{NodeBase: nb(tok.Begin(), tok.End()), Kind: ast.ThisLiteral, Raw: "this"}
	case token.Super:
		p.skip()
		return &ast.Super{NodeBase: nb(tok.Begin(), tok.End())}
	case token.Import:
		p.skip()
		return &ast.Import{NodeBase: nb(tok.Begin(), tok.End())}
	case token.Slash, token.SlashEqual:
		p.lex.ReparseAsRegexp()
		reTok := p.skip()
		return &ast.Literal{NodeBase: nb(reTok.Begin(), reTok.End()), Kind: ast.RegexpLiteral, Raw: p.spelling(reTok)}
	case token.TemplateHead, token.TemplateComplete:
		return p.parseTemplate(nil)
	case token.LParen:
		return p.parseGroupOrArrow(nil)
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.New:
		return p.parseNew(cfg)
	case token.Function:
		return p.parseFunctionExpr(ast.Normal, tok.Begin())
	case token.Class:
		return p.parseClassExpr()
	case token.Ident, token.PrivateIdentifier:
		return p.parseIdentifierLed(tok)
	}

	p.errorAt(diagnostic.CodeUnexpectedToken, fmt.Sprintf("unexpected token %v", tok.Kind), tok.Span)
	if tok.Kind != token.EOF {
		p.skip()
	}
	return &ast.Invalid{NodeBase: nb(tok.Begin(), p.lastEnd)}
}

// parseIdentifierLed resolves the contextual-keyword ambiguity around
// `async`: the lexer always hands back a plain Ident (internal/token's
// ContextualKeywords table), so the parser decides by spelling and by
// what immediately follows, using only the one token of lookahead the
// lexer exposes.
func (p *Parser) parseIdentifierLed(tok token.Token) ast.Expr {
	if tok.Kind == token.PrivateIdentifier {
		p.skip()
		return &ast.Variable{NodeBase: nb(tok.Begin(), tok.End()), Name: p.identifierFromToken(tok)}
	}

	if p.spelling(tok) == "async" {
		p.skip()
		next := p.cur()
		if !next.HasLeadingNewline {
			switch next.Kind {
			case token.Function:
				return p.parseFunctionExpr(ast.AsyncAttr, tok.Begin())
			case token.LParen:
				return p.parseGroupOrArrow(&tok)
			case token.Ident:
				return p.parseAsyncIdentifierArrow(tok)
			}
		}
		return &ast.Variable{NodeBase: nb(tok.Begin(), tok.End()), Name: p.identifierFromToken(tok)}
	}

	p.skip()
	return &ast.Variable{NodeBase: nb(tok.Begin(), tok.End()), Name: p.identifierFromToken(tok)}
}

// parseAsyncIdentifierArrow handles `async ident => body`: having already
// consumed `async`, it speculatively consumes the identifier as the sole
// parameter, since the only grammatical continuation of "async IDENT" is
// an arrow (anything else is a syntax error the diagnostic below reports).
func (p *Parser) parseAsyncIdentifierArrow(asyncTok token.Token) ast.Expr {
	idTok := p.skip()
	param := &ast.PatternIdentifierNode{NodeBase: nb(idTok.Begin(), idTok.End()), Name: p.identifierFromToken(idTok)}
	if p.peekKind() == token.Arrow && !p.cur().HasLeadingNewline {
		arrowTok := p.skip()
		return p.finishArrowBody(asyncTok.Begin(), []ast.Pattern{param}, ast.AsyncAttr, arrowTok)
	}
	p.errorAt(diagnostic.CodeUnexpectedToken, "expected '=>' after async arrow parameter", p.cur().Span)
	return &ast.ArrowFunctionWithExpression{
		NodeBase:   nb(asyncTok.Begin(), idTok.End()),
		Parameters: []ast.Pattern{param},
		Body:       &ast.Invalid{NodeBase: nb(idTok.End(), idTok.End())},
		Attributes: ast.AsyncAttr,
	}
}

// parseGroupOrArrow parses a parenthesized group: `(expr)`, `(expr, expr)`
// (a comma/sequence expression), or, if `=>` follows the closing paren,
// reinterprets the just-parsed contents as an arrow parameter list via
// exprToPattern (spec.md §9's cover grammar). asyncTok is non-nil when an
// `async` keyword preceded the `(`, which additionally makes the
// non-arrow fallback a call to a variable named `async` rather than a
// plain group.
func (p *Parser) parseGroupOrArrow(asyncTok *token.Token) ast.Expr {
	open := p.skip() // '('
	var elements []ast.Expr
	for p.peekKind() != token.RParen && p.peekKind() != token.EOF {
		if p.peekKind() == token.DotDotDot {
			dotTok := p.skip()
			operand := p.operandOrMissing(dotTok, exprConfig{}, p.parseAssignment)
			elements = append(elements, &ast.Spread{NodeBase: nb(dotTok.Begin(), operand.Range().End), Operand: operand})
		} else {
			elements = append(elements, p.parseAssignment(exprConfig{}))
		}
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		break
	}
	closeEnd := p.expectRParenOrRecover(open.Begin())

	begin := open.Begin()
	if asyncTok != nil {
		begin = asyncTok.Begin()
	}

	if p.peekKind() == token.Arrow && !p.cur().HasLeadingNewline {
		arrowTok := p.skip()
		params := astutil.MapSlice(elements, p.exprToPattern)
		attrs := ast.Normal
		if asyncTok != nil {
			attrs = ast.AsyncAttr
		}
		return p.finishArrowBody(begin, params, attrs, arrowTok)
	}

	if asyncTok != nil {
		return &ast.Call{
			NodeBase: nb(begin, closeEnd),
			Callee:   &ast.Variable{NodeBase: nb(asyncTok.Begin(), asyncTok.End()), Name: p.identifierFromToken(*asyncTok)},
			Args:     elements,
		}
	}

	for _, e := range elements {
		if spread, ok := e.(*ast.Spread); ok {
			p.errorAt(diagnostic.CodeUnexpectedToken, "unexpected spread in parenthesized expression", spread.Range())
		}
	}
	if len(elements) == 0 {
		p.errorAt(diagnostic.CodeUnexpectedToken, "empty parenthesized expression", nb(open.Begin(), closeEnd).Span)
		return &ast.Invalid{NodeBase: nb(open.Begin(), closeEnd)}
	}
	if len(elements) == 1 {
		return elements[0]
	}
	operators := make([]token.Kind, len(elements)-1)
	for i := range operators {
		operators[i] = token.Comma
	}
	return &ast.BinaryOperator{NodeBase: nb(elements[0].Range().Begin, elements[len(elements)-1].Range().End), Operands: elements, Operators: operators}
}

func (p *Parser) finishArrowBody(begin int32, params []ast.Pattern, attrs ast.Attributes, arrowTok token.Token) ast.Expr {
	if p.peekKind() == token.LBrace {
		body := p.parseBlock()
		return &ast.ArrowFunctionWithStatements{NodeBase: nb(begin, body.Range().End), Parameters: params, Body: body, Attributes: attrs}
	}
	body := p.operandOrMissing(arrowTok, exprConfig{}, p.parseAssignment)
	return &ast.ArrowFunctionWithExpression{NodeBase: nb(begin, body.Range().End), Parameters: params, Body: body, Attributes: attrs}
}

// parseNew is `new Callee[(args)]`; Callee is parsed through a
// restricted chain (parseNewCallee) that allows only `.x`/`[x]` suffixes,
// so a following `(args)` always binds to this New rather than to an
// inner call.
func (p *Parser) parseNew(cfg exprConfig) ast.Expr {
	newTok := p.skip()
	callee := p.parseNewCallee(cfg)
	if p.peekKind() == token.LParen {
		args, end := p.parseArgumentList()
		return &ast.New{NodeBase: nb(newTok.Begin(), end), Callee: callee, Args: args, HasArgs: true}
	}
	return &ast.New{NodeBase: nb(newTok.Begin(), callee.Range().End), Callee: callee, HasArgs: false}
}

func (p *Parser) parseNewCallee(cfg exprConfig) ast.Expr {
	var expr ast.Expr
	if p.peekKind() == token.New {
		expr = p.parseNew(cfg)
	} else {
		expr = p.parsePrimary(cfg)
	}
	for {
		switch p.peekKind() {
		case token.Dot:
			p.skip()
			name := p.expectIdentifierName()
			expr = &ast.Dot{NodeBase: nb(expr.Range().Begin, name.Span.End), Object: expr, Identifier: name}
		case token.LBracket:
			open := p.skip()
			sub := p.parseExpression(exprConfig{})
			end := p.expectRBracketOrRecover(open.Begin())
			expr = &ast.Index{NodeBase: nb(expr.Range().Begin, end), Object: expr, Subscript: sub}
		default:
			return expr
		}
	}
}

// parseTemplate parses a template literal starting at the current token
// (TemplateHead or TemplateComplete), looping on SkipInTemplate to cross
// each `${...}` substitution. An untagged template with no substitution
// collapses to a Literal per internal/ast/expr.go's doc comment; every
// other shape becomes a Template node.
func (p *Parser) parseTemplate(tag ast.Expr) ast.Expr {
	startTok := p.cur()
	begin := startTok.Begin()
	if tag != nil {
		begin = tag.Range().Begin
	}

	if startTok.Kind == token.TemplateComplete {
		p.skip()
		if tag == nil {
			return &ast.Literal{NodeBase: nb(begin, startTok.End()), Kind: ast.TemplateLiteralComplete, Raw: p.spelling(startTok)}
		}
		return &ast.Template{NodeBase: nb(begin, startTok.End()), Tag: tag}
	}

	p.skip() // TemplateHead
	var subs []ast.Expr
	end := startTok.End()
	for {
		sub := p.parseExpression(exprConfig{})
		subs = append(subs, sub)
		next := p.lex.SkipInTemplate()
		p.lastEnd = next.End()
		end = next.End()
		if next.Kind != token.TemplateMiddle {
			break
		}
	}
	return &ast.Template{NodeBase: nb(begin, end), Tag: tag, Substitutions: subs}
}

// parseArrayLiteral parses `[elements...]`; elided holes (bare commas)
// are dropped from Elements, matching internal/ast/expr.go's Array doc
// comment (spec.md's `[,,x,,y,,]` scenario).
func (p *Parser) parseArrayLiteral() ast.Expr {
	open := p.skip()
	var elements []ast.Expr
	for p.peekKind() != token.RBracket && p.peekKind() != token.EOF {
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		if p.peekKind() == token.DotDotDot {
			dotTok := p.skip()
			operand := p.operandOrMissing(dotTok, exprConfig{}, p.parseAssignment)
			elements = append(elements, &ast.Spread{NodeBase: nb(dotTok.Begin(), operand.Range().End), Operand: operand})
		} else {
			elements = append(elements, p.parseAssignment(exprConfig{}))
		}
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		break
	}
	end := p.expectRBracketOrRecover(open.Begin())
	return &ast.Array{NodeBase: nb(open.Begin(), end), Elements: elements}
}

// canBeMethodNameStart reports whether tok can open a property key,
// used to tell a modifier keyword (`async`/`get`/`set`/`static`) apart
// from that same spelling used as the member's own name.
func canBeMethodNameStart(tok token.Token) bool {
	return isNameLike(tok.Kind) || tok.Kind == token.LBracket || tok.Kind == token.String ||
		tok.Kind == token.Number || tok.Kind == token.PrivateIdentifier
}

// parseObjectLiteral parses `{ entries... }`.
func (p *Parser) parseObjectLiteral() ast.Expr {
	open := p.skip()
	var entries []ast.ObjectEntry
	for p.peekKind() != token.RBrace && p.peekKind() != token.EOF {
		entries = append(entries, p.parseObjectEntry())
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		break
	}
	end := p.expectCloserOrRecover(token.RBrace, open.Begin())
	return &ast.Object{NodeBase: nb(open.Begin(), end), Entries: entries}
}

// parseObjectEntry parses one entry: a spread, a method (optionally
// async/generator), a getter/setter (folded into a plain Method entry,
// ObjectEntry has no accessor-kind field, see DESIGN.md), a `key: value`
// pair, or a shorthand (optionally defaulted, for the cover grammar).
func (p *Parser) parseObjectEntry() ast.ObjectEntry {
	if p.peekKind() == token.DotDotDot {
		dotTok := p.skip()
		operand := p.operandOrMissing(dotTok, exprConfig{}, p.parseAssignment)
		return ast.ObjectEntry{Value: &ast.Spread{NodeBase: nb(dotTok.Begin(), operand.Range().End), Operand: operand}}
	}

	async := false
	generator := false
	startTok := p.cur()

	if p.isContextual(startTok, "async") {
		saved := startTok
		p.skip()
		if !canBeMethodNameStart(p.cur()) || p.cur().HasLeadingNewline {
			return p.finishShorthandOrKeyValue(saved, false, false)
		}
		async = true
		startTok = p.cur()
	}

	if p.peekKind() == token.Star {
		p.skip()
		generator = true
		startTok = p.cur()
	}

	if (p.isContextual(startTok, "get") || p.isContextual(startTok, "set")) && !async && !generator {
		accessorTok := startTok
		p.skip()
		if !canBeMethodNameStart(p.cur()) {
			return p.finishShorthandOrKeyValue(accessorTok, false, false)
		}
		key, computed := p.parsePropertyKey()
		params := p.parseParams()
		body := p.parseBlock()
		fn := &ast.Function{NodeBase: nb(accessorTok.Begin(), body.Range().End), Params: params, Body: body}
		return ast.ObjectEntry{Property: key, Value: fn, Method: true, Computed: computed}
	}

	key, computed := p.parsePropertyKey()

	if p.peekKind() == token.LParen {
		params := p.parseParams()
		body := p.parseBlock()
		attrs := ast.Normal
		if async {
			attrs = ast.AsyncAttr
		}
		fn := &ast.Function{NodeBase: nb(key.Range().Begin, body.Range().End), Params: params, Body: body, Attributes: attrs, Generator: generator}
		return ast.ObjectEntry{Property: key, Value: fn, Method: true, Computed: computed}
	}

	if p.peekKind() == token.Colon {
		p.skip()
		value := p.parseAssignment(exprConfig{})
		return ast.ObjectEntry{Property: key, Value: value, Computed: computed}
	}

	if v, ok := key.(*ast.Variable); ok && !computed {
		if p.peekKind() == token.Assign {
			p.skip()
			def := p.parseAssignment(exprConfig{})
			return ast.ObjectEntry{Property: v, Value: &ast.Assignment{NodeBase: nb(v.Range().Begin, def.Range().End), Left: v, Right: def}, Shorthand: true}
		}
		return ast.ObjectEntry{Property: v, Value: v, Shorthand: true}
	}

	p.errorAt(diagnostic.CodeUnexpectedToken, "expected ':' in object literal", p.cur().Span)
	return ast.ObjectEntry{Property: key, Value: &ast.Invalid{NodeBase: nb(p.lastEnd, p.lastEnd)}}
}

// finishShorthandOrKeyValue handles the case where a modifier keyword
// (`async`/`get`/`set`) turns out to be the entry's own key, not a
// modifier, e.g. `{ get: 1 }` or `{ async }`.
func (p *Parser) finishShorthandOrKeyValue(tok token.Token, async, generator bool) ast.ObjectEntry {
	key := &ast.Variable{NodeBase: nb(tok.Begin(), tok.End()), Name: p.identifierFromToken(tok)}
	if p.peekKind() == token.LParen {
		params := p.parseParams()
		body := p.parseBlock()
		attrs := ast.Normal
		if async {
			attrs = ast.AsyncAttr
		}
		fn := &ast.Function{NodeBase: nb(key.Range().Begin, body.Range().End), Params: params, Body: body, Attributes: attrs, Generator: generator}
		return ast.ObjectEntry{Property: key, Value: fn, Method: true}
	}
	if p.peekKind() == token.Colon {
		p.skip()
		value := p.parseAssignment(exprConfig{})
		return ast.ObjectEntry{Property: key, Value: value}
	}
	if p.peekKind() == token.Assign {
		p.skip()
		def := p.parseAssignment(exprConfig{})
		return ast.ObjectEntry{Property: key, Value: &ast.Assignment{NodeBase: nb(key.Range().Begin, def.Range().End), Left: key, Right: def}, Shorthand: true}
	}
	return ast.ObjectEntry{Property: key, Value: key, Shorthand: true}
}

// parsePropertyKey parses a property/member key: computed `[expr]`, a
// string or number literal key, or a name, including reserved and
// contextual keywords (`class`, `default`, `static`, ... are all legal
// property names).
func (p *Parser) parsePropertyKey() (ast.Expr, bool) {
	if p.peekKind() == token.LBracket {
		open := p.skip()
		expr := p.parseAssignment(exprConfig{})
		p.expectRBracketOrRecover(open.Begin())
		return expr, true
	}
	tok := p.cur()
	switch tok.Kind {
	case token.String:
		p.skip()
		return &ast.Literal{NodeBase: nb(tok.Begin(), tok.End()), Kind: ast.StringLiteral, Raw: p.spelling(tok)}, false
	case token.Number:
		p.skip()
		return &ast.Literal{NodeBase: nb(tok.Begin(), tok.End()), Kind: ast.NumberLiteral, Raw: p.spelling(tok)}, false
	case token.PrivateIdentifier:
		p.skip()
		return &ast.Variable{NodeBase: nb(tok.Begin(), tok.End()), Name: p.identifierFromToken(tok)}, false
	}
	name := p.expectIdentifierName()
	return &ast.Variable{NodeBase: nb(name.Span.Begin, name.Span.End), Name: name}, false
}

// parseFunctionExpr parses the params/body common to anonymous and named
// function expressions; begin lets the caller include a preceding
// `async` keyword's offset in the node's span.
func (p *Parser) parseFunctionExpr(attrs ast.Attributes, begin int32) ast.Expr {
	p.skip() // 'function'
	generator := false
	if p.peekKind() == token.Star {
		p.skip()
		generator = true
	}
	if p.peekKind() == token.Ident {
		nameTok := p.skip()
		name := p.identifierFromToken(nameTok)
		params := p.parseParams()
		body := p.parseBlock()
		return &ast.NamedFunction{NodeBase: nb(begin, body.Range().End), Name: name, Params: params, Body: body, Attributes: attrs, Generator: generator}
	}
	params := p.parseParams()
	body := p.parseBlock()
	return &ast.Function{NodeBase: nb(begin, body.Range().End), Params: params, Body: body, Attributes: attrs, Generator: generator}
}

// parseClassExpr parses a class expression; class declarations reuse
// parseClassBody and wrap the same shape in a ClassDeclaration statement.
func (p *Parser) parseClassExpr() ast.Expr {
	classTok := p.skip() // 'class'
	var name *token.Identifier
	if p.peekKind() == token.Ident {
		nameTok := p.skip()
		id := p.identifierFromToken(nameTok)
		name = &id
	}
	var super ast.Expr
	if p.peekKind() == token.Extends {
		p.skip()
		super = p.parseCallMemberNew(exprConfig{})
	}
	members, end := p.parseClassBody()
	return &ast.Class{NodeBase: nb(classTok.Begin(), end), Name: name, SuperClass: super, Members: members}
}
