package parser

import (
	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/token"
)

// parseClassBody parses the `{ members... }` shared by class declarations
// and class expressions.
func (p *Parser) parseClassBody() ([]ast.ClassMember, int32) {
	open, _ := p.expect(token.LBrace, "'{'")
	var members []ast.ClassMember
	for p.peekKind() != token.RBrace && p.peekKind() != token.EOF {
		if p.peekKind() == token.Semicolon {
			p.skip()
			continue
		}
		members = append(members, p.parseClassMember())
	}
	end := p.expectCloserOrRecover(token.RBrace, open.Begin())
	return members, end
}

// parseClassMember parses one member: a field, a method, or a
// getter/setter, each optionally `static`/`async`/generator, and handles
// every case where one of those modifier spellings is actually the
// member's own name (`static(){}`, `class C { static = 1 }`, ...).
func (p *Parser) parseClassMember() ast.ClassMember {
	static := false
	if p.isContextual(p.cur(), "static") {
		saveTok := p.cur()
		p.skip()
		if !canBeMethodNameStart(p.cur()) || p.peekKind() == token.Assign || p.peekKind() == token.Semicolon {
			return p.finishClassFieldOrMethod(saveTok, false, false, false, false)
		}
		static = true
	}

	async := false
	generator := false
	cur := p.cur()

	if p.isContextual(cur, "async") {
		saveTok := cur
		p.skip()
		if !canBeMethodNameStart(p.cur()) || p.cur().HasLeadingNewline || p.peekKind() == token.Assign || p.peekKind() == token.Semicolon {
			return p.finishClassFieldOrMethod(saveTok, static, false, false, false)
		}
		async = true
		cur = p.cur()
	}

	if p.peekKind() == token.Star {
		p.skip()
		generator = true
		cur = p.cur()
	}

	if (p.isContextual(cur, "get") || p.isContextual(cur, "set")) && !async && !generator {
		accessorTok := cur
		isGetter := p.spelling(cur) == "get"
		p.skip()
		if !canBeMethodNameStart(p.cur()) || p.peekKind() == token.Assign || p.peekKind() == token.Semicolon {
			return p.finishClassFieldOrMethod(accessorTok, static, false, false, false)
		}
		kind := ast.SetterMember
		if isGetter {
			kind = ast.GetterMember
		}
		key, computed := p.parsePropertyKey()
		params := p.parseParams()
		body := p.parseBlock()
		fn := &ast.Function{NodeBase: nb(accessorTok.Begin(), body.Range().End), Params: params, Body: body}
		return ast.ClassMember{Key: key, Value: fn, Kind: kind, Static: static, Computed: computed}
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
		return ast.ClassMember{Key: key, Value: fn, Kind: ast.MethodMember, Static: static, Computed: computed}
	}

	var value ast.Expr
	if p.peekKind() == token.Assign {
		p.skip()
		value = p.parseAssignment(exprConfig{})
	}
	p.consumeSemicolonASI()
	return ast.ClassMember{Key: key, Value: value, Kind: ast.FieldMember, Static: static, Computed: computed}
}

// finishClassFieldOrMethod handles the case where a modifier keyword
// turns out to be the member's own name.
func (p *Parser) finishClassFieldOrMethod(nameTok token.Token, static, async, generator bool, _ bool) ast.ClassMember {
	key := &ast.Variable{NodeBase: nb(nameTok.Begin(), nameTok.End()), Name: p.identifierFromToken(nameTok)}
	if p.peekKind() == token.LParen {
		params := p.parseParams()
		body := p.parseBlock()
		attrs := ast.Normal
		if async {
			attrs = ast.AsyncAttr
		}
		fn := &ast.Function{NodeBase: nb(key.Range().Begin, body.Range().End), Params: params, Body: body, Attributes: attrs, Generator: generator}
		return ast.ClassMember{Key: key, Value: fn, Kind: ast.MethodMember, Static: static}
	}
	var value ast.Expr
	if p.peekKind() == token.Assign {
		p.skip()
		value = p.parseAssignment(exprConfig{})
	}
	p.consumeSemicolonASI()
	return ast.ClassMember{Key: key, Value: value, Kind: ast.FieldMember, Static: static}
}
