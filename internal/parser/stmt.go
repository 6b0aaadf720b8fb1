package parser

import (
	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/sourcecode"
	"github.com/arnodel/jslint/internal/token"
)

// parseStatementList parses statements until terminator (RBrace for a
// block, EOF for the top level) or EOF.
func (p *Parser) parseStatementList(terminator token.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	for p.peekKind() != terminator && p.peekKind() != token.EOF {
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

func (p *Parser) parseBlock() *ast.Block {
	open, _ := p.expect(token.LBrace, "'{'")
	stmts := p.parseStatementList(token.RBrace)
	end := p.expectCloserOrRecover(token.RBrace, open.Begin())
	return &ast.Block{NodeBase: nb(open.Begin(), end), Statements: stmts}
}

// consumeSemicolonASI implements the automatic-semicolon-insertion rule:
// a `;` is consumed if present; otherwise ASI succeeds silently when the
// next token is `}`, EOF, or separated from the current position by a
// line terminator; any other token is a missing_semicolon diagnostic.
func (p *Parser) consumeSemicolonASI() {
	if p.peekKind() == token.Semicolon {
		p.skip()
		return
	}
	if p.peekKind() == token.RBrace || p.peekKind() == token.EOF || p.cur().HasLeadingNewline {
		return
	}
	p.errorAt(diagnostic.CodeMissingSemicolon, "missing semicolon", sourcecode.Span{Begin: p.lastEnd, End: p.lastEnd})
}

func (p *Parser) parseStatement() ast.Stmt {
	tok := p.cur()
	switch tok.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Var, token.Let, token.Const:
		return p.parseVariableDeclarationStatement()
	case token.Function:
		return p.parseFunctionDeclaration(ast.Normal, tok.Begin())
	case token.Class:
		return p.parseClassDeclaration()
	case token.If:
		return p.parseIf()
	case token.For:
		return p.parseFor()
	case token.While:
		return p.parseWhile()
	case token.Do:
		return p.parseDoWhile()
	case token.Switch:
		return p.parseSwitch()
	case token.Try:
		return p.parseTry()
	case token.Throw:
		return p.parseThrow()
	case token.Return:
		return p.parseReturn()
	case token.Break:
		return p.parseBreakOrContinue(true)
	case token.Continue:
		return p.parseBreakOrContinue(false)
	case token.With:
		return p.parseWith()
	case token.Semicolon:
		p.skip()
		return &ast.Empty{NodeBase: nb(tok.Begin(), tok.End())}
	case token.Debugger:
		p.skip()
		p.consumeSemicolonASI()
		return &ast.Debugger{NodeBase: nb(tok.Begin(), p.lastEnd)}
	case token.Import:
		return p.parseImportDeclaration()
	case token.Export:
		return p.parseExportDeclaration()
	}
	// `async function` at statement position deliberately falls through
	// to here: it is parsed as an expression statement wrapping a
	// Function expression, not given hoisted FunctionDeclaration
	// semantics (see DESIGN.md).
	return p.parseExpressionOrLabeledStatement()
}

// parseExpressionOrLabeledStatement parses a bare expression statement,
// or, when the parsed expression is a single identifier immediately
// followed by `:`, a labeled statement. A single token of lookahead is
// enough: no other expression production can leave a bare identifier
// sitting right before a `:` that isn't itself part of a conditional
// expression already consumed by parseConditional.
func (p *Parser) parseExpressionOrLabeledStatement() ast.Stmt {
	expr := p.parseExpression(exprConfig{})
	if v, ok := expr.(*ast.Variable); ok && p.peekKind() == token.Colon {
		p.skip()
		body := p.parseStatement()
		return &ast.Labeled{NodeBase: nb(v.Range().Begin, body.Range().End), Label: v.Name, Body: body}
	}
	p.consumeSemicolonASI()
	return &ast.ExpressionStatement{NodeBase: nb(expr.Range().Begin, p.lastEnd), Expression: expr}
}

// parseVariableDeclaration parses `var/let/const` declarators without
// consuming a trailing `;`, shared by the statement form (which runs
// ASI afterward) and the classic for-loop's init clause (which stops at
// `;` itself).
func (p *Parser) parseVariableDeclaration(cfg exprConfig) *ast.VariableDeclaration {
	kindTok := p.skip()
	var kind ast.VariableKind
	switch kindTok.Kind {
	case token.Let:
		kind = ast.LetKind
	case token.Const:
		kind = ast.ConstKind
	default:
		kind = ast.VarKind
	}
	var decls []ast.Declarator
	for {
		target := p.parseBindingTarget()
		var init ast.Expr
		if p.peekKind() == token.Assign {
			p.skip()
			init = p.parseAssignment(cfg)
		}
		decls = append(decls, ast.Declarator{Target: target, Init: init})
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		break
	}
	return &ast.VariableDeclaration{NodeBase: nb(kindTok.Begin(), p.lastEnd), Kind: kind, Declarators: decls}
}

func (p *Parser) parseVariableDeclarationStatement() ast.Stmt {
	decl := p.parseVariableDeclaration(exprConfig{})
	p.consumeSemicolonASI()
	decl.Span.End = p.lastEnd
	return decl
}

func (p *Parser) parseFunctionDeclaration(attrs ast.Attributes, begin int32) ast.Stmt {
	p.skip() // 'function'
	generator := false
	if p.peekKind() == token.Star {
		p.skip()
		generator = true
	}
	name := p.expectIdentifierName()
	params := p.parseParams()
	body := p.parseBlock()
	return &ast.FunctionDeclaration{NodeBase: nb(begin, body.Range().End), Name: name, Params: params, Body: body, Attributes: attrs, Generator: generator}
}

func (p *Parser) parseClassDeclaration() ast.Stmt {
	classTok := p.skip()
	name := p.expectIdentifierName()
	var super ast.Expr
	if p.peekKind() == token.Extends {
		p.skip()
		super = p.parseCallMemberNew(exprConfig{})
	}
	members, end := p.parseClassBody()
	return &ast.ClassDeclaration{NodeBase: nb(classTok.Begin(), end), Name: name, SuperClass: super, Members: members}
}

func (p *Parser) parseIf() ast.Stmt {
	ifTok := p.skip()
	open, _ := p.expect(token.LParen, "'('")
	test := p.parseExpression(exprConfig{})
	p.expectRParenOrRecover(open.Begin())
	consequent := p.parseStatement()
	var alternate ast.Stmt
	end := consequent.Range().End
	if p.peekKind() == token.Else {
		p.skip()
		alternate = p.parseStatement()
		end = alternate.Range().End
	}
	return &ast.If{NodeBase: nb(ifTok.Begin(), end), Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseWhile() ast.Stmt {
	whileTok := p.skip()
	open, _ := p.expect(token.LParen, "'('")
	test := p.parseExpression(exprConfig{})
	p.expectRParenOrRecover(open.Begin())
	body := p.parseStatement()
	return &ast.While{NodeBase: nb(whileTok.Begin(), body.Range().End), Test: test, Body: body}
}

func (p *Parser) parseDoWhile() ast.Stmt {
	doTok := p.skip()
	body := p.parseStatement()
	p.expect(token.While, "'while'")
	open, _ := p.expect(token.LParen, "'('")
	test := p.parseExpression(exprConfig{})
	p.expectRParenOrRecover(open.Begin())
	p.consumeSemicolonASI()
	return &ast.DoWhile{NodeBase: nb(doTok.Begin(), p.lastEnd), Body: body, Test: test}
}

// parseFor handles all three `for` shapes. The classic three-clause form
// and for-in/for-of are told apart only after parsing the first clause
// (with noIn set, since a bare `in` there would otherwise be ambiguous
// with for-in's own `in`), by checking whether `in` or the contextual
// `of` follows.
func (p *Parser) parseFor() ast.Stmt {
	forTok := p.skip()
	isAwait := false
	if p.isContextual(p.cur(), "await") {
		p.skip()
		isAwait = true
	}
	open, _ := p.expect(token.LParen, "'('")

	var initNode ast.Node
	switch p.peekKind() {
	case token.Semicolon:
		initNode = nil
	case token.Var, token.Let, token.Const:
		initNode = p.parseVariableDeclaration(exprConfig{noIn: true})
	default:
		initNode = p.parseExpression(exprConfig{noIn: true})
	}

	if p.peekKind() == token.In {
		p.skip()
		right := p.parseExpression(exprConfig{})
		p.expectRParenOrRecover(open.Begin())
		body := p.parseStatement()
		return &ast.ForIn{NodeBase: nb(forTok.Begin(), body.Range().End), Left: initNode, Right: right, Body: body}
	}
	if p.isContextual(p.cur(), "of") {
		p.skip()
		right := p.parseAssignment(exprConfig{})
		p.expectRParenOrRecover(open.Begin())
		body := p.parseStatement()
		return &ast.ForOf{NodeBase: nb(forTok.Begin(), body.Range().End), Await: isAwait, Left: initNode, Right: right, Body: body}
	}

	p.expect(token.Semicolon, "';'")
	var test ast.Expr
	if p.peekKind() != token.Semicolon {
		test = p.parseExpression(exprConfig{})
	}
	p.expect(token.Semicolon, "';'")
	var update ast.Expr
	if p.peekKind() != token.RParen {
		update = p.parseExpression(exprConfig{})
	}
	p.expectRParenOrRecover(open.Begin())
	body := p.parseStatement()
	return &ast.For{NodeBase: nb(forTok.Begin(), body.Range().End), Init: initNode, Test: test, Update: update, Body: body}
}

func (p *Parser) parseSwitch() ast.Stmt {
	switchTok := p.skip()
	open, _ := p.expect(token.LParen, "'('")
	discriminant := p.parseExpression(exprConfig{})
	p.expectRParenOrRecover(open.Begin())
	braceOpen, _ := p.expect(token.LBrace, "'{'")
	var cases []ast.SwitchCase
	for p.peekKind() != token.RBrace && p.peekKind() != token.EOF {
		var test ast.Expr
		if p.peekKind() == token.Case {
			p.skip()
			test = p.parseExpression(exprConfig{})
		} else {
			p.expect(token.Default, "'default'")
		}
		p.expect(token.Colon, "':'")
		var body []ast.Stmt
		for p.peekKind() != token.Case && p.peekKind() != token.Default && p.peekKind() != token.RBrace && p.peekKind() != token.EOF {
			body = append(body, p.parseStatement())
		}
		cases = append(cases, ast.SwitchCase{Test: test, Consequent: body})
	}
	end := p.expectCloserOrRecover(token.RBrace, braceOpen.Begin())
	return &ast.Switch{NodeBase: nb(switchTok.Begin(), end), Discriminant: discriminant, Cases: cases}
}

func (p *Parser) parseTry() ast.Stmt {
	tryTok := p.skip()
	body := p.parseBlock()
	var catch *ast.Catch
	var finally *ast.Block
	end := body.Range().End
	if p.peekKind() == token.Catch {
		p.skip()
		var param ast.Pattern
		if p.peekKind() == token.LParen {
			open := p.skip()
			param = p.parseBindingTarget()
			p.expectRParenOrRecover(open.Begin())
		}
		catchBody := p.parseBlock()
		catch = &ast.Catch{Param: param, Body: catchBody}
		end = catchBody.Range().End
	}
	if p.peekKind() == token.Finally {
		p.skip()
		finally = p.parseBlock()
		end = finally.Range().End
	}
	return &ast.Try{NodeBase: nb(tryTok.Begin(), end), Body: body, Catch: catch, Finally: finally}
}

func (p *Parser) parseThrow() ast.Stmt {
	throwTok := p.skip()
	value := p.operandOrMissing(throwTok, exprConfig{}, p.parseExpression)
	p.consumeSemicolonASI()
	return &ast.Throw{NodeBase: nb(throwTok.Begin(), p.lastEnd), Value: value}
}

func (p *Parser) parseReturn() ast.Stmt {
	returnTok := p.skip()
	var value ast.Expr
	if canStartExpression(p.cur()) && !p.cur().HasLeadingNewline {
		value = p.parseExpression(exprConfig{})
	}
	p.consumeSemicolonASI()
	return &ast.Return{NodeBase: nb(returnTok.Begin(), p.lastEnd), Value: value}
}

func (p *Parser) parseBreakOrContinue(isBreak bool) ast.Stmt {
	tok := p.skip()
	var label *token.Identifier
	if p.peekKind() == token.Ident && !p.cur().HasLeadingNewline {
		idTok := p.skip()
		id := p.identifierFromToken(idTok)
		label = &id
	}
	p.consumeSemicolonASI()
	if isBreak {
		return &ast.Break{NodeBase: nb(tok.Begin(), p.lastEnd), Label: label}
	}
	return &ast.Continue{NodeBase: nb(tok.Begin(), p.lastEnd), Label: label}
}

func (p *Parser) parseWith() ast.Stmt {
	withTok := p.skip()
	open, _ := p.expect(token.LParen, "'('")
	object := p.parseExpression(exprConfig{})
	p.expectRParenOrRecover(open.Begin())
	body := p.parseStatement()
	return &ast.With{NodeBase: nb(withTok.Begin(), body.Range().End), Object: object, Body: body}
}

// expectFrom consumes the contextual `from` keyword of an import/export
// clause. Like `as`/`of`, it has no dedicated token.Kind; the lexer
// always emits Ident, so it is recognized by spelling.
func (p *Parser) expectFrom() {
	if p.isContextual(p.cur(), "from") {
		p.skip()
		return
	}
	p.errorAt(diagnostic.CodeUnexpectedToken, "expected 'from'", p.cur().Span)
}

func (p *Parser) parseImportDeclaration() ast.Stmt {
	importTok := p.skip()
	if p.peekKind() == token.String {
		srcTok := p.skip()
		p.consumeSemicolonASI()
		return &ast.ImportDeclaration{NodeBase: nb(importTok.Begin(), p.lastEnd), Source: p.spelling(srcTok)}
	}

	var specs []ast.ImportSpecifier
	if p.peekKind() == token.Ident {
		nameTok := p.skip()
		specs = append(specs, ast.ImportSpecifier{Local: p.identifierFromToken(nameTok), Default: true})
		if p.peekKind() == token.Comma {
			p.skip()
		}
	}

	switch p.peekKind() {
	case token.Star:
		p.skip()
		if p.isContextual(p.cur(), "as") {
			p.skip()
		}
		local := p.expectIdentifierName()
		specs = append(specs, ast.ImportSpecifier{Local: local, Namespace: true})
	case token.LBrace:
		p.skip()
		for p.peekKind() != token.RBrace && p.peekKind() != token.EOF {
			imported := p.expectIdentifierName()
			local := imported
			if p.isContextual(p.cur(), "as") {
				p.skip()
				local = p.expectIdentifierName()
			}
			specs = append(specs, ast.ImportSpecifier{Imported: &imported, Local: local})
			if p.peekKind() == token.Comma {
				p.skip()
				continue
			}
			break
		}
		p.expect(token.RBrace, "'}'")
	}

	p.expectFrom()
	srcTok, _ := p.expect(token.String, "a module string")
	p.consumeSemicolonASI()
	return &ast.ImportDeclaration{NodeBase: nb(importTok.Begin(), p.lastEnd), Specifiers: specs, Source: p.spelling(srcTok)}
}

func (p *Parser) parseExportDeclaration() ast.Stmt {
	exportTok := p.skip()

	if p.peekKind() == token.Default {
		p.skip()
		if p.peekKind() == token.Function || p.peekKind() == token.Class || p.isContextual(p.cur(), "async") {
			decl := p.parseStatement()
			return &ast.ExportDeclaration{NodeBase: nb(exportTok.Begin(), decl.Range().End), Declaration: decl}
		}
		value := p.parseAssignment(exprConfig{})
		p.consumeSemicolonASI()
		return &ast.ExportDeclaration{NodeBase: nb(exportTok.Begin(), p.lastEnd), Default: value}
	}

	if p.peekKind() == token.Star {
		p.skip()
		if p.isContextual(p.cur(), "as") {
			p.skip()
			p.expectIdentifierName()
		}
		p.expectFrom()
		srcTok, _ := p.expect(token.String, "a module string")
		src := p.spelling(srcTok)
		p.consumeSemicolonASI()
		return &ast.ExportDeclaration{NodeBase: nb(exportTok.Begin(), p.lastEnd), Star: true, Source: &src}
	}

	if p.peekKind() == token.LBrace {
		p.skip()
		var specs []ast.ExportSpecifier
		for p.peekKind() != token.RBrace && p.peekKind() != token.EOF {
			local := p.expectIdentifierName()
			exported := local
			if p.isContextual(p.cur(), "as") {
				p.skip()
				exported = p.expectIdentifierName()
			}
			specs = append(specs, ast.ExportSpecifier{Local: local, Exported: exported})
			if p.peekKind() == token.Comma {
				p.skip()
				continue
			}
			break
		}
		p.expect(token.RBrace, "'}'")
		var src *string
		if p.isContextual(p.cur(), "from") {
			p.skip()
			srcTok, _ := p.expect(token.String, "a module string")
			s := p.spelling(srcTok)
			src = &s
		}
		p.consumeSemicolonASI()
		return &ast.ExportDeclaration{NodeBase: nb(exportTok.Begin(), p.lastEnd), Specifiers: specs, Source: src}
	}

	decl := p.parseStatement()
	return &ast.ExportDeclaration{NodeBase: nb(exportTok.Begin(), decl.Range().End), Declaration: decl}
}
