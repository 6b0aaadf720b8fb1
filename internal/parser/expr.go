package parser

import (
	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/token"
)

// parseExpression is the Pratt entry point: comma (level 1), spec.md
// §4.4. Comma operands are assignment-level; `x=1, y=2` must see the
// assignments, which a shared ladder covering every level could not do
// without re-deriving operand precedence at every step.
func (p *Parser) parseExpression(cfg exprConfig) ast.Expr {
	left := p.parseAssignment(cfg)
	if p.peekKind() != token.Comma {
		return left
	}
	operands := []ast.Expr{left}
	var operators []token.Kind
	for p.peekKind() == token.Comma {
		opTok := p.skip()
		operands = append(operands, p.operandOrMissing(opTok, cfg, p.parseAssignment))
		operators = append(operators, opTok.Kind)
	}
	return &ast.BinaryOperator{NodeBase: nb(spanOf(operands[0], operands[len(operands)-1]).Begin, spanOf(operands[0], operands[len(operands)-1]).End), Operands: operands, Operators: operators}
}

// operandOrMissing parses one operand with parseFn after opTok has just
// been consumed. If the current token cannot start an expression, it
// reports missing_operand_for_operator at opTok's range and synthesizes
// an Invalid leaf there instead of consuming anything, spec.md §4.4's
// `2+` / `2 & & & 2` scenarios.
func (p *Parser) operandOrMissing(opTok token.Token, cfg exprConfig, parseFn func(exprConfig) ast.Expr) ast.Expr {
	if !canStartExpression(p.cur()) {
		p.errorAt(diagnostic.CodeMissingOperand, "missing operand for operator", opTok.Span)
		return &ast.Invalid{NodeBase: ast.NodeBase{Span: opTok.Span}}
	}
	return parseFn(cfg)
}

// parseAssignment covers levels 3 (yield) and 4 (assignment).
func (p *Parser) parseAssignment(cfg exprConfig) ast.Expr {
	if p.isContextual(p.cur(), "yield") {
		return p.parseYield(cfg)
	}

	left := p.parseConditional(cfg)

	// `ident => body`: ArrowFunction is a distinct alternative at this
	// level, not a suffix of ConditionalExpression, but the single-token
	// lookahead lexer leaves no way to tell until after `ident` is
	// already parsed as a primary (spec.md §9's cover grammar handles the
	// parenthesized case; this handles the unparenthesized one).
	if v, ok := left.(*ast.Variable); ok && p.peekKind() == token.Arrow && !p.cur().HasLeadingNewline {
		arrowTok := p.skip()
		param := &ast.PatternIdentifierNode{NodeBase: v.NodeBase, Name: v.Name}
		return p.finishArrowBody(v.Range().Begin, []ast.Pattern{param}, ast.Normal, arrowTok)
	}

	opTok := p.cur()
	if !opTok.Kind.IsAssignmentOperator() {
		return left
	}
	p.skip()

	if !isValidAssignmentTarget(left) {
		p.errorAt(diagnostic.CodeInvalidAssignmentTarget, "invalid assignment target", left.Range())
	}

	right := p.operandOrMissing(opTok, cfg, p.parseAssignment)

	span := nb(left.Range().Begin, right.Range().End)
	if opTok.Kind == token.Assign {
		return &ast.Assignment{NodeBase: span, Left: left, Right: right}
	}
	return &ast.UpdatingAssignment{NodeBase: span, Operator: opTok.Kind, Left: left, Right: right}
}

// parseYield handles `yield` and `yield expr` at level 3 (right-assoc,
// operand parsed at this same assignment level); modeled as a generic
// UnaryOperator (await aside, the prefix operator family, delete/typeof/
// void included, shares one node shape, and spec.md's AST table has no
// dedicated yield kind).
func (p *Parser) parseYield(cfg exprConfig) ast.Expr {
	yieldTok := p.skip()
	if !canStartExpression(p.cur()) || p.cur().HasLeadingNewline {
		return &ast.UnaryOperator{NodeBase: nb(yieldTok.Begin(), yieldTok.End()), Operator: token.Yield}
	}
	operand := p.parseAssignment(cfg)
	return &ast.UnaryOperator{NodeBase: nb(yieldTok.Begin(), operand.Range().End), Operator: token.Yield, Operand: operand}
}

// parseConditional is level 5, `test ? consequent : alternate`,
// right-associative.
func (p *Parser) parseConditional(cfg exprConfig) ast.Expr {
	test := p.parseBinary(minBinaryPrec, cfg)
	if p.peekKind() != token.QuestionMark {
		return test
	}
	qTok := p.skip()
	consequent := p.operandOrMissing(qTok, exprConfig{}, p.parseAssignment)
	colonTok, ok := p.expect(token.Colon, "':'")
	var alternate ast.Expr
	if ok {
		alternate = p.operandOrMissing(colonTok, cfg, p.parseAssignment)
	} else {
		alternate = &ast.Invalid{NodeBase: nb(p.lastEnd, p.lastEnd)}
	}
	return &ast.Conditional{NodeBase: nb(test.Range().Begin, alternate.Range().End), Test: test, Consequent: consequent, Alternate: alternate}
}

const minBinaryPrec = 6

// binaryInfo reports the precedence level (spec.md §4.4's ladder, 6..16),
// associativity, and applicability of kind as an infix binary operator.
// `in` is suppressed when cfg.noIn (the init clause of a classic
// for(;;) loop, where a bare `in` would be ambiguous with for-in).
func binaryInfo(kind token.Kind, noIn bool) (prec int, rightAssoc bool, ok bool) {
	switch kind {
	case token.PipePipe:
		return 6, false, true
	case token.AmpAmp:
		return 7, false, true
	case token.Pipe:
		return 8, false, true
	case token.Caret:
		return 9, false, true
	case token.Amp:
		return 10, false, true
	case token.Eq, token.NotEq, token.StrictEq, token.StrictNotEq:
		return 11, false, true
	case token.Lt, token.Gt, token.Le, token.Ge, token.Instanceof:
		return 12, false, true
	case token.In:
		if noIn {
			return 0, false, false
		}
		return 12, false, true
	case token.Shl, token.Shr, token.UShr:
		return 13, false, true
	case token.Plus, token.Minus:
		return 14, false, true
	case token.Star, token.Slash, token.Percent:
		return 15, false, true
	case token.StarStar:
		return 16, true, true
	}
	return 0, false, false
}

// parseBinary is precedence climbing over levels 6..16. Left-associative
// chains at the same precedence level merge into one flattened
// BinaryOperator (spec.md's `x+y-z` scenario); right-associative chains
// (only `**`) never merge, each one building a fresh two-operand node so
// `a**b**c` nests as `a**(b**c)`.
func (p *Parser) parseBinary(minPrec int, cfg exprConfig) ast.Expr {
	left := p.parseUnaryLevel(cfg)
	for {
		prec, rightAssoc, ok := binaryInfo(p.peekKind(), cfg.noIn)
		if !ok || prec < minPrec {
			return left
		}
		opTok := p.skip()
		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right := p.operandOrMissing(opTok, cfg, func(c exprConfig) ast.Expr { return p.parseBinary(nextMin, c) })

		if !rightAssoc {
			if bin, isBin := left.(*ast.BinaryOperator); isBin {
				if existingPrec, _, _ := binaryInfo(bin.Operators[0], cfg.noIn); existingPrec == prec {
					bin.Operands = append(bin.Operands, right)
					bin.Operators = append(bin.Operators, opTok.Kind)
					bin.Span.End = right.Range().End
					continue
				}
			}
		}
		left = &ast.BinaryOperator{
			NodeBase:  nb(left.Range().Begin, right.Range().End),
			Operands:  []ast.Expr{left, right},
			Operators: []token.Kind{opTok.Kind},
		}
	}
}

// parseUnaryLevel is level 17: prefix `! ~ + - typeof void delete`,
// prefix `++`/`--`, and `await` (which gets its own AST node per
// spec.md's table). Operands recurse at this same level so chains like
// `typeof typeof x` parse.
func (p *Parser) parseUnaryLevel(cfg exprConfig) ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus, token.Typeof, token.Void, token.Delete:
		p.skip()
		operand := p.operandOrMissing(tok, cfg, p.parseUnaryLevel)
		return &ast.UnaryOperator{NodeBase: nb(tok.Begin(), operand.Range().End), Operator: tok.Kind, Operand: operand}
	case token.Increment, token.Decrement:
		p.skip()
		operand := p.operandOrMissing(tok, cfg, p.parseUnaryLevel)
		return &ast.RWUnaryPrefix{NodeBase: nb(tok.Begin(), operand.Range().End), Operator: tok.Kind, Operand: operand}
	case token.Ident:
		if p.spelling(tok) == "await" {
			p.skip()
			operand := p.operandOrMissing(tok, cfg, p.parseUnaryLevel)
			return &ast.Await{NodeBase: nb(tok.Begin(), operand.Range().End), Operand: operand}
		}
	}
	return p.parsePostfix(cfg)
}

// parsePostfix is level 18: postfix `++`/`--`, suppressed across a
// leading newline per ASI (spec.md's `x\n++\ny` scenario: the `++`
// instead begins the next statement as a prefix operator).
func (p *Parser) parsePostfix(cfg exprConfig) ast.Expr {
	operand := p.parseCallMemberNew(cfg)
	tok := p.cur()
	if (tok.Kind == token.Increment || tok.Kind == token.Decrement) && !tok.HasLeadingNewline {
		p.skip()
		return &ast.RWUnarySuffix{NodeBase: nb(operand.Range().Begin, tok.End()), Operator: tok.Kind, Operand: operand}
	}
	return operand
}

// parseCallMemberNew is level 19: `.x`, `[x]`, `f(args)`, tagged
// templates, layered on top of a primary (`new` is itself parsed as a
// primary, with its own restricted callee chain, see parseNew).
func (p *Parser) parseCallMemberNew(cfg exprConfig) ast.Expr {
	expr := p.parsePrimary(cfg)
	return p.applyCallMemberSuffixes(expr, cfg)
}

func (p *Parser) applyCallMemberSuffixes(expr ast.Expr, cfg exprConfig) ast.Expr {
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
		case token.LParen:
			args, end := p.parseArgumentList()
			expr = &ast.Call{NodeBase: nb(expr.Range().Begin, end), Callee: expr, Args: args}
		case token.TemplateHead, token.TemplateComplete:
			expr = p.parseTemplate(expr)
		default:
			return expr
		}
	}
}

// parseArgumentList parses a parenthesized, comma-separated, spread-aware
// argument list. Shared by calls and `new` arguments; parseGroupOrArrow
// scans its own parenthesized list for the arrow-function cover grammar.
func (p *Parser) parseArgumentList() ([]ast.Expr, int32) {
	open, _ := p.expect(token.LParen, "'('")
	var args []ast.Expr
	for p.peekKind() != token.RParen && p.peekKind() != token.EOF {
		if p.peekKind() == token.DotDotDot {
			dotTok := p.skip()
			operand := p.operandOrMissing(dotTok, exprConfig{}, p.parseAssignment)
			args = append(args, &ast.Spread{NodeBase: nb(dotTok.Begin(), operand.Range().End), Operand: operand})
		} else {
			args = append(args, p.parseAssignment(exprConfig{}))
		}
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		break
	}
	end := p.expectRParenOrRecover(open.Begin())
	return args, end
}

func isValidAssignmentTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Variable, *ast.Dot, *ast.Index, *ast.Array, *ast.Object:
		return true
	}
	return false
}
