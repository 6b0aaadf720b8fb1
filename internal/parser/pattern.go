package parser

import (
	"github.com/arnodel/jslint/internal/ast"
	"github.com/arnodel/jslint/internal/diagnostic"
	"github.com/arnodel/jslint/internal/token"
)

// parseParams parses a parenthesized, comma-separated parameter list for
// a function declaration/expression, a method, or an accessor.
func (p *Parser) parseParams() []ast.Pattern {
	open, _ := p.expect(token.LParen, "'('")
	var params []ast.Pattern
	for p.peekKind() != token.RParen && p.peekKind() != token.EOF {
		params = append(params, p.parseBindingElement())
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		break
	}
	p.expectRParenOrRecover(open.Begin())
	return params
}

// parseBindingElement parses one parameter/declarator-position pattern:
// a rest pattern, or a pattern with an optional default.
func (p *Parser) parseBindingElement() ast.Pattern {
	if p.peekKind() == token.DotDotDot {
		dotTok := p.skip()
		target := p.parseBindingTarget()
		return &ast.PatternRestNode{NodeBase: nb(dotTok.Begin(), target.Range().End), Target: target}
	}
	target := p.parseBindingTarget()
	if p.peekKind() == token.Assign {
		p.skip()
		def := p.parseAssignment(exprConfig{})
		return &ast.PatternAssignmentNode{NodeBase: nb(target.Range().Begin, def.Range().End), Target: target, Default: def}
	}
	return target
}

// parseBindingTarget parses a plain identifier, array, or object binding
// pattern, without the default/rest wrapper parseBindingElement adds.
func (p *Parser) parseBindingTarget() ast.Pattern {
	switch p.peekKind() {
	case token.LBracket:
		return p.parseArrayPattern()
	case token.LBrace:
		return p.parseObjectPattern()
	}
	tok := p.cur()
	if tok.Kind == token.Ident {
		p.skip()
		return &ast.PatternIdentifierNode{NodeBase: nb(tok.Begin(), tok.End()), Name: p.identifierFromToken(tok)}
	}
	p.errorAt(diagnostic.CodeUnexpectedToken, "expected a binding target", tok.Span)
	return &ast.InvalidPatternNode{NodeBase: nb(p.lastEnd, p.lastEnd)}
}

func (p *Parser) parseArrayPattern() ast.Pattern {
	open := p.skip()
	var elements []ast.Pattern
	var rest ast.Pattern
	for p.peekKind() != token.RBracket && p.peekKind() != token.EOF {
		if p.peekKind() == token.Comma {
			p.skip()
			elements = append(elements, nil)
			continue
		}
		if p.peekKind() == token.DotDotDot {
			dotTok := p.skip()
			target := p.parseBindingTarget()
			rest = &ast.PatternRestNode{NodeBase: nb(dotTok.Begin(), target.Range().End), Target: target}
			break
		}
		elements = append(elements, p.parseBindingElement())
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		break
	}
	end := p.expectRBracketOrRecover(open.Begin())
	return &ast.PatternArrayNode{NodeBase: nb(open.Begin(), end), Elements: elements, Rest: rest}
}

func (p *Parser) parseObjectPattern() ast.Pattern {
	open := p.skip()
	var props []ast.PatternObjectProperty
	var rest ast.Pattern
	for p.peekKind() != token.RBrace && p.peekKind() != token.EOF {
		if p.peekKind() == token.DotDotDot {
			dotTok := p.skip()
			target := p.parseBindingTarget()
			rest = &ast.PatternRestNode{NodeBase: nb(dotTok.Begin(), target.Range().End), Target: target}
			break
		}
		key, computed := p.parsePropertyKey()
		var value ast.Pattern
		shorthand := false
		if p.peekKind() == token.Colon {
			p.skip()
			value = p.parseBindingTarget()
		} else {
			shorthand = true
			if v, ok := key.(*ast.Variable); ok {
				value = &ast.PatternIdentifierNode{NodeBase: v.NodeBase, Name: v.Name}
			} else {
				value = &ast.InvalidPatternNode{NodeBase: nb(key.Range().Begin, key.Range().End)}
			}
		}
		if p.peekKind() == token.Assign {
			p.skip()
			def := p.parseAssignment(exprConfig{})
			value = &ast.PatternAssignmentNode{NodeBase: nb(value.Range().Begin, def.Range().End), Target: value, Default: def}
		}
		props = append(props, ast.PatternObjectProperty{Key: key, Value: value, Computed: computed, Shorthand: shorthand})
		if p.peekKind() == token.Comma {
			p.skip()
			continue
		}
		break
	}
	end := p.expectCloserOrRecover(token.RBrace, open.Begin())
	return &ast.PatternObjectNode{NodeBase: nb(open.Begin(), end), Properties: props, Rest: rest}
}

// exprToPattern reinterprets an already-parsed expression tree as a
// binding pattern: the arrow-function cover grammar's second pass
// (spec.md §9). By the time `=>` is seen, whatever sat inside the parens
// was already parsed as ordinary expressions; this walks that tree and
// maps each shape onto its pattern equivalent.
func (p *Parser) exprToPattern(e ast.Expr) ast.Pattern {
	switch v := e.(type) {
	case *ast.Variable:
		return &ast.PatternIdentifierNode{NodeBase: v.NodeBase, Name: v.Name}
	case *ast.Assignment:
		target := p.exprToPattern(v.Left)
		return &ast.PatternAssignmentNode{NodeBase: v.NodeBase, Target: target, Default: v.Right}
	case *ast.Spread:
		target := p.exprToPattern(v.Operand)
		return &ast.PatternRestNode{NodeBase: v.NodeBase, Target: target}
	case *ast.Array:
		elements := make([]ast.Pattern, len(v.Elements))
		for i, el := range v.Elements {
			elements[i] = p.exprToPattern(el)
		}
		return &ast.PatternArrayNode{NodeBase: v.NodeBase, Elements: elements}
	case *ast.Object:
		var props []ast.PatternObjectProperty
		var rest ast.Pattern
		for _, entry := range v.Entries {
			if entry.Property == nil {
				if spread, ok := entry.Value.(*ast.Spread); ok {
					rest = p.exprToPattern(spread.Operand)
				}
				continue
			}
			props = append(props, ast.PatternObjectProperty{
				Key:       entry.Property,
				Value:     p.exprToPattern(entry.Value),
				Computed:  entry.Computed,
				Shorthand: entry.Shorthand,
			})
		}
		return &ast.PatternObjectNode{NodeBase: v.NodeBase, Properties: props, Rest: rest}
	default:
		p.errorAt(diagnostic.CodeUnexpectedToken, "invalid arrow function parameter", e.Range())
		return &ast.InvalidPatternNode{NodeBase: ast.NodeBase{Span: e.Range()}}
	}
}
