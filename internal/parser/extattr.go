package parser

import (
	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/lexer"
)

// parseExtendedAttributeList consumes an optional "[...]" block of
// comma-separated ExtendedAttributes (spec.md §4.2). Returns nil if the
// current token is not "[".
func (p *Parser) parseExtendedAttributeList() []*ast.ExtendedAttribute {
	if _, ok := p.cursor.Skip(lexer.LBRACKET); !ok {
		return nil
	}

	var attrs []*ast.ExtendedAttribute
	for {
		attrs = append(attrs, p.parseExtendedAttribute())
		if _, ok := p.cursor.Skip(lexer.COMMA); ok {
			continue
		}
		break
	}
	p.expect(lexer.RBRACKET, ErrInvalidExtAttr, "extended attribute list")
	return attrs
}

// parseExtendedAttribute consumes one ExtendedAttribute, dispatching on its
// shape in the parsing-specificity order ExtAttrForm documents: a name alone
// (NoArgs), name"("...")" with no "=" (ArgList), or name"="<rhs> where rhs is
// "*" (Wildcard), "(" list ")" (IdentList/IntegerList), identifier"(" args ")"
// (NamedArgList), or a bare identifier/integer/decimal/string scalar.
func (p *Parser) parseExtendedAttribute() *ast.ExtendedAttribute {
	span := ast.Span{Start: p.cursor.Position()}
	e := p.arena.NewExtendedAttribute()

	name, ok := p.expectIdentifierLike(ErrInvalidExtAttr, "extended attribute name")
	if !ok {
		e.Form = ast.ExtNoArgs
		return e
	}
	e.Name = name

	switch {
	case p.cursor.Is(lexer.LPAREN):
		p.cursor = p.cursor.Advance()
		e.Form = ast.ExtArgList
		e.Arguments = p.parseArgumentList()
		p.expect(lexer.RPAREN, ErrInvalidExtAttr, "extended attribute argument list")

	case p.cursor.Is(lexer.ASSIGN):
		p.cursor = p.cursor.Advance()
		p.parseExtendedAttributeRHS(e)

	default:
		e.Form = ast.ExtNoArgs
	}

	span.End = p.cursor.Position()
	e.Span = span
	return e
}

func (p *Parser) parseExtendedAttributeRHS(e *ast.ExtendedAttribute) {
	switch {
	case p.cursor.Is(lexer.WILDCARD):
		p.cursor = p.cursor.Advance()
		e.Form = ast.ExtWildcard

	case p.cursor.Is(lexer.LPAREN):
		p.cursor = p.cursor.Advance()
		if p.cursor.Is(lexer.INTEGER) {
			e.Form = ast.ExtIntegerList
			e.Integers = p.parseIntegerListInner()
		} else {
			e.Form = ast.ExtIdentList
			e.Values = p.parseIdentifierListInner()
		}
		p.expect(lexer.RPAREN, ErrInvalidExtAttr, "extended attribute value list")

	case p.cursor.Is(lexer.INTEGER):
		e.Form = ast.ExtInteger
		e.Scalar = p.cursor.Current().Literal
		p.cursor = p.cursor.Advance()

	case p.cursor.Is(lexer.DECIMAL):
		e.Form = ast.ExtDecimal
		e.Scalar = p.cursor.Current().Literal
		p.cursor = p.cursor.Advance()

	case p.cursor.Is(lexer.STRINGLIT):
		e.Form = ast.ExtString
		e.Scalar = p.cursor.Current().Literal
		p.cursor = p.cursor.Advance()

	default:
		rhs, ok := p.expectIdentifierLike(ErrInvalidExtAttr, "extended attribute value")
		if !ok {
			e.Form = ast.ExtIdent
			return
		}
		if p.cursor.Is(lexer.LPAREN) {
			p.cursor = p.cursor.Advance()
			e.Form = ast.ExtNamedArgList
			e.RHSName = rhs
			e.RHSArguments = p.parseArgumentList()
			p.expect(lexer.RPAREN, ErrInvalidExtAttr, "named extended attribute argument list")
			return
		}
		e.Form = ast.ExtIdent
		e.Value = rhs
	}
}

func (p *Parser) parseIdentifierListInner() []string {
	var out []string
	for {
		name, ok := p.expectIdentifierLike(ErrInvalidExtAttr, "identifier list")
		if !ok {
			break
		}
		out = append(out, name)
		if _, ok := p.cursor.Skip(lexer.COMMA); !ok {
			break
		}
	}
	return out
}

func (p *Parser) parseIntegerListInner() []string {
	var out []string
	for {
		if !p.cursor.Is(lexer.INTEGER) {
			break
		}
		out = append(out, p.cursor.Current().Literal)
		p.cursor = p.cursor.Advance()
		if _, ok := p.cursor.Skip(lexer.COMMA); !ok {
			break
		}
	}
	return out
}
