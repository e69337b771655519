package parser

import (
	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/lexer"
)

// parseArgumentList consumes a comma-separated ArgumentList. The caller owns
// the surrounding "(" ")" (or, for extended attributes, the enclosing
// parens of the ArgList/NamedArgList form). Returns nil for an empty list.
func (p *Parser) parseArgumentList() []*ast.Argument {
	if p.cursor.Is(lexer.RPAREN) {
		return nil
	}

	var args []*ast.Argument
	for {
		args = append(args, p.parseArgument())
		if _, ok := p.cursor.Skip(lexer.COMMA); !ok {
			break
		}
	}
	return args
}

// parseArgument consumes one Argument: an optional ExtendedAttributeList
// followed by either "optional" TypeWithExtendedAttributes name Default, or
// Type "..."? name.
func (p *Parser) parseArgument() *ast.Argument {
	span := ast.Span{Start: p.cursor.Position()}
	a := p.arena.NewArgument()
	a.ExtAttrs = p.parseExtendedAttributeList()

	if _, ok := p.cursor.Skip(lexer.OPTIONAL); ok {
		a.Type = p.parseTypeWithExtendedAttributes()
		a.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "argument name")
		if def := p.tryParseDefault(); def != nil {
			a.Default = def
			a.Modality = ast.ArgOptionalWithDefault
		} else {
			a.Modality = ast.ArgOptionalWithoutDefault
		}
		span.End = p.cursor.Position()
		a.Span = span
		return a
	}

	a.Type = p.parseType()
	if _, ok := p.cursor.Skip(lexer.ELLIPSIS); ok {
		a.Modality = ast.ArgVariadic
	} else {
		a.Modality = ast.ArgRequired
	}
	a.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "argument name")
	span.End = p.cursor.Position()
	a.Span = span
	return a
}

// tryParseDefault consumes an optional "=" DefaultValue, returning nil if no
// "=" is present.
func (p *Parser) tryParseDefault() *ast.DefaultValue {
	if _, ok := p.cursor.Skip(lexer.ASSIGN); !ok {
		return nil
	}
	return p.parseDefaultValue()
}

// parseDefaultValue consumes a DefaultValue literal: a boolean, a number
// (including the named constants Infinity/-Infinity/NaN), a string, null,
// undefined, or the empty sequence/dictionary literals "[]"/"{}".
func (p *Parser) parseDefaultValue() *ast.DefaultValue {
	cur := p.cursor.Current()

	switch cur.Kind {
	case lexer.TRUEKW:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVBoolean, Bool: true}
	case lexer.FALSEKW:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVBoolean, Bool: false}
	case lexer.NULLKW:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVNull}
	case lexer.UNDEFINEDKW:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVUndefined}
	case lexer.NAN:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVNamedConst, Named: "NaN"}
	case lexer.INFINITYKW:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVNamedConst, Named: "Infinity"}
	case lexer.MINUS:
		// "-Infinity": the lexer emits MINUS and INFINITYKW as two tokens
		// since Web IDL numeric literals only fold in a leading "-" when
		// immediately followed by a digit (spec.md §4.1).
		if p.cursor.PeekIs(1, lexer.INFINITYKW) {
			p.cursor = p.cursor.AdvanceN(2)
			return &ast.DefaultValue{Kind: ast.DVNamedConst, Named: "-Infinity"}
		}
		p.errorf(ErrInvalidDefault, "expected -Infinity, got %s", p.cursor.Peek(1).Kind)
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVUndefined}
	case lexer.INTEGER:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVInteger, Int: cur.Literal}
	case lexer.DECIMAL:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVDecimal, Decimal: cur.Literal}
	case lexer.STRINGLIT:
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVString, Str: cur.Literal}
	case lexer.LBRACKET:
		p.cursor = p.cursor.Advance()
		p.expect(lexer.RBRACKET, ErrInvalidDefault, "empty sequence default value")
		return &ast.DefaultValue{Kind: ast.DVEmptySequence}
	case lexer.LBRACE:
		p.cursor = p.cursor.Advance()
		p.expect(lexer.RBRACE, ErrInvalidDefault, "empty dictionary default value")
		return &ast.DefaultValue{Kind: ast.DVEmptyDictionary}
	default:
		p.errorf(ErrInvalidDefault, "expected a default value, got %s", cur.Kind)
		p.cursor = p.cursor.Advance()
		return &ast.DefaultValue{Kind: ast.DVUndefined}
	}
}
