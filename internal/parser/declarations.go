package parser

import (
	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/lexer"
)

// parseDefinition consumes one top-level Definition: an optional
// ExtendedAttributeList followed by a callback/interface/mixin, partial
// variant, dictionary, enum, typedef, namespace, or includes-statement
// (spec.md §3.2, §4.1). Returns nil only when EOF is reached with no
// extended attributes pending, which parseDefinitions treats as "nothing
// more to parse".
func (p *Parser) parseDefinition() *ast.Definition {
	extAttrs := p.parseExtendedAttributeList()

	switch p.cursor.Current().Kind {
	case lexer.CALLBACK:
		return p.parseCallbackOrCallbackInterface(extAttrs)
	case lexer.INTERFACE:
		return p.parseInterfaceOrMixin(extAttrs, false)
	case lexer.PARTIAL:
		return p.parsePartial(extAttrs)
	case lexer.DICTIONARY:
		return p.parseDictionary(extAttrs, false)
	case lexer.ENUM:
		return p.parseEnum(extAttrs)
	case lexer.TYPEDEF:
		return p.parseTypedef(extAttrs)
	case lexer.NAMESPACE:
		return p.parseNamespace(extAttrs, false)
	case lexer.IDENT:
		return p.parseIncludesStatement(extAttrs)
	default:
		p.errorf(ErrExpectedDefinition, "expected a definition, got %s", p.cursor.Current().Kind)
		p.cursor = p.cursor.Advance()
		return nil
	}
}

func (p *Parser) parseCallbackOrCallbackInterface(extAttrs []*ast.ExtendedAttribute) *ast.Definition {
	span := ast.Span{Start: p.cursor.Position()}
	p.expect(lexer.CALLBACK, ErrUnexpectedToken, "callback declaration")

	if _, ok := p.cursor.Skip(lexer.INTERFACE); ok {
		d := p.arena.NewDefinition()
		d.Kind = ast.DefCallbackInterface
		d.ExtAttrs = extAttrs
		d.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "callback interface name")
		if _, ok := p.cursor.Skip(lexer.COLON); ok {
			d.Inherits, _ = p.expectIdentifierLike(ErrExpectedIdent, "callback interface inheritance")
		}
		p.expect(lexer.LBRACE, ErrMissingLBrace, "callback interface body")
		d.Members = p.parseCallbackInterfaceMembers()
		p.expect(lexer.RBRACE, ErrMissingRBrace, "callback interface body")
		p.expectSemicolon()
		span.End = p.cursor.Position()
		d.Span = span
		return d
	}

	d := p.arena.NewDefinition()
	d.Kind = ast.DefCallback
	d.ExtAttrs = extAttrs
	d.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "callback name")
	p.expect(lexer.ASSIGN, ErrMissingAssign, "callback declaration")
	d.Type = p.parseType()
	p.expect(lexer.LPAREN, ErrMissingLParen, "callback declaration")
	d.Arguments = p.parseArgumentList()
	p.expect(lexer.RPAREN, ErrMissingRParen, "callback declaration")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	d.Span = span
	return d
}

func (p *Parser) parseInterfaceOrMixin(extAttrs []*ast.ExtendedAttribute, partial bool) *ast.Definition {
	span := ast.Span{Start: p.cursor.Position()}
	p.expect(lexer.INTERFACE, ErrUnexpectedToken, "interface declaration")

	if _, ok := p.cursor.Skip(lexer.MIXIN); ok {
		d := p.arena.NewDefinition()
		if partial {
			d.Kind = ast.DefPartialMixin
		} else {
			d.Kind = ast.DefMixin
		}
		d.ExtAttrs = extAttrs
		d.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "mixin name")
		p.expect(lexer.LBRACE, ErrMissingLBrace, "mixin body")
		d.Members = p.parseInterfaceMembers(true)
		p.expect(lexer.RBRACE, ErrMissingRBrace, "mixin body")
		p.expectSemicolon()
		span.End = p.cursor.Position()
		d.Span = span
		return d
	}

	d := p.arena.NewDefinition()
	if partial {
		d.Kind = ast.DefPartialInterface
	} else {
		d.Kind = ast.DefInterface
	}
	d.ExtAttrs = extAttrs
	d.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "interface name")
	if !partial {
		if _, ok := p.cursor.Skip(lexer.COLON); ok {
			d.Inherits, _ = p.expectIdentifierLike(ErrExpectedIdent, "interface inheritance")
		}
	}
	p.expect(lexer.LBRACE, ErrMissingLBrace, "interface body")
	d.Members = p.parseInterfaceMembers(false)
	p.expect(lexer.RBRACE, ErrMissingRBrace, "interface body")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	d.Span = span
	return d
}

func (p *Parser) parsePartial(extAttrs []*ast.ExtendedAttribute) *ast.Definition {
	p.expect(lexer.PARTIAL, ErrUnexpectedToken, "partial declaration")

	switch p.cursor.Current().Kind {
	case lexer.INTERFACE:
		return p.parseInterfaceOrMixin(extAttrs, true)
	case lexer.DICTIONARY:
		return p.parseDictionary(extAttrs, true)
	case lexer.NAMESPACE:
		return p.parseNamespace(extAttrs, true)
	default:
		p.errorf(ErrExpectedDefinition, "expected interface, dictionary, or namespace after partial, got %s", p.cursor.Current().Kind)
		p.cursor = p.cursor.Advance()
		return nil
	}
}

func (p *Parser) parseDictionary(extAttrs []*ast.ExtendedAttribute, partial bool) *ast.Definition {
	span := ast.Span{Start: p.cursor.Position()}
	p.expect(lexer.DICTIONARY, ErrUnexpectedToken, "dictionary declaration")
	d := p.arena.NewDefinition()
	if partial {
		d.Kind = ast.DefPartialDictionary
	} else {
		d.Kind = ast.DefDictionary
	}
	d.ExtAttrs = extAttrs
	d.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "dictionary name")
	if !partial {
		if _, ok := p.cursor.Skip(lexer.COLON); ok {
			d.Inherits, _ = p.expectIdentifierLike(ErrExpectedIdent, "dictionary inheritance")
		}
	}
	p.expect(lexer.LBRACE, ErrMissingLBrace, "dictionary body")
	d.Members = p.parseDictionaryMembers()
	p.expect(lexer.RBRACE, ErrMissingRBrace, "dictionary body")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	d.Span = span
	return d
}

func (p *Parser) parseEnum(extAttrs []*ast.ExtendedAttribute) *ast.Definition {
	span := ast.Span{Start: p.cursor.Position()}
	p.expect(lexer.ENUM, ErrUnexpectedToken, "enum declaration")
	d := p.arena.NewDefinition()
	d.Kind = ast.DefEnum
	d.ExtAttrs = extAttrs
	d.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "enum name")
	p.expect(lexer.LBRACE, ErrMissingLBrace, "enum body")

	if !p.cursor.Is(lexer.RBRACE) {
		for {
			if p.cursor.Is(lexer.STRINGLIT) {
				d.EnumValues = append(d.EnumValues, p.cursor.Current().Literal)
				p.cursor = p.cursor.Advance()
			} else {
				p.errorf(ErrUnexpectedToken, "expected a string enum value, got %s", p.cursor.Current().Kind)
				break
			}
			if _, ok := p.cursor.Skip(lexer.COMMA); !ok {
				break
			}
			if p.cursor.Is(lexer.RBRACE) {
				break
			}
		}
	}
	p.expect(lexer.RBRACE, ErrMissingRBrace, "enum body")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	d.Span = span
	return d
}

func (p *Parser) parseTypedef(extAttrs []*ast.ExtendedAttribute) *ast.Definition {
	span := ast.Span{Start: p.cursor.Position()}
	p.expect(lexer.TYPEDEF, ErrUnexpectedToken, "typedef declaration")
	d := p.arena.NewDefinition()
	d.Kind = ast.DefTypedef
	d.ExtAttrs = extAttrs
	d.Type = p.parseTypeWithExtendedAttributes()
	d.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "typedef name")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	d.Span = span
	return d
}

func (p *Parser) parseNamespace(extAttrs []*ast.ExtendedAttribute, partial bool) *ast.Definition {
	span := ast.Span{Start: p.cursor.Position()}
	p.expect(lexer.NAMESPACE, ErrUnexpectedToken, "namespace declaration")
	d := p.arena.NewDefinition()
	if partial {
		d.Kind = ast.DefPartialNamespace
	} else {
		d.Kind = ast.DefNamespace
	}
	d.ExtAttrs = extAttrs
	d.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "namespace name")
	p.expect(lexer.LBRACE, ErrMissingLBrace, "namespace body")
	d.Members = p.parseNamespaceMembers()
	p.expect(lexer.RBRACE, ErrMissingRBrace, "namespace body")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	d.Span = span
	return d
}

func (p *Parser) parseIncludesStatement(extAttrs []*ast.ExtendedAttribute) *ast.Definition {
	span := ast.Span{Start: p.cursor.Position()}
	target, ok := p.expectIdentifierLike(ErrExpectedIdent, "includes statement target")
	if !ok {
		return nil
	}
	p.expect(lexer.INCLUDES, ErrUnexpectedToken, "includes statement")
	mixin, _ := p.expectIdentifierLike(ErrExpectedIdent, "includes statement mixin")
	p.expectSemicolon()

	d := p.arena.NewDefinition()
	d.Kind = ast.DefIncludes
	d.ExtAttrs = extAttrs
	d.IncludesTarget = target
	d.IncludesMixin = mixin
	d.Name = target + " includes " + mixin
	span.End = p.cursor.Position()
	d.Span = span
	return d
}
