package parser

import (
	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/lexer"
)

func (p *Parser) expectSemicolon() {
	p.expect(lexer.SEMICOLON, ErrMissingSemicolon, "member")
}

// parseInterfaceMembers consumes InterfaceMembers / MixinMembers up to (but
// not including) the closing "}". isMixin narrows which member productions
// are accepted: mixins permit neither "static", "constructor", iterable,
// maplike, nor setlike members (spec.md §3.2).
func (p *Parser) parseInterfaceMembers(isMixin bool) []*ast.Member {
	var members []*ast.Member
	for !p.cursor.Is(lexer.RBRACE) && !p.cursor.IsEOF() {
		extAttrs := p.parseExtendedAttributeList()
		members = append(members, p.parseInterfaceMember(extAttrs, isMixin))
	}
	return members
}

func (p *Parser) parseInterfaceMember(extAttrs []*ast.ExtendedAttribute, isMixin bool) *ast.Member {
	cur := p.cursor.Current()
	switch cur.Kind {
	case lexer.CONST:
		return p.parseConst(extAttrs)
	case lexer.CONSTRUCTOR:
		if isMixin {
			p.errorf(ErrUnexpectedToken, "constructor is not permitted on a mixin")
		}
		return p.parseConstructorMember(extAttrs)
	case lexer.STRINGIFIER:
		return p.parseStringifier(extAttrs)
	case lexer.STATIC:
		if isMixin {
			p.errorf(ErrUnexpectedToken, "static is not permitted on a mixin")
		}
		return p.parseStaticMember(extAttrs)
	case lexer.ITERABLE:
		if isMixin {
			p.errorf(ErrUnexpectedToken, "iterable is not permitted on a mixin")
		}
		return p.parseIterable(extAttrs)
	case lexer.ASYNC:
		if isMixin {
			p.errorf(ErrUnexpectedToken, "async iterable is not permitted on a mixin")
		}
		return p.parseAsyncIterable(extAttrs)
	case lexer.MAPLIKE:
		if isMixin {
			p.errorf(ErrUnexpectedToken, "maplike is not permitted on a mixin")
		}
		return p.parseMaplike(extAttrs, false)
	case lexer.SETLIKE:
		if isMixin {
			p.errorf(ErrUnexpectedToken, "setlike is not permitted on a mixin")
		}
		return p.parseSetlike(extAttrs, false)
	case lexer.READONLY:
		return p.parseReadOnlyMember(extAttrs, isMixin)
	case lexer.INHERIT:
		return p.parseInheritAttribute(extAttrs)
	case lexer.ATTRIBUTE:
		return p.parseAttribute(extAttrs, false, false, false)
	case lexer.GETTER, lexer.SETTER, lexer.DELETER:
		if isMixin {
			p.errorf(ErrUnexpectedToken, "special operations are not permitted on a mixin")
		}
		return p.parseSpecialOperation(extAttrs, cur.Kind)
	default:
		return p.parseRegularOperation(extAttrs, false)
	}
}

func (p *Parser) parseConst(extAttrs []*ast.ExtendedAttribute) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberConst
	m.ExtAttrs = extAttrs
	p.expect(lexer.CONST, ErrUnexpectedToken, "const member")
	m.Type = p.parseDistinguishableType()
	m.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "const name")
	p.expect(lexer.ASSIGN, ErrMissingAssign, "const member")
	m.ConstValue = p.parseDefaultValue()
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseConstructorMember(extAttrs []*ast.ExtendedAttribute) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberConstructor
	m.ExtAttrs = extAttrs
	p.expect(lexer.CONSTRUCTOR, ErrUnexpectedToken, "constructor")
	p.expect(lexer.LPAREN, ErrMissingLParen, "constructor")
	m.Arguments = p.parseArgumentList()
	p.expect(lexer.RPAREN, ErrMissingRParen, "constructor")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseStringifier(extAttrs []*ast.ExtendedAttribute) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberStringifier
	m.ExtAttrs = extAttrs
	p.expect(lexer.STRINGIFIER, ErrUnexpectedToken, "stringifier")

	switch {
	case p.cursor.Is(lexer.SEMICOLON):
		p.cursor = p.cursor.Advance()
	case p.cursor.Is(lexer.READONLY):
		p.cursor = p.cursor.Advance()
		p.expect(lexer.ATTRIBUTE, ErrUnexpectedToken, "stringifier attribute")
		m.Readonly = true
		m.Type = p.parseTypeWithExtendedAttributes()
		m.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "stringifier attribute name")
		p.expectSemicolon()
	default:
		m.Type = p.parseType()
		m.Name, _ = p.identifierLike()
		p.expect(lexer.LPAREN, ErrMissingLParen, "stringifier operation")
		m.Arguments = p.parseArgumentList()
		p.expect(lexer.RPAREN, ErrMissingRParen, "stringifier operation")
		p.expectSemicolon()
	}

	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseStaticMember(extAttrs []*ast.ExtendedAttribute) *ast.Member {
	p.expect(lexer.STATIC, ErrUnexpectedToken, "static member")
	if p.cursor.Is(lexer.READONLY) {
		p.cursor = p.cursor.Advance()
		return p.finishAttribute(extAttrs, true, true, false)
	}
	if p.cursor.Is(lexer.ATTRIBUTE) {
		return p.finishAttribute(extAttrs, true, false, false)
	}
	return p.parseRegularOperation(extAttrs, true)
}

func (p *Parser) parseIterable(extAttrs []*ast.ExtendedAttribute) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberIterable
	m.ExtAttrs = extAttrs
	p.expect(lexer.ITERABLE, ErrUnexpectedToken, "iterable declaration")
	p.expect(lexer.LT, ErrExpectedType, "iterable declaration")
	first := p.parseTypeWithExtendedAttributes()
	if _, ok := p.cursor.Skip(lexer.COMMA); ok {
		m.KeyType = first
		m.ValueType = p.parseTypeWithExtendedAttributes()
	} else {
		m.ValueType = first
	}
	p.expect(lexer.GT, ErrExpectedType, "iterable declaration")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseAsyncIterable(extAttrs []*ast.ExtendedAttribute) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberAsyncIterable
	m.ExtAttrs = extAttrs
	p.expect(lexer.ASYNC, ErrUnexpectedToken, "async iterable declaration")
	p.expect(lexer.ITERABLE, ErrUnexpectedToken, "async iterable declaration")
	p.expect(lexer.LT, ErrExpectedType, "async iterable declaration")
	first := p.parseTypeWithExtendedAttributes()
	if _, ok := p.cursor.Skip(lexer.COMMA); ok {
		m.KeyType = first
		m.ValueType = p.parseTypeWithExtendedAttributes()
	} else {
		m.ValueType = first
	}
	p.expect(lexer.GT, ErrExpectedType, "async iterable declaration")
	if _, ok := p.cursor.Skip(lexer.LPAREN); ok {
		m.Arguments = p.parseArgumentList()
		p.expect(lexer.RPAREN, ErrMissingRParen, "async iterable argument list")
	}
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseReadOnlyMember(extAttrs []*ast.ExtendedAttribute, isMixin bool) *ast.Member {
	p.expect(lexer.READONLY, ErrUnexpectedToken, "read-only member")
	switch {
	case p.cursor.Is(lexer.MAPLIKE):
		if isMixin {
			p.errorf(ErrUnexpectedToken, "maplike is not permitted on a mixin")
		}
		return p.parseMaplike(extAttrs, true)
	case p.cursor.Is(lexer.SETLIKE):
		if isMixin {
			p.errorf(ErrUnexpectedToken, "setlike is not permitted on a mixin")
		}
		return p.parseSetlike(extAttrs, true)
	default:
		return p.finishAttribute(extAttrs, false, true, false)
	}
}

func (p *Parser) parseMaplike(extAttrs []*ast.ExtendedAttribute, readonly bool) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberMaplike
	m.ExtAttrs = extAttrs
	m.Readonly = readonly
	p.expect(lexer.MAPLIKE, ErrUnexpectedToken, "maplike declaration")
	p.expect(lexer.LT, ErrExpectedType, "maplike declaration")
	m.KeyType = p.parseTypeWithExtendedAttributes()
	p.expect(lexer.COMMA, ErrExpectedType, "maplike declaration")
	m.ValueType = p.parseTypeWithExtendedAttributes()
	p.expect(lexer.GT, ErrExpectedType, "maplike declaration")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseSetlike(extAttrs []*ast.ExtendedAttribute, readonly bool) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberSetlike
	m.ExtAttrs = extAttrs
	m.Readonly = readonly
	p.expect(lexer.SETLIKE, ErrUnexpectedToken, "setlike declaration")
	p.expect(lexer.LT, ErrExpectedType, "setlike declaration")
	m.ElementType = p.parseTypeWithExtendedAttributes()
	p.expect(lexer.GT, ErrExpectedType, "setlike declaration")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseInheritAttribute(extAttrs []*ast.ExtendedAttribute) *ast.Member {
	p.expect(lexer.INHERIT, ErrUnexpectedToken, "inherited attribute")
	return p.finishAttribute(extAttrs, false, false, true)
}

func (p *Parser) parseAttribute(extAttrs []*ast.ExtendedAttribute, static, readonly, inherit bool) *ast.Member {
	return p.finishAttribute(extAttrs, static, readonly, inherit)
}

// finishAttribute consumes "attribute" TypeWithExtendedAttributes
// AttributeName ";" — the common tail shared by every attribute-producing
// caller, which has already consumed any readonly/static/inherit prefix.
func (p *Parser) finishAttribute(extAttrs []*ast.ExtendedAttribute, static, readonly, inherit bool) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberAttribute
	m.ExtAttrs = extAttrs
	m.Static = static
	m.Readonly = readonly
	m.Inherit = inherit
	p.expect(lexer.ATTRIBUTE, ErrUnexpectedToken, "attribute")
	m.Type = p.parseTypeWithExtendedAttributes()
	m.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "attribute name")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseSpecialOperation(extAttrs []*ast.ExtendedAttribute, special lexer.Kind) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	switch special {
	case lexer.GETTER:
		m.Kind = ast.MemberGetter
	case lexer.SETTER:
		m.Kind = ast.MemberSetter
	case lexer.DELETER:
		m.Kind = ast.MemberDeleter
	}
	m.ExtAttrs = extAttrs
	p.cursor = p.cursor.Advance() // consume getter/setter/deleter
	m.Type = p.parseType()
	m.Name, _ = p.identifierLike()
	p.expect(lexer.LPAREN, ErrMissingLParen, "special operation")
	m.Arguments = p.parseArgumentList()
	p.expect(lexer.RPAREN, ErrMissingRParen, "special operation")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

func (p *Parser) parseRegularOperation(extAttrs []*ast.ExtendedAttribute, static bool) *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberOperation
	m.Static = static
	m.ExtAttrs = extAttrs
	m.Type = p.parseType()
	m.Name, _ = p.identifierLike()
	p.expect(lexer.LPAREN, ErrMissingLParen, "operation")
	m.Arguments = p.parseArgumentList()
	p.expect(lexer.RPAREN, ErrMissingRParen, "operation")
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

// parseDictionaryMembers consumes DictionaryMembers up to (but not
// including) the closing "}".
func (p *Parser) parseDictionaryMembers() []*ast.Member {
	var members []*ast.Member
	for !p.cursor.Is(lexer.RBRACE) && !p.cursor.IsEOF() {
		members = append(members, p.parseDictionaryMember())
	}
	return members
}

func (p *Parser) parseDictionaryMember() *ast.Member {
	span := ast.Span{Start: p.cursor.Position()}
	m := p.arena.NewMember()
	m.Kind = ast.MemberDictionaryField
	m.ExtAttrs = p.parseExtendedAttributeList()

	if _, ok := p.cursor.Skip(lexer.REQUIRED); ok {
		m.Required = true
		m.Type = p.parseTypeWithExtendedAttributes()
	} else {
		m.Type = p.parseType()
	}
	m.Name, _ = p.expectIdentifierLike(ErrExpectedIdent, "dictionary field name")
	if !m.Required {
		m.Default = p.tryParseDefault()
	}
	p.expectSemicolon()
	span.End = p.cursor.Position()
	m.Span = span
	return m
}

// parseNamespaceMembers consumes NamespaceMembers up to (but not including)
// the closing "}". Every namespace member is implicitly static.
func (p *Parser) parseNamespaceMembers() []*ast.Member {
	var members []*ast.Member
	for !p.cursor.Is(lexer.RBRACE) && !p.cursor.IsEOF() {
		extAttrs := p.parseExtendedAttributeList()
		if p.cursor.Is(lexer.READONLY) {
			p.cursor = p.cursor.Advance()
			members = append(members, p.finishAttribute(extAttrs, true, true, false))
			continue
		}
		members = append(members, p.parseRegularOperation(extAttrs, true))
	}
	return members
}

// parseCallbackInterfaceMembers consumes CallbackInterfaceMembers: Const and
// RegularOperation only.
func (p *Parser) parseCallbackInterfaceMembers() []*ast.Member {
	var members []*ast.Member
	for !p.cursor.Is(lexer.RBRACE) && !p.cursor.IsEOF() {
		extAttrs := p.parseExtendedAttributeList()
		if p.cursor.Is(lexer.CONST) {
			members = append(members, p.parseConst(extAttrs))
			continue
		}
		members = append(members, p.parseRegularOperation(extAttrs, false))
	}
	return members
}
