package parser

import (
	"strings"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/lexer"
)

// parseTypeWithExtendedAttributes consumes an optional ExtendedAttributeList
// followed by a Type, wrapping the result in a TypeAnnotated node when any
// attributes were present (spec.md §3.2's TypeAnnotated carries [Clamp],
// [EnforceRange], and similar type-level annotations).
func (p *Parser) parseTypeWithExtendedAttributes() *ast.Type {
	attrs := p.parseExtendedAttributeList()
	t := p.parseType()
	if len(attrs) == 0 {
		return t
	}
	annotated := p.arena.NewType()
	annotated.Kind = ast.TypeAnnotated
	annotated.ExtAttrs = attrs
	annotated.Elem = t
	annotated.Span = t.Span
	return annotated
}

// parseType consumes a Type: either a union type (optionally nullable) or a
// single type ("any", a Promise type, or a DistinguishableType, optionally
// nullable).
func (p *Parser) parseType() *ast.Type {
	if p.cursor.Is(lexer.LPAREN) {
		return p.parseUnionType()
	}

	start := p.cursor.Position()

	if p.cursor.Is(lexer.ANY) {
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeAny, Span: ast.Span{Start: start, End: p.cursor.Position()}}
	}

	if p.cursor.Is(lexer.PROMISE) {
		p.cursor = p.cursor.Advance()
		p.expect(lexer.LT, ErrExpectedType, "Promise type")
		inner := p.parseType()
		p.expect(lexer.GT, ErrExpectedType, "Promise type")
		t := p.arena.NewType()
		t.Kind = ast.TypePromise
		t.Elem = inner
		t.Span = ast.Span{Start: start, End: p.cursor.Position()}
		return t
	}

	return p.parseDistinguishableType()
}

// parseUnionType consumes "(" UnionMemberType ("or" UnionMemberType)+ ")",
// followed by an optional "?".
func (p *Parser) parseUnionType() *ast.Type {
	start := p.cursor.Position()
	p.expect(lexer.LPAREN, ErrExpectedType, "union type")

	var members []*ast.Type
	for {
		members = append(members, p.parseUnionMemberType())
		if _, ok := p.cursor.Skip(lexer.OR); ok {
			continue
		}
		break
	}
	p.expect(lexer.RPAREN, ErrExpectedType, "union type")

	t := p.arena.NewType()
	t.Kind = ast.TypeUnion
	t.Union = members
	t.Span = ast.Span{Start: start, End: p.cursor.Position()}

	if _, ok := p.cursor.Skip(lexer.QUESTION); ok {
		nullable := p.arena.NewType()
		nullable.Kind = ast.TypeNullable
		nullable.Elem = t
		nullable.Span = t.Span
		return nullable
	}
	return t
}

// parseUnionMemberType consumes one member of a union type: either a nested
// union type or an (optionally extended-attribute-annotated) distinguishable
// type.
func (p *Parser) parseUnionMemberType() *ast.Type {
	if p.cursor.Is(lexer.LPAREN) {
		return p.parseUnionType()
	}
	attrs := p.parseExtendedAttributeList()
	t := p.parseDistinguishableType()
	if len(attrs) == 0 {
		return t
	}
	annotated := p.arena.NewType()
	annotated.Kind = ast.TypeAnnotated
	annotated.ExtAttrs = attrs
	annotated.Elem = t
	annotated.Span = t.Span
	return annotated
}

// parseDistinguishableType consumes one DistinguishableType production,
// followed by an optional "?" nullable suffix (spec.md §3.2).
func (p *Parser) parseDistinguishableType() *ast.Type {
	start := p.cursor.Position()
	base := p.parseDistinguishableTypeBase(start)

	if _, ok := p.cursor.Skip(lexer.QUESTION); ok {
		nullable := p.arena.NewType()
		nullable.Kind = ast.TypeNullable
		nullable.Elem = base
		nullable.Span = ast.Span{Start: start, End: p.cursor.Position()}
		return nullable
	}
	return base
}

func (p *Parser) parseDistinguishableTypeBase(start lexer.Position) *ast.Type {
	cur := p.cursor.Current()

	switch cur.Kind {
	case lexer.BOOLEAN, lexer.BYTE, lexer.OCTET, lexer.SHORT, lexer.LONG,
		lexer.UNSIGNED, lexer.FLOAT, lexer.DOUBLE, lexer.UNRESTRICTED, lexer.BIGINT:
		return p.parsePrimitiveType(start)

	case lexer.DOMSTRING, lexer.BYTESTRING, lexer.USVSTRING:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeString, String: stringKindOf(cur.Kind), Span: p.spanFrom(start)}

	case lexer.IDENT:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeNamed, Name: strings.TrimPrefix(cur.Literal, "_"), Span: p.spanFrom(start)}

	case lexer.SEQUENCE:
		p.cursor = p.cursor.Advance()
		return p.parseGeneric(ast.TypeSequence, start)

	case lexer.FROZENARRAY:
		p.cursor = p.cursor.Advance()
		return p.parseGeneric(ast.TypeFrozenArray, start)

	case lexer.OBSERVABLEARRAY:
		p.cursor = p.cursor.Advance()
		return p.parseGeneric(ast.TypeObservableArray, start)

	case lexer.OBJECT:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeObject, Span: p.spanFrom(start)}

	case lexer.SYMBOL:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeSymbol, Span: p.spanFrom(start)}

	case lexer.ARRAYBUFFER:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeBuffer, Buffer: ast.BufferArrayBuffer, Span: p.spanFrom(start)}

	case lexer.SHAREDARRAYBUFFER:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeBuffer, Buffer: ast.BufferSharedArrayBuffer, Span: p.spanFrom(start)}

	case lexer.DATAVIEW:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeBuffer, Buffer: ast.BufferDataView, Span: p.spanFrom(start)}

	case lexer.TYPEDARRAY:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeTypedArray, Name: cur.Literal, Span: p.spanFrom(start)}

	case lexer.RECORD:
		p.cursor = p.cursor.Advance()
		return p.parseRecordType(start)

	case lexer.UNDEFINEDKW:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeUndefined, Span: p.spanFrom(start)}

	default:
		p.errorf(ErrExpectedType, "expected a type, got %s", cur.Kind)
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeAny, Span: p.spanFrom(start)}
	}
}

func (p *Parser) spanFrom(start lexer.Position) ast.Span {
	return ast.Span{Start: start, End: p.cursor.Position()}
}

func stringKindOf(k lexer.Kind) ast.StringKind {
	switch k {
	case lexer.BYTESTRING:
		return ast.StrByteString
	case lexer.USVSTRING:
		return ast.StrUSVString
	default:
		return ast.StrDOMString
	}
}

// parseGeneric consumes "<" TypeWithExtendedAttributes ">" for sequence,
// FrozenArray, and ObservableArray, all of which share this one-argument
// generic shape.
func (p *Parser) parseGeneric(kind ast.TypeKind, start lexer.Position) *ast.Type {
	p.expect(lexer.LT, ErrExpectedType, "generic type")
	inner := p.parseTypeWithExtendedAttributes()
	p.expect(lexer.GT, ErrExpectedType, "generic type")
	t := p.arena.NewType()
	t.Kind = kind
	t.Elem = inner
	t.Span = p.spanFrom(start)
	return t
}

func (p *Parser) parseRecordType(start lexer.Position) *ast.Type {
	p.expect(lexer.LT, ErrExpectedType, "record type")

	keyKind := ast.StrDOMString
	switch p.cursor.Current().Kind {
	case lexer.DOMSTRING, lexer.BYTESTRING, lexer.USVSTRING:
		keyKind = stringKindOf(p.cursor.Current().Kind)
		p.cursor = p.cursor.Advance()
	default:
		p.errorf(ErrExpectedType, "expected a string type as record key, got %s", p.cursor.Current().Kind)
	}

	p.expect(lexer.COMMA, ErrExpectedType, "record type")
	value := p.parseTypeWithExtendedAttributes()
	p.expect(lexer.GT, ErrExpectedType, "record type")

	t := p.arena.NewType()
	t.Kind = ast.TypeRecord
	t.RecordKey = keyKind
	t.Elem = value
	t.Span = p.spanFrom(start)
	return t
}

// parsePrimitiveType consumes one of Web IDL's primitive numeric types, or
// "boolean"/"bigint" which share the PrimitiveType production.
func (p *Parser) parsePrimitiveType(start lexer.Position) *ast.Type {
	cur := p.cursor.Current()

	switch cur.Kind {
	case lexer.BOOLEAN:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeBoolean, Span: p.spanFrom(start)}
	case lexer.BIGINT:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeBigInt, Span: p.spanFrom(start)}
	case lexer.BYTE:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumByte, Span: p.spanFrom(start)}
	case lexer.OCTET:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumOctet, Span: p.spanFrom(start)}
	case lexer.FLOAT:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumFloat, Span: p.spanFrom(start)}
	case lexer.DOUBLE:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumDouble, Span: p.spanFrom(start)}
	case lexer.UNRESTRICTED:
		p.cursor = p.cursor.Advance()
		if p.cursor.Is(lexer.FLOAT) {
			p.cursor = p.cursor.Advance()
			return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumUnrestrictedFloat, Span: p.spanFrom(start)}
		}
		p.expect(lexer.DOUBLE, ErrExpectedType, "unrestricted float type")
		return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumUnrestrictedDouble, Span: p.spanFrom(start)}
	case lexer.SHORT:
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumShort, Span: p.spanFrom(start)}
	case lexer.LONG:
		p.cursor = p.cursor.Advance()
		if p.cursor.Is(lexer.LONG) {
			p.cursor = p.cursor.Advance()
			return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumLongLong, Span: p.spanFrom(start)}
		}
		return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumLong, Span: p.spanFrom(start)}
	case lexer.UNSIGNED:
		p.cursor = p.cursor.Advance()
		switch p.cursor.Current().Kind {
		case lexer.SHORT:
			p.cursor = p.cursor.Advance()
			return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumUnsignedShort, Span: p.spanFrom(start)}
		case lexer.LONG:
			p.cursor = p.cursor.Advance()
			if p.cursor.Is(lexer.LONG) {
				p.cursor = p.cursor.Advance()
				return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumUnsignedLongLong, Span: p.spanFrom(start)}
			}
			return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumUnsignedLong, Span: p.spanFrom(start)}
		default:
			p.errorf(ErrExpectedType, "expected short or long after unsigned, got %s", p.cursor.Current().Kind)
			return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumUnsignedLong, Span: p.spanFrom(start)}
		}
	default:
		p.errorf(ErrExpectedType, "expected a primitive type, got %s", cur.Kind)
		p.cursor = p.cursor.Advance()
		return &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumLong, Span: p.spanFrom(start)}
	}
}
