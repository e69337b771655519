package parser

import (
	"fmt"
	"strings"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/lexer"
)

// Parser turns a token stream into an ast.Document. It never panics on
// malformed input: every failure is recorded as a *ParseError and parsing
// resynchronizes at the next plausible definition boundary so a single typo
// doesn't hide every other error in the file.
type Parser struct {
	cursor *TokenCursor
	arena  *ast.Arena
	errors []*ParseError
}

func newParser(l *lexer.Lexer) *Parser {
	return &Parser{cursor: NewTokenCursor(l), arena: ast.NewArena()}
}

// Parse parses a complete Web IDL fragment into an ast.Document. name is
// attached to the lexer for use by downstream error formatting
// (internal/errors); it plays no role in parsing itself.
func Parse(source, name string) (*ast.Document, []*ParseError) {
	l := lexer.New(source, lexer.WithSourceName(name))
	p := newParser(l)
	defs := p.parseDefinitions()
	return &ast.Document{Definitions: defs, Arena: p.arena}, p.errors
}

// ParseType parses a single standalone type expression, for tooling that
// only needs to validate or inspect a type string in isolation (e.g. the
// CLI's "parse-type" subcommand).
func ParseType(source string) (*ast.Type, []*ParseError) {
	l := lexer.New(source)
	p := newParser(l)
	t := p.parseTypeWithExtendedAttributes()
	if !p.cursor.IsEOF() {
		p.errorf(ErrUnexpectedToken, "unexpected trailing input %q", p.cursor.Current().Literal)
	}
	return t, p.errors
}

func (p *Parser) errorf(code, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{
		Message: fmt.Sprintf(format, args...),
		Code:    code,
		Pos:     p.cursor.Position(),
	})
}

// parseDefinitions consumes Definitions: zero or more top-level Definitions
// until EOF, resynchronizing after a malformed one.
func (p *Parser) parseDefinitions() []*ast.Definition {
	var defs []*ast.Definition
	for !p.cursor.IsEOF() {
		checkpoint := p.arena.Mark()
		mark := p.cursor.Mark()
		before := len(p.errors)

		d := p.parseDefinition()

		if len(p.errors) > before {
			// The definition was malformed somewhere past its start; drop
			// whatever partial node it produced and resynchronize instead of
			// returning a half-built Definition to the caller.
			p.arena.Reset(checkpoint)
			p.cursor = p.cursor.ResetTo(mark)
			p.synchronize()
			continue
		}
		if d != nil {
			defs = append(defs, d)
		}
	}
	return defs
}

// synchronize skips tokens until it has consumed a semicolon at bracket
// depth zero (or reaches EOF), so parseDefinitions can keep looking for
// further, independent errors in the rest of the file.
func (p *Parser) synchronize() {
	depth := 0
	for {
		switch p.cursor.Current().Kind {
		case lexer.EOF:
			return
		case lexer.LBRACE, lexer.LPAREN, lexer.LBRACKET:
			depth++
		case lexer.RBRACE, lexer.RPAREN, lexer.RBRACKET:
			if depth > 0 {
				depth--
			}
		case lexer.SEMICOLON:
			if depth == 0 {
				p.cursor = p.cursor.Advance()
				return
			}
		}
		p.cursor = p.cursor.Advance()
	}
}

// identifierLike consumes an identifier, or one of the keyword spellings
// allowed to stand in for one (the grammar's 25 ArgumentNameKeywords plus
// "named"; see lexer.Kind.IsArgumentNameKeyword) (spec.md §4.1's
// "identifiers that happen to be keywords" rule), returning its canonical
// spelling. A leading "_" on an IDENT token is an escape (spec.md §3.1) used
// to write an identifier that would otherwise collide with a keyword, e.g.
// "_interface"; it is stripped here so the AST only ever sees the canonical
// name "interface". ArgumentNameKeyword tokens have no escape form, so their
// literal is returned unchanged.
func (p *Parser) identifierLike() (string, bool) {
	cur := p.cursor.Current()
	if cur.Kind == lexer.IDENT {
		p.cursor = p.cursor.Advance()
		return strings.TrimPrefix(cur.Literal, "_"), true
	}
	if cur.Kind.IsArgumentNameKeyword() {
		p.cursor = p.cursor.Advance()
		return cur.Literal, true
	}
	return "", false
}

func (p *Parser) expectIdentifierLike(code, context string) (string, bool) {
	name, ok := p.identifierLike()
	if !ok {
		p.errorf(code, "expected identifier in %s, got %s", context, p.cursor.Current().Kind)
	}
	return name, ok
}

func (p *Parser) expect(k lexer.Kind, code, context string) bool {
	if _, ok := p.cursor.Skip(k); ok {
		return true
	}
	p.errorf(code, "expected %s in %s, got %s", k, context, p.cursor.Current().Kind)
	return false
}
