package parser

import (
	"fmt"

	"github.com/webidl-go/webidl/internal/lexer"
)

// ParseError reports a syntax error with enough position information for
// internal/errors to render source-context output (a caret under the
// offending token).
type ParseError struct {
	Message string
	Code    string
	Pos     lexer.Position
	Length  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// NewParseError creates a ParseError.
func NewParseError(pos lexer.Position, length int, message, code string) *ParseError {
	return &ParseError{Message: message, Pos: pos, Length: length, Code: code}
}

// Error code constants for programmatic error handling by callers that want
// to distinguish error categories without string-matching Message.
const (
	ErrUnexpectedToken    = "E_UNEXPECTED_TOKEN"
	ErrUnexpectedEOF      = "E_UNEXPECTED_EOF"
	ErrExpectedIdent      = "E_EXPECTED_IDENT"
	ErrExpectedType       = "E_EXPECTED_TYPE"
	ErrExpectedDefinition = "E_EXPECTED_DEFINITION"
	ErrMissingSemicolon   = "E_MISSING_SEMICOLON"
	ErrMissingLParen      = "E_MISSING_LPAREN"
	ErrMissingRParen      = "E_MISSING_RPAREN"
	ErrMissingLBrace      = "E_MISSING_LBRACE"
	ErrMissingRBrace      = "E_MISSING_RBRACE"
	ErrMissingRBracket    = "E_MISSING_RBRACKET"
	ErrMissingColon       = "E_MISSING_COLON"
	ErrMissingAssign      = "E_MISSING_ASSIGN"
	ErrInvalidExtAttr     = "E_INVALID_EXT_ATTR"
	ErrInvalidDefault     = "E_INVALID_DEFAULT"
	ErrLexical            = "E_LEXICAL"
)
