package parser

import (
	"github.com/webidl-go/webidl/internal/lexer"
)

// TokenCursor provides an immutable cursor abstraction over a stream of
// tokens pulled lazily from a Lexer. It replaces the mutable curToken/
// peekToken fields a hand-rolled recursive-descent parser would otherwise
// carry with an explicit navigation value that supports arbitrary lookahead
// and cheap backtracking (Mark/ResetTo, which parseDefinitions uses to
// rewind to the start of a malformed definition).
//
// Key features:
//   - Immutable: every operation returns a new cursor value
//   - Backtracking: Mark/ResetTo save and restore cursor position
//   - Lookahead: Peek arbitrary distances ahead
//   - Convenience: Is/IsAny/Expect methods for common matching patterns
//
// A lexical error surfaces as an ILLEGAL token carrying the LexError's
// message as its Literal; the original *lexer.LexError is preserved in
// errs, retrievable via LexErrorAt.
type TokenCursor struct {
	lexer   *lexer.Lexer
	current lexer.Token
	tokens  []lexer.Token
	errs    map[int]*lexer.LexError
	index   int
}

// NewTokenCursor creates a new TokenCursor from a lexer. The cursor starts
// at the first token in the stream.
func NewTokenCursor(l *lexer.Lexer) *TokenCursor {
	c := &TokenCursor{
		lexer: l,
		errs:  map[int]*lexer.LexError{},
	}
	tok := c.fetch()
	c.tokens = []lexer.Token{tok}
	c.current = tok
	return c
}

// fetch pulls one token from the underlying lexer, recording a LexError (if
// any) against the index it will occupy once appended.
func (c *TokenCursor) fetch() lexer.Token {
	tok, err := c.lexer.NextToken()
	if err != nil {
		c.errs[len(c.tokens)] = err
		return lexer.Token{Kind: lexer.ILLEGAL, Literal: err.Message, Pos: err.Pos}
	}
	return tok
}

// Current returns the token at the current cursor position.
func (c *TokenCursor) Current() lexer.Token {
	return c.current
}

// Peek returns the token N positions ahead of the current position.
// Peek(0) is equivalent to Current().
func (c *TokenCursor) Peek(n int) lexer.Token {
	if n < 0 {
		return c.current
	}

	target := c.index + n
	for target >= len(c.tokens) {
		last := c.tokens[len(c.tokens)-1]
		if last.Kind == lexer.EOF {
			break
		}
		c.tokens = append(c.tokens, c.fetch())
	}

	if target < len(c.tokens) {
		return c.tokens[target]
	}
	return c.tokens[len(c.tokens)-1]
}

// LexErrorAt returns the LexError that produced the ILLEGAL token at cursor
// offset n from the current position, if any.
func (c *TokenCursor) LexErrorAt(n int) *lexer.LexError {
	c.Peek(n) // ensure buffered
	return c.errs[c.index+n]
}

// Advance returns a new cursor positioned at the next token.
func (c *TokenCursor) Advance() *TokenCursor {
	return c.AdvanceN(1)
}

// AdvanceN returns a new cursor positioned N tokens ahead. If n <= 0, the
// same cursor is returned. Advancing past EOF is a no-op: the cursor sticks
// to the final (EOF) token.
func (c *TokenCursor) AdvanceN(n int) *TokenCursor {
	if n <= 0 {
		return c
	}
	c.Peek(n)
	newIndex := c.index + n
	if newIndex >= len(c.tokens) {
		newIndex = len(c.tokens) - 1
	}
	return &TokenCursor{
		lexer:   c.lexer,
		current: c.tokens[newIndex],
		tokens:  c.tokens,
		errs:    c.errs,
		index:   newIndex,
	}
}

// Skip advances the cursor if the current token matches the given Kind.
func (c *TokenCursor) Skip(k lexer.Kind) (*TokenCursor, bool) {
	if c.current.Kind == k {
		return c.Advance(), true
	}
	return c, false
}

// SkipAny advances the cursor if the current token matches any of the given
// Kinds, reporting which one matched.
func (c *TokenCursor) SkipAny(kinds ...lexer.Kind) (*TokenCursor, bool, lexer.Kind) {
	for _, k := range kinds {
		if c.current.Kind == k {
			return c.Advance(), true, k
		}
	}
	return c, false, lexer.ILLEGAL
}

// Is reports whether the current token matches the given Kind.
func (c *TokenCursor) Is(k lexer.Kind) bool {
	return c.current.Kind == k
}

// IsAny reports whether the current token matches any of the given Kinds.
func (c *TokenCursor) IsAny(kinds ...lexer.Kind) (bool, lexer.Kind) {
	for _, k := range kinds {
		if c.current.Kind == k {
			return true, k
		}
	}
	return false, lexer.ILLEGAL
}

// PeekIs reports whether the token N positions ahead matches the given Kind.
func (c *TokenCursor) PeekIs(n int, k lexer.Kind) bool {
	return c.Peek(n).Kind == k
}

// PeekIsAny reports whether the token N positions ahead matches any of the
// given Kinds.
func (c *TokenCursor) PeekIsAny(n int, kinds ...lexer.Kind) (bool, lexer.Kind) {
	pk := c.Peek(n).Kind
	for _, k := range kinds {
		if pk == k {
			return true, k
		}
	}
	return false, lexer.ILLEGAL
}

// Expect advances the cursor if the current token matches the given Kind.
// The caller is responsible for reporting an error on a false return.
func (c *TokenCursor) Expect(k lexer.Kind) (*TokenCursor, bool) {
	return c.Skip(k)
}

// ExpectAny advances the cursor if the current token matches any of the
// given Kinds.
func (c *TokenCursor) ExpectAny(kinds ...lexer.Kind) (*TokenCursor, bool, lexer.Kind) {
	return c.SkipAny(kinds...)
}

// Mark is a lightweight saved cursor position (a single index). Its one
// user is parseDefinitions, which ResetTo's the mark taken at the start of a
// definition that turned out to be malformed, then resynchronizes.
type Mark struct {
	index int
}

// Mark saves the current cursor position for later restoration.
func (c *TokenCursor) Mark() Mark {
	return Mark{index: c.index}
}

// ResetTo returns a new cursor positioned at the given mark.
func (c *TokenCursor) ResetTo(mark Mark) *TokenCursor {
	if mark.index < 0 || mark.index >= len(c.tokens) {
		return c
	}
	return &TokenCursor{
		lexer:   c.lexer,
		current: c.tokens[mark.index],
		tokens:  c.tokens,
		errs:    c.errs,
		index:   mark.index,
	}
}

// Clone returns a shallow copy of the cursor (the buffered token slice and
// error map are shared and never mutated in place, so sharing is safe).
func (c *TokenCursor) Clone() *TokenCursor {
	return &TokenCursor{
		lexer:   c.lexer,
		current: c.current,
		tokens:  c.tokens,
		errs:    c.errs,
		index:   c.index,
	}
}

// IsEOF reports whether the current token is EOF.
func (c *TokenCursor) IsEOF() bool {
	return c.current.Kind == lexer.EOF
}

// Position returns the position of the current token, for error reporting.
func (c *TokenCursor) Position() lexer.Position {
	return c.current.Pos
}
