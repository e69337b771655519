// Package parser implements a recursive-descent parser for Web IDL.
//
// The parser consumes a Token stream from internal/lexer and builds an
// internal/ast.Document: a sequence of Definitions, each carrying Members,
// Arguments, and Types, all allocated from a single ast.Arena scoped to the
// parse (spec.md §4.3).
//
// Member productions are chosen by their leading token (const, readonly,
// attribute, static, getter, ...); no member is parsed speculatively and
// member alternatives are never backtracked. The cursor and arena marks
// (TokenCursor.Mark, ast.Arena.Mark) are used only by parseDefinitions: when
// a definition turns out to be malformed, both are reset
// (TokenCursor.ResetTo, ast.Arena.Reset) to where it began, so its partial
// nodes are dropped. Because Arena.Reset simply rewinds its slice lengths,
// that needs no per-node cleanup.
//
// Entry points:
//   - Parse: a complete Web IDL fragment (one or more Definitions)
//   - ParseType: a single standalone type expression, for tooling that only
//     needs to validate or inspect a type string in isolation
package parser
