// Package lexer turns Web IDL source text into a token stream.
//
// The lexer is a single-pass, one-character-lookahead scanner over UTF-8
// source. It performs no semantic analysis: numeric literals are returned as
// raw source slices (the target IDL type, not the lexer, decides f32 vs f64
// rounding — see internal/types), and keyword recognition is pure longest-match
// string classification, not context-sensitive.
package lexer

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Literals and identifiers.
	IDENT      // Identifier, e.g. "HTMLElement", "_interface" (un-escaped to "interface")
	INTEGER    // Integer literal, e.g. "42", "-0x1F", "010"
	DECIMAL    // Decimal/float literal, e.g. "3.14", "-1.5e10"
	STRINGLIT  // "quoted string", no escape processing

	// Punctuation.
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	SEMICOLON // ;
	COMMA     // ,
	COLON     // :
	DOT       // .
	ELLIPSIS  // ...
	QUESTION  // ?
	ASSIGN    // =
	GT        // >
	LT        // <
	MINUS     // -
	OR        // or (pipe token used by union types in some grammars; kept for completeness)
	WILDCARD  // * (the ExtendedAttribute wildcard value, e.g. [Exposed=*])

	keywordStart
	// Structural keywords.
	INTERFACE
	PARTIAL
	MIXIN
	DICTIONARY
	ENUM
	TYPEDEF
	CALLBACK
	NAMESPACE
	INCLUDES
	CONST
	ATTRIBUTE
	READONLY
	INHERIT
	STATIC
	STRINGIFIER
	ITERABLE
	ASYNC
	SETLIKE
	MAPLIKE
	GETTER
	SETTER
	DELETER
	REQUIRED
	OPTIONAL
	CONSTRUCTOR
	NAMEDKW

	// Type keywords.
	ANY
	OBJECT
	SYMBOL
	UNDEFINEDKW
	BOOLEAN
	BYTE
	OCTET
	SHORT
	LONG
	UNSIGNED
	FLOAT
	DOUBLE
	UNRESTRICTED
	BIGINT
	DOMSTRING
	BYTESTRING
	USVSTRING
	SEQUENCE
	RECORD
	PROMISE
	FROZENARRAY
	OBSERVABLEARRAY
	ARRAYBUFFER
	SHAREDARRAYBUFFER
	DATAVIEW
	TYPEDARRAY // Int8Array, Uint8Array, ... (value carries the concrete name)

	// Literal keywords.
	TRUEKW
	FALSEKW
	NULLKW
	INFINITYKW
	NAN

	keywordEnd
)

// argumentNameKeywords lists the identifier-like keywords permitted to stand
// in for an argument/attribute identifier: the 25 of the grammar's
// "ArgumentNameKeyword" production plus "named", which this lexer also
// reserves as a keyword. The lexer still emits distinct Kinds for
// them; the parser widens to an identifier string where the grammar allows.
var argumentNameKeywords = map[Kind]string{
	ASYNC: "async", ATTRIBUTE: "attribute", CALLBACK: "callback", CONST: "const",
	CONSTRUCTOR: "constructor", DELETER: "deleter", DICTIONARY: "dictionary",
	ENUM: "enum", GETTER: "getter", INCLUDES: "includes", INHERIT: "inherit",
	INTERFACE: "interface", ITERABLE: "iterable", MAPLIKE: "maplike", MIXIN: "mixin",
	NAMESPACE: "namespace", PARTIAL: "partial", READONLY: "readonly",
	REQUIRED: "required", SETLIKE: "setlike", SETTER: "setter", STATIC: "static",
	STRINGIFIER: "stringifier", TYPEDEF: "typedef", UNRESTRICTED: "unrestricted",
	NAMEDKW: "named",
}

// keywords maps the exact (case-sensitive) spelling to its Kind.
var keywords map[string]Kind

// typedArrayNames lists the 12 typed-array kinds the lexer recognizes; any
// other spelling lexes as an ordinary identifier.
var typedArrayNames = map[string]bool{
	"Int8Array": true, "Int16Array": true, "Int32Array": true,
	"Uint8Array": true, "Uint16Array": true, "Uint32Array": true,
	"Uint8ClampedArray": true, "BigInt64Array": true, "BigUint64Array": true,
	"Float16Array": true, "Float32Array": true, "Float64Array": true,
}

func init() {
	keywords = map[string]Kind{
		"interface": INTERFACE, "partial": PARTIAL, "mixin": MIXIN,
		"dictionary": DICTIONARY, "enum": ENUM, "typedef": TYPEDEF,
		"callback": CALLBACK, "namespace": NAMESPACE, "includes": INCLUDES,
		"const": CONST, "attribute": ATTRIBUTE, "readonly": READONLY,
		"inherit": INHERIT, "static": STATIC, "stringifier": STRINGIFIER,
		"iterable": ITERABLE, "async": ASYNC, "setlike": SETLIKE,
		"maplike": MAPLIKE, "getter": GETTER, "setter": SETTER,
		"deleter": DELETER, "required": REQUIRED, "optional": OPTIONAL,
		"constructor": CONSTRUCTOR, "named": NAMEDKW,

		"any": ANY, "object": OBJECT, "symbol": SYMBOL, "undefined": UNDEFINEDKW,
		"boolean": BOOLEAN, "byte": BYTE, "octet": OCTET, "short": SHORT,
		"long": LONG, "unsigned": UNSIGNED, "float": FLOAT, "double": DOUBLE,
		"unrestricted": UNRESTRICTED, "bigint": BIGINT,
		"DOMString": DOMSTRING, "ByteString": BYTESTRING, "USVString": USVSTRING,
		"sequence": SEQUENCE, "record": RECORD, "Promise": PROMISE,
		"FrozenArray": FROZENARRAY, "ObservableArray": OBSERVABLEARRAY,
		"ArrayBuffer": ARRAYBUFFER, "SharedArrayBuffer": SHAREDARRAYBUFFER,
		"DataView": DATAVIEW,

		"true": TRUEKW, "false": FALSEKW, "null": NULLKW,
		"Infinity": INFINITYKW, "NaN": NAN, "or": OR,
	}
	for name := range typedArrayNames {
		keywords[name] = TYPEDARRAY
	}
}

// IsArgumentNameKeyword reports whether k is one of the argumentNameKeywords
// (the grammar's 25 plus "named") that may stand in for an identifier at
// argument/member-name position.
func (k Kind) IsArgumentNameKeyword() bool {
	_, ok := argumentNameKeywords[k]
	return ok
}

// LookupIdent classifies a raw identifier spelling, case-sensitively, as
// either a specific keyword Kind or a plain IDENT. Web IDL keyword matching
// is case-sensitive: "Const" is an identifier, "const" is CONST.
func LookupIdent(literal string) Kind {
	if k, ok := keywords[literal]; ok {
		return k
	}
	return IDENT
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", IDENT: "IDENT", INTEGER: "INTEGER",
	DECIMAL: "DECIMAL", STRINGLIT: "STRING",
	LBRACE: "{", RBRACE: "}", LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	SEMICOLON: ";", COMMA: ",", COLON: ":", DOT: ".", ELLIPSIS: "...",
	QUESTION: "?", ASSIGN: "=", GT: ">", LT: "<", MINUS: "-", OR: "or", WILDCARD: "*",
}

// Position is a human-facing source location: 1-based line and column
// (counted in runes, not bytes or display width — matching the teacher
// lexer's Unicode column-counting convention) plus a 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexical unit: its Kind, its exact source spelling (Literal,
// pre-escape-stripping), and its starting Position.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Position
}

func NewToken(kind Kind, literal string, pos Position) Token {
	return Token{Kind: kind, Literal: literal, Pos: pos}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Literal, t.Pos)
}
