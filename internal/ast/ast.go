// Package ast defines the Web IDL Abstract Syntax Tree: a pure value tree
// with no back-pointers and no cycles (spec.md §4.3). Every node is owned by
// the Arena (arena.go) that allocated it during a single parse; child
// references are ordinary Go pointers into that Arena, never shared across
// parses.
//
// The type universe mirrors spec.md §3.2 exactly: Definition, Member,
// Argument, Type, and ExtendedAttribute are each a single Go struct playing
// the role of a discriminated union, tagged by a *Kind field and carrying
// only the fields its current Kind uses. This keeps serialization (serialize.go)
// a matter of switching on one field per node rather than a type switch over
// a family of concrete types, and keeps the type universe finite and
// enumerable the way spec.md §9 "Extended attributes as values, not
// metatypes" asks for.
package ast

// DefinitionKind tags the variant of a top-level Definition.
type DefinitionKind int

const (
	DefInterface DefinitionKind = iota
	DefPartialInterface
	DefMixin
	DefPartialMixin
	DefCallbackInterface
	DefDictionary
	DefPartialDictionary
	DefEnum
	DefTypedef
	DefCallback
	DefNamespace
	DefPartialNamespace
	DefIncludes
)

func (k DefinitionKind) String() string {
	switch k {
	case DefInterface:
		return "interface"
	case DefPartialInterface:
		return "partial-interface"
	case DefMixin:
		return "mixin"
	case DefPartialMixin:
		return "partial-mixin"
	case DefCallbackInterface:
		return "callback-interface"
	case DefDictionary:
		return "dictionary"
	case DefPartialDictionary:
		return "partial-dictionary"
	case DefEnum:
		return "enum"
	case DefTypedef:
		return "typedef"
	case DefCallback:
		return "callback"
	case DefNamespace:
		return "namespace"
	case DefPartialNamespace:
		return "partial-namespace"
	case DefIncludes:
		return "includes"
	default:
		return "unknown"
	}
}

// Partial reports whether this definition kind is a "partial ..." variant.
func (k DefinitionKind) Partial() bool {
	switch k {
	case DefPartialInterface, DefPartialMixin, DefPartialDictionary, DefPartialNamespace:
		return true
	default:
		return false
	}
}

// Definition is one top-level Web IDL declaration.
type Definition struct {
	Kind     DefinitionKind
	Name     string
	ExtAttrs []*ExtendedAttribute
	Span     Span

	// Interface / CallbackInterface / Dictionary: optional parent
	// identifier. Empty string means no inheritance (always empty for a
	// Mixin).
	Inherits string

	// Interface / Mixin / CallbackInterface / Namespace / Dictionary:
	// ordered member list. For Dictionary, every Member has Kind
	// MemberDictionaryField.
	Members []*Member

	// Interface: legacy factory functions, declared via
	// [LegacyFactoryFunction=Name(args)] — modeled as extended attributes,
	// kept here as resolved convenience accessors are not needed; the raw
	// ExtAttrs list is authoritative. Constructor operations live in
	// Members as MemberConstructor.

	// Enum: the ordered, duplicate-free list of string values.
	EnumValues []string

	// Typedef: the aliased type. Callback: the return type.
	Type *Type

	// Callback: argument list.
	Arguments []*Argument

	// IncludesStatement: "Target includes Mixin;"
	IncludesTarget string
	IncludesMixin  string
}

// MemberKind tags the variant of an interface/mixin/namespace/dictionary
// member.
type MemberKind int

const (
	MemberConst MemberKind = iota
	MemberAttribute
	MemberOperation
	MemberStringifier
	MemberIterable
	MemberAsyncIterable
	MemberMaplike
	MemberSetlike
	MemberConstructor
	MemberGetter
	MemberSetter
	MemberDeleter
	MemberDictionaryField
)

func (k MemberKind) String() string {
	switch k {
	case MemberConst:
		return "const"
	case MemberAttribute:
		return "attribute"
	case MemberOperation:
		return "operation"
	case MemberStringifier:
		return "stringifier"
	case MemberIterable:
		return "iterable"
	case MemberAsyncIterable:
		return "async_iterable"
	case MemberMaplike:
		return "maplike"
	case MemberSetlike:
		return "setlike"
	case MemberConstructor:
		return "constructor"
	case MemberGetter:
		return "getter"
	case MemberSetter:
		return "setter"
	case MemberDeleter:
		return "deleter"
	case MemberDictionaryField:
		return "field"
	default:
		return "unknown"
	}
}

// Member is one member of an interface, mixin, namespace, or dictionary.
type Member struct {
	Kind     MemberKind
	Name     string // empty for unnamed special operations (getter/setter/deleter) and stringifier
	ExtAttrs []*ExtendedAttribute
	Span     Span

	// Attribute / Const / DictionaryField / Operation (return type).
	Type *Type

	Readonly bool // Attribute
	Static   bool // Attribute, Operation (namespace members are implicitly static)
	Inherit  bool // Attribute: declared with the "inherit" keyword prefix

	// Operation / Constructor / Getter / Setter / Deleter.
	Arguments []*Argument

	// Const.
	ConstValue *DefaultValue

	// Iterable / AsyncIterable / Maplike: key type and (for a pair
	// iterable/maplike) value type. A value-only iterable leaves KeyType nil.
	KeyType   *Type
	ValueType *Type

	// Setlike.
	ElementType *Type

	// Maplike / Setlike: [Exposed] etc. aside, read-only is modeled via Readonly.

	// DictionaryField.
	Required bool
	Default  *DefaultValue
}

// ArgModality classifies how an Argument may be supplied.
type ArgModality int

const (
	ArgRequired ArgModality = iota
	ArgOptionalWithDefault
	ArgOptionalWithoutDefault
	ArgVariadic
)

func (m ArgModality) String() string {
	switch m {
	case ArgRequired:
		return "required"
	case ArgOptionalWithDefault:
		return "optional-with-default"
	case ArgOptionalWithoutDefault:
		return "optional-without-default"
	case ArgVariadic:
		return "variadic"
	default:
		return "unknown"
	}
}

// Optional reports whether an argument at this modality may be omitted by
// the caller (it is not required and not variadic — variadics accept zero
// values but are a distinct grammar production).
func (m ArgModality) Optional() bool {
	return m == ArgOptionalWithDefault || m == ArgOptionalWithoutDefault
}

// Argument is one parameter of an operation, constructor, or callback.
type Argument struct {
	ExtAttrs []*ExtendedAttribute
	Type     *Type
	Name     string
	Modality ArgModality
	Default  *DefaultValue
	Span     Span
}

// DefaultValueKind tags the variant of a default value literal.
type DefaultValueKind int

const (
	DVBoolean DefaultValueKind = iota
	DVInteger
	DVDecimal
	DVString
	DVNull
	DVUndefined
	DVEmptySequence
	DVEmptyDictionary
	DVNamedConst // Infinity | -Infinity | NaN
)

// DefaultValue is the literal attached to an optional argument or a
// dictionary member.
type DefaultValue struct {
	Kind DefaultValueKind

	Bool    bool
	Int     string // preserved as the raw literal spelling (grammar form, §4.1)
	Decimal string
	Str     string
	Named   string // "Infinity" | "-Infinity" | "NaN", valid when Kind==DVNamedConst
}
