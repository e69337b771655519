package ast

// ExtAttrForm tags which of the nine shapes an ExtendedAttribute takes
// (spec.md §3.2, §4.2 — matched in this order of specificity during
// parsing: NoArgs, Ident, Wildcard, IdentList, IntegerList, Integer,
// Decimal, String, ArgList, NamedArgList).
type ExtAttrForm int

const (
	ExtNoArgs ExtAttrForm = iota
	ExtIdent
	ExtWildcard
	ExtIdentList
	ExtIntegerList
	ExtInteger
	ExtDecimal
	ExtString
	ExtArgList
	ExtNamedArgList
)

func (f ExtAttrForm) String() string {
	switch f {
	case ExtNoArgs:
		return "no-args"
	case ExtIdent:
		return "ident"
	case ExtWildcard:
		return "wildcard"
	case ExtIdentList:
		return "ident-list"
	case ExtIntegerList:
		return "integer-list"
	case ExtInteger:
		return "integer"
	case ExtDecimal:
		return "decimal"
	case ExtString:
		return "string"
	case ExtArgList:
		return "arg-list"
	case ExtNamedArgList:
		return "named-arg-list"
	default:
		return "unknown"
	}
}

// ExtendedAttribute is one "[Name...]" annotation on a definition, member,
// type, or argument. Unknown attribute names are preserved verbatim — the
// parser never rejects an attribute it cannot recognize; validating known
// names against their expected shape is a later pass (spec.md §4.2).
type ExtendedAttribute struct {
	Name string
	Form ExtAttrForm
	Span Span

	// ExtIdent: the identifier after "=".
	// ExtWildcard: unused (Name "=*" carries no payload).
	Value string

	// ExtIdentList: "(A, B, C)" after "=".
	Values []string

	// ExtIntegerList: "(1, 2, 3)" after "=", raw literal spellings.
	Integers []string

	// ExtInteger / ExtDecimal / ExtString: the raw literal spelling (for
	// ExtString, without surrounding quotes).
	Scalar string

	// ExtArgList: "(type name, ...)".
	Arguments []*Argument

	// ExtNamedArgList: "Name2(type name, ...)" after "=".
	RHSName      string
	RHSArguments []*Argument
}
