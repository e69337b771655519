// Package overload implements spec.md §4.5's overload-resolution
// algorithm: effective overload set construction, the distinguishing
// argument index, and the distinguishability predicate driving
// per-argument narrowing, reusing internal/types' union decision tree for
// the actual value-to-branch narrowing step.
package overload

import "github.com/webidl-go/webidl/internal/ast"

// Category is one of the 13 buckets the distinguishability table (spec.md
// §4.5, "the fixed 13×13 category table") groups IDL types into. Two
// arguments whose types fall in different categories are always
// distinguishable; same-category pairs are distinguishable only when a
// footnote condition in distinguishTable applies.
type Category int

const (
	CatUndefined Category = iota
	CatBoolean
	CatNumeric
	CatBigInt
	CatString
	CatObject
	CatInterfaceLike
	CatCallbackFunction
	CatDictionaryLike
	CatSequenceLike
	CatSymbol
	CatBufferSource
	CatPromise
	categoryCount
)

func (c Category) String() string {
	names := [...]string{
		"undefined", "boolean", "numeric", "bigint", "string", "object",
		"interface-like", "callback-function", "dictionary-like",
		"sequence-like", "symbol", "buffer-source", "promise",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// NamedKindResolver classifies a TypeNamed reference (whose target isn't
// known without a symbol table) as one of the three categories a named
// type can denote: interface, callback function, or dictionary-like
// (dictionary or enum, which Web IDL also treats as dictionary-like for
// distinguishability purposes). A nil resolver defaults every named type
// to CatInterfaceLike, the common case.
type NamedKindResolver func(name string) Category

// Categorize implements spec.md §4.5's "unwrapping annotations and
// nullable" step, then buckets the bare type into one of the 13
// categories. Nullable(T) categorizes as T's own category: a nullable
// member is only ever compared against union-resolution's dedicated
// null/undefined branch, never via this table (per the spec's exclusion
// of "at most one nullable member" from needing its own category).
func Categorize(t *ast.Type, resolveNamed NamedKindResolver) Category {
	for {
		switch t.Kind {
		case ast.TypeAnnotated, ast.TypeNullable:
			t = t.Elem
			continue
		}
		break
	}

	switch t.Kind {
	case ast.TypeUndefined:
		return CatUndefined
	case ast.TypeBoolean:
		return CatBoolean
	case ast.TypeNumeric:
		return CatNumeric
	case ast.TypeBigInt:
		return CatBigInt
	case ast.TypeString:
		return CatString
	case ast.TypeObject:
		return CatObject
	case ast.TypeSymbol:
		return CatSymbol
	case ast.TypeBuffer, ast.TypeTypedArray:
		return CatBufferSource
	case ast.TypePromise:
		return CatPromise
	case ast.TypeRecord:
		return CatDictionaryLike
	case ast.TypeSequence, ast.TypeFrozenArray, ast.TypeObservableArray, ast.TypeAsyncSequence:
		return CatSequenceLike
	case ast.TypeNamed:
		if resolveNamed != nil {
			return resolveNamed(t.Name)
		}
		return CatInterfaceLike
	case ast.TypeAny:
		// `any` is distinguishable from nothing; it is handled as a
		// special case in Distinguishable, not categorized here.
		return CatObject
	default:
		return CatObject
	}
}
