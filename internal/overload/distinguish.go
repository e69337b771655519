package overload

import "github.com/webidl-go/webidl/internal/ast"

// InterfaceOverlap reports whether any single platform object could
// implement both named interface types a and b. Two interface-like
// argument types are distinguishable only when this returns false (spec.md
// §4.5's footnote: "distinguishable only if no single platform object
// implements both"). A nil checker is conservative: it assumes every pair
// of distinct interfaces might overlap, so two interface-like arguments
// are never distinguishable without one supplied.
type InterfaceOverlap func(a, b *ast.Type) bool

// table[i][j] is true when categories i and j are unconditionally
// distinguishable (the "●" cells of spec.md's 13×13 table) regardless of
// which specific types populate them. false diagonal/near-diagonal cells
// fall through to the footnote checks in Distinguishable.
var table [categoryCount][categoryCount]bool

func init() {
	for i := Category(0); i < categoryCount; i++ {
		for j := Category(0); j < categoryCount; j++ {
			table[i][j] = i != j
		}
	}
	// Same-category pairs are never unconditionally distinguishable; the
	// footnoted exceptions (two distinguishable interface-like types,
	// or two numeric types forced to different precisions by the caller
	// supplying an exact-index-match requirement) are handled in
	// Distinguishable rather than the table itself.
}

// Distinguishable implements spec.md §4.5's pairwise predicate: unwrap
// annotations/nullable from a and b, categorize, and consult the table.
// `any` is distinguishable from no type. Same-category pairs fall through
// to footnote conditions:
//   - two interface-like types: distinguishable iff overlap reports they
//     cannot share an implementor.
//   - any other same-category pair: never distinguishable — same-category
//     values cannot be told apart by inspecting the JS value alone.
func Distinguishable(a, b *ast.Type, resolveNamed NamedKindResolver, overlap InterfaceOverlap) bool {
	for _, t := range []*ast.Type{a, b} {
		for t.Kind == ast.TypeAnnotated || t.Kind == ast.TypeNullable {
			t = t.Elem
		}
		if t.Kind == ast.TypeAny {
			return false
		}
	}

	catA := Categorize(a, resolveNamed)
	catB := Categorize(b, resolveNamed)

	if catA != catB {
		return table[catA][catB]
	}

	if catA == CatInterfaceLike {
		if overlap == nil {
			return false
		}
		return !overlap(a, b)
	}

	return false
}
