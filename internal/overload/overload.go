package overload

import (
	"errors"

	"github.com/webidl-go/webidl/internal/ast"
)

// Entry is one (operation, type-list, modality-list) triple of an
// effective overload set (spec.md GLOSSARY). Operation identifies which
// declared ast.Member this entry expands; Types and Optional always have
// equal length. Variadic, when true, means positions past len(Types)-1
// reuse Types[len(Types)-1] indefinitely.
type Entry struct {
	Operation *ast.Member
	Types     []*ast.Type
	Optional  []bool
	Variadic  bool
}

// EffectiveSet expands every declared overload of a same-identifier
// operation group across its optional and variadic arguments (spec.md
// §4.5 "effective overload set"): an operation with n required arguments
// and k optional ones contributes one entry per argument count from n to
// n+k, plus (if variadic) one more entry for "n+k or more".
func EffectiveSet(operations []*ast.Member) []Entry {
	var out []Entry
	for _, op := range operations {
		out = append(out, expandOperation(op)...)
	}
	return out
}

func expandOperation(op *ast.Member) []Entry {
	args := op.Arguments
	required := 0
	for required < len(args) && args[required].Modality == ast.ArgRequired {
		required++
	}

	variadicIdx := -1
	for i, a := range args {
		if a.Modality == ast.ArgVariadic {
			variadicIdx = i
			break
		}
	}

	maxFixed := len(args)
	if variadicIdx >= 0 {
		maxFixed = variadicIdx
	}

	var out []Entry
	for count := required; count <= maxFixed; count++ {
		types := make([]*ast.Type, count)
		optional := make([]bool, count)
		for i := 0; i < count; i++ {
			types[i] = args[i].Type
			optional[i] = args[i].Modality != ast.ArgRequired
		}
		out = append(out, Entry{Operation: op, Types: types, Optional: optional})
	}

	if variadicIdx >= 0 {
		types := make([]*ast.Type, maxFixed)
		optional := make([]bool, maxFixed)
		for i := 0; i < maxFixed; i++ {
			types[i] = args[i].Type
			optional[i] = args[i].Modality != ast.ArgRequired
		}
		types = append(types, args[variadicIdx].Type)
		optional = append(optional, true)
		out = append(out, Entry{Operation: op, Types: types, Optional: optional, Variadic: true})
	}

	return out
}

// ErrNoMatchingOverload is returned when step 1 of spec.md §4.5 (filter by
// argument count) leaves an empty set, or step 4 (narrow at the
// distinguishing index) finds no entry matching the JS value.
var ErrNoMatchingOverload = errors.New("overload: no matching overload")

// FilterByArgCount implements spec.md §4.5 step 1.
func FilterByArgCount(set []Entry, argCount int) []Entry {
	var out []Entry
	for _, e := range set {
		n := len(e.Types)
		if e.Variadic {
			if argCount >= n-1 {
				out = append(out, e)
			}
			continue
		}
		if argCount == n {
			out = append(out, e)
		}
	}
	return out
}

// DistinguishingIndex implements spec.md §4.5 step 2: the smallest
// argument index at which at least one pair of entries in set has
// pairwise-distinguishable types. Returns -1 if every position agrees
// (the entries are indistinguishable at every index up to the shortest
// entry — callers should treat this as "any remaining entry may be used",
// matching step 3's guarantee that positions before d all agree).
func DistinguishingIndex(set []Entry, resolveNamed NamedKindResolver, overlap InterfaceOverlap) int {
	if len(set) < 2 {
		return -1
	}
	maxLen := 0
	for _, e := range set {
		if len(e.Types) > maxLen {
			maxLen = len(e.Types)
		}
	}
	for i := 0; i < maxLen; i++ {
		for a := 0; a < len(set); a++ {
			for b := a + 1; b < len(set); b++ {
				ta := typeAt(set[a], i)
				tb := typeAt(set[b], i)
				if ta == nil || tb == nil {
					continue
				}
				if Distinguishable(ta, tb, resolveNamed, overlap) {
					return i
				}
			}
		}
	}
	return -1
}

func typeAt(e Entry, i int) *ast.Type {
	if i < len(e.Types) {
		return e.Types[i]
	}
	if e.Variadic {
		return e.Types[len(e.Types)-1]
	}
	return nil
}

// NarrowAt implements spec.md §4.5 step 4: given the set already filtered
// by argument count and a distinguishing index d, pick the subset of
// entries whose type at d is selected by matches (the caller's union-like
// decision function over the flattened candidate types at d — ordinarily
// internal/types.ResolveUnion driven by the actual argument value), with
// the extension that an entry whose Optional[d] is true also matches when
// isUndefined is true.
func NarrowAt(set []Entry, d int, isUndefined bool, matches func(t *ast.Type) bool) []Entry {
	var out []Entry
	for _, e := range set {
		t := typeAt(e, d)
		if t == nil {
			continue
		}
		if isUndefined && d < len(e.Optional) && e.Optional[d] {
			out = append(out, e)
			continue
		}
		if matches(t) {
			out = append(out, e)
		}
	}
	return out
}

// Resolve runs the full spec.md §4.5 algorithm for one call site, given
// argCount and a per-position value classifier invoked only at the
// distinguishing index d. isUndefinedAt(d) reports whether the argument at
// d is undefined, and matches receives the candidate type at d for each
// remaining entry, reporting whether that type matches.
func Resolve(set []Entry, argCount int, resolveNamed NamedKindResolver, overlap InterfaceOverlap, isUndefinedAt func(index int) bool, matches func(t *ast.Type) bool) (Entry, error) {
	filtered := FilterByArgCount(set, argCount)
	if len(filtered) == 0 {
		return Entry{}, ErrNoMatchingOverload
	}
	if len(filtered) == 1 {
		return filtered[0], nil
	}

	d := DistinguishingIndex(filtered, resolveNamed, overlap)
	if d < 0 {
		return filtered[0], nil
	}

	narrowed := NarrowAt(filtered, d, isUndefinedAt(d), matches)
	if len(narrowed) == 0 {
		return Entry{}, ErrNoMatchingOverload
	}
	return narrowed[0], nil
}
