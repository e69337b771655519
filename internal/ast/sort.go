package ast

import (
	"sort"

	"github.com/maruel/natural"
)

// SortDefinitionsNatural returns a copy of defs ordered by natural string
// comparison of their Name (so HTMLElement2 sorts before HTMLElement10,
// unlike a plain lexicographic sort). Ties keep their relative source
// order, since sort.SliceStable is used.
func SortDefinitionsNatural(defs []*Definition) []*Definition {
	out := make([]*Definition, len(defs))
	copy(out, defs)
	sort.SliceStable(out, func(i, j int) bool {
		return natural.Less(out[i].Name, out[j].Name)
	})
	return out
}
