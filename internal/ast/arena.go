package ast

import "github.com/webidl-go/webidl/internal/lexer"

// Span is the source range a node was parsed from, used for diagnostics and
// for nothing else — it plays no role in equality or serialization.
type Span struct {
	Start lexer.Position
	End   lexer.Position
}

// Checkpoint is an opaque bump-pointer high-water mark returned by
// Arena.Mark. Resetting to a Checkpoint abandons every node allocated after
// it, in place, with no per-node cleanup.
//
// The parser uses it to drop a malformed definition: parseDefinitions
// records a Checkpoint before each definition and, if that definition
// produced errors, Resets both the arena and the token cursor to it. Member
// parsing does not backtrack and does not use Checkpoints. Because the arena is the only owner of its nodes, reclaiming
// storage is just forgetting the tail of a slice — Go's GC does the rest
// once nothing else references it.
type Checkpoint struct {
	defs  int
	types int
	exts  int
	args  int
	mems  int
}

// Arena owns every node allocated during a single parse. It is the sole
// deallocation unit: nodes are never freed individually, and a failed parse
// simply drops the Arena (or rewinds it to a Checkpoint) rather than walking
// partial results to free them.
type Arena struct {
	defs  []*Definition
	types []*Type
	exts  []*ExtendedAttribute
	args  []*Argument
	mems  []*Member
}

// NewArena returns an empty Arena ready for one parse.
func NewArena() *Arena {
	return &Arena{}
}

// Mark records the current allocation high-water mark.
func (a *Arena) Mark() Checkpoint {
	return Checkpoint{
		defs:  len(a.defs),
		types: len(a.types),
		exts:  len(a.exts),
		args:  len(a.args),
		mems:  len(a.mems),
	}
}

// Reset abandons every node allocated since cp was taken. Abandoned slice
// slots are zeroed so they don't pin garbage between checkpoint cycles on a
// long-lived arena (a speculative parse that backtracks many times over one
// parser invocation).
func (a *Arena) Reset(cp Checkpoint) {
	for i := cp.defs; i < len(a.defs); i++ {
		a.defs[i] = nil
	}
	for i := cp.types; i < len(a.types); i++ {
		a.types[i] = nil
	}
	for i := cp.exts; i < len(a.exts); i++ {
		a.exts[i] = nil
	}
	for i := cp.args; i < len(a.args); i++ {
		a.args[i] = nil
	}
	for i := cp.mems; i < len(a.mems); i++ {
		a.mems[i] = nil
	}
	a.defs = a.defs[:cp.defs]
	a.types = a.types[:cp.types]
	a.exts = a.exts[:cp.exts]
	a.args = a.args[:cp.args]
	a.mems = a.mems[:cp.mems]
}

// NewDefinition allocates a zero-value Definition in the arena and returns a
// pointer to it. Callers fill in fields after allocation.
func (a *Arena) NewDefinition() *Definition {
	d := &Definition{}
	a.defs = append(a.defs, d)
	return d
}

func (a *Arena) NewType() *Type {
	t := &Type{}
	a.types = append(a.types, t)
	return t
}

func (a *Arena) NewExtendedAttribute() *ExtendedAttribute {
	e := &ExtendedAttribute{}
	a.exts = append(a.exts, e)
	return e
}

func (a *Arena) NewArgument() *Argument {
	arg := &Argument{}
	a.args = append(a.args, arg)
	return arg
}

func (a *Arena) NewMember() *Member {
	m := &Member{}
	a.mems = append(a.mems, m)
	return m
}

// Stats reports the number of live nodes of each category, used by the
// "arena discipline" test property (spec.md §8.1): bytes allocated equal
// bytes reclaimed once the arena most recent Reset or the arena itself is
// dropped.
type Stats struct {
	Definitions, Types, ExtendedAttributes, Arguments, Members int
}

func (a *Arena) Stats() Stats {
	return Stats{
		Definitions:         len(a.defs),
		Types:               len(a.types),
		ExtendedAttributes:  len(a.exts),
		Arguments:           len(a.args),
		Members:             len(a.mems),
	}
}
