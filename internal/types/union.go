package types

import (
	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

// FlattenUnion returns a union type's flattened member types (spec.md
// GLOSSARY "Flattened member types"): nested unions are expanded in place,
// and annotation/nullable wrappers are stripped from each resulting member
// so the decision tree in ResolveUnion compares bare DistinguishableTypes.
// The nullable marker itself is tracked separately by the caller, since
// spec.md treats "union includes a nullable member" as a resolution branch,
// not a member type in its own right.
func FlattenUnion(u *ast.Type) []*ast.Type {
	var out []*ast.Type
	var walk func(t *ast.Type)
	walk = func(t *ast.Type) {
		switch t.Kind {
		case ast.TypeUnion:
			for _, m := range t.Union {
				walk(m)
			}
		case ast.TypeAnnotated, ast.TypeNullable:
			walk(t.Elem)
		default:
			out = append(out, t)
		}
	}
	walk(u)
	return out
}

// unwrap strips TypeAnnotated/TypeNullable wrappers, reporting whether a
// TypeNullable was seen anywhere in the chain.
func unwrap(t *ast.Type) (*ast.Type, bool) {
	nullable := false
	for {
		switch t.Kind {
		case ast.TypeAnnotated:
			t = t.Elem
		case ast.TypeNullable:
			nullable = true
			t = t.Elem
		default:
			return t, nullable
		}
	}
}

// ResolveUnion implements spec.md §4.4.5's union-resolution decision tree:
// given a JS value v and a union type u, pick exactly one flattened member
// type and convert v to it. convert performs the actual per-member
// conversion (supplied by the caller to avoid a dependency cycle on a full
// type-dispatch table).
//
// The decision tree below follows the spec's documented precedence:
// undefined, then null/dictionary-default, then platform objects (by
// declaration order), then buffer-internal-slot checks, then callability,
// then the object-value fallbacks (async-iterable/sync-iterable/
// dictionary/record/callback-interface probes — modeled here as a single
// "object member" fallback, since this core does not implement full
// binding-generation), and finally the scalar fallbacks string > numeric >
// boolean > bigint > any.
func ResolveUnion(v jsvalue.Value, u *ast.Type, convert Converter, er *exceptions.ErrorResult) UnionValue {
	members := FlattenUnion(u)

	if _, ok := v.(jsvalue.Undefined); ok {
		if m := findKind(members, ast.TypeUndefined); m != nil {
			return UnionValue{MemberType: m, Selected: UndefinedValue{}}
		}
	}

	if _, isNull := v.(jsvalue.Null); isNull || isUndefinedValue(v) {
		if m, nullable := findNullable(members); nullable {
			return UnionValue{MemberType: m, Selected: nilToNullObject()}
		}
		if m := findKind(members, ast.TypeNamed); m != nil {
			// dictionary-shaped named member: default-initialize.
			converted := convert(v, m, er)
			return UnionValue{MemberType: m, Selected: converted}
		}
	}

	if obj, ok := v.(jsvalue.Object); ok && obj.Probe != nil {
		for _, m := range members {
			base, _ := unwrap(m)
			if base.Kind == ast.TypeNamed && obj.Probe.ImplementsInterface(base.Name) {
				converted := convert(v, m, er)
				return UnionValue{MemberType: m, Selected: converted}
			}
		}

		if _, _, _, ok := obj.Probe.BufferSlot(); ok {
			if m := findKind(members, ast.TypeBuffer); m != nil {
				converted := convert(v, m, er)
				return UnionValue{MemberType: m, Selected: converted}
			}
			if m := findKind(members, ast.TypeTypedArray); m != nil {
				converted := convert(v, m, er)
				return UnionValue{MemberType: m, Selected: converted}
			}
		}

		if obj.Probe.IsCallable() {
			if m := findKind(members, ast.TypeNamed); m != nil {
				converted := convert(v, m, er)
				return UnionValue{MemberType: m, Selected: converted}
			}
		}

		if m := findObjectFallback(members); m != nil {
			converted := convert(v, m, er)
			return UnionValue{MemberType: m, Selected: converted}
		}
	}

	// Scalar fallback: spec.md §4.4.5 dispatches on Type(V) first (Boolean,
	// Number, String, BigInt each have their own preferred member order)
	// before falling through to the flat string > numeric > boolean >
	// bigint > any chain that only applies to values with no dedicated
	// branch of their own (e.g. Symbol).
	var order []ast.TypeKind
	switch v.Kind() {
	case jsvalue.KindBoolean:
		order = []ast.TypeKind{ast.TypeBoolean, ast.TypeNumeric, ast.TypeBigInt}
	case jsvalue.KindNumber:
		order = []ast.TypeKind{ast.TypeNumeric, ast.TypeBigInt}
	case jsvalue.KindString:
		order = []ast.TypeKind{ast.TypeString, ast.TypeNumeric, ast.TypeBigInt, ast.TypeBoolean}
	case jsvalue.KindBigInt:
		order = []ast.TypeKind{ast.TypeBigInt, ast.TypeNumeric}
	default:
		order = []ast.TypeKind{ast.TypeString, ast.TypeNumeric, ast.TypeBoolean, ast.TypeBigInt}
	}
	for _, kind := range order {
		if m := findKind(members, kind); m != nil {
			converted := convert(v, m, er)
			return UnionValue{MemberType: m, Selected: converted}
		}
	}
	if m := findKind(members, ast.TypeAny); m != nil {
		return UnionValue{MemberType: m, Selected: AnyValue{}}
	}

	er.Fail(exceptions.NewTypeError("value does not match any member of the union type"))
	return UnionValue{}
}

func findKind(members []*ast.Type, kind ast.TypeKind) *ast.Type {
	for _, m := range members {
		base, _ := unwrap(m)
		if base.Kind == kind {
			return m
		}
	}
	return nil
}

func findNullable(members []*ast.Type) (*ast.Type, bool) {
	for _, m := range members {
		if m.Kind == ast.TypeNullable {
			return m, true
		}
	}
	return nil, false
}

// findObjectFallback picks a member type that accepts an arbitrary object
// shape (sequence, record, or a dictionary/callback-interface named type)
// when no more specific object test matched.
func findObjectFallback(members []*ast.Type) *ast.Type {
	for _, m := range members {
		base, _ := unwrap(m)
		switch base.Kind {
		case ast.TypeSequence, ast.TypeFrozenArray, ast.TypeObservableArray, ast.TypeRecord, ast.TypeNamed:
			return m
		}
	}
	return nil
}

func nilToNullObject() IDLValue {
	return InterfaceRefValue{Ref: nil}
}
