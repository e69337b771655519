package types

import (
	"testing"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

func TestFlattenUnionExpandsNestedUnions(t *testing.T) {
	inner := &ast.Type{Kind: ast.TypeUnion, Union: []*ast.Type{
		{Kind: ast.TypeBoolean},
		{Kind: ast.TypeNumeric, Numeric: ast.NumLong},
	}}
	outer := &ast.Type{Kind: ast.TypeUnion, Union: []*ast.Type{
		{Kind: ast.TypeString, String: ast.StrDOMString},
		inner,
	}}
	got := FlattenUnion(outer)
	if len(got) != 3 {
		t.Fatalf("expected 3 flattened members, got %d: %v", len(got), got)
	}
}

func TestResolveUnionPicksStringMember(t *testing.T) {
	u := &ast.Type{Kind: ast.TypeUnion, Union: []*ast.Type{
		{Kind: ast.TypeNumeric, Numeric: ast.NumLong},
		{Kind: ast.TypeString, String: ast.StrDOMString},
	}}
	var er exceptions.ErrorResult
	got := ResolveUnion(jsvalue.NewStringFromUTF8("hi"), u, identityConvert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if got.MemberType == nil || got.MemberType.Kind != ast.TypeString {
		t.Errorf("expected the string member to be selected, got %v", got.MemberType)
	}
}

func TestResolveUnionPrefersInterfaceMemberOverObjectFallback(t *testing.T) {
	u := &ast.Type{Kind: ast.TypeUnion, Union: []*ast.Type{
		{Kind: ast.TypeNamed, Name: "Blob"},
		{Kind: ast.TypeRecord, RecordKey: ast.StrDOMString, Elem: &ast.Type{Kind: ast.TypeAny}},
	}}
	obj := jsvalue.Object{Probe: &stubProbe{interfaces: map[string]bool{"Blob": true}}}

	convert := func(v jsvalue.Value, elem *ast.Type, er *exceptions.ErrorResult) IDLValue {
		return InterfaceRefValue{Name: elem.Name, Ref: v}
	}

	var er exceptions.ErrorResult
	got := ResolveUnion(obj, u, convert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if got.MemberType == nil || got.MemberType.Kind != ast.TypeNamed {
		t.Errorf("expected the interface member to win, got %v", got.MemberType)
	}
}

func TestResolveUnionFallsBackToObjectMemberForPlainObjects(t *testing.T) {
	// Record is declared before the interface member, so a plain object
	// that fails the interface test falls back to the first object-shaped
	// member in declaration order.
	u := &ast.Type{Kind: ast.TypeUnion, Union: []*ast.Type{
		{Kind: ast.TypeRecord, RecordKey: ast.StrDOMString, Elem: &ast.Type{Kind: ast.TypeAny}},
		{Kind: ast.TypeNamed, Name: "Blob"},
	}}
	obj := jsvalue.Object{Probe: &stubProbe{keys: []string{}}}

	var er exceptions.ErrorResult
	got := ResolveUnion(obj, u, identityConvert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if got.MemberType == nil || got.MemberType.Kind != ast.TypeRecord {
		t.Errorf("expected the record fallback member, got %v", got.MemberType)
	}
}

func TestResolveUnionFailsWhenNoMemberMatches(t *testing.T) {
	// A union of only an interface type has no scalar fallback and no
	// object branch applies to a non-object, non-null, non-undefined
	// value, so resolution must fail.
	u := &ast.Type{Kind: ast.TypeUnion, Union: []*ast.Type{
		{Kind: ast.TypeNamed, Name: "Blob"},
	}}
	var er exceptions.ErrorResult
	ResolveUnion(jsvalue.Boolean{Value: true}, u, identityConvert, &er)
	if !er.Failed() {
		t.Fatalf("expected a TypeError: boolean has no matching member")
	}
}

func TestResolveUnionBooleanPrefersNumericOverString(t *testing.T) {
	// spec.md §8.2 Scenario D: a boolean input against (long or DOMString)
	// must resolve via the numeric branch (ToNumber), not the flat
	// string>numeric catch-all, since Type(V) == Boolean has its own
	// preferred member order ahead of the generic fallback chain.
	u := &ast.Type{Kind: ast.TypeUnion, Union: []*ast.Type{
		{Kind: ast.TypeNumeric, Numeric: ast.NumLong},
		{Kind: ast.TypeString, String: ast.StrDOMString},
	}}
	var er exceptions.ErrorResult
	got := ResolveUnion(jsvalue.Boolean{Value: true}, u, identityConvert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if got.MemberType == nil || got.MemberType.Kind != ast.TypeNumeric {
		t.Errorf("expected the long member to be selected, got %v", got.MemberType)
	}
}

func TestResolveUnionNullPicksNullableMember(t *testing.T) {
	u := &ast.Type{Kind: ast.TypeUnion, Union: []*ast.Type{
		{Kind: ast.TypeNullable, Elem: &ast.Type{Kind: ast.TypeNamed, Name: "Blob"}},
		{Kind: ast.TypeNumeric, Numeric: ast.NumLong},
	}}
	var er exceptions.ErrorResult
	got := ResolveUnion(jsvalue.Null{}, u, identityConvert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if got.MemberType == nil || got.MemberType.Kind != ast.TypeNullable {
		t.Errorf("expected the nullable member, got %v", got.MemberType)
	}
}
