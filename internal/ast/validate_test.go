package ast

import "testing"

func TestValidateDetectsDuplicateIdentifier(t *testing.T) {
	doc := &Document{Definitions: []*Definition{
		{Kind: DefInterface, Name: "Paint"},
		{Kind: DefDictionary, Name: "Paint"},
	}}
	errs := Validate(doc)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
}

func TestValidateDetectsInheritanceCycle(t *testing.T) {
	doc := &Document{Definitions: []*Definition{
		{Kind: DefInterface, Name: "A", Inherits: "B"},
		{Kind: DefInterface, Name: "B", Inherits: "A"},
	}}
	errs := Validate(doc)
	if len(errs) == 0 {
		t.Fatal("expected cyclic inheritance error")
	}
}

func TestValidateDetectsDuplicateEnumValue(t *testing.T) {
	doc := &Document{Definitions: []*Definition{
		{Kind: DefEnum, Name: "Color", EnumValues: []string{"red", "green", "red"}},
	}}
	errs := Validate(doc)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}

func TestValidateRejectsNullableAny(t *testing.T) {
	doc := &Document{Definitions: []*Definition{
		{Kind: DefTypedef, Name: "T", Type: &Type{Kind: TypeNullable, Elem: &Type{Kind: TypeAny}}},
	}}
	errs := Validate(doc)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}

func TestValidateRejectsDoubleNullable(t *testing.T) {
	inner := &Type{Kind: TypeNullable, Elem: &Type{Kind: TypeNumeric, Numeric: NumLong}}
	doc := &Document{Definitions: []*Definition{
		{Kind: DefTypedef, Name: "T", Type: &Type{Kind: TypeNullable, Elem: inner}},
	}}
	errs := Validate(doc)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}

func TestValidateRejectsClampAndEnforceRangeTogether(t *testing.T) {
	ty := &Type{
		Kind: TypeAnnotated,
		Elem: &Type{Kind: TypeNumeric, Numeric: NumLong},
		ExtAttrs: []*ExtendedAttribute{
			{Name: "Clamp", Form: ExtNoArgs},
			{Name: "EnforceRange", Form: ExtNoArgs},
		},
	}
	doc := &Document{Definitions: []*Definition{
		{Kind: DefTypedef, Name: "T", Type: ty},
	}}
	errs := Validate(doc)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}

func TestValidateAcceptsWellFormedFragment(t *testing.T) {
	doc := &Document{Definitions: []*Definition{
		{Kind: DefInterface, Name: "Paint"},
		{Kind: DefInterface, Name: "SolidColor", Inherits: "Paint", Members: []*Member{
			{Kind: MemberAttribute, Name: "red", Type: &Type{Kind: TypeNumeric, Numeric: NumDouble}},
		}},
	}}
	if errs := Validate(doc); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateDetectsDuplicateOverloadSignature(t *testing.T) {
	longArg := &Argument{Name: "x", Type: &Type{Kind: TypeNumeric, Numeric: NumLong}, Modality: ArgRequired}
	doc := &Document{Definitions: []*Definition{
		{Kind: DefInterface, Name: "I", Members: []*Member{
			{Kind: MemberOperation, Name: "f", Arguments: []*Argument{longArg}},
			{Kind: MemberOperation, Name: "f", Arguments: []*Argument{longArg}},
		}},
	}}
	errs := Validate(doc)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}
