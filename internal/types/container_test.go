package types

import (
	"reflect"
	"testing"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

// stubProbe is a minimal ObjectProbe fake for exercising the container and
// union conversions without a real host JS engine.
type stubProbe struct {
	interfaces map[string]bool
	callable   bool
	methods    map[string]jsvalue.Value
	props      map[string]jsvalue.Value
	keys       []string
	bufferKind string
	shared     bool
	resizable  bool
	hasBuffer  bool
}

func (p *stubProbe) ImplementsInterface(name string) bool { return p.interfaces[name] }
func (p *stubProbe) BufferSlot() (string, bool, bool, bool) {
	return p.bufferKind, p.shared, p.resizable, p.hasBuffer
}
func (p *stubProbe) IsCallable() bool { return p.callable }
func (p *stubProbe) GetMethod(name string) (jsvalue.Value, bool) {
	v, ok := p.methods[name]
	return v, ok
}
func (p *stubProbe) Get(name string) (jsvalue.Value, bool) {
	v, ok := p.props[name]
	return v, ok
}
func (p *stubProbe) OwnPropertyKeys() []string { return p.keys }

// identityConvert passes Number/String/Boolean values straight through as
// the matching IDLValue, enough to exercise the container plumbing without
// invoking the full numeric/string converters.
func identityConvert(v jsvalue.Value, elem *ast.Type, er *exceptions.ErrorResult) IDLValue {
	switch val := v.(type) {
	case jsvalue.Number:
		return IntegerValue{Numeric: ast.NumLong, Value: int64(val.Value)}
	case jsvalue.String:
		return DOMStringValue{Units: val.Units}
	case jsvalue.Boolean:
		return BooleanValue{Value: val.Value}
	default:
		return UndefinedValue{}
	}
}

func TestConvertToSequenceStepsIterator(t *testing.T) {
	// Build a sequence source whose iterator's "next" method is itself an
	// object exposing a Probe.Get("next") — the sequence converter only
	// calls iter.Probe.GetMethod("next") once per step and expects a
	// jsvalue.Object back, so model "next" as an object whose single
	// Get-like behavior is driven by a counter in its Probe.
	i := 0
	values := []jsvalue.Value{jsvalue.Number{Value: 1}, jsvalue.Number{Value: 2}, jsvalue.Number{Value: 3}}

	nextProbe := &countingNextProbe{values: values, i: &i}
	source := jsvalue.Object{Probe: &stubProbe{
		methods: map[string]jsvalue.Value{
			"@@iterator": jsvalue.Object{Probe: nextProbe},
		},
	}}

	var er exceptions.ErrorResult
	got := ConvertToSequence(source, &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumLong}, identityConvert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	want := []int64{1, 2, 3}
	if len(got.Elements) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got.Elements))
	}
	for idx, w := range want {
		iv, ok := got.Elements[idx].(IntegerValue)
		if !ok || iv.Value != w {
			t.Errorf("element %d: expected %d, got %v", idx, w, got.Elements[idx])
		}
	}
}

// countingNextProbe is the iterator object: each GetMethod("next") call
// advances it and returns a fresh result object carrying "done"/"value",
// since ConvertToSequence fetches GetMethod("next") once per loop iteration
// and reads those two properties from what it returns.
type countingNextProbe struct {
	values []jsvalue.Value
	i      *int
}

func (p *countingNextProbe) ImplementsInterface(string) bool { return false }
func (p *countingNextProbe) BufferSlot() (string, bool, bool, bool) {
	return "", false, false, false
}
func (p *countingNextProbe) IsCallable() bool { return true }
func (p *countingNextProbe) GetMethod(name string) (jsvalue.Value, bool) {
	if name != "next" {
		return nil, false
	}
	done := *p.i >= len(p.values)
	var val jsvalue.Value = jsvalue.Undefined{}
	if !done {
		val = p.values[*p.i]
	}
	*p.i++
	return jsvalue.Object{Probe: &stubProbe{
		props: map[string]jsvalue.Value{
			"done":  jsvalue.Boolean{Value: done},
			"value": val,
		},
	}}, true
}
func (p *countingNextProbe) Get(name string) (jsvalue.Value, bool) { return nil, false }
func (p *countingNextProbe) OwnPropertyKeys() []string             { return nil }

func TestConvertToRecordEnumeratesOwnProperties(t *testing.T) {
	obj := jsvalue.Object{Probe: &stubProbe{
		keys: []string{"a", "b"},
		props: map[string]jsvalue.Value{
			"a": jsvalue.Number{Value: 1},
			"b": jsvalue.Number{Value: 2},
		},
	}}

	var er exceptions.ErrorResult
	got := ConvertToRecord(obj, ast.StrDOMString, &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumLong}, identityConvert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if !reflect.DeepEqual(got.Keys, []string{"a", "b"}) {
		t.Errorf("expected declared enumeration order [a b], got %v", got.Keys)
	}
	if iv, ok := got.Values["a"].(IntegerValue); !ok || iv.Value != 1 {
		t.Errorf("expected a=1, got %v", got.Values["a"])
	}
}

func TestConvertToDictionaryRequiredFieldMissing(t *testing.T) {
	obj := jsvalue.Object{Probe: &stubProbe{props: map[string]jsvalue.Value{}}}
	fields := []DictionaryField{
		{Name: "id", Type: &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumLong}, Required: true},
	}
	var er exceptions.ErrorResult
	ConvertToDictionary("Options", obj, fields, identityConvert, &er)
	if !er.Failed() {
		t.Fatalf("expected a TypeError for a missing required member")
	}
}

func TestConvertToDictionaryAppliesDefault(t *testing.T) {
	obj := jsvalue.Object{Probe: &stubProbe{props: map[string]jsvalue.Value{}}}
	fields := []DictionaryField{
		{Name: "count", Type: &ast.Type{Kind: ast.TypeNumeric, Numeric: ast.NumLong}, Default: IntegerValue{Numeric: ast.NumLong, Value: 42}},
	}
	var er exceptions.ErrorResult
	got := ConvertToDictionary("Options", obj, fields, identityConvert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	iv, ok := got.Fields["count"].(IntegerValue)
	if !ok || iv.Value != 42 {
		t.Errorf("expected default 42, got %v", got.Fields["count"])
	}
}

func TestConvertToDictionaryOmitsAbsentOptionalWithNoDefault(t *testing.T) {
	obj := jsvalue.Object{Probe: &stubProbe{props: map[string]jsvalue.Value{}}}
	fields := []DictionaryField{
		{Name: "label", Type: &ast.Type{Kind: ast.TypeString, String: ast.StrDOMString}},
	}
	var er exceptions.ErrorResult
	got := ConvertToDictionary("Options", obj, fields, identityConvert, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if _, present := got.Fields["label"]; present {
		t.Errorf("expected label to be omitted, got %v", got.Fields["label"])
	}
}

func TestSortedDictionaryFieldNames(t *testing.T) {
	got := SortedDictionaryFieldNames([]string{"zeta", "alpha", "mid"})
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
