package types

import (
	"testing"

	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

// unpairedSurrogateString builds the fixture from spec.md §8.2 Scenario B:
// the 3-code-unit sequence "A", U+D800 (an unpaired high surrogate), "B".
func unpairedSurrogateString() jsvalue.String {
	return jsvalue.String{Units: []uint16{0x41, 0xD800, 0x42}}
}

func TestConvertToDOMStringPreservesUnpairedSurrogate(t *testing.T) {
	got := ConvertToDOMString(unpairedSurrogateString(), false)
	want := []uint16{0x41, 0xD800, 0x42}
	if len(got.Units) != len(want) {
		t.Fatalf("expected %d units, got %d", len(want), len(got.Units))
	}
	for i := range want {
		if got.Units[i] != want[i] {
			t.Errorf("unit %d: expected %#x, got %#x", i, want[i], got.Units[i])
		}
	}
}

func TestConvertToUSVStringReplacesUnpairedSurrogate(t *testing.T) {
	got := ConvertToUSVString(unpairedSurrogateString())
	want := []uint16{0x41, 0xFFFD, 0x42}
	for i := range want {
		if got.Units[i] != want[i] {
			t.Errorf("unit %d: expected %#x, got %#x", i, want[i], got.Units[i])
		}
	}
}

func TestConvertToByteStringRejectsSurrogates(t *testing.T) {
	var er exceptions.ErrorResult
	got := ConvertToByteString(unpairedSurrogateString(), &er)
	if !er.Failed() {
		t.Fatalf("expected a TypeError, since 0xD800 > 0xFF")
	}
	if len(got.Bytes) != 0 {
		t.Errorf("expected an inert empty result, got %v", got.Bytes)
	}
}

func TestConvertToByteStringAcceptsLatin1Range(t *testing.T) {
	var er exceptions.ErrorResult
	got := ConvertToByteString(jsvalue.String{Units: []uint16{0x41, 0xFF, 0x00}}, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	want := []byte{0x41, 0xFF, 0x00}
	for i := range want {
		if got.Bytes[i] != want[i] {
			t.Errorf("byte %d: expected %#x, got %#x", i, want[i], got.Bytes[i])
		}
	}
}

func TestConvertToDOMStringLegacyNullToEmptyString(t *testing.T) {
	got := ConvertToDOMString(jsvalue.Null{}, true)
	if len(got.Units) != 0 {
		t.Errorf("expected the empty string, got %v", got.Units)
	}

	got = ConvertToDOMString(jsvalue.Null{}, false)
	if len(got.Units) == 0 {
		t.Errorf("expected the literal string \"null\" without the legacy flag")
	}
}
