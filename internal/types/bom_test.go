package types

import "testing"

func TestDecodeUTF16BytesWithBOMStripsUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...)
	got, err := DecodeUTF16BytesWithBOM(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint16{'h', 'i'}
	if len(got.Units) != 2 || got.Units[0] != want[0] || got.Units[1] != want[1] {
		t.Errorf("expected the BOM stripped and \"hi\" decoded, got %v", got.Units)
	}
}

func TestDecodeUTF16BytesWithBOMDefaultsToUTF8WithoutBOM(t *testing.T) {
	got, err := DecodeUTF16BytesWithBOM([]byte("plain"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Units) != 5 {
		t.Errorf("expected 5 units for \"plain\", got %d", len(got.Units))
	}
}
