package types

import (
	"io"

	"github.com/webidl-go/webidl/internal/jsvalue"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeUTF16BytesWithBOM implements the BOM-aware byte-buffer entry point
// for DOMString conversion: some hosts hand the conversion layer a raw
// byte buffer (e.g. the contents of an ArrayBuffer passed to a
// `[AllowShared] BufferSource` argument that the binding has decided to
// treat as text) rather than an already-tokenized jsvalue.String. This
// mirrors the lexer's own BOM-stripping convention for UTF-8 source text,
// extended to the UTF-16 BOM forms DOMString's code-unit model can
// represent directly. Defaults to UTF-8 when no BOM is present.
func DecodeUTF16BytesWithBOM(data []byte) (DOMStringValue, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := transform.NewReader(newByteReader(data), decoder)
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return DOMStringValue{}, err
	}
	return DOMStringValue{Units: jsvalue.EncodeUTF16(string(decoded))}, nil
}

type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader { return &byteReader{data: data} }

func (r *byteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
