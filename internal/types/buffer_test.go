package types

import (
	"testing"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

func bufferObject(kind string, shared, resizable bool) jsvalue.Object {
	return jsvalue.Object{Probe: &stubProbe{
		bufferKind: kind,
		shared:     shared,
		resizable:  resizable,
		hasBuffer:  true,
	}}
}

func TestConvertToBufferAcceptsPlainArrayBuffer(t *testing.T) {
	var er exceptions.ErrorResult
	got := ConvertToBuffer(bufferObject("ArrayBuffer", false, false), BufferTarget{Kind: ast.BufferArrayBuffer}, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if got.Shared || got.Resizable {
		t.Errorf("expected a plain non-shared, non-resizable buffer, got %+v", got)
	}
}

func TestConvertToBufferRejectsSharedWithoutAllowShared(t *testing.T) {
	var er exceptions.ErrorResult
	ConvertToBuffer(bufferObject("SharedArrayBuffer", true, false), BufferTarget{Kind: ast.BufferSharedArrayBuffer}, &er)
	if !er.Failed() {
		t.Fatalf("expected a TypeError: shared buffer requires [AllowShared]")
	}
}

func TestConvertToBufferAcceptsSharedWithAllowShared(t *testing.T) {
	var er exceptions.ErrorResult
	got := ConvertToBuffer(bufferObject("SharedArrayBuffer", true, false), BufferTarget{Kind: ast.BufferSharedArrayBuffer, AllowShared: true}, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if !got.Shared {
		t.Errorf("expected Shared to be true")
	}
}

func TestConvertToBufferRejectsResizableWithoutAllowResizable(t *testing.T) {
	var er exceptions.ErrorResult
	ConvertToBuffer(bufferObject("ArrayBuffer", false, true), BufferTarget{Kind: ast.BufferArrayBuffer}, &er)
	if !er.Failed() {
		t.Fatalf("expected a TypeError: resizable buffer requires [AllowResizable]")
	}
}

func TestConvertToBufferRejectsNonBufferValue(t *testing.T) {
	var er exceptions.ErrorResult
	ConvertToBuffer(jsvalue.Number{Value: 1}, BufferTarget{Kind: ast.BufferArrayBuffer}, &er)
	if !er.Failed() {
		t.Fatalf("expected a TypeError: a number has no buffer-related internal slot")
	}
}

func TestConvertToBufferMatchesTypedArrayKind(t *testing.T) {
	var er exceptions.ErrorResult
	got := ConvertToBuffer(bufferObject("Uint8Array", false, false), BufferTarget{TypedArray: "Uint8Array"}, &er)
	if er.Failed() {
		t.Fatalf("unexpected failure: %v", er.Exception())
	}
	if got.TypedName != "Uint8Array" {
		t.Errorf("expected TypedName Uint8Array, got %q", got.TypedName)
	}
}

func TestConvertToBufferRejectsMismatchedTypedArrayKind(t *testing.T) {
	var er exceptions.ErrorResult
	ConvertToBuffer(bufferObject("Int16Array", false, false), BufferTarget{TypedArray: "Uint8Array"}, &er)
	if !er.Failed() {
		t.Fatalf("expected a TypeError: Int16Array does not match the declared Uint8Array")
	}
}
