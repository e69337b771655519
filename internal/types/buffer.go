package types

import (
	"strings"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

// BufferTarget describes the annotated shape a buffer-source conversion
// checks against: the declared ast.Type's Buffer/Name plus the
// [AllowShared]/[AllowResizable] annotations carried on it (spec.md
// §4.4.3).
type BufferTarget struct {
	Kind          ast.BufferKind
	TypedArray    string // set when converting to a typed-array kind instead of Kind
	AllowShared   bool
	AllowResizable bool
}

// ConvertToBuffer implements spec.md §4.4.3's buffer-source conversion
// steps 1-5. It requires v to be an Object exposing a buffer-related
// internal slot via its ObjectProbe, then validates that slot against
// target.
func ConvertToBuffer(v jsvalue.Value, target BufferTarget, er *exceptions.ErrorResult) BufferValue {
	obj, ok := v.(jsvalue.Object)
	if !ok || obj.Probe == nil {
		er.Fail(exceptions.NewTypeError("value is not a buffer-source object"))
		return BufferValue{}
	}

	kind, shared, resizable, ok := obj.Probe.BufferSlot()
	if !ok {
		er.Fail(exceptions.NewTypeError("value has no buffer-related internal slot"))
		return BufferValue{}
	}

	if target.TypedArray != "" {
		if !strings.EqualFold(kind, target.TypedArray) {
			er.Fail(exceptions.NewTypeError("typed array kind does not match the declared type"))
			return BufferValue{}
		}
	} else {
		switch target.Kind {
		case ast.BufferArrayBuffer:
			if shared {
				er.Fail(exceptions.NewTypeError("expected a non-shared ArrayBuffer"))
				return BufferValue{}
			}
		case ast.BufferSharedArrayBuffer:
			if !shared {
				er.Fail(exceptions.NewTypeError("expected a SharedArrayBuffer"))
				return BufferValue{}
			}
		}
	}

	if shared && !target.AllowShared {
		er.Fail(exceptions.NewTypeError("shared buffers are not permitted here; annotate with [AllowShared]"))
		return BufferValue{}
	}
	if resizable && !target.AllowResizable {
		er.Fail(exceptions.NewTypeError("resizable buffers are not permitted here; annotate with [AllowResizable]"))
		return BufferValue{}
	}

	return BufferValue{
		Kind:      target.Kind,
		TypedName: kind,
		Shared:    shared,
		Resizable: resizable,
		Handle:    obj.Handle,
	}
}
