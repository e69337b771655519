package types_test

import (
	"testing"

	"github.com/webidl-go/webidl/internal/jsvalue"
	"github.com/webidl-go/webidl/internal/types"
)

type recordingRealm struct {
	resolved IDLValueRecorder
	rejected error
}

type IDLValueRecorder struct {
	called bool
	value  types.IDLValue
}

func (r *recordingRealm) Resolve(v types.IDLValue) jsvalue.Value {
	r.resolved.called = true
	r.resolved.value = v
	return jsvalue.Undefined{}
}

func (r *recordingRealm) Reject(exception error) jsvalue.Value {
	r.rejected = exception
	return jsvalue.Undefined{}
}

func TestConvertToPromiseCallsResolveWithResolution(t *testing.T) {
	realm := &recordingRealm{}
	resolution := types.IntegerValue{Value: 7}

	p := types.ConvertToPromise(resolution, realm)

	if !realm.resolved.called {
		t.Fatal("expected realm.Resolve to be called")
	}
	if realm.resolved.value != types.IDLValue(resolution) {
		t.Fatalf("expected resolved value %v, got %v", resolution, realm.resolved.value)
	}
	if p.Resolution != types.IDLValue(resolution) {
		t.Fatalf("expected PromiseValue.Resolution %v, got %v", resolution, p.Resolution)
	}
	if realm.rejected != nil {
		t.Fatalf("expected Reject not to be called, got %v", realm.rejected)
	}
}

func TestConvertToPromiseDoesNotRejectOnSuccess(t *testing.T) {
	realm := &recordingRealm{}
	_ = types.ConvertToPromise(types.BooleanValue{Value: true}, realm)

	if realm.rejected != nil {
		t.Fatalf("ConvertToPromise should never call Reject itself, got %v", realm.rejected)
	}
}
