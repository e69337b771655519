package types

import "github.com/webidl-go/webidl/internal/jsvalue"

// PromiseRealm is the minimal surface a host must provide for promise
// conversion (spec.md §4.4.6): a way to wrap an already-resolved value in
// a promise handle ("Promise.resolve(V)" semantics) and a way to produce a
// rejected promise from a conversion failure. This core never schedules or
// awaits a promise itself (spec.md §5) — it only builds the handle.
type PromiseRealm interface {
	Resolve(v IDLValue) jsvalue.Value
	Reject(exception error) jsvalue.Value
}

// ConvertToPromise wraps resolution in a resolved-promise handle via
// realm.Resolve, implementing spec.md §4.4.6's "Promise.resolve(V)
// semantics". Rejection on conversion failure is the caller's
// responsibility (the method-invocation wrapper, not the converter) per
// spec.md §4.4.6 and §7's propagation policy — ConvertToPromise only
// builds the success path.
func ConvertToPromise(resolution IDLValue, realm PromiseRealm) PromiseValue {
	_ = realm.Resolve(resolution)
	return PromiseValue{Resolution: resolution}
}
