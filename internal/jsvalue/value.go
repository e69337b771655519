// Package jsvalue provides the abstract representation of a JavaScript
// value that the type-conversion engine (internal/types) and the exception
// and container packages consume and produce. It is the sole external
// collaborator the runtime depends on: the engine that actually executes
// JavaScript is out of scope and is represented only by this small value
// abstraction (spec.md §3.3, §6.3).
package jsvalue

import (
	"math/big"
)

// Kind tags the variant of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindBigInt
	KindString
	KindSymbol
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the abstract JavaScript value every conversion in internal/types
// accepts. All runtime values must implement it; concrete representations
// below cover every ECMAScript value kind a Web IDL conversion can observe.
type Value interface {
	Kind() Kind
	String() string
}

// Undefined is the unique JS undefined value.
type Undefined struct{}

func (Undefined) Kind() Kind     { return KindUndefined }
func (Undefined) String() string { return "undefined" }

// Null is the unique JS null value.
type Null struct{}

func (Null) Kind() Kind     { return KindNull }
func (Null) String() string { return "null" }

// Boolean wraps a JS boolean.
type Boolean struct {
	Value bool
}

func (b Boolean) Kind() Kind { return KindBoolean }
func (b Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Number wraps a JS number (IEEE-754 double), including NaN/±Infinity/±0.
type Number struct {
	Value float64
}

func (n Number) Kind() Kind     { return KindNumber }
func (n Number) String() string { return formatNumber(n.Value) }

// BigIntValue wraps a JS BigInt.
type BigIntValue struct {
	Value *big.Int
}

func (b BigIntValue) Kind() Kind { return KindBigInt }
func (b BigIntValue) String() string {
	if b.Value == nil {
		return "0"
	}
	return b.Value.String()
}

// String wraps a JS string as a sequence of UTF-16 code units, which may
// include unpaired surrogates (spec.md §4.4.2). Go's native UTF-8 string
// cannot represent an unpaired surrogate, so the code units are stored
// directly.
type String struct {
	Units []uint16
}

// NewStringFromUTF8 builds a String from a well-formed UTF-8 Go string,
// encoding it to UTF-16 code units with no unpaired surrogates.
func NewStringFromUTF8(s string) String {
	return String{Units: EncodeUTF16(s)}
}

func (s String) Kind() Kind     { return KindString }
func (s String) String() string { return DecodeUTF16Lossy(s.Units) }

// Symbol wraps an opaque JS symbol identity.
type Symbol struct {
	ID          uint64
	Description string
}

func (s Symbol) Kind() Kind     { return KindSymbol }
func (s Symbol) String() string { return "Symbol(" + s.Description + ")" }

// Object is an opaque handle to a JS object. The conversion engine never
// inspects an Object's contents directly; it queries the Probe the host
// attaches to learn what internal slots, properties, or iteration behavior
// the object exposes (buffer-source checks, platform-object interface
// tests, iterator-method lookups, property enumeration).
type Object struct {
	Handle uintptr
	Probe  ObjectProbe
}

func (o Object) Kind() Kind     { return KindObject }
func (o Object) String() string { return "[object]" }

// ObjectProbe is the host-provided introspection surface for an Object.
// Every method is a side-effect-free observation except GetMethod and
// OwnPropertyKeys, which spec.md §4.4.5/§4.4.4 call out as observable.
type ObjectProbe interface {
	// ImplementsInterface reports whether the underlying platform object
	// implements the named IDL interface (used by union resolution and
	// buffer-source gate checks).
	ImplementsInterface(name string) bool

	// BufferSlot reports the buffer-related internal slot this object
	// carries, if any: "ArrayBuffer", "SharedArrayBuffer", "DataView", or
	// one of the 12 typed-array kind names. ok is false for objects with
	// no buffer-related internal slot.
	BufferSlot() (kind string, shared bool, resizable bool, ok bool)

	// IsCallable reports whether the object can be invoked as a function
	// (required before a value can be treated as a callback interface).
	IsCallable() bool

	// GetMethod looks up a method property by name, returning nil if
	// absent or not callable. This is the iterator-method probe
	// (`Symbol.iterator`, `Symbol.asyncIterator`) that spec.md §4.4.5
	// requires be performed at most once.
	GetMethod(name string) (Value, bool)

	// Get fetches a property by name (ToString(key) semantics for the
	// dictionary/record converters), returning (value, present).
	Get(name string) (Value, bool)

	// OwnPropertyKeys returns the object's own enumerable string keys in
	// their enumeration order, for Record(K, V) conversion (spec.md
	// §4.4.4).
	OwnPropertyKeys() []string
}

func formatNumber(f float64) string {
	return bigFloatString(f)
}
