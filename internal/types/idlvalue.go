// Package types implements the Web IDL runtime type-conversion algorithms:
// JS-value-to-IDL-value coercion and the reverse, for every type the AST
// (internal/ast) can describe (spec.md §4.4, §6.3). Conversions are pure —
// they never mutate the source jsvalue.Value — and report failure through
// a caller-owned exceptions.ErrorResult rather than a Go error return,
// matching the spec's "report, don't throw" conversion-boundary policy
// (spec.md §7).
package types

import (
	"math/big"

	"github.com/webidl-go/webidl/internal/ast"
)

// IDLValue is a converted Web IDL value. All runtime values must implement
// it; concrete representations below cover every IDL type conversions can
// produce (spec.md §3.3).
type IDLValue interface {
	// TypeKind reports which ast.TypeKind this value was converted for.
	TypeKind() ast.TypeKind
}

// IntegerValue holds an exact-integer IDL value of a fixed bit width.
type IntegerValue struct {
	Numeric ast.NumericKind
	Value   int64
}

func (IntegerValue) TypeKind() ast.TypeKind { return ast.TypeNumeric }

// FloatValue holds a float/double IDL value.
type FloatValue struct {
	Numeric ast.NumericKind
	Value   float64
}

func (FloatValue) TypeKind() ast.TypeKind { return ast.TypeNumeric }

// BigIntValue holds a bigint IDL value.
type BigIntValue struct {
	Value *big.Int
}

func (BigIntValue) TypeKind() ast.TypeKind { return ast.TypeBigInt }

// BooleanValue holds a boolean IDL value.
type BooleanValue struct {
	Value bool
}

func (BooleanValue) TypeKind() ast.TypeKind { return ast.TypeBoolean }

// DOMStringValue holds a DOMString: a UTF-16 code-unit sequence that may
// include unpaired surrogates (spec.md §4.4.2).
type DOMStringValue struct {
	Units []uint16
}

func (DOMStringValue) TypeKind() ast.TypeKind { return ast.TypeString }

// USVStringValue holds a USVString: a DOMString with unpaired surrogates
// already replaced by U+FFFD.
type USVStringValue struct {
	Units []uint16
}

func (USVStringValue) TypeKind() ast.TypeKind { return ast.TypeString }

// ByteStringValue holds a ByteString: a sequence of bytes, each the low
// byte of a DOMString code unit that was proven <= 0xFF.
type ByteStringValue struct {
	Bytes []byte
}

func (ByteStringValue) TypeKind() ast.TypeKind { return ast.TypeString }

// UndefinedValue holds the IDL `undefined` value.
type UndefinedValue struct{}

func (UndefinedValue) TypeKind() ast.TypeKind { return ast.TypeUndefined }

// ObjectValue holds an opaque `object` IDL value (the underlying
// jsvalue.Object handle, unexamined).
type ObjectValue struct {
	Handle uintptr
}

func (ObjectValue) TypeKind() ast.TypeKind { return ast.TypeObject }

// SymbolValue holds a `symbol` IDL value.
type SymbolValue struct {
	ID uint64
}

func (SymbolValue) TypeKind() ast.TypeKind { return ast.TypeSymbol }

// AnyValue holds an `any` IDL value: the JS value is passed through
// unconverted, since `any` performs no coercion (spec.md §3.2).
type AnyValue struct {
	Raw any
}

func (AnyValue) TypeKind() ast.TypeKind { return ast.TypeAny }

// InterfaceRefValue holds a named (interface/dictionary/enum/callback)
// value: an opaque reference to whatever platform object or dictionary map
// the binding layer produced.
type InterfaceRefValue struct {
	Name string
	Ref  any
}

func (InterfaceRefValue) TypeKind() ast.TypeKind { return ast.TypeNamed }

// EnumValue holds a resolved enum IDL value — one of the enum's declared
// string values.
type EnumValue struct {
	EnumName string
	Value    string
}

func (EnumValue) TypeKind() ast.TypeKind { return ast.TypeNamed }

// SequenceValue holds a sequence<T> IDL value: a dense, owned list.
type SequenceValue struct {
	Elements []IDLValue
}

func (SequenceValue) TypeKind() ast.TypeKind { return ast.TypeSequence }

// RecordValue holds a record<K, V> IDL value: an insertion-ordered map
// (spec.md §4.4.4).
type RecordValue struct {
	Keys   []string
	Values map[string]IDLValue
}

func (RecordValue) TypeKind() ast.TypeKind { return ast.TypeRecord }

// Get returns the value for key and whether it is present.
func (r RecordValue) Get(key string) (IDLValue, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// DictionaryValue holds a dictionary IDL value: the declared fields present
// after conversion, keyed by field name, in declaration order.
type DictionaryValue struct {
	Name   string
	Order  []string
	Fields map[string]IDLValue
}

func (DictionaryValue) TypeKind() ast.TypeKind { return ast.TypeNamed }

// UnionValue holds a resolved union IDL value: exactly one member type was
// selected and the JS value converted to it (spec.md §4.4.5).
type UnionValue struct {
	Selected   IDLValue
	MemberType *ast.Type
}

func (UnionValue) TypeKind() ast.TypeKind { return ast.TypeUnion }

// PromiseValue holds a Promise<T> IDL value, wrapping whatever resolved (or
// pending) value the host's Promise.resolve(V) semantics produced (spec.md
// §4.4.6).
type PromiseValue struct {
	Resolution IDLValue
}

func (PromiseValue) TypeKind() ast.TypeKind { return ast.TypePromise }

// BufferValue holds an ArrayBuffer/SharedArrayBuffer/DataView/typed-array
// IDL value: an opaque reference plus the metadata the gate checks proved
// (spec.md §4.4.3).
type BufferValue struct {
	Kind      ast.BufferKind
	TypedName string
	Shared    bool
	Resizable bool
	Handle    uintptr
}

func (BufferValue) TypeKind() ast.TypeKind { return ast.TypeBuffer }
