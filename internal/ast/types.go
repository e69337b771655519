package ast

// TypeKind tags the variant of a Type node (spec.md §3.2).
type TypeKind int

const (
	TypeBoolean TypeKind = iota
	TypeNumeric
	TypeBigInt
	TypeString
	TypeNamed
	TypeSequence
	TypeFrozenArray
	TypeObservableArray
	TypeAsyncSequence
	TypeRecord
	TypePromise
	TypeBuffer
	TypeTypedArray
	TypeObject
	TypeSymbol
	TypeAny
	TypeUndefined
	TypeUnion
	TypeNullable
	TypeAnnotated
)

func (k TypeKind) String() string {
	names := [...]string{
		"boolean", "numeric", "bigint", "string", "named", "sequence",
		"frozen_array", "observable_array", "async_sequence", "record",
		"promise", "buffer", "typed_array", "object", "symbol", "any",
		"undefined", "union", "nullable", "annotated",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// NumericKind enumerates the primitive numeric IDL types.
type NumericKind int

const (
	NumByte NumericKind = iota
	NumOctet
	NumShort
	NumUnsignedShort
	NumLong
	NumUnsignedLong
	NumLongLong
	NumUnsignedLongLong
	NumFloat
	NumUnrestrictedFloat
	NumDouble
	NumUnrestrictedDouble
)

var numericNames = [...]string{
	"byte", "octet", "short", "unsigned short", "long", "unsigned long",
	"long long", "unsigned long long", "float", "unrestricted float",
	"double", "unrestricted double",
}

func (n NumericKind) String() string {
	if int(n) < len(numericNames) {
		return numericNames[n]
	}
	return "unknown"
}

// IsInteger reports whether n is one of the exact-integer numeric kinds
// (every NumericKind except the four floating-point kinds).
func (n NumericKind) IsInteger() bool {
	switch n {
	case NumFloat, NumUnrestrictedFloat, NumDouble, NumUnrestrictedDouble:
		return false
	default:
		return true
	}
}

// Unsigned reports whether n is an unsigned integer kind.
func (n NumericKind) Unsigned() bool {
	switch n {
	case NumOctet, NumUnsignedShort, NumUnsignedLong, NumUnsignedLongLong:
		return true
	default:
		return false
	}
}

// BitWidth returns the integer bit width of n, valid only when n.IsInteger().
func (n NumericKind) BitWidth() int {
	switch n {
	case NumByte, NumOctet:
		return 8
	case NumShort, NumUnsignedShort:
		return 16
	case NumLong, NumUnsignedLong:
		return 32
	case NumLongLong, NumUnsignedLongLong:
		return 64
	default:
		return 0
	}
}

// Unrestricted reports whether n is one of the two "unrestricted" float
// kinds that permit NaN/Infinity to pass through unchanged.
func (n NumericKind) Unrestricted() bool {
	return n == NumUnrestrictedFloat || n == NumUnrestrictedDouble
}

// StringKind enumerates the three Web IDL string types.
type StringKind int

const (
	StrDOMString StringKind = iota
	StrByteString
	StrUSVString
)

func (s StringKind) String() string {
	switch s {
	case StrDOMString:
		return "DOMString"
	case StrByteString:
		return "ByteString"
	case StrUSVString:
		return "USVString"
	default:
		return "unknown"
	}
}

// BufferKind enumerates the non-typed-array buffer-source types.
type BufferKind int

const (
	BufferArrayBuffer BufferKind = iota
	BufferSharedArrayBuffer
	BufferDataView
)

func (b BufferKind) String() string {
	switch b {
	case BufferArrayBuffer:
		return "ArrayBuffer"
	case BufferSharedArrayBuffer:
		return "SharedArrayBuffer"
	case BufferDataView:
		return "DataView"
	default:
		return "unknown"
	}
}

// Type is a Web IDL type expression. Exactly one group of fields is
// meaningful, selected by Kind:
//
//   - TypeNumeric: Numeric
//   - TypeString: StringKind
//   - TypeNamed: Name
//   - TypeSequence, TypeFrozenArray, TypeObservableArray, TypeAsyncSequence,
//     TypePromise: Elem
//   - TypeRecord: RecordKey, Elem (the record's value type)
//   - TypeBuffer: Buffer
//   - TypeTypedArray: Name (one of the 12 typed-array kind spellings)
//   - TypeUnion: Union
//   - TypeNullable: Elem (the inner, non-nullable type)
//   - TypeAnnotated: Elem (the annotated type), ExtAttrs (the annotations)
//
// TypeBoolean, TypeBigInt, TypeObject, TypeSymbol, TypeAny, TypeUndefined
// carry no extra data.
type Type struct {
	Kind TypeKind
	Span Span

	Numeric NumericKind
	String  StringKind
	Name    string

	Elem      *Type
	RecordKey StringKind

	Union []*Type

	Buffer BufferKind

	ExtAttrs []*ExtendedAttribute
}
