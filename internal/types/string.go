package types

import (
	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

// toStringUnits extracts ToString(value)'s UTF-16 code units. As with
// toNumber, only the value kinds whose ToString is a pure, allocation-free
// projection are handled directly here: jsvalue.String passes its units
// through unchanged (preserving any unpaired surrogate, spec.md §4.4.2),
// other primitives format per their usual string representation.
func toStringUnits(v jsvalue.Value) []uint16 {
	switch s := v.(type) {
	case jsvalue.String:
		return s.Units
	case jsvalue.Undefined:
		return jsvalue.EncodeUTF16("undefined")
	case jsvalue.Null:
		return jsvalue.EncodeUTF16("null")
	case jsvalue.Boolean:
		return jsvalue.EncodeUTF16(s.String())
	case jsvalue.Number:
		return jsvalue.EncodeUTF16(s.String())
	case jsvalue.BigIntValue:
		return jsvalue.EncodeUTF16(s.String())
	default:
		return jsvalue.EncodeUTF16(v.String())
	}
}

// ConvertToDOMString implements spec.md §4.4.2's DOMString conversion.
// legacyNullToEmptyString mirrors the [LegacyNullToEmptyString] extended
// attribute: when set and v is JS null, the result is the empty string
// rather than the string "null".
func ConvertToDOMString(v jsvalue.Value, legacyNullToEmptyString bool) DOMStringValue {
	if legacyNullToEmptyString {
		if _, ok := v.(jsvalue.Null); ok {
			return DOMStringValue{Units: nil}
		}
	}
	return DOMStringValue{Units: toStringUnits(v)}
}

// ConvertToUSVString implements spec.md §4.4.2's USVString conversion:
// DOMString conversion followed by replacing every unpaired surrogate with
// U+FFFD.
func ConvertToUSVString(v jsvalue.Value) USVStringValue {
	units := toStringUnits(v)
	return USVStringValue{Units: jsvalue.ReplaceUnpairedSurrogates(units)}
}

// ConvertToByteString implements spec.md §4.4.2's ByteString conversion:
// ToString(value), then require every code unit to be <= 0xFF.
func ConvertToByteString(v jsvalue.Value, er *exceptions.ErrorResult) ByteStringValue {
	units := toStringUnits(v)
	out := make([]byte, len(units))
	for i, u := range units {
		if u > 0xFF {
			er.Fail(exceptions.NewTypeError("string contains a code unit greater than 0xFF"))
			return ByteStringValue{}
		}
		out[i] = byte(u)
	}
	return ByteStringValue{Bytes: out}
}
