package types

import (
	"math"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

// IntMode selects which of the three integer-conversion algorithms
// ConvertToInt applies (spec.md §4.4.1).
type IntMode int

const (
	ModeDefault IntMode = iota
	ModeEnforceRange
	ModeClamp
)

// boundsFor returns [lowerBound, upperBound] for n, per spec.md §4.4.1 step
// 1. 64-bit widths use the safe-integer range rather than the full 64-bit
// range, since JS numbers cannot exactly represent every 64-bit integer.
func boundsFor(n ast.NumericKind) (lower, upper float64) {
	const safeMax = 9007199254740991 // 2^53 - 1

	width := n.BitWidth()
	if width == 64 {
		if n.Unsigned() {
			return 0, safeMax
		}
		return -safeMax, safeMax
	}

	if n.Unsigned() {
		return 0, math.Pow(2, float64(width)) - 1
	}
	half := math.Pow(2, float64(width-1))
	return -half, half - 1
}

// toNumber extracts the IEEE-754 double ToNumber(value) would produce.
// jsvalue.Number, Boolean, Null and Undefined are converted directly; every
// other kind (String, Object, ...) is a TypeError at this layer, since full
// ToNumber abstract-operation semantics
// (valueOf/toString coercion of objects) belong to the host engine, not
// this conversion library (spec.md §1's "assumed available" boundary).
func toNumber(v jsvalue.Value, er *exceptions.ErrorResult) (float64, bool) {
	switch n := v.(type) {
	case jsvalue.Number:
		return n.Value, true
	case jsvalue.Boolean:
		if n.Value {
			return 1, true
		}
		return 0, true
	case jsvalue.Null:
		return 0, true
	case jsvalue.Undefined:
		return math.NaN(), true
	default:
		er.Fail(exceptions.NewTypeError("value cannot be converted to a number"))
		return 0, false
	}
}

// ConvertToInt implements spec.md §4.4.1's ConvertToInt(value, bitLength,
// signedness) procedure, dispatching on mode for the EnforceRange/Clamp/
// default branches. numeric identifies the target integer kind (its width
// and signedness drive the bounds and the default branch's modulo
// reduction).
func ConvertToInt(v jsvalue.Value, numeric ast.NumericKind, mode IntMode, er *exceptions.ErrorResult) IntegerValue {
	x, ok := toNumber(v, er)
	if !ok {
		return IntegerValue{Numeric: numeric}
	}
	if x == 0 {
		x = 0 // normalize -0 to +0 (step 2)
	}

	lower, upper := boundsFor(numeric)

	switch mode {
	case ModeEnforceRange:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			er.Fail(exceptions.NewTypeError("value is not a finite number"))
			return IntegerValue{Numeric: numeric}
		}
		truncated := math.Trunc(x)
		if truncated < lower || truncated > upper {
			er.Fail(exceptions.NewTypeError("value is outside the target integer range"))
			return IntegerValue{Numeric: numeric}
		}
		return IntegerValue{Numeric: numeric, Value: int64(truncated)}

	case ModeClamp:
		if math.IsNaN(x) {
			return IntegerValue{Numeric: numeric, Value: 0}
		}
		clamped := math.Min(math.Max(x, lower), upper)
		rounded := roundHalfToEven(clamped)
		return IntegerValue{Numeric: numeric, Value: int64(rounded)}

	default:
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			return IntegerValue{Numeric: numeric, Value: 0}
		}
		truncated := math.Trunc(x)
		width := numeric.BitWidth()
		mod := math.Mod(truncated, math.Pow(2, float64(width)))
		if mod < 0 {
			mod += math.Pow(2, float64(width))
		}
		if !numeric.Unsigned() && mod >= math.Pow(2, float64(width-1)) {
			mod -= math.Pow(2, float64(width))
		}
		return IntegerValue{Numeric: numeric, Value: int64(mod)}
	}
}

// roundHalfToEven rounds x to the nearest integer, ties rounding to the
// nearest even integer (spec.md §4.4.1 step 4, banker's rounding).
func roundHalfToEven(x float64) float64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}

// quietNaN returns the canonical quiet-NaN bit pattern for the given
// numeric width (spec.md §4.4.1, "unrestricted" float conversions).
func quietNaN(numeric ast.NumericKind) float64 {
	if numeric == ast.NumUnrestrictedFloat {
		return float64(math.Float32frombits(0x7fc00000))
	}
	return math.Float64frombits(0x7ff8000000000000)
}

// ConvertToFloat implements spec.md §4.4.1's float/double conversion for
// both the strict (NaN/Infinity rejected) and "unrestricted" variants.
func ConvertToFloat(v jsvalue.Value, numeric ast.NumericKind, er *exceptions.ErrorResult) FloatValue {
	x, ok := toNumber(v, er)
	if !ok {
		return FloatValue{Numeric: numeric}
	}

	if !numeric.Unrestricted() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			er.Fail(exceptions.NewTypeError("value is not a finite number"))
			return FloatValue{Numeric: numeric}
		}
		return FloatValue{Numeric: numeric, Value: roundToWidth(x, numeric)}
	}

	if math.IsNaN(x) {
		return FloatValue{Numeric: numeric, Value: quietNaN(numeric)}
	}
	if math.IsInf(x, 0) {
		return FloatValue{Numeric: numeric, Value: x}
	}
	rounded := roundToWidth(x, numeric)
	if rounded == 0 && math.Signbit(x) {
		rounded = math.Copysign(0, -1)
	}
	return FloatValue{Numeric: numeric, Value: rounded}
}

// roundToWidth rounds x to the nearest value representable in the target
// float width, ties to even — the IEEE-754 canonicalization step common to
// both the strict and unrestricted float conversions.
func roundToWidth(x float64, numeric ast.NumericKind) float64 {
	if numeric == ast.NumFloat || numeric == ast.NumUnrestrictedFloat {
		return float64(float32(x))
	}
	return x
}
