package types

import (
	"sort"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/exceptions"
	"github.com/webidl-go/webidl/internal/jsvalue"
)

// Converter converts one JS value to one IDL value for a given elem type,
// reporting failure through er. This is the callback-shaped hook sequence,
// record, and dictionary conversion use to convert their element/value
// types without internal/types depending on a full type-dispatch table —
// the caller (normally Resolve, defined in union.go) supplies it.
type Converter func(v jsvalue.Value, elem *ast.Type, er *exceptions.ErrorResult) IDLValue

// ConvertToSequence implements spec.md §4.4.4's Sequence(T) conversion:
// require an iterable, then step its iterator to completion, converting
// each produced value via convert.
func ConvertToSequence(v jsvalue.Value, elem *ast.Type, convert Converter, er *exceptions.ErrorResult) SequenceValue {
	obj, ok := v.(jsvalue.Object)
	if !ok || obj.Probe == nil {
		er.Fail(exceptions.NewTypeError("value is not iterable"))
		return SequenceValue{}
	}

	iterMethod, ok := obj.Probe.GetMethod("@@iterator")
	if !ok {
		er.Fail(exceptions.NewTypeError("value has no iterator method"))
		return SequenceValue{}
	}

	iter, ok := iterMethod.(jsvalue.Object)
	if !ok || iter.Probe == nil {
		er.Fail(exceptions.NewTypeError("iterator method did not return an object"))
		return SequenceValue{}
	}

	var out []IDLValue
	for {
		nextMethod, ok := iter.Probe.GetMethod("next")
		if !ok {
			er.Fail(exceptions.NewTypeError("iterator has no next method"))
			return SequenceValue{}
		}
		result, ok := nextMethod.(jsvalue.Object)
		if !ok || result.Probe == nil {
			er.Fail(exceptions.NewTypeError("iterator result is not an object"))
			return SequenceValue{}
		}
		done, _ := result.Probe.Get("done")
		if b, ok := done.(jsvalue.Boolean); ok && b.Value {
			break
		}
		value, _ := result.Probe.Get("value")
		converted := convert(value, elem, er)
		if er.Failed() {
			return SequenceValue{}
		}
		out = append(out, converted)
	}

	return SequenceValue{Elements: out}
}

// StringKeyConvert converts a property key to a record's declared key
// type, applying USVString's surrogate-collision rule (spec.md §4.4.4:
// "later wins" when replacement causes two keys to collide).
func StringKeyConvert(key string, keyKind ast.StringKind) string {
	if keyKind != ast.StrUSVString {
		return key
	}
	units := jsvalue.EncodeUTF16(key)
	return jsvalue.DecodeUTF16Lossy(jsvalue.ReplaceUnpairedSurrogates(units))
}

// ConvertToRecord implements spec.md §4.4.4's Record(K, V) conversion:
// require an Object, enumerate its own property keys in enumeration
// order, convert each key to K and value to V, and build an ordered map
// where a later colliding key (post key-conversion) overwrites an earlier
// one.
func ConvertToRecord(v jsvalue.Value, keyKind ast.StringKind, valueType *ast.Type, convert Converter, er *exceptions.ErrorResult) RecordValue {
	obj, ok := v.(jsvalue.Object)
	if !ok || obj.Probe == nil {
		er.Fail(exceptions.NewTypeError("value is not an object"))
		return RecordValue{}
	}

	rec := RecordValue{Values: make(map[string]IDLValue)}
	for _, rawKey := range obj.Probe.OwnPropertyKeys() {
		key := StringKeyConvert(rawKey, keyKind)
		propValue, present := obj.Probe.Get(rawKey)
		if !present {
			continue
		}
		converted := convert(propValue, valueType, er)
		if er.Failed() {
			return RecordValue{}
		}
		if _, exists := rec.Values[key]; !exists {
			rec.Keys = append(rec.Keys, key)
		}
		rec.Values[key] = converted
	}
	return rec
}

// DictionaryField describes one declared field of a dictionary being
// converted: its name, type, whether it is required, and its default (nil
// if none).
type DictionaryField struct {
	Name     string
	Type     *ast.Type
	Required bool
	Default  IDLValue
}

// ConvertToDictionary implements spec.md §4.4.4's Dictionary(D)
// conversion. fields must already be in the dictionary's declared order
// with inherited members least-derived first (the caller, typically a
// code-generator or the AST walker, is responsible for walking the
// inheritance chain); this function performs the per-field lookup and
// conversion in that fixed, observable order.
func ConvertToDictionary(name string, v jsvalue.Value, fields []DictionaryField, convert Converter, er *exceptions.ErrorResult) DictionaryValue {
	switch v.(type) {
	case jsvalue.Null, jsvalue.Undefined:
		// permitted: every field falls back to its default/absence.
	default:
		if _, ok := v.(jsvalue.Object); !ok {
			er.Fail(exceptions.NewTypeError("dictionary value must be an object, null, or undefined"))
			return DictionaryValue{}
		}
	}

	out := DictionaryValue{Name: name, Fields: make(map[string]IDLValue)}
	obj, isObject := v.(jsvalue.Object)

	for _, f := range fields {
		var (
			propValue jsvalue.Value
			present   bool
		)
		if isObject && obj.Probe != nil {
			propValue, present = obj.Probe.Get(f.Name)
		}

		if !present || isUndefinedValue(propValue) {
			if f.Required {
				er.Fail(exceptions.NewTypeError("missing required dictionary member " + f.Name))
				return DictionaryValue{}
			}
			if f.Default != nil {
				out.Fields[f.Name] = f.Default
				out.Order = append(out.Order, f.Name)
			}
			continue
		}

		converted := convert(propValue, f.Type, er)
		if er.Failed() {
			return DictionaryValue{}
		}
		out.Fields[f.Name] = converted
		out.Order = append(out.Order, f.Name)
	}

	return out
}

func isUndefinedValue(v jsvalue.Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(jsvalue.Undefined)
	return ok
}

// SortedDictionaryFieldNames returns field names sorted lexicographically
// by identifier, for callers that build the fields list from an unordered
// source and need spec.md §4.4.4's "lexicographic identifier order" for a
// single (non-inherited) dictionary level.
func SortedDictionaryFieldNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
