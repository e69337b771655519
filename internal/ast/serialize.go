package ast

import (
	"io"

	"github.com/webidl-go/webidl/internal/jsonvalue"
)

// Document is the top-level AST produced by a parse: the ordered list of
// Definitions in source order plus the Arena that owns every node in it.
type Document struct {
	Definitions []*Definition
	Arena       *Arena
}

// SerializeJSON renders doc to a deterministic JSON document:
// `{"definitions": [...]}`. Each definition, member, type and default value
// is one object whose "kind" string names its variant, next to that
// variant's own fields (extended attributes use a "form" string the same
// way); no variant's payload is nested under a tag key of its own. Key order
// within each object is insertion order of a small fixed schema, so the
// output is byte-reproducible for a given AST (spec.md §8.1 "JSON
// determinism").
func (doc *Document) SerializeJSON(w io.Writer) error {
	root := jsonvalue.NewObject()
	defs := jsonvalue.NewArray()
	for _, d := range doc.Definitions {
		defs.ArrayAppend(serializeDefinition(d))
	}
	root.ObjectSet("definitions", defs)
	b, err := root.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func serializeDefinition(d *Definition) *jsonvalue.Value {
	v := jsonvalue.NewObject()
	v.ObjectSet("kind", jsonvalue.NewString(d.Kind.String()))
	v.ObjectSet("name", jsonvalue.NewString(d.Name))
	if d.Kind.Partial() {
		v.ObjectSet("partial", jsonvalue.NewBoolean(true))
	}
	if len(d.ExtAttrs) > 0 {
		v.ObjectSet("extended_attributes", serializeExtAttrs(d.ExtAttrs))
	}

	switch d.Kind {
	case DefInterface, DefPartialInterface, DefMixin, DefPartialMixin,
		DefCallbackInterface, DefNamespace, DefPartialNamespace:
		if d.Inherits != "" {
			v.ObjectSet("inherits", jsonvalue.NewString(d.Inherits))
		}
		v.ObjectSet("members", serializeMembers(d.Members))
	case DefDictionary, DefPartialDictionary:
		if d.Inherits != "" {
			v.ObjectSet("inherits", jsonvalue.NewString(d.Inherits))
		}
		v.ObjectSet("members", serializeMembers(d.Members))
	case DefEnum:
		values := jsonvalue.NewArray()
		for _, s := range d.EnumValues {
			values.ArrayAppend(jsonvalue.NewString(s))
		}
		v.ObjectSet("values", values)
	case DefTypedef:
		v.ObjectSet("type", serializeType(d.Type))
	case DefCallback:
		v.ObjectSet("return_type", serializeType(d.Type))
		v.ObjectSet("arguments", serializeArguments(d.Arguments))
	case DefIncludes:
		v.ObjectSet("target", jsonvalue.NewString(d.IncludesTarget))
		v.ObjectSet("mixin", jsonvalue.NewString(d.IncludesMixin))
	}
	return v
}

func serializeMembers(members []*Member) *jsonvalue.Value {
	arr := jsonvalue.NewArray()
	for _, m := range members {
		arr.ArrayAppend(serializeMember(m))
	}
	return arr
}

func serializeMember(m *Member) *jsonvalue.Value {
	v := jsonvalue.NewObject()
	v.ObjectSet("kind", jsonvalue.NewString(m.Kind.String()))
	if m.Name != "" {
		v.ObjectSet("name", jsonvalue.NewString(m.Name))
	}
	if len(m.ExtAttrs) > 0 {
		v.ObjectSet("extended_attributes", serializeExtAttrs(m.ExtAttrs))
	}
	if m.Static {
		v.ObjectSet("static", jsonvalue.NewBoolean(true))
	}
	if m.Readonly {
		v.ObjectSet("readonly", jsonvalue.NewBoolean(true))
	}
	if m.Inherit {
		v.ObjectSet("inherit", jsonvalue.NewBoolean(true))
	}

	switch m.Kind {
	case MemberConst:
		v.ObjectSet("type", serializeType(m.Type))
		v.ObjectSet("value", serializeDefaultValue(m.ConstValue))
	case MemberAttribute:
		v.ObjectSet("type", serializeType(m.Type))
	case MemberOperation, MemberConstructor, MemberGetter, MemberSetter, MemberDeleter:
		if m.Type != nil {
			v.ObjectSet("return_type", serializeType(m.Type))
		}
		v.ObjectSet("arguments", serializeArguments(m.Arguments))
	case MemberStringifier:
		if m.Readonly {
			v.ObjectSet("type", serializeType(m.Type))
		} else if m.Type != nil {
			v.ObjectSet("return_type", serializeType(m.Type))
			v.ObjectSet("arguments", serializeArguments(m.Arguments))
		}
	case MemberIterable:
		if m.KeyType != nil {
			v.ObjectSet("key_type", serializeType(m.KeyType))
		}
		v.ObjectSet("value_type", serializeType(m.ValueType))
	case MemberAsyncIterable:
		if m.KeyType != nil {
			v.ObjectSet("key_type", serializeType(m.KeyType))
		}
		v.ObjectSet("value_type", serializeType(m.ValueType))
		v.ObjectSet("arguments", serializeArguments(m.Arguments))
	case MemberMaplike:
		v.ObjectSet("key_type", serializeType(m.KeyType))
		v.ObjectSet("value_type", serializeType(m.ValueType))
	case MemberSetlike:
		v.ObjectSet("element_type", serializeType(m.ElementType))
	case MemberDictionaryField:
		v.ObjectSet("type", serializeType(m.Type))
		v.ObjectSet("required", jsonvalue.NewBoolean(m.Required))
		if m.Default != nil {
			v.ObjectSet("default", serializeDefaultValue(m.Default))
		}
	}
	return v
}

func serializeArguments(args []*Argument) *jsonvalue.Value {
	arr := jsonvalue.NewArray()
	for _, a := range args {
		v := jsonvalue.NewObject()
		v.ObjectSet("name", jsonvalue.NewString(a.Name))
		v.ObjectSet("type", serializeType(a.Type))
		v.ObjectSet("modality", jsonvalue.NewString(a.Modality.String()))
		if len(a.ExtAttrs) > 0 {
			v.ObjectSet("extended_attributes", serializeExtAttrs(a.ExtAttrs))
		}
		if a.Default != nil {
			v.ObjectSet("default", serializeDefaultValue(a.Default))
		}
		arr.ArrayAppend(v)
	}
	return arr
}

func serializeDefaultValue(dv *DefaultValue) *jsonvalue.Value {
	v := jsonvalue.NewObject()
	switch dv.Kind {
	case DVBoolean:
		v.ObjectSet("kind", jsonvalue.NewString("boolean"))
		v.ObjectSet("value", jsonvalue.NewBoolean(dv.Bool))
	case DVInteger:
		v.ObjectSet("kind", jsonvalue.NewString("integer"))
		v.ObjectSet("value", jsonvalue.NewString(dv.Int))
	case DVDecimal:
		v.ObjectSet("kind", jsonvalue.NewString("decimal"))
		v.ObjectSet("value", jsonvalue.NewString(dv.Decimal))
	case DVString:
		v.ObjectSet("kind", jsonvalue.NewString("string"))
		v.ObjectSet("value", jsonvalue.NewString(dv.Str))
	case DVNull:
		v.ObjectSet("kind", jsonvalue.NewString("null"))
	case DVUndefined:
		v.ObjectSet("kind", jsonvalue.NewString("undefined"))
	case DVEmptySequence:
		v.ObjectSet("kind", jsonvalue.NewString("empty-sequence"))
	case DVEmptyDictionary:
		v.ObjectSet("kind", jsonvalue.NewString("empty-dictionary"))
	case DVNamedConst:
		v.ObjectSet("kind", jsonvalue.NewString("named-const"))
		v.ObjectSet("value", jsonvalue.NewString(dv.Named))
	}
	return v
}

// SerializeType renders a single standalone Type to JSON, for tooling that
// parses a type expression in isolation (e.g. the CLI's "parse-type"
// subcommand)
// rather than a full Document.
func SerializeType(t *Type, w io.Writer) error {
	b, err := serializeType(t).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func serializeType(t *Type) *jsonvalue.Value {
	if t == nil {
		return jsonvalue.NewNull()
	}
	v := jsonvalue.NewObject()
	switch t.Kind {
	case TypeBoolean:
		v.ObjectSet("kind", jsonvalue.NewString("primitive"))
		v.ObjectSet("name", jsonvalue.NewString("boolean"))
	case TypeNumeric:
		v.ObjectSet("kind", jsonvalue.NewString("primitive"))
		v.ObjectSet("name", jsonvalue.NewString(t.Numeric.String()))
	case TypeBigInt:
		v.ObjectSet("kind", jsonvalue.NewString("primitive"))
		v.ObjectSet("name", jsonvalue.NewString("bigint"))
	case TypeString:
		v.ObjectSet("kind", jsonvalue.NewString("string"))
		v.ObjectSet("name", jsonvalue.NewString(t.String.String()))
	case TypeNamed:
		v.ObjectSet("kind", jsonvalue.NewString("named"))
		v.ObjectSet("name", jsonvalue.NewString(t.Name))
	case TypeSequence:
		v.ObjectSet("kind", jsonvalue.NewString("sequence"))
		v.ObjectSet("inner", serializeType(t.Elem))
	case TypeFrozenArray:
		v.ObjectSet("kind", jsonvalue.NewString("frozen_array"))
		v.ObjectSet("inner", serializeType(t.Elem))
	case TypeObservableArray:
		v.ObjectSet("kind", jsonvalue.NewString("observable_array"))
		v.ObjectSet("inner", serializeType(t.Elem))
	case TypeAsyncSequence:
		v.ObjectSet("kind", jsonvalue.NewString("async_sequence"))
		v.ObjectSet("inner", serializeType(t.Elem))
	case TypeRecord:
		v.ObjectSet("kind", jsonvalue.NewString("record"))
		v.ObjectSet("key", jsonvalue.NewString(t.RecordKey.String()))
		v.ObjectSet("value", serializeType(t.Elem))
	case TypePromise:
		v.ObjectSet("kind", jsonvalue.NewString("promise"))
		v.ObjectSet("inner", serializeType(t.Elem))
	case TypeBuffer:
		v.ObjectSet("kind", jsonvalue.NewString("buffer"))
		v.ObjectSet("name", jsonvalue.NewString(t.Buffer.String()))
	case TypeTypedArray:
		v.ObjectSet("kind", jsonvalue.NewString("typed_array"))
		v.ObjectSet("name", jsonvalue.NewString(t.Name))
	case TypeObject:
		v.ObjectSet("kind", jsonvalue.NewString("object"))
	case TypeSymbol:
		v.ObjectSet("kind", jsonvalue.NewString("symbol"))
	case TypeAny:
		v.ObjectSet("kind", jsonvalue.NewString("any"))
	case TypeUndefined:
		v.ObjectSet("kind", jsonvalue.NewString("undefined"))
	case TypeUnion:
		v.ObjectSet("kind", jsonvalue.NewString("union"))
		members := jsonvalue.NewArray()
		for _, m := range t.Union {
			members.ArrayAppend(serializeType(m))
		}
		v.ObjectSet("members", members)
	case TypeNullable:
		v.ObjectSet("kind", jsonvalue.NewString("nullable"))
		v.ObjectSet("inner", serializeType(t.Elem))
	case TypeAnnotated:
		v.ObjectSet("kind", jsonvalue.NewString("annotated"))
		v.ObjectSet("extended_attributes", serializeExtAttrs(t.ExtAttrs))
		v.ObjectSet("inner", serializeType(t.Elem))
	}
	return v
}

func serializeExtAttrs(attrs []*ExtendedAttribute) *jsonvalue.Value {
	arr := jsonvalue.NewArray()
	for _, a := range attrs {
		v := jsonvalue.NewObject()
		v.ObjectSet("name", jsonvalue.NewString(a.Name))
		v.ObjectSet("form", jsonvalue.NewString(a.Form.String()))
		switch a.Form {
		case ExtIdent:
			v.ObjectSet("value", jsonvalue.NewString(a.Value))
		case ExtIdentList:
			values := jsonvalue.NewArray()
			for _, s := range a.Values {
				values.ArrayAppend(jsonvalue.NewString(s))
			}
			v.ObjectSet("values", values)
		case ExtIntegerList:
			ints := jsonvalue.NewArray()
			for _, s := range a.Integers {
				ints.ArrayAppend(jsonvalue.NewString(s))
			}
			v.ObjectSet("values", ints)
		case ExtInteger, ExtDecimal, ExtString:
			v.ObjectSet("value", jsonvalue.NewString(a.Scalar))
		case ExtArgList:
			v.ObjectSet("arguments", serializeArguments(a.Arguments))
		case ExtNamedArgList:
			v.ObjectSet("rhs_name", jsonvalue.NewString(a.RHSName))
			v.ObjectSet("arguments", serializeArguments(a.RHSArguments))
		}
		arr.ArrayAppend(v)
	}
	return arr
}
