package ast

import "fmt"

// SemanticError reports a post-parse invariant violation (spec.md §3.2,
// §7): cyclic inheritance, duplicate identifiers, illegal nullable/union
// shapes, or conflicting extended attributes. Unlike LexError/ParseError,
// SemanticError is produced by Validate after a complete AST already
// exists — it never aborts mid-parse.
type SemanticError struct {
	Message string
	Span    Span
}

func (e *SemanticError) Error() string {
	return e.Message
}

// Validate checks the cross-node invariants spec.md §3.2 lists, returning
// every violation found (not just the first) since, unlike parsing, semantic
// validation has no reason to stop at the first problem.
func Validate(doc *Document) []*SemanticError {
	var errs []*SemanticError

	byName := map[string]*Definition{}
	for _, d := range doc.Definitions {
		if d.Kind.Partial() || d.Kind == DefIncludes {
			continue
		}
		if prev, ok := byName[d.Name]; ok {
			errs = append(errs, &SemanticError{
				Message: fmt.Sprintf("duplicate identifier %q (also declared at %s)", d.Name, prev.Span.Start),
				Span:    d.Span,
			})
			continue
		}
		byName[d.Name] = d
	}

	errs = append(errs, checkInheritanceCycles(doc.Definitions)...)

	for _, d := range doc.Definitions {
		if d.Kind == DefEnum {
			errs = append(errs, checkEnumUnique(d)...)
		}
		for _, m := range d.Members {
			errs = append(errs, checkMember(m)...)
		}
		if d.Type != nil {
			errs = append(errs, checkType(d.Type, d.Span)...)
		}
	}

	errs = append(errs, checkOverloadAgreement(doc.Definitions)...)

	return errs
}

func checkInheritanceCycles(defs []*Definition) []*SemanticError {
	parent := map[string]string{}
	spans := map[string]Span{}
	for _, d := range defs {
		switch d.Kind {
		case DefInterface, DefMixin, DefDictionary:
			if d.Inherits != "" {
				parent[d.Name] = d.Inherits
			}
			spans[d.Name] = d.Span
		}
	}

	var errs []*SemanticError
	for name := range parent {
		visited := map[string]bool{name: true}
		cur := name
		for {
			next, ok := parent[cur]
			if !ok {
				break
			}
			if visited[next] {
				errs = append(errs, &SemanticError{
					Message: fmt.Sprintf("cyclic inheritance involving %q", name),
					Span:    spans[name],
				})
				break
			}
			visited[next] = true
			cur = next
		}
	}
	return errs
}

func checkEnumUnique(d *Definition) []*SemanticError {
	seen := map[string]bool{}
	var errs []*SemanticError
	for _, v := range d.EnumValues {
		if seen[v] {
			errs = append(errs, &SemanticError{
				Message: fmt.Sprintf("duplicate enum value %q in enum %q", v, d.Name),
				Span:    d.Span,
			})
			continue
		}
		seen[v] = true
	}
	return errs
}

func checkMember(m *Member) []*SemanticError {
	var errs []*SemanticError
	if m.Type != nil {
		errs = append(errs, checkType(m.Type, m.Span)...)
	}
	for _, a := range m.Arguments {
		if a.Type != nil {
			errs = append(errs, checkType(a.Type, a.Span)...)
		}
	}
	if m.Kind == MemberAttribute && m.Readonly {
		if hasExtAttr(m.ExtAttrs, "Clamp") || hasExtAttr(m.ExtAttrs, "EnforceRange") {
			errs = append(errs, &SemanticError{
				Message: "[Clamp]/[EnforceRange] must not appear on a read-only attribute",
				Span:    m.Span,
			})
		}
	}
	return errs
}

func hasExtAttr(attrs []*ExtendedAttribute, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// checkType recursively validates a Type against spec.md §3.2's nullable and
// union shape restrictions and the Clamp/EnforceRange exclusivity rule.
func checkType(t *Type, span Span) []*SemanticError {
	var errs []*SemanticError

	if t.Kind == TypeAnnotated {
		if hasExtAttr(t.ExtAttrs, "Clamp") && hasExtAttr(t.ExtAttrs, "EnforceRange") {
			errs = append(errs, &SemanticError{
				Message: "[Clamp] and [EnforceRange] must not both appear on the same type",
				Span:    span,
			})
		}
		if t.Elem != nil {
			errs = append(errs, checkType(t.Elem, span)...)
		}
	}

	if t.Kind == TypeNullable {
		inner := t.Elem
		switch {
		case inner == nil:
			// malformed AST, nothing to check
		case inner.Kind == TypeAny:
			errs = append(errs, &SemanticError{Message: "nullable inner type must not be any", Span: span})
		case inner.Kind == TypePromise:
			errs = append(errs, &SemanticError{Message: "a promise type is never nullable", Span: span})
		case inner.Kind == TypeObservableArray:
			errs = append(errs, &SemanticError{Message: "nullable inner type must not be an observable array", Span: span})
		case inner.Kind == TypeNullable:
			errs = append(errs, &SemanticError{Message: "nullable inner type must not itself be nullable", Span: span})
		case inner.Kind == TypeUnion:
			if unionHasNullableMember(inner) {
				errs = append(errs, &SemanticError{Message: "nullable inner type must not be a union containing a nullable member", Span: span})
			}
			if unionHasDictionaryMember(inner) {
				errs = append(errs, &SemanticError{Message: "nullable inner type must not be a union containing a dictionary member", Span: span})
			}
		}
		if inner != nil {
			errs = append(errs, checkType(inner, span)...)
		}
	}

	if t.Kind == TypeUnion {
		nullableCount := 0
		for _, m := range t.Union {
			if m.Kind == TypeNullable {
				nullableCount++
			}
			errs = append(errs, checkType(m, span)...)
		}
		if nullableCount > 1 {
			errs = append(errs, &SemanticError{Message: "a union type may have at most one nullable member type", Span: span})
		}
	}

	if t.Elem != nil && t.Kind != TypeNullable && t.Kind != TypeAnnotated {
		errs = append(errs, checkType(t.Elem, span)...)
	}

	return errs
}

func unionHasNullableMember(u *Type) bool {
	for _, m := range u.Union {
		if m.Kind == TypeNullable {
			return true
		}
	}
	return false
}

// unionHasDictionaryMember always reports false: named member types are not
// resolved against the document's definitions here, so a dictionary member
// inside a nullable union is not detected.
func unionHasDictionaryMember(u *Type) bool {
	return false
}

// checkOverloadAgreement flags operations sharing an identifier on the same
// interface whose full signatures (argument count, type, and modality at
// every position) are identical — such a pair can never be told apart by
// internal/overload's distinguishing-argument-index computation, so it is
// always an authoring mistake rather than a legitimate overload. Overloads
// that differ but disagree before the distinguishing index are not flagged:
// that case needs the distinguishability table (internal/overload), which
// this package does not import (ast is overload's dependency, not the other
// way around), and internal/overload does not check it either.
func checkOverloadAgreement(defs []*Definition) []*SemanticError {
	var errs []*SemanticError
	for _, d := range defs {
		byName := map[string][]*Member{}
		for _, m := range d.Members {
			if m.Kind != MemberOperation || m.Name == "" {
				continue
			}
			byName[m.Name] = append(byName[m.Name], m)
		}
		for name, group := range byName {
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					if signaturesIdentical(group[i], group[j]) {
						errs = append(errs, &SemanticError{
							Message: fmt.Sprintf("operation %q on %q has two overloads with identical signatures", name, d.Name),
							Span:    group[j].Span,
						})
					}
				}
			}
		}
	}
	return errs
}

func signaturesIdentical(a, b *Member) bool {
	if len(a.Arguments) != len(b.Arguments) {
		return false
	}
	for i := range a.Arguments {
		if a.Arguments[i].Modality != b.Arguments[i].Modality {
			return false
		}
		if !typeStructurallyEqual(a.Arguments[i].Type, b.Arguments[i].Type) {
			return false
		}
	}
	return true
}

func typeStructurallyEqual(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TypeNumeric:
		return a.Numeric == b.Numeric
	case TypeString:
		return a.String == b.String
	case TypeNamed, TypeTypedArray:
		return a.Name == b.Name
	case TypeBuffer:
		return a.Buffer == b.Buffer
	case TypeUnion:
		if len(a.Union) != len(b.Union) {
			return false
		}
		for i := range a.Union {
			if !typeStructurallyEqual(a.Union[i], b.Union[i]) {
				return false
			}
		}
		return true
	default:
		return typeStructurallyEqual(a.Elem, b.Elem)
	}
}
