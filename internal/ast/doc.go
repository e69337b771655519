// Package ast defines the Abstract Syntax Tree node types for Web IDL.
//
// The AST represents the structure of a parsed Web IDL fragment: a sequence
// of Definitions (interfaces, mixins, dictionaries, enums, typedefs,
// callbacks, namespaces, includes statements), each carrying Members,
// Arguments, and Types. Every node is value-shaped and owned by an Arena
// scoped to a single parse (arena.go); there are no back-pointers and no
// cycles.
//
// Node families:
//   - Definition: one top-level declaration (ast.go)
//   - Member: one interface/mixin/namespace/dictionary member (ast.go)
//   - Argument, DefaultValue: operation/callback parameters (ast.go)
//   - Type: the type-expression union (types.go)
//   - ExtendedAttribute: the "[...]" annotation union (extended_attribute.go)
//
// serialize.go walks this tree into a deterministic, insertion-ordered JSON
// document (internal/jsonvalue.Value); validate.go checks the cross-node
// invariants spec.md §3.2 requires after a parse completes.
package ast
