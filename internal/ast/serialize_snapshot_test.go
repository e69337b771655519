package ast_test

import (
	"bytes"
	"testing"

	"github.com/webidl-go/webidl/internal/ast"
	"github.com/webidl-go/webidl/internal/parser"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestSerializeJSONSnapshot pins the exact byte output of Document.SerializeJSON
// for a representative fragment, guarding spec.md §8.1's "JSON determinism"
// requirement: the same AST must always serialize to the same bytes.
func TestSerializeJSONSnapshot(t *testing.T) {
	source := `
[Exposed=Window]
interface Paint {
  attribute double opacity;
};

interface Color : Paint {
  attribute double red;
  attribute double green;
  attribute double blue;
};

dictionary ColorOptions {
  required double alpha;
  DOMString? label = null;
};

enum PaintMode { "fill", "stroke" };

Paint includes Mixin;
`
	doc, errs := parser.Parse(source, "snapshot.idl")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var buf bytes.Buffer
	if err := doc.SerializeJSON(&buf); err != nil {
		t.Fatalf("unexpected serialize error: %v", err)
	}

	snaps.MatchSnapshot(t, buf.String())
}

// TestSerializeTypeSnapshot pins the standalone-type serialization path
// used by the CLI's parse-type mode.
func TestSerializeTypeSnapshot(t *testing.T) {
	ty, errs := parser.ParseType("sequence<record<DOMString, long>>?")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var buf bytes.Buffer
	if err := ast.SerializeType(ty, &buf); err != nil {
		t.Fatalf("unexpected serialize error: %v", err)
	}

	snaps.MatchSnapshot(t, buf.String())
}
