package cmd

import (
	"bytes"
	encodingjson "encoding/json"
	"fmt"
	"os"

	"github.com/webidl-go/webidl/internal/ast"
	cerrors "github.com/webidl-go/webidl/internal/errors"
	"github.com/webidl-go/webidl/internal/parser"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	jsonPretty bool
	jsonSort   bool
	jsonFormat string
	jsonQuery  string
	jsonSet    []string
)

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Parse a Web IDL fragment and emit its AST as JSON",
	Long: `Json reads a Web IDL fragment and serializes its AST to the
deterministic JSON schema described by the core: an ordered "definitions"
array of objects, each naming its variant in a "kind" field beside that
variant's own fields.

--query extracts a single dotted-path value from the emitted document
(gjson syntax, e.g. "definitions.0.name"). --set patches a "path=value"
pair into the document before it is printed (sjson syntax) — a tooling
convenience for quickly trying out a different default value, not a
second source of truth. --format=yaml re-encodes the canonical JSON as
YAML for human review.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJSON,
}

func init() {
	rootCmd.AddCommand(jsonCmd)
	jsonCmd.Flags().BoolVar(&jsonPretty, "pretty", false, "pretty-print the JSON output")
	jsonCmd.Flags().BoolVar(&jsonSort, "sort", false, "sort top-level definitions by natural name order before serializing")
	jsonCmd.Flags().StringVar(&jsonFormat, "format", "json", "output format: json or yaml")
	jsonCmd.Flags().StringVar(&jsonQuery, "query", "", "extract a dotted-path value from the emitted document (gjson syntax)")
	jsonCmd.Flags().StringArrayVar(&jsonSet, "set", nil, "patch a path=value pair into the document before printing (sjson syntax, repeatable)")
	jsonCmd.Flags().StringVar(&sourceNameOverride, "source-name", "", "name attached to error messages in place of the file path")
}

func runJSON(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	doc, errs := parser.Parse(source, name)
	if len(errs) > 0 {
		var compilerErrors []*cerrors.CompilerError
		for _, e := range errs {
			compilerErrors = append(compilerErrors, cerrors.NewCompilerError(e.Pos, e.Message, source, name))
		}
		fmt.Fprintln(os.Stderr, cerrors.FormatErrors(compilerErrors, false))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if jsonSort {
		doc.Definitions = ast.SortDefinitionsNatural(doc.Definitions)
	}

	var buf bytes.Buffer
	if err := doc.SerializeJSON(&buf); err != nil {
		return fmt.Errorf("serializing AST: %w", err)
	}
	output := buf.String()

	for _, kv := range jsonSet {
		path, value, ok := splitSetFlag(kv)
		if !ok {
			return fmt.Errorf("invalid --set value %q, expected path=value", kv)
		}
		patched, err := sjson.Set(output, path, value)
		if err != nil {
			return fmt.Errorf("applying --set %q: %w", kv, err)
		}
		output = patched
	}

	if jsonQuery != "" {
		result := gjson.Get(output, jsonQuery)
		if !result.Exists() {
			return fmt.Errorf("query %q matched nothing", jsonQuery)
		}
		fmt.Println(result.String())
		return nil
	}

	switch jsonFormat {
	case "yaml":
		var generic any
		if err := encodingjson.Unmarshal([]byte(output), &generic); err != nil {
			return fmt.Errorf("decoding JSON for YAML re-encoding: %w", err)
		}
		y, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		fmt.Print(string(y))
	case "json":
		if jsonPretty {
			var generic any
			if err := encodingjson.Unmarshal([]byte(output), &generic); err != nil {
				return fmt.Errorf("decoding JSON for pretty-printing: %w", err)
			}
			pretty, err := encodingjson.MarshalIndent(generic, "", "  ")
			if err != nil {
				return fmt.Errorf("pretty-printing JSON: %w", err)
			}
			fmt.Println(string(pretty))
		} else {
			fmt.Println(output)
		}
	default:
		return fmt.Errorf("unknown --format %q, expected json or yaml", jsonFormat)
	}

	return nil
}

func splitSetFlag(kv string) (path, value string, ok bool) {
	for i := 0; i < len(kv); i++ {
		if kv[i] == '=' {
			return kv[:i], kv[i+1:], true
		}
	}
	return "", "", false
}
