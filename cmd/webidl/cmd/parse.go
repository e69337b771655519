package cmd

import (
	"fmt"
	"io"
	"os"

	cerrors "github.com/webidl-go/webidl/internal/errors"
	"github.com/webidl-go/webidl/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseDumpDefinitions bool
	sourceNameOverride   string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Web IDL fragment and report errors",
	Long: `Parse reads a Web IDL fragment, either from a file argument or from
stdin, and reports any lexer or parser errors with source context.

Use --dump-definitions to list the top-level definitions found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpDefinitions, "dump-definitions", false, "list the top-level definitions found")
	parseCmd.Flags().StringVar(&sourceNameOverride, "source-name", "", "name attached to error messages in place of the file path")
}

func readSource(args []string) (source, name string, err error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		name = args[0]
		if sourceNameOverride != "" {
			name = sourceNameOverride
		}
		return string(data), name, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("error reading stdin: %w", err)
	}
	name = "<stdin>"
	if sourceNameOverride != "" {
		name = sourceNameOverride
	}
	return string(data), name, nil
}

func runParse(cmd *cobra.Command, args []string) error {
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

	if parseDumpDefinitions {
		for _, d := range doc.Definitions {
			fmt.Printf("%s %s\n", d.Kind, d.Name)
		}
	} else {
		fmt.Printf("parsed %d definition(s) successfully\n", len(doc.Definitions))
	}

	return nil
}
