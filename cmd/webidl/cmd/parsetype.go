package cmd

import (
	"fmt"
	"os"

	"github.com/webidl-go/webidl/internal/ast"
	cerrors "github.com/webidl-go/webidl/internal/errors"
	"github.com/webidl-go/webidl/internal/parser"
	"github.com/spf13/cobra"
)

var parseTypeCmd = &cobra.Command{
	Use:   "parse-type <type-expression>",
	Short: "Parse a single standalone Web IDL type expression",
	Long: `Parse-type validates and serializes one type expression in
isolation, without requiring a surrounding interface or dictionary member.

Example: webidl parse-type "sequence<unsigned long>?"`,
	Args: cobra.ExactArgs(1),
	RunE: runParseType,
}

func init() {
	rootCmd.AddCommand(parseTypeCmd)
}

func runParseType(cmd *cobra.Command, args []string) error {
	source := args[0]
	ty, errs := parser.ParseType(source)
	if len(errs) > 0 {
		var compilerErrors []*cerrors.CompilerError
		for _, e := range errs {
			compilerErrors = append(compilerErrors, cerrors.NewCompilerError(e.Pos, e.Message, source, ""))
		}
		fmt.Fprintln(os.Stderr, cerrors.FormatErrors(compilerErrors, false))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if err := ast.SerializeType(ty, os.Stdout); err != nil {
		return fmt.Errorf("serializing type: %w", err)
	}
	fmt.Println()
	return nil
}
