// Command webidl parses Web IDL fragments and serializes their AST to JSON.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/webidl-go/webidl/cmd/webidl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
