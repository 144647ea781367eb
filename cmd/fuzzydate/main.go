package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fuzzydatetime/cmd/fuzzydate/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(commands.ExitCode(err))
	}
}
