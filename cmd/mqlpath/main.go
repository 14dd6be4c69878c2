// Package main is the entry point for mqlpath CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/rjdinis/mqlpath/internal/cli"
	"github.com/rjdinis/mqlpath/internal/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(version, commit, date)
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		// fang has printed the error; add the help text of a PathError
		var pathErr *types.PathError
		if errors.As(err, &pathErr) && pathErr.Help != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", pathErr.Help)
		}

		os.Exit(1)
	}
}
