// Package main is the entry point for the folio CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/folio/cmd/folio/commands"
	"github.com/thoreinstein/folio/internal/errors"
)

func main() {
	err := commands.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	os.Exit(errors.CodeOf(err))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", color.New(color.FgYellow).Sprint("Suggestion:"), exitErr.Suggestion)
	}
}
