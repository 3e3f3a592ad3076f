// Package main is the entry point for the desk CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/cli"
	"github.com/spf13/pflag"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	dataDir, err := app.ResolveDataDir(dataDirFlag(args))
	if err != nil {
		return err
	}

	// Create dependency injection container
	container, err := app.New(dataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// dataDirFlag extracts --data-dir before cobra parses the command line,
// since the container must exist before commands are built.
func dataDirFlag(args []string) string {
	fs := pflag.NewFlagSet("desk", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	dir := fs.String(cli.DataDirFlag, "", "")
	// Help and unknown-flag errors are reported later by cobra.
	_ = fs.Parse(args)
	return *dir
}
