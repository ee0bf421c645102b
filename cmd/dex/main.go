// Package main provides the entry point for the dex CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"

	globalBaseURL string
	globalVerbose bool
	globalDebug   bool
	globalLogFile string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dex",
		Short:         "Browse and search the creature catalog",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globalBaseURL, "base-url", "", "Catalog API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&globalLogFile, "log-file", "", "Also write logs to this file")

	rootCmd.AddCommand(
		newInitCmd(),
		newBrowseCmd(),
		newSearchCmd(),
		newShowCmd(),
		newExportCmd(),
		newTUICmd(),
	)

	return rootCmd
}
