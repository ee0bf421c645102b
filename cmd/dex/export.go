package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
)

type exportFlags struct {
	page   int
	query  string
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a page or search results to a file",
		Long:  "Exports creatures to JSON, CSV, markdown, XLSX or HTML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.page, "page", "p", DefaultPage, "Page to export")
	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "Export search results instead of a page")
	cmd.Flags().StringVarP(&flags.format, "format", "f", DefaultExportFormat, "Output format (json, csv, markdown, xlsx, html)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.MarkFlagsMutuallyExclusive("page", "query")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	ctx := cmd.Context()

	return withDeps(func(deps *Deps) (err error) {
		req := handlers.ExportRequest{
			Page:   flags.page,
			Query:  flags.query,
			Format: flags.format,
		}

		var w io.Writer = cmd.OutOrStdout()
		if flags.output != "" {
			var f *os.File
			f, err = os.OpenFile(flags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("creating file: %w", err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing file: %w", cerr)
				}
			}()
			w = f
		}

		result, err := deps.ExportHandler.Handle(ctx, req, w)
		if err != nil {
			return err
		}

		if flags.output != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d creatures to %s\n", len(result.Records), flags.output)
		}
		return nil
	})
}
