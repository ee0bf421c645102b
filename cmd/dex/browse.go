package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/infrastructure/render"
)

func newBrowseCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List one page of the catalog",
		Long:  "Fetches a page of the catalog and prints its creatures.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, page)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", DefaultPage, "Page number, starting at 1")

	return cmd
}

func runBrowse(cmd *cobra.Command, page int) error {
	ctx := cmd.Context()

	return withDeps(func(deps *Deps) error {
		result, err := deps.CatalogHandler.Browse(ctx, page)
		if result != nil {
			if werr := render.WriteText(cmd.OutOrStdout(), result.View); werr != nil {
				return werr
			}
		}
		return err
	})
}
