package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/infrastructure/render"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search creatures by name",
		Long: `Looks the query up as an exact name first. If there is no such creature,
every name containing the query is listed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")

	return withDeps(func(deps *Deps) error {
		result, err := deps.CatalogHandler.Search(ctx, query)
		if result != nil {
			if werr := render.WriteText(cmd.OutOrStdout(), result.View); werr != nil {
				return werr
			}
		}
		return err
	})
}
