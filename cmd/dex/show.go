package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/infrastructure/render"
)

type showFlags struct {
	styled bool
	style  string
	width  int
}

func newShowCmd() *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one creature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.styled, "styled", false, "Render the card as styled markdown")
	cmd.Flags().StringVar(&flags.style, "style", render.StyleAuto, "Markdown style (auto, notty, dark, light, ...)")
	cmd.Flags().IntVar(&flags.width, "width", render.DefaultWordWrap, "Word wrap width for styled output")

	return cmd
}

func runShow(cmd *cobra.Command, args []string, flags *showFlags) error {
	ctx := cmd.Context()

	return withDeps(func(deps *Deps) error {
		creature, err := deps.CatalogHandler.Show(ctx, args[0])
		if err != nil {
			return err
		}
		if flags.styled {
			return render.WriteStyledCard(cmd.OutOrStdout(), render.NewCard(*creature), flags.style, flags.width)
		}
		return render.WriteCard(cmd.OutOrStdout(), *creature)
	})
}
