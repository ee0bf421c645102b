package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and search interactively",
		Long:  "Opens a full-screen browser. Logs go to --log-file only while it runs.",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	renderer := tui.NewChannelRenderer()

	return withSession(renderer, func(session *handlers.SessionHandler, deps *Deps) error {
		deps.Logger.DisableConsole()
		return tui.Run(ctx, session, renderer)
	})
}
