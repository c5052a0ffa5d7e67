package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/roboticarm/internal/theme"
	"github.com/javiermolinar/roboticarm/internal/tui"
)

func (a *App) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play in a full-screen terminal interface",
		Long: `Play in a full-screen interface that keeps the slots on screen.

Commands are the same as in the line session. Shortcuts:
  ctrl+z  undo 1
  ctrl+r  replay 1
  ctrl+y  copy the slots to the clipboard
  ?       toggle command help
  esc     quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog, err := openDebugLogger(a.debug, a.debugPath)
			if err != nil {
				return err
			}
			defer closeLog()

			th, err := theme.Load(a.config.UI.Theme)
			if err != nil {
				return fmt.Errorf("loading theme: %w", err)
			}

			return tui.Run(cmd.Context(), tui.Options{
				Theme:        th,
				Color:        a.colorEnabled(cmd.OutOrStdout()),
				Block:        a.config.UI.Block,
				Prompt:       a.config.Session.Prompt,
				LegacyResize: a.config.Engine.LegacyResize,
				Logger:       logger,
			})
		},
	}
}
