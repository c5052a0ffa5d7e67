package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (a *App) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run arm commands from a file",
		Long: `Run a session non-interactively, reading one command per line from a
file. Use "-" to read from standard input. Each command is echoed after
the prompt so the output reads like an interactive session.

Example:
  roboticarm run moves.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}
			return a.play(cmd.Context(), in, cmd.OutOrStdout(), true)
		},
	}
}
