// Package ui wires the command line: flags, subcommands, terminal setup
// and the interactive arm session.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/roboticarm/internal/config"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	root       *cobra.Command
	configPath string // --config, reloads config when set
	debug      bool   // Enable debug logging
	debugPath  string
	noColor    bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "roboticarm",
		Short: "A robotic arm that stacks blocks in numbered slots",
		Long: `Roboticarm simulates a robotic arm moving blocks between numbered slots.

Start with "size <n>" to create the slots, then add, move and remove
blocks. Every command can be undone or replayed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.reloadConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), false)
		},
	}

	// Add global flags
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default "+config.DefaultConfigPath()+")")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+DebugLogPath+")")
	a.root.PersistentFlags().StringVar(&a.debugPath, "debug-log", DebugLogPath, "Debug log file used with --debug")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.runCmd())
	a.root.AddCommand(a.tuiCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roboticarm %s (commit: %s)\n", Version, Commit)
		},
	}
}

// reloadConfig replaces the startup config when --config is given.
func (a *App) reloadConfig() error {
	if a.configPath == "" {
		return nil
	}
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.config = cfg
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
