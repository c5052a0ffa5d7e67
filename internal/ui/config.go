package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/roboticarm/internal/config"
	"github.com/javiermolinar/roboticarm/internal/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  roboticarm config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.noColor || !isTerminal(cmd.OutOrStdout()) {
				DisableColor()
			}
			return runConfigInteractive(a.configFilePath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.configFilePath())
		},
	})
	return cmd
}

func (a *App) configFilePath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultConfigPath()
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Session.Prompt = promptValue(reader, out, "Prompt", cfg.Session.Prompt)
	cfg.UI.Block = promptValue(reader, out, "Block character", cfg.UI.Block)
	cfg.UI.Color = promptValue(reader, out, "Color (auto, always, never)", cfg.UI.Color)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.Engine.LegacyResize = promptBool(reader, out, "Legacy resize (grow one extra slot)", cfg.Engine.LegacyResize)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\n"+formatSuccess("Configuration saved!"))
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, formatHeader("Current configuration:"))
	fmt.Fprintln(out, formatMuted("──────────────────────"))
	fmt.Fprintln(out, "[engine]")
	fmt.Fprintf(out, "  legacy_resize = %s\n", formatValue(strconv.FormatBool(cfg.Engine.LegacyResize)))
	fmt.Fprintln(out, "\n[session]")
	fmt.Fprintf(out, "  prompt        = %s\n", formatValue(strconv.Quote(cfg.Session.Prompt)))
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme         = %s\n", formatValue(cfg.UI.Theme))
	fmt.Fprintf(out, "  color         = %s\n", formatValue(cfg.UI.Color))
	fmt.Fprintf(out, "  block         = %s\n", formatValue(cfg.UI.Block))
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

// promptValue keeps current on empty input. Surrounding spaces are kept
// so prompts like "> " survive editing.
func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimRight(input, "\r\n")
	if strings.TrimSpace(input) == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q. Use true or false\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("Theme (%s)", options)
	for {
		value := strings.ToLower(strings.TrimSpace(promptValue(reader, out, label, current)))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
