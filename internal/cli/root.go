package cli

import (
	"fmt"
	"os"

	"github.com/BotCoder254/Terminal-Decorator/internal/config"
	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands
var (
	configFlag  string
	themeFlag   string
	noColorFlag bool
)

// rootCmd is the base command for termdec.
var rootCmd = &cobra.Command{
	Use:   "termdec",
	Short: "System dashboard and git-aware prompt for your terminal",
	Long: `termdec decorates a terminal session with a live system dashboard
and a git-aware shell prompt.

The dashboard shows hostname, uptime, CPU, memory, and disk usage with
color-coded bars, refreshed in place. The prompt command prints a single
colorized line with the current git branch and work-tree state, ready to
be wired into PS1.

Examples:
  termdec dashboard
  termdec top --interval 5s
  termdec prompt
  termdec doctor`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are printed to stderr in their
// structured form and exit with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default searches for .termdec.yaml)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme, overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Config returns the value of the global --config flag.
func Config() string {
	return configFlag
}

// setup runs the startup path shared by rendering commands: load the
// active config, resolve the theme, and apply the color profile.
func setup() (*config.Config, theme.Theme, error) {
	cfg, err := loadActiveConfig()
	if err != nil {
		return nil, theme.Theme{}, err
	}

	th, err := resolveTheme(cfg)
	if err != nil {
		return nil, theme.Theme{}, err
	}

	applyColorProfile(cfg.Output.Color)

	return cfg, th, nil
}

// loadActiveConfig loads the active config, falling back to built-in
// defaults when no file exists. An unreadable or invalid file is still
// an error: silently ignoring a broken config hides typos.
func loadActiveConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveTheme picks the active theme: --theme beats the config file.
// An empty name means "not set", which is the default theme; unknown
// names are errors, never silent fallbacks.
func resolveTheme(cfg *config.Config) (theme.Theme, error) {
	name := cfg.Theme
	if themeFlag != "" {
		name = themeFlag
	}
	if name == "" {
		name = theme.DefaultName
	}
	return theme.ByName(name)
}

// applyColorProfile maps --no-color and output.color onto the lipgloss
// renderer. The flag wins over the config; "auto" keeps lipgloss's own
// terminal detection.
func applyColorProfile(color string) {
	switch {
	case noColorFlag || color == "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case color == "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// newLogger returns the logger commands share. Debug output is gated
// on TERMDEC_DEBUG and everything goes to stderr, so the prompt line on
// stdout stays clean.
func newLogger() logger.Logger {
	return logger.NewEnvLogger("[termdec]")
}
