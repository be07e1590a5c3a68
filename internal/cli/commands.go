package cli

import (
	"os"

	"github.com/BotCoder254/Terminal-Decorator/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	dashboardIntervalFlag string
	dashboardOnce         bool
	topIntervalFlag       string
	promptUserFlag        string
	promptPathFlag        string
	initForce             bool
	doctorJSON            bool
)

// dashboardCmd runs the refresh-in-place system dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Live system metrics dashboard",
	Long: `Show a live dashboard of system metrics, redrawn in place.

Displays hostname, platform, uptime, CPU, memory, and disk usage with
color-coded bars, plus load averages and network traffic when available.
The screen is cleared before each frame and the loop runs until
interrupted with Ctrl+C.

Examples:
  termdec dashboard
  termdec dashboard --interval 5s
  termdec dashboard --once`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := ParseInterval(dashboardIntervalFlag)
		if err != nil {
			return err
		}
		return dashboardCommand(interval, dashboardOnce)
	},
}

// topCmd starts the interactive TUI dashboard
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Interactive dashboard with a CPU history graph",
	Long: `Start an interactive full-screen dashboard.

Shows the same metrics as 'termdec dashboard' plus a sparkline graph of
recent CPU usage. Runs in the terminal's alternate screen, so the
scrollback stays intact after quitting.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Force refresh

Examples:
  termdec top
  termdec top --interval 1s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := ParseInterval(topIntervalFlag)
		if err != nil {
			return err
		}
		return topCommand(interval)
	},
}

// promptCmd prints one decorated prompt line
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print a git-aware prompt line",
	Long: `Print a single colorized prompt line and exit.

The line shows the user, the working directory with the home prefix
shortened to ~, and a git segment with the current branch, a dirty
marker for uncommitted changes, and an unpushed marker for local-only
commits. Outside a repository the git segment is omitted. Git failures
never break the prompt; the segment just disappears.

Wire it into bash with:
  PS1='$(termdec prompt)'

Examples:
  termdec prompt
  termdec prompt --user deploy --path /srv/app`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return promptCommand(promptUserFlag, promptPathFlag)
	},
}

// themesCmd lists the built-in color themes
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in color themes",
	Long: `List the built-in color themes with a swatch of each palette.

Pick one with --theme or set 'theme: <name>' in .termdec.yaml.

Examples:
  termdec themes
  termdec dashboard --theme ocean`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return themesCommand()
	},
}

// initCmd creates a new .termdec.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .termdec.yaml configuration",
	Long: `Initialize a new Terminal Decorator configuration file.

Creates a .termdec.yaml file in the current directory with sensible
defaults. Guides you through theme and refresh interval selection with
interactive prompts.

Examples:
  termdec init
  termdec init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// doctorCmd diagnoses environment and configuration issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose environment and config issues",
	Long: `Run diagnostic checks to identify common issues.

Checks:
  - Configuration file validity
  - Theme availability
  - Git binary and repository state
  - Terminal size detection
  - Metrics sampling

Exits with status 1 when any check fails.

Examples:
  termdec doctor
  termdec doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for termdec.

Examples:
  # Bash
  termdec completion bash > /etc/bash_completion.d/termdec

  # Zsh
  termdec completion zsh > "${fpath[1]}/_termdec"

  # Fish
  termdec completion fish > ~/.config/fish/completions/termdec.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// dashboard command flags
	dashboardCmd.Flags().StringVar(&dashboardIntervalFlag, "interval", "", "refresh interval (e.g., 2s, 5s, 1m)")
	dashboardCmd.Flags().BoolVar(&dashboardOnce, "once", false, "render a single frame and exit")

	// top command flags
	topCmd.Flags().StringVar(&topIntervalFlag, "interval", "", "refresh interval (e.g., 2s, 5s, 1m)")

	// prompt command flags
	promptCmd.Flags().StringVar(&promptUserFlag, "user", "", "username to display (default: current user)")
	promptCmd.Flags().StringVar(&promptPathFlag, "path", "", "directory to display (default: working directory)")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// doctor command flags
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")

	// Register all commands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
