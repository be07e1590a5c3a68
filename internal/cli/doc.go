// Package cli implements the Terminal Decorator command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small command function for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Shared startup (config lookup, theme resolution, color profile)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "termdec" with subcommands for different operations:
//
//	termdec dashboard   - Refresh-in-place system dashboard
//	termdec top         - Interactive dashboard with a CPU history graph
//	termdec prompt      - Print one git-aware prompt line for PS1
//	termdec themes      - List built-in color themes
//	termdec init        - Create .termdec.yaml config
//	termdec doctor      - Diagnose environment issues
//
// # Startup
//
// Rendering commands share a common startup path: find and load the
// config (falling back to built-in defaults when no file exists),
// resolve the active theme, and apply the color profile. The --theme
// flag overrides the config; --no-color overrides everything.
//
// # Flag Handling
//
// Global flags (--config, --theme, --no-color) are defined on the root
// command and available to all subcommands. Command-specific flags like
// --interval and --once are defined on individual commands.
package cli
