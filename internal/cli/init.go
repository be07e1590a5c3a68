package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/config"
	"github.com/BotCoder254/Terminal-Decorator/internal/errors"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/charmbracelet/huh"
)

// initCommand creates a new .termdec.yaml configuration file.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect configuration values
	themeName := theme.DefaultName
	intervalStr := config.DefaultInterval.String()

	themeOptions := make([]huh.Option[string], 0, len(theme.Names()))
	for _, name := range theme.Names() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Description("Used by the dashboard and the prompt").
				Options(themeOptions...).
				Value(&themeName),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh interval").
				Description("How often the dashboard redraws").
				Placeholder(config.DefaultInterval.String()).
				Value(&intervalStr).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					d, err := time.ParseDuration(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("use a duration like 2s or 1m")
					}
					if d < config.MinInterval {
						return fmt.Errorf("minimum interval is %s", config.MinInterval)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility, or write .termdec.yaml by hand")
	}

	cfg := config.DefaultConfig()
	cfg.Theme = themeName
	if s := strings.TrimSpace(intervalStr); s != "" {
		// Validated by the form; a parse failure here keeps the default
		if d, err := time.ParseDuration(s); err == nil {
			cfg.Refresh.Interval = d
		}
	}

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n\n", theme.SymbolOK, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  termdec dashboard  - Live system dashboard")
	fmt.Println("  termdec prompt     - One prompt line, wire into PS1")
	fmt.Println("  termdec doctor     - Check the environment")

	return nil
}
