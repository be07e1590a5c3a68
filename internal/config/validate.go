package config

import (
	"fmt"

	"github.com/BotCoder254/Terminal-Decorator/internal/errors"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but termdec only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest termdec release, or set 'version: 1'.")
	}

	if cfg.Theme != "" {
		if _, err := theme.ByName(cfg.Theme); err != nil {
			return err
		}
	}

	if err := validateRefresh(cfg.Refresh); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'refresh' section in your .termdec.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .termdec.yaml.")
	}

	return nil
}

// validateRefresh checks the refresh loop configuration.
func validateRefresh(r RefreshConfig) error {
	if r.Interval != 0 && r.Interval < MinInterval {
		return fmt.Errorf("refresh.interval '%s' is too fast - use at least %s", r.Interval, MinInterval)
	}
	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
