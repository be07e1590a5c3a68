package cli

import (
	"fmt"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/config"
	"github.com/BotCoder254/Terminal-Decorator/internal/errors"
)

// ParseInterval parses an --interval flag value into a duration.
// Returns zero if the flag is empty, so the config value applies.
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	parsed, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", flag),
			"Use a valid duration like 2s, 5s, or 1m")
	}
	if parsed < config.MinInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %s to keep sampling cheap", config.MinInterval))
	}
	return parsed, nil
}

// resolveInterval picks the refresh interval: flag beats config, and a
// zero config value falls back to the built-in default.
func resolveInterval(flag time.Duration, cfg *config.Config) time.Duration {
	if flag > 0 {
		return flag
	}
	if cfg.Refresh.Interval > 0 {
		return cfg.Refresh.Interval
	}
	return config.DefaultInterval
}
