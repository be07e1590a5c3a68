package config

import (
	"fmt"
	"os"

	"github.com/BotCoder254/Terminal-Decorator/internal/errors"
	"gopkg.in/yaml.v3"
)

// fileHeader is prepended to every generated config file.
const fileHeader = `# Terminal Decorator configuration
# Run 'termdec dashboard' for the live dashboard, 'termdec prompt' for the shell prompt
# See: https://github.com/BotCoder254/Terminal-Decorator for documentation

`

// Save writes the config as YAML to path, prefixed with a usage header.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	content := fileHeader + string(data)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}

	return nil
}

// MarshalYAML writes the interval as a duration string ("2s") rather than
// nanoseconds, keeping generated config files readable and reloadable.
func (r RefreshConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Interval string `yaml:"interval"`
	}{Interval: r.Interval.String()}, nil
}
