package config

import (
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
)

// CurrentConfigVersion is the latest config schema version this build understands.
const CurrentConfigVersion = 1

const (
	// DefaultInterval is the dashboard refresh cadence used when none is configured.
	DefaultInterval = 2 * time.Second

	// MinInterval is the fastest refresh cadence a config may request.
	MinInterval = 500 * time.Millisecond

	// DefaultTitle is the dashboard banner text used when none is configured.
	DefaultTitle = "System Monitor"
)

// Config represents the .termdec.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Theme     string          `yaml:"theme" mapstructure:"theme"`
	Refresh   RefreshConfig   `yaml:"refresh" mapstructure:"refresh"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// RefreshConfig controls the dashboard refresh loop.
type RefreshConfig struct {
	// Interval between frames. Must be at least MinInterval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DashboardConfig controls the rendered dashboard frame.
type DashboardConfig struct {
	// Title is the centered banner text at the top of every frame.
	Title string `yaml:"title" mapstructure:"title"`
}

// OutputConfig controls terminal output behavior.
type OutputConfig struct {
	Color string `yaml:"color" mapstructure:"color"` // auto, always, never
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:   CurrentConfigVersion,
		Theme:     theme.DefaultName,
		Refresh:   RefreshConfig{Interval: DefaultInterval},
		Dashboard: DashboardConfig{Title: DefaultTitle},
		Output:    OutputConfig{Color: "auto"},
	}
}
