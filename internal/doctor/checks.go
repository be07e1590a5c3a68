package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/config"
	"github.com/BotCoder254/Terminal-Decorator/internal/errors"
	"github.com/BotCoder254/Terminal-Decorator/internal/gitstatus"
	"github.com/BotCoder254/Terminal-Decorator/internal/metrics"
	"github.com/BotCoder254/Terminal-Decorator/internal/render"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
)

// DefaultSampleTimeout bounds the metrics check when no timeout is given.
const DefaultSampleTimeout = 5 * time.Second

// GitBinaryCheck verifies git is installed locally.
type GitBinaryCheck struct{}

func (c *GitBinaryCheck) Name() string     { return "git_binary" }
func (c *GitBinaryCheck) Category() string { return "GIT" }

func (c *GitBinaryCheck) Run() CheckResult {
	path, err := exec.LookPath("git")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "git not found",
			Suggestion: "Install git: brew install git (macOS) or apt install git (Linux). The prompt hides its git segment until then.",
		}
	}

	output, err := exec.Command(path, "--version").Output()
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "git found (version unknown)",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: parseGitVersion(string(output)),
	}
}

// parseGitVersion turns "git version 2.39.5 (Apple Git-154)" into "git 2.39.5".
func parseGitVersion(output string) string {
	fields := strings.Fields(output)
	if len(fields) >= 3 && fields[0] == "git" && fields[1] == "version" {
		return "git " + fields[2]
	}
	return "git (version unknown)"
}

// RepositoryCheck reports whether the working directory is inside a git repo.
// Either outcome passes; the check exists to explain the prompt's git segment.
type RepositoryCheck struct {
	Dir       string
	Inspector *gitstatus.Inspector
}

func (c *RepositoryCheck) Name() string     { return "repository" }
func (c *RepositoryCheck) Category() string { return "GIT" }

func (c *RepositoryCheck) Run() CheckResult {
	if c.Inspector == nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "repository check skipped",
		}
	}

	st := c.Inspector.Inspect(c.Dir)
	if !st.InRepository() {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "not a git repository (prompt shows no git segment here)",
		}
	}

	state := "clean"
	if st.IsDirty {
		state = "dirty"
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("git repository on '%s' (%s)", st.Branch, state),
	}
}

// TerminalCheck verifies the terminal size can be detected.
type TerminalCheck struct {
	// Size reports the terminal dimensions; nil uses the real terminal.
	Size render.SizeFunc
}

func (c *TerminalCheck) Name() string     { return "terminal_size" }
func (c *TerminalCheck) Category() string { return "TERMINAL" }

func (c *TerminalCheck) Run() CheckResult {
	size := c.Size
	if size == nil {
		size = render.TermSize
	}

	w, h, err := size()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "terminal size unknown",
			Suggestion: fmt.Sprintf("Rendering falls back to %d columns. Run from an interactive terminal for full-width output.", render.FallbackWidth),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("terminal size %dx%d", w, h),
	}
}

// Sampler matches the metrics provider surface the metrics check needs.
type Sampler interface {
	Sample(ctx context.Context) (*metrics.Snapshot, error)
}

// MetricsCheck verifies a metrics snapshot can be collected in time.
type MetricsCheck struct {
	Sampler Sampler
	Timeout time.Duration
}

func (c *MetricsCheck) Name() string     { return "metrics_sampling" }
func (c *MetricsCheck) Category() string { return "METRICS" }

func (c *MetricsCheck) Run() CheckResult {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultSampleTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	snap, err := c.Sampler.Sample(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "metrics sampling failed: " + err.Error(),
			Suggestion: "Individual probes degrade silently; a whole-sample failure means collection was cancelled or timed out.",
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("metrics sampling ok (cpu %.0f%%, mem %d%%, disk %d%%)",
			snap.CPUPercent, snap.MemoryPercent, snap.DiskPercent),
	}
}

// ConfigCheck locates and validates the configuration file.
type ConfigCheck struct {
	// Explicit is the --config flag value; empty uses the search order.
	Explicit string
}

func (c *ConfigCheck) Name() string     { return "config_file" }
func (c *ConfigCheck) Category() string { return "CONFIG" }

func (c *ConfigCheck) Run() CheckResult {
	path, err := config.Find(c.Explicit)
	if err != nil {
		return c.fail("config file not accessible", err)
	}

	if path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "no config file (built-in defaults active)",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return c.fail("config file invalid", err)
	}

	if err := config.Validate(cfg); err != nil {
		return c.fail("config file invalid", err)
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "config valid: " + path,
	}
}

// fail folds a structured error's message and suggestion into the result.
func (c *ConfigCheck) fail(message string, err error) CheckResult {
	result := CheckResult{Name: c.Name(), Status: StatusFail, Message: message}
	if structured, ok := errors.AsError(err); ok {
		result.Message = message + ": " + structured.Message
		result.Suggestion = structured.Suggestion
	} else if err != nil {
		result.Message = message + ": " + err.Error()
	}
	return result
}

// ThemeCheck verifies the active theme resolves to a built-in palette.
type ThemeCheck struct {
	Theme string
}

func (c *ThemeCheck) Name() string     { return "theme" }
func (c *ThemeCheck) Category() string { return "CONFIG" }

func (c *ThemeCheck) Run() CheckResult {
	name := c.Theme
	if name == "" {
		name = theme.DefaultName
	}

	if _, err := theme.ByName(name); err != nil {
		result := CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("theme '%s' is not a built-in theme", name),
		}
		if structured, ok := errors.AsError(err); ok {
			result.Suggestion = structured.Suggestion
		}
		return result
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("theme '%s' available", name),
	}
}
