package doctor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/BotCoder254/Terminal-Decorator/internal/gitstatus"
	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
	"github.com/BotCoder254/Terminal-Decorator/internal/metrics"
)

func TestGitBinaryCheck(t *testing.T) {
	check := &GitBinaryCheck{}
	result := check.Run()

	if result.Name != "git_binary" {
		t.Errorf("unexpected name %q", result.Name)
	}

	// Expectation depends on the environment, mirror it
	if _, err := exec.LookPath("git"); err != nil {
		if result.Status != StatusFail {
			t.Errorf("git missing but check passed: %s", result.Message)
		}
		if result.Suggestion == "" {
			t.Errorf("failed check should carry a suggestion")
		}
	} else {
		if result.Status != StatusPass {
			t.Errorf("git present but check failed: %s", result.Message)
		}
		if !strings.HasPrefix(result.Message, "git") {
			t.Errorf("message should lead with the binary name: %q", result.Message)
		}
	}
}

func TestParseGitVersion(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"git version 2.39.5\n", "git 2.39.5"},
		{"git version 2.39.5 (Apple Git-154)\n", "git 2.39.5"},
		{"something unexpected", "git (version unknown)"},
		{"", "git (version unknown)"},
	}

	for _, tc := range tests {
		if got := parseGitVersion(tc.output); got != tc.expected {
			t.Errorf("parseGitVersion(%q) = %q, want %q", tc.output, got, tc.expected)
		}
	}
}

func TestRepositoryCheck(t *testing.T) {
	t.Run("no inspector", func(t *testing.T) {
		check := &RepositoryCheck{}
		result := check.Run()
		if result.Status != StatusWarn {
			t.Errorf("expected warn, got %s", result.Status)
		}
	})

	t.Run("outside a repository", func(t *testing.T) {
		check := &RepositoryCheck{
			Dir:       t.TempDir(),
			Inspector: gitstatus.NewInspector(logger.Noop()),
		}
		result := check.Run()
		if result.Status != StatusPass {
			t.Errorf("non-repo should still pass, got %s: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "not a git repository") {
			t.Errorf("unexpected message %q", result.Message)
		}
	})
}

func TestTerminalCheck(t *testing.T) {
	t.Run("detected", func(t *testing.T) {
		check := &TerminalCheck{
			Size: func() (int, int, error) { return 120, 40, nil },
		}
		result := check.Run()
		if result.Status != StatusPass {
			t.Errorf("expected pass, got %s", result.Status)
		}
		if !strings.Contains(result.Message, "120x40") {
			t.Errorf("message should carry dimensions: %q", result.Message)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		check := &TerminalCheck{
			Size: func() (int, int, error) { return 0, 0, errors.New("not a tty") },
		}
		result := check.Run()
		if result.Status != StatusWarn {
			t.Errorf("size failure should warn, not fail: got %s", result.Status)
		}
		if !strings.Contains(result.Suggestion, "80") {
			t.Errorf("suggestion should mention the fallback width: %q", result.Suggestion)
		}
	})
}

// stubSampler returns a fixed snapshot or error.
type stubSampler struct {
	snap *metrics.Snapshot
	err  error
}

func (s *stubSampler) Sample(ctx context.Context) (*metrics.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snap, nil
}

func TestMetricsCheck(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		check := &MetricsCheck{
			Sampler: &stubSampler{snap: &metrics.Snapshot{
				CPUPercent:    45,
				MemoryPercent: 70,
				DiskPercent:   82,
			}},
		}
		result := check.Run()
		if result.Status != StatusPass {
			t.Fatalf("expected pass, got %s: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "cpu 45%") {
			t.Errorf("message should summarize the snapshot: %q", result.Message)
		}
	})

	t.Run("failure", func(t *testing.T) {
		check := &MetricsCheck{
			Sampler: &stubSampler{err: context.DeadlineExceeded},
		}
		result := check.Run()
		if result.Status != StatusFail {
			t.Errorf("expected fail, got %s", result.Status)
		}
		if !strings.Contains(result.Message, "metrics sampling failed") {
			t.Errorf("unexpected message %q", result.Message)
		}
	})
}

func TestConfigCheck(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(oldWd)

	check := &ConfigCheck{}

	// No config anywhere means defaults
	result := check.Run()
	if result.Status != StatusPass {
		t.Fatalf("expected pass without config, got %s: %s", result.Status, result.Message)
	}
	if !strings.Contains(result.Message, "defaults") {
		t.Errorf("unexpected message %q", result.Message)
	}

	// Valid config file
	if err := os.WriteFile(".termdec.yaml", []byte("theme: dark\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result = check.Run()
	if result.Status != StatusPass {
		t.Fatalf("expected pass with valid config, got %s: %s", result.Status, result.Message)
	}
	if !strings.Contains(result.Message, "config valid") {
		t.Errorf("unexpected message %q", result.Message)
	}

	// Unknown theme fails validation and surfaces the suggestion
	if err := os.WriteFile(".termdec.yaml", []byte("theme: nonexistent\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result = check.Run()
	if result.Status != StatusFail {
		t.Fatalf("expected fail with bad theme, got %s: %s", result.Status, result.Message)
	}
	if !strings.Contains(result.Suggestion, "Available themes") {
		t.Errorf("suggestion should list themes: %q", result.Suggestion)
	}

	// Explicit path that does not exist
	explicit := &ConfigCheck{Explicit: "/nonexistent/custom.yaml"}
	result = explicit.Run()
	if result.Status != StatusFail {
		t.Errorf("expected fail for missing explicit path, got %s", result.Status)
	}
	if !strings.Contains(result.Message, "not accessible") {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestThemeCheck(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected CheckStatus
	}{
		{"known theme", "dark", StatusPass},
		{"empty falls back to default", "", StatusPass},
		{"unknown theme", "solarized", StatusFail},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			check := &ThemeCheck{Theme: tc.theme}
			result := check.Run()
			if result.Status != tc.expected {
				t.Errorf("got %s, want %s (%s)", result.Status, tc.expected, result.Message)
			}
			if tc.expected == StatusFail && !strings.Contains(result.Suggestion, "Available themes") {
				t.Errorf("failed theme check should list themes: %q", result.Suggestion)
			}
		})
	}
}
