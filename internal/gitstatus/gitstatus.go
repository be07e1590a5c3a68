// Package gitstatus reads the repository state of a directory for the
// prompt: current branch, work-tree cleanliness, and unpushed commits.
package gitstatus

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
)

// DefaultTimeout bounds each git invocation so a slow repository
// (network filesystems, huge work trees) cannot stall the prompt.
const DefaultTimeout = 2 * time.Second

// Status describes a repository as seen from one directory.
// The zero value means "not inside a git repository".
type Status struct {
	Branch             string
	IsDirty            bool
	HasUnpushedCommits bool
}

// InRepository reports whether the directory belongs to a git repository.
func (s Status) InRepository() bool {
	return s.Branch != ""
}

// runFunc executes a git subcommand in dir and returns trimmed stdout.
type runFunc func(ctx context.Context, dir string, args ...string) (string, error)

// Inspector probes git repositories. Failures never escape: a directory
// that is not a repository, a missing git binary, and a timed-out query
// all degrade to a zero Status.
type Inspector struct {
	Timeout time.Duration

	log logger.Logger
	run runFunc
}

// NewInspector creates an inspector with the default per-query timeout.
func NewInspector(log logger.Logger) *Inspector {
	if log == nil {
		log = logger.Noop()
	}
	return &Inspector{
		Timeout: DefaultTimeout,
		log:     log,
		run:     gitOutput,
	}
}

// Inspect reads the repository state of dir.
func (i *Inspector) Inspect(dir string) Status {
	var st Status

	branch, err := i.git(dir, "symbolic-ref", "--short", "HEAD")
	if err != nil || branch == "" {
		// A detached HEAD still has a commit to name; anything else
		// (not a repository, git missing) fails here too.
		branch, err = i.git(dir, "rev-parse", "--short", "HEAD")
		if err != nil || branch == "" {
			i.log.Debug("no repository at %s: %v", dir, err)
			return st
		}
	}
	st.Branch = branch

	if out, err := i.git(dir, "status", "--porcelain"); err != nil {
		i.log.Debug("status query failed in %s: %v", dir, err)
	} else {
		// Any porcelain output, staged or not, untracked included.
		st.IsDirty = out != ""
	}

	if out, err := i.git(dir, "rev-list", "--count", "HEAD", "--not", "--remotes"); err != nil {
		i.log.Debug("rev-list query failed in %s: %v", dir, err)
	} else if n, convErr := strconv.Atoi(out); convErr == nil {
		st.HasUnpushedCommits = n > 0
	}

	return st
}

// git runs one query under the inspector's timeout.
func (i *Inspector) git(dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), i.Timeout)
	defer cancel()
	return i.run(ctx, dir, args...)
}

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// gitOutput runs a git command in dir and returns trimmed stdout.
func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
