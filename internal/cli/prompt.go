package cli

import (
	"fmt"
	"os"
	"os/user"

	"github.com/BotCoder254/Terminal-Decorator/internal/gitstatus"
	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
	"github.com/BotCoder254/Terminal-Decorator/internal/prompt"
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
)

// promptCommand implements the prompt command logic. The line goes to
// stdout with a trailing newline; command substitution in PS1 strips it.
func promptCommand(userFlag, pathFlag string) error {
	_, th, err := setup()
	if err != nil {
		return err
	}

	fmt.Println(promptLine(userFlag, pathFlag, th, newLogger()))
	return nil
}

// promptLine assembles the prompt for the given user and directory,
// applying the flag defaults. The git inspection runs against the real
// directory, before the home prefix is shortened for display.
func promptLine(userFlag, pathFlag string, th theme.Theme, log logger.Logger) string {
	name := userFlag
	if name == "" {
		name = currentUser()
	}

	dir := pathFlag
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}

	st := gitstatus.NewInspector(log).Inspect(dir)

	display := dir
	if home, err := os.UserHomeDir(); err == nil {
		display = prompt.ShortenPath(dir, home)
	}

	return prompt.Compose(name, display, st, th)
}

// currentUser resolves the invoking user, preferring os/user over $USER.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
