package cli

import (
	"fmt"
	"strings"

	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// themesCommand implements the themes command logic. It deliberately
// skips config loading so themes stay listable with a broken config.
func themesCommand() error {
	if noColorFlag {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	fmt.Println()
	for _, name := range theme.Names() {
		th, err := theme.ByName(name)
		if err != nil {
			continue
		}

		marker := " "
		if name == theme.DefaultName {
			marker = "*"
		}

		label := lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Colors.Primary).
			Render(fmt.Sprintf("%-10s", name))

		fmt.Printf("  %s %s %s\n", marker, label, paletteSwatch(th.Colors))
	}
	fmt.Println()

	muted := lipgloss.NewStyle().Foreground(theme.Default().Colors.Muted)
	fmt.Println(muted.Render("  * default. Pick one with --theme or 'theme: <name>' in .termdec.yaml."))
	return nil
}

// paletteSwatch renders block pairs in the palette's accent and status
// colors, in a fixed order so themes line up column for column.
func paletteSwatch(p theme.Palette) string {
	colors := []lipgloss.Color{
		p.Primary, p.Secondary, p.Accent,
		p.Success, p.Warning, p.Error, p.Info,
	}

	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = lipgloss.NewStyle().Foreground(c).Render("██")
	}
	return strings.Join(parts, " ")
}
