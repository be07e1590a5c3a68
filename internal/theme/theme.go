// Package theme defines the color palettes and glyphs shared by every
// rendering surface in termdec: the dashboard, the prompt, and the TUI.
package theme

import (
	"sort"

	"github.com/BotCoder254/Terminal-Decorator/internal/errors"
	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the theme used when no configuration overrides it.
const DefaultName = "default"

// Palette holds the eleven color roles every theme defines.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Info       lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
}

// Theme pairs a palette with its registry name.
type Theme struct {
	Name   string
	Colors Palette
}

// builtins maps theme names to their palettes. Colors are truecolor hex;
// lipgloss degrades them automatically on terminals with smaller profiles.
var builtins = map[string]Palette{
	"default": {
		Primary:    "#4B9CD3",
		Secondary:  "#13294B",
		Success:    "#2ECC71",
		Error:      "#E74C3C",
		Warning:    "#F1C40F",
		Info:       "#3498DB",
		Text:       "#2C3E50",
		Muted:      "#95A5A6",
		Background: "#FFFFFF",
		Border:     "#BDC3C7",
		Accent:     "#9B59B6",
	},
	"dark": {
		Primary:    "#61AFEF",
		Secondary:  "#C678DD",
		Success:    "#98C379",
		Error:      "#E06C75",
		Warning:    "#E5C07B",
		Info:       "#56B6C2",
		Text:       "#ABB2BF",
		Muted:      "#5C6370",
		Background: "#282C34",
		Border:     "#3E4451",
		Accent:     "#C678DD",
	},
	"neon": {
		Primary:    "#00FF9C",
		Secondary:  "#00B8FF",
		Success:    "#00FF9C",
		Error:      "#FF3333",
		Warning:    "#FFB000",
		Info:       "#00B8FF",
		Text:       "#FFFFFF",
		Muted:      "#4D4D4D",
		Background: "#1A1A1A",
		Border:     "#333333",
		Accent:     "#FF00FF",
	},
	"minimal": {
		Primary:    "#000000",
		Secondary:  "#404040",
		Success:    "#008000",
		Error:      "#FF0000",
		Warning:    "#808000",
		Info:       "#000080",
		Text:       "#000000",
		Muted:      "#808080",
		Background: "#FFFFFF",
		Border:     "#C0C0C0",
		Accent:     "#404040",
	},
	"ocean": {
		Primary:    "#006994",
		Secondary:  "#2E8B57",
		Success:    "#20B2AA",
		Error:      "#CD5C5C",
		Warning:    "#DAA520",
		Info:       "#4682B4",
		Text:       "#2F4F4F",
		Muted:      "#778899",
		Background: "#F0F8FF",
		Border:     "#B0C4DE",
		Accent:     "#483D8B",
	},
}

// ByName returns the theme registered under name.
// Unknown names are an error, never a silent fallback.
func ByName(name string) (Theme, error) {
	p, ok := builtins[name]
	if !ok {
		return Theme{}, errors.NewUnknownTheme(name, Names())
	}
	return Theme{Name: name, Colors: p}, nil
}

// Default returns the default theme.
func Default() Theme {
	return Theme{Name: DefaultName, Colors: builtins[DefaultName]}
}

// Names returns all registered theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
