package theme

import (
	"sort"
	"testing"

	"github.com/BotCoder254/Terminal-Decorator/internal/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names := Names()

	assert.Len(t, names, 5)
	assert.True(t, sort.StringsAreSorted(names), "names should be sorted")

	for _, want := range []string{"default", "dark", "minimal", "neon", "ocean"} {
		assert.Contains(t, names, want)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			th, err := ByName(name)

			require.NoError(t, err)
			assert.Equal(t, name, th.Name)
			assert.NotEmpty(t, th.Colors.Primary)
			assert.NotEmpty(t, th.Colors.Success)
			assert.NotEmpty(t, th.Colors.Accent)
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("solarized")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), `"solarized"`)
	// The suggestion should tell the user what IS available
	assert.Contains(t, err.Error(), "default")
}

func TestDefault(t *testing.T) {
	th := Default()

	assert.Equal(t, DefaultName, th.Name)
	assert.Equal(t, lipgloss.Color("#4B9CD3"), th.Colors.Primary)
}

func TestPalettesComplete(t *testing.T) {
	// Every theme must populate every role; a zero color would render
	// as an empty foreground and silently lose the styling.
	for name, p := range builtins {
		t.Run(name, func(t *testing.T) {
			roles := map[string]lipgloss.Color{
				"primary":    p.Primary,
				"secondary":  p.Secondary,
				"success":    p.Success,
				"error":      p.Error,
				"warning":    p.Warning,
				"info":       p.Info,
				"text":       p.Text,
				"muted":      p.Muted,
				"background": p.Background,
				"border":     p.Border,
				"accent":     p.Accent,
			}
			for role, c := range roles {
				assert.NotEmpty(t, c, "role %s should have a color", role)
			}
		})
	}
}

func TestPaletteValues(t *testing.T) {
	tests := []struct {
		theme string
		pick  func(Palette) lipgloss.Color
		want  lipgloss.Color
	}{
		{"default", func(p Palette) lipgloss.Color { return p.Success }, "#2ECC71"},
		{"dark", func(p Palette) lipgloss.Color { return p.Background }, "#282C34"},
		{"neon", func(p Palette) lipgloss.Color { return p.Accent }, "#FF00FF"},
		{"minimal", func(p Palette) lipgloss.Color { return p.Text }, "#000000"},
		{"ocean", func(p Palette) lipgloss.Color { return p.Primary }, "#006994"},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			th, err := ByName(tt.theme)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.pick(th.Colors))
		})
	}
}

func TestStyled(t *testing.T) {
	c := lipgloss.Color("#4B9CD3")

	tests := []struct {
		name  string
		font  FontStyle
		check func(t *testing.T, s lipgloss.Style)
	}{
		{
			name: "normal",
			font: FontNormal,
			check: func(t *testing.T, s lipgloss.Style) {
				assert.False(t, s.GetBold())
				assert.False(t, s.GetItalic())
			},
		},
		{
			name: "bold",
			font: FontBold,
			check: func(t *testing.T, s lipgloss.Style) {
				assert.True(t, s.GetBold())
			},
		},
		{
			name: "dim",
			font: FontDim,
			check: func(t *testing.T, s lipgloss.Style) {
				assert.True(t, s.GetFaint())
			},
		},
		{
			name: "italic",
			font: FontItalic,
			check: func(t *testing.T, s lipgloss.Style) {
				assert.True(t, s.GetItalic())
			},
		},
		{
			name: "underline",
			font: FontUnderline,
			check: func(t *testing.T, s lipgloss.Style) {
				assert.True(t, s.GetUnderline())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Styled(c, tt.font)
			assert.Equal(t, c, s.GetForeground())
			tt.check(t, s)
		})
	}
}
