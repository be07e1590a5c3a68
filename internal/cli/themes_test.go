package cli

import (
	"testing"

	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/stretchr/testify/assert"
)

func TestPaletteSwatch(t *testing.T) {
	swatch := paletteSwatch(theme.Default().Colors)
	plain := stripANSI(swatch)

	assert.Equal(t, "██ ██ ██ ██ ██ ██ ██", plain, "seven color pairs, space separated")
}

func TestPaletteSwatchSameShapeForAllThemes(t *testing.T) {
	want := stripANSI(paletteSwatch(theme.Default().Colors))

	for _, name := range theme.Names() {
		th, err := theme.ByName(name)
		assert.NoError(t, err)
		assert.Equal(t, want, stripANSI(paletteSwatch(th.Colors)), "theme %s", name)
	}
}
