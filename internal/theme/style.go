package theme

import "github.com/charmbracelet/lipgloss"

// FontStyle selects the text attribute applied on top of a palette color.
type FontStyle int

const (
	FontNormal FontStyle = iota
	FontBold
	FontDim
	FontItalic
	FontUnderline
)

// Styled builds a lipgloss style for the given color and font style.
// Rendering honors the active lipgloss color profile, so styles degrade
// to plain text when the profile is Ascii.
func Styled(c lipgloss.Color, f FontStyle) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(c)
	switch f {
	case FontBold:
		s = s.Bold(true)
	case FontDim:
		s = s.Faint(true)
	case FontItalic:
		s = s.Italic(true)
	case FontUnderline:
		s = s.Underline(true)
	}
	return s
}
