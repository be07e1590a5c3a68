package render

import (
	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Severity classifies a status line.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityError
	SeverityInfo
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// glyph returns the symbol and color for a severity under the theme.
func (s Severity) glyph(p theme.Palette) (string, lipgloss.Color) {
	switch s {
	case SeverityWarning:
		return theme.SymbolWarning, p.Warning
	case SeverityError:
		return theme.SymbolError, p.Error
	case SeverityInfo:
		return theme.SymbolInfo, p.Info
	default:
		return theme.SymbolOK, p.Success
	}
}

// StatusLine renders a severity glyph followed by the message:
//
//	✓ git found in PATH
//	✗ cannot sample metrics
func (r *Renderer) StatusLine(message string, sev Severity) string {
	symbol, color := sev.glyph(r.theme.Colors)
	symbolStyle := theme.Styled(color, theme.FontBold)
	textStyle := theme.Styled(r.theme.Colors.Text, theme.FontNormal)
	return symbolStyle.Render(symbol) + " " + textStyle.Render(message)
}
