package render

import (
	"fmt"
	"strings"

	"github.com/BotCoder254/Terminal-Decorator/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	barFilled = '█'
	barEmpty  = '░'
)

// DefaultBarWidth is the character width of the bar body, excluding
// label, brackets, and percentage.
const DefaultBarWidth = 50

// labelWidth aligns the metric labels of the dashboard ("Memory" is the
// widest at six cells).
const labelWidth = 6

// Bar renders a labeled progress bar: `CPU    [████░░░░]  45%`.
// The percentage is floor(value*100/maxValue) clamped to [0,100], and
// the filled cell count is floor(percentage*width/100).
func (r *Renderer) Bar(label string, value, maxValue float64) string {
	return r.bar(label, value, maxValue, DefaultBarWidth)
}

func (r *Renderer) bar(label string, value, maxValue float64, width int) string {
	if width <= 0 {
		return ""
	}

	percent := barPercent(value, maxValue)
	filled := percent * width / 100

	var sb strings.Builder
	sb.Grow(width + 16)
	for i := 0; i < filled; i++ {
		sb.WriteRune(barFilled)
	}
	for i := filled; i < width; i++ {
		sb.WriteRune(barEmpty)
	}

	barStyle := theme.Styled(r.thresholdColor(percent), theme.FontNormal)
	labelStyle := theme.Styled(r.theme.Colors.Text, theme.FontBold)

	return fmt.Sprintf("%s [%s] %s",
		labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label)),
		barStyle.Render(sb.String()),
		fmt.Sprintf("%3d%%", percent))
}

// barPercent converts value/maxValue to a whole percentage, flooring
// the ratio and clamping to [0,100]. A non-positive maxValue reads as
// zero.
func barPercent(value, maxValue float64) int {
	if maxValue <= 0 {
		return 0
	}
	p := int(value * 100 / maxValue)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// thresholdColor maps a percentage to the theme's severity colors:
// up to 60 success, 61-80 warning, above 80 error.
func (r *Renderer) thresholdColor(percent int) lipgloss.Color {
	switch {
	case percent > 80:
		return r.theme.Colors.Error
	case percent > 60:
		return r.theme.Colors.Warning
	default:
		return r.theme.Colors.Success
	}
}
