package tui

import (
	"fmt"
	"strings"

	"github.com/BotCoder254/Terminal-Decorator/internal/render"
	"github.com/charmbracelet/lipgloss"
)

// graphLabelWidth matches the metric label column in the dashboard frame.
const graphLabelWidth = 6

// minGraphWidth is the narrowest CPU graph worth drawing.
const minGraphWidth = 10

// View renders the dashboard, or the waiting spinner before the first sample.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snap == nil {
		return m.renderWaiting()
	}
	return m.renderDashboard()
}

// renderWaiting shows the spinner until the first snapshot lands.
func (m Model) renderWaiting() string {
	th := m.renderer.Theme()
	text := lipgloss.NewStyle().
		Foreground(th.Colors.Muted).
		Render("sampling system metrics")

	return "\n  " + m.spinner.View() + " " + text + "\n"
}

// renderDashboard renders the shared frame plus the CPU history graph.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderer.Dashboard(m.snap))

	if graph := m.renderGraph(); graph != "" {
		b.WriteString(graph)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderGraph renders the CPU history sparkline, aligned with the metric bars
// above it. Returns empty until at least two samples exist.
func (m Model) renderGraph() string {
	width := m.graphWidth()
	data := m.history.Last(width)
	if len(data) < 2 {
		return ""
	}

	th := m.renderer.Theme()
	label := lipgloss.NewStyle().
		Foreground(th.Colors.Text).
		Bold(true).
		Render(fmt.Sprintf("%-*s", graphLabelWidth, "CPU"))

	return label + " " + m.renderer.Sparkline(data, width)
}

// graphWidth determines how many history points fit the current terminal.
func (m Model) graphWidth() int {
	width := m.width
	if width == 0 {
		width = render.FallbackWidth
	}

	// Label column plus surrounding padding
	w := width - graphLabelWidth - 4
	if w < minGraphWidth {
		w = minGraphWidth
	}
	if w > DefaultHistorySize {
		w = DefaultHistorySize
	}
	return w
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	var updateText string
	switch s := m.SecondsSinceUpdate(); s {
	case 0:
		updateText = "updated just now"
	case 1:
		updateText = "updated 1s ago"
	default:
		updateText = fmt.Sprintf("updated %ds ago", s)
	}

	hints := []string{"q quit", "r refresh", updateText}

	th := m.renderer.Theme()
	return lipgloss.NewStyle().
		Foreground(th.Colors.Muted).
		Render(strings.Join(hints, " | "))
}
