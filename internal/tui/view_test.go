package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripANSI(s string) string {
	// Simple ANSI stripper for testing
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func TestViewWaiting(t *testing.T) {
	m := testModel()

	view := stripANSI(m.View())
	assert.Contains(t, view, "sampling system metrics")
	assert.NotContains(t, view, "System Monitor")
}

func TestViewQuitting(t *testing.T) {
	m := testModel()
	m.quitting = true

	assert.Equal(t, "", m.View())
}

func TestViewDashboard(t *testing.T) {
	m := testModel()

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = newModel.(Model)
	newModel, _ = m.Update(snapshotMsg{snap: testSnapshot(), time: time.Now()})
	m = newModel.(Model)
	newModel, _ = m.Update(snapshotMsg{snap: testSnapshot(), time: time.Now()})
	m = newModel.(Model)

	view := stripANSI(m.View())
	lines := strings.Split(view, "\n")

	// 9 frame lines, CPU history graph, footer
	require.Len(t, lines, 11)
	assert.Contains(t, lines[0], "System Monitor")
	assert.Contains(t, lines[1], "web-01")
	assert.True(t, strings.HasPrefix(lines[9], "CPU"), "graph line: %q", lines[9])
	assert.Contains(t, lines[9], "▅▅", "two equal samples map to the middle level")
	assert.Equal(t, "q quit | r refresh | updated just now", lines[10])
}

func TestViewGraphNeedsTwoSamples(t *testing.T) {
	m := testModel()

	newModel, _ := m.Update(snapshotMsg{snap: testSnapshot(), time: time.Now()})
	m = newModel.(Model)

	view := stripANSI(m.View())
	lines := strings.Split(view, "\n")

	// 9 frame lines plus footer, no graph yet
	require.Len(t, lines, 10)
	assert.Contains(t, lines[9], "q quit")
}
