// Package tui implements the interactive dashboard started by 'termdec top'.
// It wraps the shared frame renderer in a Bubble Tea program and adds a
// scrolling CPU history graph on top of the periodic snapshot loop.
package tui

import (
	"context"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/metrics"
	"github.com/BotCoder254/Terminal-Decorator/internal/render"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultInterval is the refresh cadence used when none is configured.
const DefaultInterval = 2 * time.Second

// sampleTimeout bounds a single collection so a stuck probe cannot stall the
// program past the next tick for long.
const sampleTimeout = 5 * time.Second

// spinnerFrames is the animation shown while waiting for the first snapshot.
var spinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// Sampler produces metric snapshots for the dashboard.
type Sampler interface {
	Sample(ctx context.Context) (*metrics.Snapshot, error)
}

// Model is the Bubble Tea model for the interactive dashboard.
type Model struct {
	sampler  Sampler
	renderer *render.Renderer
	interval time.Duration

	snap       *metrics.Snapshot
	history    *History
	lastUpdate time.Time

	width   int
	height  int
	spinner spinner.Model

	quitting bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries a fresh metrics sample.
type snapshotMsg struct {
	snap *metrics.Snapshot
	time time.Time
}

// sampleFailedMsg reports a failed collection attempt.
type sampleFailedMsg struct {
	err error
}

// NewModel creates a dashboard model that samples through sampler and renders
// frames through renderer every interval.
func NewModel(sampler Sampler, renderer *render.Renderer, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}

	th := renderer.Theme()
	sp := spinner.New()
	sp.Spinner = spinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(th.Colors.Secondary)

	return Model{
		sampler:  sampler,
		renderer: renderer,
		interval: interval,
		history:  NewHistory(DefaultHistorySize),
		spinner:  sp,
	}
}

// Init starts the tick timer, the first collection and the waiting spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.sampleCmd(),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.sampleCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.sampleCmd())

	case snapshotMsg:
		m.snap = msg.snap
		m.lastUpdate = msg.time
		m.history.Push(msg.snap.CPUPercent)

	case sampleFailedMsg:
		// Keep showing the previous snapshot; a stale frame beats a blank one.

	case spinner.TickMsg:
		if m.snap == nil {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleCmd returns a command that collects one snapshot off the update loop.
func (m Model) sampleCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sampleTimeout)
		defer cancel()

		snap, err := m.sampler.Sample(ctx)
		if err != nil {
			return sampleFailedMsg{err: err}
		}
		return snapshotMsg{snap: snap, time: time.Now()}
	}
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// successful collection.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
