package cli

import (
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/metrics"
	"github.com/BotCoder254/Terminal-Decorator/internal/render"
	"github.com/BotCoder254/Terminal-Decorator/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// topCommand implements the top command logic.
func topCommand(interval time.Duration) error {
	cfg, th, err := setup()
	if err != nil {
		return err
	}

	log := newLogger()
	provider := metrics.NewProvider(log)
	renderer := render.NewRenderer(th, log).WithTitle(cfg.Dashboard.Title)

	model := tui.NewModel(provider, renderer, resolveInterval(interval, cfg))

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
