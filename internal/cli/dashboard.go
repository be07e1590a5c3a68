package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/metrics"
	"github.com/BotCoder254/Terminal-Decorator/internal/refresh"
	"github.com/BotCoder254/Terminal-Decorator/internal/render"
)

// dashboardCommand implements the dashboard command logic.
func dashboardCommand(interval time.Duration, once bool) error {
	cfg, th, err := setup()
	if err != nil {
		return err
	}

	log := newLogger()
	provider := metrics.NewProvider(log)
	renderer := render.NewRenderer(th, log).WithTitle(cfg.Dashboard.Title)

	sched := refresh.NewScheduler(provider, renderer, os.Stdout, resolveInterval(interval, cfg), log)

	if once {
		return sched.RunOnce(context.Background())
	}

	if hostname, err := os.Hostname(); err == nil {
		sched = sched.WithWindowTitle("termdec: " + hostname)
	}

	// SIGINT/SIGTERM cancel the loop so the terminal is left clean
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return sched.Run(ctx)
}
