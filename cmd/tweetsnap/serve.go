package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	snapcron "github.com/goromian/tweetsnap/cron"
	snaphttp "github.com/goromian/tweetsnap/http"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Settings.Addr
	}

	server := &snaphttp.Server{
		Addr:      addr,
		Store:     deps.Store,
		Collector: deps.Collector,
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Logger:    deps.Logger,
	}

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server on %q: %w", addr, err)
	}
	defer server.Close()

	if c.ImportSchedule != "" {
		scheduler := snapcron.NewScheduler(deps.Logger)
		err := scheduler.Add("archive-import", c.ImportSchedule, func(ctx context.Context) error {
			imported, err := importStore(ctx, deps.Store, deps.Archive)
			if err != nil {
				return err
			}
			deps.Logger.Info("archive import finished", "snapshots", imported)
			return nil
		})
		if err != nil {
			return fmt.Errorf("invalid import schedule %q: %w", c.ImportSchedule, err)
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", addr)

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
