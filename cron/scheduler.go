// Package cron schedules periodic collection jobs, such as importing the
// snapshot store into the archive or generating a daily report.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JobTimeout bounds a single job run.
const JobTimeout = 30 * time.Minute

// Job is one scheduled task.
type Job func(ctx context.Context) error

// Scheduler runs named jobs on cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	jobs   map[string]cron.EntryID
	logger *slog.Logger
}

// NewScheduler creates a scheduler. A nil logger falls back to the default.
func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		jobs:   make(map[string]cron.EntryID),
		logger: logger,
	}
}

// Add registers a job under a cron schedule, e.g. "0 7 * * *" for 07:00
// daily. Job failures are logged, not propagated: one bad run must not
// stop the schedule.
func (s *Scheduler) Add(name, schedule string, job Job) error {
	entryID, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), JobTimeout)
		defer cancel()

		begin := time.Now()
		s.logger.Info("job started", "job", name)

		if err := job(ctx); err != nil {
			s.logger.Error("job failed", "job", name, "error", err)
			return
		}
		s.logger.Info("job completed", "job", name, "duration", time.Since(begin))
	})
	if err != nil {
		return err
	}

	s.jobs[name] = entryID
	s.logger.Info("job scheduled", "job", name, "schedule", schedule)
	return nil
}

// Remove drops a scheduled job by name.
func (s *Scheduler) Remove(name string) {
	if entryID, ok := s.jobs[name]; ok {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
	}
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling. The returned context is done once any running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// JobInfo describes one scheduled job.
type JobInfo struct {
	Name    string
	NextRun time.Time
	LastRun time.Time
}

// Jobs returns the currently scheduled jobs.
func (s *Scheduler) Jobs() []JobInfo {
	entries := s.cron.Entries()
	infos := make([]JobInfo, 0, len(s.jobs))

	for name, entryID := range s.jobs {
		for _, entry := range entries {
			if entry.ID == entryID {
				infos = append(infos, JobInfo{
					Name:    name,
					NextRun: entry.Next,
					LastRun: entry.Prev,
				})
				break
			}
		}
	}

	return infos
}
