package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"daily-interviewer/internal/observability"
)

// Scheduler runs one job on a cron schedule in local time.
type Scheduler struct {
	cron   *cron.Cron
	expr   string
	job    func(ctx context.Context)
	cancel context.CancelFunc
}

// New validates expr, a standard five-field cron expression or a
// descriptor such as "@daily".
func New(expr string, job func(ctx context.Context)) (*Scheduler, error) {
	if _, err := cron.ParseStandard(expr); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", expr, err)
	}

	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.Local)),
		expr: expr,
		job:  job,
	}, nil
}

// Start schedules the job. It runs with ctx until Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	log := observability.WithFields("schedule", s.expr)

	_, err := s.cron.AddFunc(s.expr, func() {
		log.Info("scheduled job triggered")
		s.job(ctx)
	})
	if err != nil {
		s.cancel()
		return err
	}

	s.cron.Start()
	log.Info("scheduler started")
	return nil
}

// Next is the time of the next run, or zero before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	if s.cancel != nil {
		s.cancel()
	}
	observability.Logger().Info("scheduler stopped")
}
