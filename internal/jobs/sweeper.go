package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"

	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

type sweeper interface {
	Execute(ctx context.Context) (bookinguc.SweepResult, error)
}

// Scheduler runs the overdue-booking sweep on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	sweep   sweeper
	timeout time.Duration
}

func NewScheduler(sweep sweeper, timeout time.Duration) *Scheduler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweep:   sweep,
		timeout: timeout,
	}
}

// Register adds the sweep on a cron expression.
func (s *Scheduler) Register(expr string) error {
	if _, err := s.cron.AddFunc(expr, s.RunOnce); err != nil {
		return errors.Wrapf(err, "schedule sweep %q", expr)
	}
	return nil
}

func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.sweep.Execute(ctx); err != nil {
		slog.Error("overdue sweep failed", "error", err)
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
