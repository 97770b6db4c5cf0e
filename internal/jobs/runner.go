package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Job is a named unit of scheduled work.
type Job func(ctx context.Context) error

// Runner executes registered jobs on fixed intervals until its context is
// cancelled. Each job runs once immediately on registration, then on every
// tick; a failed run is counted and logged, never retried early.
type Runner struct {
	ctx context.Context
	log *zap.SugaredLogger
}

func New(ctx context.Context, log *zap.SugaredLogger) *Runner {
	return &Runner{ctx: ctx, log: log}
}

// Every schedules fn under the given name.
func (r *Runner) Every(interval time.Duration, name string, fn Job) {
	go func() {
		r.run(name, fn)

		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-r.ctx.Done():
				r.log.Infow("job stopped", "job", name)
				return
			case <-t.C:
				r.run(name, fn)
			}
		}
	}()
	r.log.Infow("job scheduled", "job", name, "interval", interval)
}

func (r *Runner) run(name string, fn Job) {
	start := time.Now()
	if err := fn(r.ctx); err != nil {
		jobErrors.WithLabelValues(name).Inc()
		r.log.Errorw("job failed", "job", name, "err", err)
	}
	jobRuns.WithLabelValues(name).Inc()
	jobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
