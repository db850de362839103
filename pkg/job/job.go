// Package job runs named background tasks on fixed intervals.
package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

type Service struct {
	jobs []job
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

// Start launches every registered job. Each job runs once right away and then
// on its interval until the context is cancelled. A panicking run is recovered
// and does not stop the schedule.
func (s *Service) Start(ctx context.Context) {
	for _, j := range s.jobs {
		go run(ctx, j)
	}
}

func run(ctx context.Context, j job) {
	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		err := withRecover(ctx, l, j)
		if err != nil {
			l.Error("job failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
		}
	}
}

func withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}
