package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// job is a registered personnel job with its run interval.
type job struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// Scheduler drives the recurring personnel jobs. Each job runs on its
// own ticker; a failing or panicking job is logged and retried on the
// next tick rather than taking the scheduler down.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job to run every interval once Start is called.
func (s *Scheduler) AddJob(name string, every time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, every: every, run: run})
	slog.Info("Personnel job registered", "name", name, "interval", every)
}

// Start launches one goroutine per registered job. Every job fires once
// immediately, then on its interval until Stop is called.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	slog.Info("Job scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all job loops and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Job scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	s.execute(s.ctx, j)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(s.ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Personnel job panicked", "name", j.name, "panic", r)
		}
	}()

	start := time.Now()
	if err := j.run(ctx); err != nil {
		slog.Error("Personnel job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Personnel job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time, in registration
// order, and returns the combined error of the runs that failed.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.mu.Lock()
	jobs := make([]job, len(s.jobs))
	copy(jobs, s.jobs)
	s.mu.Unlock()

	var errs []error
	for _, j := range jobs {
		if err := j.run(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", j.name, err))
		}
	}
	return errors.Join(errs...)
}
