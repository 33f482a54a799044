package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce_RunsJobsInOrder(t *testing.T) {
	s := NewScheduler()

	var order []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	assert.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestScheduler_RunOnce_CombinesFailures(t *testing.T) {
	s := NewScheduler()

	errLeave := errors.New("leave query failed")
	errSweep := errors.New("sweep failed")
	ran := false
	s.AddJob("aol_check", time.Hour, func(ctx context.Context) error { return errLeave })
	s.AddJob("daily_summary", time.Hour, func(ctx context.Context) error {
		ran = true
		return nil
	})
	s.AddJob("stale_entry_sweep", time.Hour, func(ctx context.Context) error { return errSweep })

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, errLeave)
	assert.ErrorIs(t, err, errSweep)
	assert.Contains(t, err.Error(), "aol_check")
	assert.Contains(t, err.Error(), "stale_entry_sweep")

	// A failing job does not keep the others from running.
	assert.True(t, ran)
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_StopAfterPanickingJob(t *testing.T) {
	s := NewScheduler()
	s.AddJob("panicky", time.Hour, func(ctx context.Context) error {
		panic("boom")
	})

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop cleanly")
	}
}
