package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tweet_relay/internal/domain"
	"tweet_relay/internal/source/twitter"
)

// Relayer defines the interface for one relay tick.
type Relayer interface {
	Tick(ctx context.Context) (*domain.TickStats, error)
}

// Scheduler drives the relay cycle: once immediately, then on every timer
// tick. Transient upstream unavailability abandons the tick and waits for the
// next one; every other tick error stops the scheduler. Ticks are assumed to
// finish well within the poll interval, so overlap is not guarded against.
type Scheduler struct {
	relayer  Relayer
	interval time.Duration
	logger   *slog.Logger

	// newTicker is swapped out in tests to drive ticks deterministically.
	newTicker func(time.Duration) (<-chan time.Time, func())
}

func NewScheduler(relayer Relayer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		relayer:  relayer,
		interval: interval,
		logger:   logger.With("component", "scheduler"),
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	if err := s.runTick(ctx); err != nil {
		return err
	}

	tick, stop := s.newTicker(s.interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-tick:
			if err := s.runTick(ctx); err != nil {
				return err
			}
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) error {
	if _, err := s.relayer.Tick(ctx); err != nil {
		if errors.Is(err, twitter.ErrUnavailable) {
			s.logger.Warn("upstream unavailable, tick abandoned", "error", err)
			return nil
		}
		return fmt.Errorf("tick: %w", err)
	}
	return nil
}
