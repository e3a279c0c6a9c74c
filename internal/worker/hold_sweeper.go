package worker

import (
	"context"
	"fmt"
	"time"

	"cinema-reservation/internal/data/repository"
	"cinema-reservation/pkg/lock"
	"cinema-reservation/pkg/utils"

	"go.uber.org/zap"
)

const sweeperLeaseKey = "cinema:hold-sweeper:lease"

// SweepResult summarizes one sweep.
type SweepResult struct {
	Skipped  bool
	Released int64
	Purged   int64
}

// HoldSweeper periodically releases holds whose window has elapsed and
// deletes old finished hold rows.
type HoldSweeper struct {
	holds     repository.HoldRepository
	locker    lock.Locker
	clock     utils.Clock
	interval  time.Duration
	retention time.Duration
	log       *zap.Logger
}

func NewHoldSweeper(holds repository.HoldRepository, locker lock.Locker, clock utils.Clock, config utils.BookingConfig, log *zap.Logger) *HoldSweeper {
	interval := config.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	return &HoldSweeper{
		holds:     holds,
		locker:    locker,
		clock:     clock,
		interval:  interval,
		retention: config.HoldRetention,
		log:       log.With(zap.String("worker", "hold_sweeper")),
	}
}

// Start blocks until ctx is cancelled.
func (w *HoldSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("Hold sweeper started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Hold sweeper stopped")
			return
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil {
				w.log.Error("Hold sweep failed, retrying next tick", zap.Error(err))
			}
		}
	}
}

// Sweep runs one pass. Only the replica holding the lease does any work.
func (w *HoldSweeper) Sweep(ctx context.Context) (result SweepResult, err error) {
	acquired, err := w.locker.Acquire(ctx, sweeperLeaseKey, w.interval)
	if err != nil {
		return SweepResult{}, err
	}
	if !acquired {
		w.log.Debug("Sweep skipped, lease held by another replica")
		return SweepResult{Skipped: true}, nil
	}

	// A successful sweep keeps the lease until it lapses after one interval;
	// a failed one hands it back so any replica can retry on its next tick.
	defer func() {
		if err != nil {
			_ = w.locker.Release(context.WithoutCancel(ctx), sweeperLeaseKey)
		}
	}()

	now := w.clock.Now()

	result.Released, err = w.holds.ExpireStale(ctx, now)
	if err != nil {
		return result, fmt.Errorf("expire stale holds: %w", err)
	}

	if w.retention > 0 {
		result.Purged, err = w.holds.PurgeOlderThan(ctx, now.Add(-w.retention))
		if err != nil {
			return result, fmt.Errorf("purge old holds: %w", err)
		}
	}

	if result.Released > 0 || result.Purged > 0 {
		w.log.Info("Hold sweep completed",
			zap.Int64("released", result.Released),
			zap.Int64("purged", result.Purged),
		)
	}

	return result, nil
}
