package cleanup

import (
	"context"
	"time"

	"go.trai.ch/xclean/internal/core/ports"
)

// ZombieSweeper starts a zombie sweep unless one is already running.
type ZombieSweeper interface {
	SweepZombies(ctx context.Context) (<-chan error, bool)
}

// Sweeper requests a zombie sweep on a fixed interval while auto-clean is on.
type Sweeper struct {
	target   ZombieSweeper
	prefs    ports.Preferences
	logger   ports.Logger
	interval time.Duration
}

// NewSweeper creates a Sweeper.
func NewSweeper(target ZombieSweeper, prefs ports.Preferences, logger ports.Logger, interval time.Duration) *Sweeper {
	return &Sweeper{
		target:   target,
		prefs:    prefs,
		logger:   logger,
		interval: interval,
	}
}

// Run ticks until ctx is done. The preference is read on every tick so that
// toggling it takes effect without a restart.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	if !s.prefs.AutoClean() {
		return
	}
	if _, ok := s.target.SweepZombies(ctx); !ok {
		s.logger.Debug("zombie sweep already running, skipping tick")
	}
}
