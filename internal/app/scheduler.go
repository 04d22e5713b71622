package app

import (
	"context"
	"time"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/interfaces"
)

// startSessionSweeper drops sessions idle for longer than ttl on a fixed interval.
func startSessionSweeper(ctx context.Context, sweeper interfaces.SessionSweeper, logger *common.Logger, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Session sweeper: stopped")
			return
		case <-ticker.C:
			sweepSessions(sweeper, logger, ttl)
		}
	}
}

func sweepSessions(sweeper interfaces.SessionSweeper, logger *common.Logger, ttl time.Duration) int {
	start := time.Now()

	removed := sweeper.Sweep(ttl)
	if removed == 0 {
		return 0
	}

	logger.Info().
		Int("removed", removed).
		Dur("ttl", ttl).
		Dur("elapsed", time.Since(start)).
		Msg("Session sweep: complete")
	return removed
}
