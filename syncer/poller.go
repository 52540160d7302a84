package syncer

import (
	"context"
	"time"

	"github.com/Sproutly/SPROUT-MOBILE/shared"
)

// Every re-invokes fn on a fixed interval until the context is cancelled.
// This is the one loop shape behind the mirror refresh, the outbox replay
// and the bus-location polling; cancellation is the teardown that screen
// unmounts performed in the app.
func Every(ctx context.Context, name string, interval time.Duration, logger *shared.Logger, fn func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "stopping poll loop", "name", name)
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				logger.Warn(ctx, "poll iteration failed", "name", name, "err", err.Error())
			}
		}
	}
}
