package cron

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Start runs task once immediately and then every interval until ctx is
// done. Failures are logged and the schedule continues.
func Start(ctx context.Context, log *logrus.Logger, name string, interval time.Duration, task func(context.Context) error) {
	entry := log.WithField("task", name)
	go func() {
		entry.WithField("interval", interval.String()).Info("starting background task")

		run := func() {
			if err := task(ctx); err != nil {
				entry.WithError(err).Warn("background task failed")
			}
		}
		run()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				run()
			case <-ctx.Done():
				return
			}
		}
	}()
}
