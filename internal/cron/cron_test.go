package cron

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestStartRunsUntilCancelled(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	Start(ctx, log, "test", 10*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return errors.New("keeps going")
	})

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)
	stopped := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}
