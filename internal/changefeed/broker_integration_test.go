//go:build integration

package changefeed_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/testutils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func next(t *testing.T, sub *changefeed.Subscription) changefeed.Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "subscription ended: %v", sub.Err())
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return changefeed.Event{}
}

type row struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func exerciseBroker(t *testing.T, b changefeed.Broker) {
	ctx := context.Background()
	sub, err := b.Subscribe(ctx, changefeed.Filter{Table: changefeed.TableBids, Column: "ticket_id", Value: "t1"})
	require.NoError(t, err)
	defer sub.Cancel()

	other, err := changefeed.NewEvent(changefeed.TableBids, changefeed.OpInsert, "b0", map[string]string{"ticket_id": "t2"}, row{ID: "b0"})
	require.NoError(t, err)
	require.NoError(t, b.Publish(ctx, other))

	ev, err := changefeed.NewEvent(changefeed.TableBids, changefeed.OpInsert, "b1", map[string]string{"ticket_id": "t1"}, row{ID: "b1", Message: "hi"})
	require.NoError(t, err)
	require.NoError(t, b.Publish(ctx, ev))

	got := next(t, sub)
	assert.Equal(t, "b1", got.ID)
	var r row
	require.NoError(t, got.Decode(&r))
	assert.Equal(t, "hi", r.Message)
}

func TestPostgresBroker(t *testing.T) {
	gdb, dsn := testutils.SetupPostgres(t)
	b, err := changefeed.NewPostgresBroker(gdb, dsn, "row_changes_test", changefeed.NewHub(16), quietLogger())
	require.NoError(t, err)
	defer b.Close()

	exerciseBroker(t, b)
}

func TestPostgresBrokerLargeRecordArrivesPartial(t *testing.T) {
	gdb, dsn := testutils.SetupPostgres(t)
	b, err := changefeed.NewPostgresBroker(gdb, dsn, "row_changes_big", changefeed.NewHub(16), quietLogger())
	require.NoError(t, err)
	defer b.Close()

	ctx := context.Background()
	sub, err := b.Subscribe(ctx, changefeed.Filter{Table: changefeed.TableBids})
	require.NoError(t, err)
	defer sub.Cancel()

	ev, err := changefeed.NewEvent(changefeed.TableBids, changefeed.OpUpdate, "b1", map[string]string{"ticket_id": "t1"},
		row{ID: "b1", Message: strings.Repeat("x", 10000)})
	require.NoError(t, err)
	require.NoError(t, b.Publish(ctx, ev))

	got := next(t, sub)
	assert.True(t, got.Partial)
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, "t1", got.Keys["ticket_id"])
}

func TestRedisBroker(t *testing.T) {
	client := testutils.SetupRedis(t)
	b := changefeed.NewRedisBroker(client, "row_changes_test", changefeed.NewHub(16), quietLogger())
	defer b.Close()

	// SUBSCRIBE is issued asynchronously; give it a moment before publishing.
	time.Sleep(500 * time.Millisecond)
	exerciseBroker(t, b)
}
