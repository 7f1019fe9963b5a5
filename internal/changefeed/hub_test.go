package changefeed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bidEvent(t *testing.T, id, ticketID string) Event {
	t.Helper()
	ev, err := NewEvent(TableBids, OpInsert, id, map[string]string{"ticket_id": ticketID}, map[string]string{"id": id})
	require.NoError(t, err)
	return ev
}

func recv(t *testing.T, s *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-s.Events():
		require.True(t, ok, "subscription closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestFilterMatch(t *testing.T) {
	ev := bidEvent(t, "b1", "t1")

	assert.True(t, Filter{Table: TableBids}.Match(ev))
	assert.True(t, Filter{Table: TableBids, Column: "ticket_id", Value: "t1"}.Match(ev))
	assert.True(t, Filter{Table: TableBids, Column: "id", Value: "b1"}.Match(ev))
	assert.False(t, Filter{Table: TableBids, Column: "ticket_id", Value: "t2"}.Match(ev))
	assert.False(t, Filter{Table: TableTickets}.Match(ev))
}

func TestHubDeliversOnlyMatchingEvents(t *testing.T) {
	hub := NewHub(8)
	defer hub.Close()

	sub, err := hub.Subscribe(context.Background(), Filter{Table: TableBids, Column: "ticket_id", Value: "t1"})
	require.NoError(t, err)

	require.NoError(t, hub.Publish(context.Background(), bidEvent(t, "other", "t2")))
	require.NoError(t, hub.Publish(context.Background(), bidEvent(t, "mine", "t1")))

	ev := recv(t, sub)
	assert.Equal(t, "mine", ev.ID)

	var rec map[string]string
	require.NoError(t, ev.Decode(&rec))
	assert.Equal(t, "mine", rec["id"])

	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestCancelReleasesSlot(t *testing.T) {
	hub := NewHub(8)
	sub, err := hub.Subscribe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, hub.Len())

	sub.Cancel()
	sub.Cancel()

	assert.Equal(t, 0, hub.Len())
	_, ok := <-sub.Events()
	assert.False(t, ok)
	assert.NoError(t, sub.Err())
}

func TestContextCancelReleasesSlot(t *testing.T) {
	hub := NewHub(8)
	ctx, cancel := context.WithCancel(context.Background())
	sub, err := hub.Subscribe(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription not released after context cancel")
	}
	assert.Equal(t, 0, hub.Len())
}

func TestSlowConsumerIsDropped(t *testing.T) {
	hub := NewHub(1)
	sub, err := hub.Subscribe(context.Background())
	require.NoError(t, err)

	hub.Dispatch(bidEvent(t, "b1", "t1"))
	hub.Dispatch(bidEvent(t, "b2", "t1"))

	assert.Equal(t, 0, hub.Len())
	assert.ErrorIs(t, sub.Err(), ErrSlowConsumer)

	ev, ok := <-sub.Events()
	assert.True(t, ok, "buffered event is still readable")
	assert.Equal(t, "b1", ev.ID)
}

func TestResetAndClose(t *testing.T) {
	hub := NewHub(4)
	a, _ := hub.Subscribe(context.Background())
	hub.Reset(ErrFeedInterrupted)
	assert.ErrorIs(t, a.Err(), ErrFeedInterrupted)

	b, _ := hub.Subscribe(context.Background())
	require.NoError(t, hub.Close())
	assert.ErrorIs(t, b.Err(), ErrClosed)

	_, err := hub.Subscribe(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, hub.Publish(context.Background(), bidEvent(t, "x", "t")), ErrClosed)
}

func TestEncodeNotifyStripsLargeRecords(t *testing.T) {
	small := bidEvent(t, "b1", "t1")
	payload, err := encodeNotify(small)
	require.NoError(t, err)
	assert.Contains(t, payload, `"record"`)

	big, err := NewEvent(TableBids, OpUpdate, "b2", map[string]string{"ticket_id": "t1"},
		map[string]string{"message": strings.Repeat("x", maxNotifyPayload)})
	require.NoError(t, err)
	payload, err = encodeNotify(big)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(payload), maxNotifyPayload)
	assert.Contains(t, payload, `"partial":true`)
	assert.NotContains(t, payload, `"record"`)
}
