package changefeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"
	"github.com/sirupsen/logrus"
)

// RedisBroker relays events over a redis pub/sub channel.
type RedisBroker struct {
	hub     *Hub
	client  rueidis.Client
	channel string
	log     *logrus.Entry

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRedisBroker(client rueidis.Client, channel string, hub *Hub, log *logrus.Logger) *RedisBroker {
	ctx, cancel := context.WithCancel(context.Background())
	b := &RedisBroker{
		hub:     hub,
		client:  client,
		channel: channel,
		log:     log.WithField("component", "changefeed.redis"),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go b.run(ctx)
	return b
}

func (b *RedisBroker) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	cmd := b.client.B().Publish().Channel(b.channel).Message(string(payload)).Build()
	return b.client.Do(ctx, cmd).Error()
}

func (b *RedisBroker) Subscribe(ctx context.Context, filters ...Filter) (*Subscription, error) {
	return b.hub.Subscribe(ctx, filters...)
}

func (b *RedisBroker) Reset(err error) {
	b.hub.Reset(err)
}

func (b *RedisBroker) Close() error {
	b.cancel()
	<-b.done
	return b.hub.Close()
}

func (b *RedisBroker) run(ctx context.Context) {
	defer close(b.done)
	backoff := 500 * time.Millisecond

	for {
		err := b.client.Receive(ctx, b.client.B().Subscribe().Channel(b.channel).Build(), func(msg rueidis.PubSubMessage) {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Message), &ev); err != nil {
				b.log.WithError(err).Warn("dropping undecodable message")
				return
			}
			b.hub.Dispatch(ev)
		})
		if ctx.Err() != nil {
			return
		}
		b.log.WithError(err).Warn("subscription dropped, resetting subscribers")
		b.hub.Reset(ErrFeedInterrupted)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if backoff < 10*time.Second {
			backoff *= 2
		}
	}
}
