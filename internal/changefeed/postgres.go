package changefeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Postgres caps NOTIFY payloads at 8000 bytes.
const maxNotifyPayload = 7900

// PostgresBroker publishes with pg_notify and consumes with LISTEN, so
// every API instance attached to the same database sees every change.
type PostgresBroker struct {
	hub      *Hub
	db       *gorm.DB
	listener *pq.Listener
	channel  string
	log      *logrus.Entry

	cancel context.CancelFunc
	done   chan struct{}
}

func NewPostgresBroker(db *gorm.DB, dsn, channel string, hub *Hub, log *logrus.Logger) (*PostgresBroker, error) {
	entry := log.WithField("component", "changefeed.postgres")

	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			entry.WithError(err).Warn("listener event")
		}
	})
	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &PostgresBroker{
		hub:      hub,
		db:       db,
		listener: listener,
		channel:  channel,
		log:      entry,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go b.run(ctx)
	return b, nil
}

func (b *PostgresBroker) Publish(ctx context.Context, ev Event) error {
	payload, err := encodeNotify(ev)
	if err != nil {
		return err
	}
	return b.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", b.channel, payload).Error
}

func (b *PostgresBroker) Subscribe(ctx context.Context, filters ...Filter) (*Subscription, error) {
	return b.hub.Subscribe(ctx, filters...)
}

// Reset closes every local subscription with err.
func (b *PostgresBroker) Reset(err error) {
	b.hub.Reset(err)
}

func (b *PostgresBroker) Close() error {
	b.cancel()
	<-b.done
	err := b.listener.Close()
	_ = b.hub.Close()
	return err
}

func (b *PostgresBroker) run(ctx context.Context) {
	defer close(b.done)
	ticker := time.NewTicker(90 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-b.listener.Notify:
			if !ok {
				return
			}
			if n == nil {
				// Reconnected; anything sent while down is gone.
				b.log.Warn("listener reconnected, resetting subscribers")
				b.hub.Reset(ErrFeedInterrupted)
				continue
			}
			var ev Event
			if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
				b.log.WithError(err).Warn("dropping undecodable notification")
				continue
			}
			b.hub.Dispatch(ev)
		case <-ticker.C:
			go func() {
				if err := b.listener.Ping(); err != nil {
					b.log.WithError(err).Warn("listener ping failed")
				}
			}()
		}
	}
}

// encodeNotify drops the record when the event would not fit in a NOTIFY
// payload; receivers re-read partial events from the store.
func encodeNotify(ev Event) (string, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return "", err
	}
	if len(payload) <= maxNotifyPayload {
		return string(payload), nil
	}
	ev.Record = nil
	ev.Partial = true
	payload, err = json.Marshal(ev)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
