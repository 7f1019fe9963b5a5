package changefeed

import (
	"context"
	"sync"
)

// Hub fans events out to in-process subscribers. It is the memory broker
// and the local dispatch stage of the postgres and redis brokers.
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]*Subscription
	nextID uint64
	buffer int
	closed bool
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 64
	}
	return &Hub{
		subs:   make(map[uint64]*Subscription),
		buffer: buffer,
	}
}

func (h *Hub) Publish(_ context.Context, ev Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	h.dispatchLocked(ev)
	return nil
}

// Dispatch delivers ev to every matching subscriber. A subscriber whose
// buffer is full is dropped with ErrSlowConsumer.
func (h *Hub) Dispatch(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.dispatchLocked(ev)
}

func (h *Hub) dispatchLocked(ev Event) {
	for id, s := range h.subs {
		if !s.matches(ev) {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			delete(h.subs, id)
			s.closeLocked(ErrSlowConsumer)
		}
	}
}

func (h *Hub) Subscribe(ctx context.Context, filters ...Filter) (*Subscription, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrClosed
	}
	h.nextID++
	s := &Subscription{
		id:      h.nextID,
		hub:     h,
		filters: append([]Filter(nil), filters...),
		ch:      make(chan Event, h.buffer),
		done:    make(chan struct{}),
	}
	h.subs[s.id] = s
	h.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.Cancel()
		case <-s.done:
		}
	}()
	return s, nil
}

// Reset closes every subscription with err. Used when the upstream feed
// may have lost events and consumers must resync from the store.
func (h *Hub) Reset(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, s := range h.subs {
		delete(h.subs, id)
		s.closeLocked(err)
	}
}

func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	for id, s := range h.subs {
		delete(h.subs, id)
		s.closeLocked(ErrClosed)
	}
	return nil
}

// Len reports the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s.id]; !ok {
		return
	}
	delete(h.subs, s.id)
	s.closeLocked(nil)
}
