package changefeed

// Subscription is a live, cancellable stream of events. The Events channel
// is closed when the subscription ends; Err then reports why (nil after
// Cancel).
type Subscription struct {
	id      uint64
	hub     *Hub
	filters []Filter
	ch      chan Event
	done    chan struct{}
	err     error
}

func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Cancel releases the subscription slot. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.hub.remove(s)
}

// Done is closed once the subscription has ended.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Err blocks until the subscription ends and returns the reason.
func (s *Subscription) Err() error {
	<-s.done
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	return s.err
}

func (s *Subscription) matches(ev Event) bool {
	if len(s.filters) == 0 {
		return true
	}
	for _, f := range s.filters {
		if f.Match(ev) {
			return true
		}
	}
	return false
}

// closeLocked must be called with the hub lock held and the subscription
// already removed from the hub.
func (s *Subscription) closeLocked(err error) {
	s.err = err
	close(s.ch)
	close(s.done)
}
