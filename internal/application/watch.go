package application

import (
	"context"
	"sync"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/domain/bid"
	"github.com/linskybing/ticketboard/internal/domain/comment"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/sirupsen/logrus"
)

// Snapshot is what one viewer currently sees of a ticket.
type Snapshot struct {
	Ticket   ticket.Ticket     `json:"ticket"`
	Bids     []bid.Bid         `json:"bids"`
	Comments []comment.Comment `json:"comments"`
}

type WatchService struct {
	Repos *repository.Repos
	feed  changefeed.Broker
	log   *logrus.Logger
}

func NewWatchService(repos *repository.Repos, feed changefeed.Broker, log *logrus.Logger) *WatchService {
	return &WatchService{
		Repos: repos,
		feed:  feed,
		log:   log,
	}
}

// Watch starts a live view of ticketID for viewer. It subscribes before
// the bulk fetch so no change committed in between is missed; events that
// overlap the fetch are absorbed by the projections.
func (s *WatchService) Watch(ctx context.Context, viewer, ticketID string) (*TicketWatch, error) {
	if s.feed == nil {
		return nil, changefeed.ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	sub, err := s.feed.Subscribe(ctx,
		changefeed.Filter{Table: changefeed.TableTickets, Column: "id", Value: ticketID},
		changefeed.Filter{Table: changefeed.TableBids, Column: "ticket_id", Value: ticketID},
		changefeed.Filter{Table: changefeed.TableComments, Column: "ticket_id", Value: ticketID},
	)
	if err != nil {
		cancel()
		return nil, err
	}

	w := &TicketWatch{
		repos:   s.Repos,
		log:     s.log.WithFields(logrus.Fields{"ticket_id": ticketID, "viewer": viewer}),
		viewer:  viewer,
		sub:     sub,
		cancel:  cancel,
		updates: make(chan Snapshot, 1),
		done:    make(chan struct{}),
	}
	if err := w.load(ctx, ticketID); err != nil {
		sub.Cancel()
		cancel()
		return nil, err
	}
	w.emit()
	go w.run(ctx)
	return w, nil
}

// TicketWatch is a running live view. Updates delivers the latest
// snapshot; when the consumer lags, older undelivered snapshots are
// replaced by newer ones.
type TicketWatch struct {
	repos  *repository.Repos
	log    *logrus.Entry
	viewer string

	sub    *changefeed.Subscription
	cancel context.CancelFunc

	ticket   ticket.Ticket
	bids     *bid.Projection
	comments *comment.Thread

	updates   chan Snapshot
	done      chan struct{}
	closeOnce sync.Once
	err       error
}

func (w *TicketWatch) Updates() <-chan Snapshot {
	return w.updates
}

// Done is closed when the watch has stopped, either through Close or
// because the subscription ended.
func (w *TicketWatch) Done() <-chan struct{} {
	return w.done
}

// Err reports why the watch stopped. It is nil after Close and after the
// caller's context ends. It must only be called once Done is closed.
func (w *TicketWatch) Err() error {
	return w.err
}

// Close tears the subscription down and waits for the watch to stop.
func (w *TicketWatch) Close() {
	w.closeOnce.Do(func() {
		w.sub.Cancel()
		w.cancel()
	})
	<-w.done
}

func (w *TicketWatch) load(ctx context.Context, ticketID string) error {
	t, err := w.repos.Ticket.GetByID(ctx, ticketID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrTicketNotFound
		}
		return err
	}
	bids, err := w.repos.Bid.ListByTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	comments, err := w.repos.Comment.ListByTicket(ctx, ticketID)
	if err != nil {
		return err
	}

	w.ticket = t
	w.bids = bid.NewProjection(t.CreatedBy, w.viewer)
	w.bids.Seed(bids)
	w.comments = comment.NewThread(comments)
	return nil
}

func (w *TicketWatch) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.updates)

	for ev := range w.sub.Events() {
		changed, err := w.apply(ctx, ev)
		if err != nil {
			w.log.WithError(err).WithField("table", ev.Table).Warn("failed to apply change event")
			continue
		}
		if changed {
			w.emit()
		}
	}
	w.err = w.sub.Err()
	if w.err != nil {
		w.log.WithError(w.err).Info("watch ended")
	}
}

func (w *TicketWatch) apply(ctx context.Context, ev changefeed.Event) (bool, error) {
	switch ev.Table {
	case changefeed.TableBids:
		b, err := decodeOrFetch(ev, func() (bid.Bid, error) { return w.repos.Bid.GetByID(ctx, ev.ID) })
		if err != nil {
			return false, err
		}
		return w.bids.Apply(ev.Op, b), nil

	case changefeed.TableTickets:
		t, err := decodeOrFetch(ev, func() (ticket.Ticket, error) { return w.repos.Ticket.GetByID(ctx, ev.ID) })
		if err != nil {
			return false, err
		}
		if t.Version <= w.ticket.Version {
			return false, nil
		}
		w.ticket = t
		return true, nil

	case changefeed.TableComments:
		c, err := decodeOrFetch(ev, func() (comment.Comment, error) { return w.repos.Comment.GetByID(ctx, ev.ID) })
		if err != nil {
			return false, err
		}
		return w.comments.Add(c), nil
	}
	return false, nil
}

// decodeOrFetch returns the row carried by ev, or re-reads it from the
// store when the event arrived without its record.
func decodeOrFetch[T any](ev changefeed.Event, fetch func() (T, error)) (T, error) {
	if ev.Partial {
		return fetch()
	}
	var v T
	err := ev.Decode(&v)
	return v, err
}

func (w *TicketWatch) emit() {
	snap := Snapshot{
		Ticket:   w.ticket,
		Bids:     w.bids.Bids(),
		Comments: w.comments.Comments(),
	}
	select {
	case <-w.updates:
	default:
	}
	w.updates <- snap
}
