package application

import (
	"context"
	"time"

	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/domain/bid"
	"github.com/linskybing/ticketboard/internal/domain/comment"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// resetter is implemented by brokers that can drop their local
// subscribers so they resync from the store.
type resetter interface {
	Reset(err error)
}

// publisher emits change events after a write has committed. The write is
// already stored, so publishing is detached from the caller's context and
// a failure is not returned. When an event cannot be delivered, local
// subscribers are reset with ErrFeedInterrupted and reload from the store.
type publisher struct {
	feed changefeed.Broker
	log  *logrus.Logger
}

func newPublisher(feed changefeed.Broker, log *logrus.Logger) *publisher {
	return &publisher{feed: feed, log: log}
}

func (p *publisher) publish(ctx context.Context, table string, op changefeed.Op, id string, keys map[string]string, record any) {
	if p == nil || p.feed == nil {
		return
	}
	log := p.log.WithFields(logrus.Fields{"table": table, "op": op, "id": id})
	ev, err := changefeed.NewEvent(table, op, id, keys, record)
	if err != nil {
		log.WithError(err).Error("failed to encode change event")
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.feed.Publish(ctx, ev); err != nil {
		log.WithError(err).Error("failed to publish change event, resetting subscribers")
		if r, ok := p.feed.(resetter); ok {
			r.Reset(changefeed.ErrFeedInterrupted)
		}
	}
}

func (p *publisher) ticket(ctx context.Context, op changefeed.Op, t ticket.Ticket) {
	p.publish(ctx, changefeed.TableTickets, op, t.ID, map[string]string{"created_by": t.CreatedBy}, t)
}

func (p *publisher) bid(ctx context.Context, op changefeed.Op, b bid.Bid) {
	p.publish(ctx, changefeed.TableBids, op, b.ID, map[string]string{
		"ticket_id": b.TicketID,
		"bidder_id": b.BidderID,
	}, b)
}

func (p *publisher) comment(ctx context.Context, c comment.Comment) {
	p.publish(ctx, changefeed.TableComments, changefeed.OpInsert, c.ID, map[string]string{"ticket_id": c.TicketID}, c)
}
