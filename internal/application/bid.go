package application

import (
	"context"
	"errors"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/domain/bid"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type BidService struct {
	Repos *repository.Repos
	pub   *publisher
	log   *logrus.Logger
}

func NewBidService(repos *repository.Repos, feed changefeed.Broker, log *logrus.Logger) *BidService {
	return &BidService{
		Repos: repos,
		pub:   newPublisher(feed, log),
		log:   log,
	}
}

// Submit stores a new pending bid by actor on an open ticket. A bidder
// gets one bid per ticket and may not bid on a ticket they own.
func (s *BidService) Submit(ctx context.Context, actor, ticketID string, input bid.SubmitBidInput) (bid.Bid, error) {
	const op = "BidService.Submit"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor, "ticket_id": ticketID})

	if actor == "" {
		return bid.Bid{}, apperrors.ErrUnauthenticated
	}
	if err := input.Normalize(); err != nil {
		return bid.Bid{}, err
	}

	t, err := s.Repos.Ticket.GetByID(ctx, ticketID)
	if err != nil {
		if repository.IsNotFound(err) {
			return bid.Bid{}, apperrors.ErrTicketNotFound
		}
		log.WithError(err).Error("failed to load ticket")
		return bid.Bid{}, apperrors.ErrSubmissionFailed.Wrap(err)
	}
	if t.IsOwner(actor) {
		return bid.Bid{}, apperrors.ErrForbidden.WithMessage("cannot bid on your own ticket")
	}
	if t.Status != ticket.StatusOpen {
		return bid.Bid{}, apperrors.ErrTicketClosed
	}

	_, err = s.Repos.Bid.FindByTicketAndBidder(ctx, ticketID, actor)
	switch {
	case err == nil:
		return bid.Bid{}, apperrors.ErrDuplicateBid
	case !repository.IsNotFound(err):
		log.WithError(err).Error("failed to check existing bid")
		return bid.Bid{}, apperrors.ErrSubmissionFailed.Wrap(err)
	}

	b := &bid.Bid{
		TicketID:       ticketID,
		BidderID:       actor,
		Amount:         input.Amount,
		DeliveryDays:   input.DeliveryDays,
		Message:        input.Message,
		PortfolioLinks: datatypes.JSONSlice[string](input.PortfolioLinks),
	}
	if err := s.Repos.Bid.Create(ctx, b); err != nil {
		if repository.IsDuplicate(err) {
			return bid.Bid{}, apperrors.ErrDuplicateBid
		}
		log.WithError(err).Error("failed to store bid")
		return bid.Bid{}, apperrors.ErrSubmissionFailed.Wrap(err)
	}
	s.pub.bid(ctx, changefeed.OpInsert, *b)

	log.WithField("bid_id", b.ID).Info("bid submitted")
	return *b, nil
}

// ListVisible returns the ticket's bids as viewer may see them, newest
// first. An empty viewer is anonymous and sees nothing.
func (s *BidService) ListVisible(ctx context.Context, viewer, ticketID string) ([]bid.Bid, error) {
	t, err := s.Repos.Ticket.GetByID(ctx, ticketID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}
	if viewer == "" {
		return []bid.Bid{}, nil
	}
	all, err := s.Repos.Bid.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return bid.VisibleBids(all, t.CreatedBy, viewer), nil
}

func (s *BidService) Accept(ctx context.Context, actor, bidID string) (bid.Bid, error) {
	return s.decide(ctx, actor, bidID, bid.StatusAccepted)
}

func (s *BidService) Reject(ctx context.Context, actor, bidID string) (bid.Bid, error) {
	return s.decide(ctx, actor, bidID, bid.StatusRejected)
}

// decide moves a pending bid to a terminal status. Accepting also moves
// the open ticket to in_progress in the same transaction, so at most one
// bid per ticket is ever accepted. The pending and open checks are
// repeated inside the writes.
func (s *BidService) decide(ctx context.Context, actor, bidID string, to bid.Status) (bid.Bid, error) {
	const op = "BidService.decide"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor, "bid_id": bidID, "to": to})

	if actor == "" {
		return bid.Bid{}, apperrors.ErrUnauthenticated
	}
	b, err := s.Repos.Bid.GetByID(ctx, bidID)
	if err != nil {
		if repository.IsNotFound(err) {
			return bid.Bid{}, apperrors.ErrBidNotFound
		}
		log.WithError(err).Error("failed to load bid")
		return bid.Bid{}, apperrors.ErrUpdateFailed.Wrap(err)
	}
	t, err := s.Repos.Ticket.GetByID(ctx, b.TicketID)
	if err != nil {
		if repository.IsNotFound(err) {
			return bid.Bid{}, apperrors.ErrTicketNotFound
		}
		log.WithError(err).Error("failed to load ticket")
		return bid.Bid{}, apperrors.ErrUpdateFailed.Wrap(err)
	}
	if !t.IsOwner(actor) {
		return bid.Bid{}, apperrors.ErrForbidden
	}
	if err := bid.Transition(b.Status, to); err != nil {
		return bid.Bid{}, err
	}
	if to == bid.StatusAccepted && t.Status != ticket.StatusOpen {
		return bid.Bid{}, apperrors.ErrInvalidTransition.WithMessage("ticket is no longer open")
	}

	var (
		updated       bid.Bid
		updatedTicket ticket.Ticket
	)
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		updated, err = tx.Bid.UpdateStatus(ctx, b.ID, bid.StatusPending, to)
		if err != nil {
			return err
		}
		if to != bid.StatusAccepted {
			return nil
		}
		updatedTicket, err = tx.Ticket.UpdateStatus(ctx, t.ID, ticket.StatusOpen, ticket.StatusInProgress)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrConditionFailed) {
			return bid.Bid{}, apperrors.ErrInvalidTransition.WithMessage("bid or ticket changed concurrently")
		}
		log.WithError(err).Error("failed to update bid status")
		return bid.Bid{}, apperrors.ErrUpdateFailed.Wrap(err)
	}

	s.pub.bid(ctx, changefeed.OpUpdate, updated)
	if to == bid.StatusAccepted {
		s.pub.ticket(ctx, changefeed.OpUpdate, updatedTicket)
	}

	log.Info("bid status updated")
	return updated, nil
}
