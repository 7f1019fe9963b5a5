package application

import (
	"context"
	"errors"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/sirupsen/logrus"
)

type TicketService struct {
	Repos      *repository.Repos
	pub        *publisher
	categories []string
	log        *logrus.Logger
}

func NewTicketService(repos *repository.Repos, feed changefeed.Broker, categories []string, log *logrus.Logger) *TicketService {
	return &TicketService{
		Repos:      repos,
		pub:        newPublisher(feed, log),
		categories: categories,
		log:        log,
	}
}

func (s *TicketService) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *TicketService) Create(ctx context.Context, actor string, input ticket.CreateTicketInput) (ticket.Ticket, error) {
	const op = "TicketService.Create"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor})

	if actor == "" {
		return ticket.Ticket{}, apperrors.ErrUnauthenticated
	}
	deadline, err := input.Normalize(s.categories)
	if err != nil {
		return ticket.Ticket{}, err
	}

	t := &ticket.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Budget:      input.Budget,
		Deadline:    deadline,
		CreatedBy:   actor,
	}
	if err := s.Repos.Ticket.Create(ctx, t); err != nil {
		log.WithError(err).Error("failed to store ticket")
		return ticket.Ticket{}, apperrors.ErrSubmissionFailed.Wrap(err)
	}
	s.pub.ticket(ctx, changefeed.OpInsert, *t)

	log.WithField("ticket_id", t.ID).Info("ticket created")
	return *t, nil
}

func (s *TicketService) ListOpen(ctx context.Context, filter ticket.ListFilter) ([]ticket.Ticket, error) {
	return s.Repos.Ticket.ListOpen(ctx, filter)
}

func (s *TicketService) Get(ctx context.Context, id string) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ticket.Ticket{}, apperrors.ErrTicketNotFound
		}
		return ticket.Ticket{}, err
	}
	return t, nil
}

func (s *TicketService) ListByCreator(ctx context.Context, actor string) ([]ticket.Ticket, error) {
	if actor == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.Repos.Ticket.ListByCreator(ctx, actor)
}

// UpdateStatus applies an owner's manual status change. Only the moves
// allowed by ticket.CanSetManually pass; in_progress is reached through
// BidService.Accept.
func (s *TicketService) UpdateStatus(ctx context.Context, actor, id string, to ticket.Status) (ticket.Ticket, error) {
	const op = "TicketService.UpdateStatus"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor, "ticket_id": id})

	if actor == "" {
		return ticket.Ticket{}, apperrors.ErrUnauthenticated
	}
	if !ticket.ValidStatus(to) {
		return ticket.Ticket{}, apperrors.ErrValidation.WithMessage("unknown status " + string(to))
	}
	t, err := s.Get(ctx, id)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if !t.IsOwner(actor) {
		return ticket.Ticket{}, apperrors.ErrForbidden
	}
	if !ticket.CanSetManually(t.Status, to) {
		return ticket.Ticket{}, apperrors.ErrInvalidTransition.WithMessage(
			"cannot move ticket from " + string(t.Status) + " to " + string(to))
	}

	updated, err := s.Repos.Ticket.UpdateStatus(ctx, id, t.Status, to)
	if err != nil {
		if errors.Is(err, repository.ErrConditionFailed) {
			return ticket.Ticket{}, apperrors.ErrInvalidTransition.WithMessage("ticket status changed concurrently")
		}
		log.WithError(err).Error("failed to update ticket status")
		return ticket.Ticket{}, apperrors.ErrUpdateFailed.Wrap(err)
	}
	s.pub.ticket(ctx, changefeed.OpUpdate, updated)

	log.WithField("status", to).Info("ticket status updated")
	return updated, nil
}
