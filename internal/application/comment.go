package application

import (
	"context"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/domain/comment"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/sirupsen/logrus"
)

type CommentService struct {
	Repos *repository.Repos
	pub   *publisher
	log   *logrus.Logger
}

func NewCommentService(repos *repository.Repos, feed changefeed.Broker, log *logrus.Logger) *CommentService {
	return &CommentService{
		Repos: repos,
		pub:   newPublisher(feed, log),
		log:   log,
	}
}

func (s *CommentService) Add(ctx context.Context, actor, ticketID string, input comment.CreateCommentInput) (comment.Comment, error) {
	const op = "CommentService.Add"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor, "ticket_id": ticketID})

	if actor == "" {
		return comment.Comment{}, apperrors.ErrUnauthenticated
	}
	if err := input.Normalize(); err != nil {
		return comment.Comment{}, err
	}
	if _, err := s.Repos.Ticket.GetByID(ctx, ticketID); err != nil {
		if repository.IsNotFound(err) {
			return comment.Comment{}, apperrors.ErrTicketNotFound
		}
		log.WithError(err).Error("failed to load ticket")
		return comment.Comment{}, apperrors.ErrSubmissionFailed.Wrap(err)
	}

	c := &comment.Comment{
		TicketID: ticketID,
		AuthorID: actor,
		Content:  input.Content,
	}
	if err := s.Repos.Comment.Create(ctx, c); err != nil {
		log.WithError(err).Error("failed to store comment")
		return comment.Comment{}, apperrors.ErrSubmissionFailed.Wrap(err)
	}
	s.pub.comment(ctx, *c)
	return *c, nil
}

func (s *CommentService) List(ctx context.Context, ticketID string) ([]comment.Comment, error) {
	if _, err := s.Repos.Ticket.GetByID(ctx, ticketID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}
	return s.Repos.Comment.ListByTicket(ctx, ticketID)
}
