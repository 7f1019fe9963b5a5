package application

import (
	"context"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/domain/gig"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/sirupsen/logrus"
)

type GigService struct {
	Repos *repository.Repos
	log   *logrus.Logger
}

func NewGigService(repos *repository.Repos, log *logrus.Logger) *GigService {
	return &GigService{
		Repos: repos,
		log:   log,
	}
}

func (s *GigService) Categories() []string {
	out := make([]string, len(gig.Categories))
	copy(out, gig.Categories)
	return out
}

// Create lists a new gig offered by actor.
func (s *GigService) Create(ctx context.Context, actor string, input gig.CreateGigInput) (gig.Gig, error) {
	const op = "GigService.Create"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor})

	if actor == "" {
		return gig.Gig{}, apperrors.ErrUnauthenticated
	}
	if err := input.Normalize(); err != nil {
		return gig.Gig{}, err
	}

	g := &gig.Gig{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Price:        input.Price,
		DeliveryTime: input.DeliveryTime,
		Images:       input.Images(),
		FreelancerID: actor,
	}
	if err := s.Repos.Gig.Create(ctx, g); err != nil {
		log.WithError(err).Error("failed to store gig")
		return gig.Gig{}, apperrors.ErrSubmissionFailed.WithMessage("failed to create gig").Wrap(err)
	}

	log.WithField("gig_id", g.ID).Info("gig created")
	return *g, nil
}

func (s *GigService) List(ctx context.Context, filter gig.ListFilter) ([]gig.Gig, error) {
	return s.Repos.Gig.List(ctx, filter)
}

func (s *GigService) Get(ctx context.Context, id string) (gig.Gig, error) {
	g, err := s.Repos.Gig.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return gig.Gig{}, apperrors.ErrGigNotFound
		}
		return gig.Gig{}, err
	}
	return g, nil
}
