package application

import (
	"context"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/domain/community"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/sirupsen/logrus"
)

const topPostsLimit = 50

type CommunityService struct {
	Repos *repository.Repos
	log   *logrus.Logger
}

func NewCommunityService(repos *repository.Repos, log *logrus.Logger) *CommunityService {
	return &CommunityService{
		Repos: repos,
		log:   log,
	}
}

func (s *CommunityService) Create(ctx context.Context, actor string, input community.CreateCommunityInput) (community.Community, error) {
	const op = "CommunityService.Create"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor})

	if actor == "" {
		return community.Community{}, apperrors.ErrUnauthenticated
	}
	if err := input.Normalize(); err != nil {
		return community.Community{}, err
	}

	c := &community.Community{
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   actor,
	}
	if err := s.Repos.Community.Create(ctx, c); err != nil {
		if repository.IsDuplicate(err) {
			return community.Community{}, apperrors.ErrDuplicateCommunity
		}
		log.WithError(err).Error("failed to store community")
		return community.Community{}, apperrors.ErrSubmissionFailed.WithMessage("failed to create community").Wrap(err)
	}

	log.WithField("slug", c.Slug).Info("community created")
	return *c, nil
}

func (s *CommunityService) List(ctx context.Context) ([]community.Community, error) {
	return s.Repos.Community.List(ctx)
}

func (s *CommunityService) Get(ctx context.Context, slug string) (community.Community, error) {
	c, err := s.Repos.Community.GetBySlug(ctx, slug)
	if err != nil {
		if repository.IsNotFound(err) {
			return community.Community{}, apperrors.ErrCommunityNotFound
		}
		return community.Community{}, err
	}
	return c, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, actor, slug string, input community.CreatePostInput) (community.Post, error) {
	const op = "CommunityService.CreatePost"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor, "slug": slug})

	if actor == "" {
		return community.Post{}, apperrors.ErrUnauthenticated
	}
	if err := input.Normalize(); err != nil {
		return community.Post{}, err
	}
	c, err := s.Get(ctx, slug)
	if err != nil {
		return community.Post{}, err
	}

	p := &community.Post{
		CommunityID: c.ID,
		AuthorID:    actor,
		Title:       input.Title,
		Content:     input.Content,
	}
	if err := s.Repos.Community.CreatePost(ctx, p); err != nil {
		log.WithError(err).Error("failed to store post")
		return community.Post{}, apperrors.ErrSubmissionFailed.WithMessage("failed to create post").Wrap(err)
	}

	log.WithField("post_id", p.ID).Info("post created")
	return *p, nil
}

// ListPosts returns a community's posts newest first.
func (s *CommunityService) ListPosts(ctx context.Context, slug string) ([]community.Post, error) {
	c, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.Repos.Community.ListPosts(ctx, c.ID)
}

// TopPosts returns the most upvoted posts across all communities.
func (s *CommunityService) TopPosts(ctx context.Context) ([]community.Post, error) {
	return s.Repos.Community.ListTopPosts(ctx, topPostsLimit)
}

// ToggleVote adds actor's upvote to the post, or removes it when one is
// already there. The vote row and the post's counter change in one
// transaction.
func (s *CommunityService) ToggleVote(ctx context.Context, actor, postID string) (community.VoteResult, error) {
	const op = "CommunityService.ToggleVote"
	log := s.log.WithFields(logrus.Fields{"operation": op, "actor": actor, "post_id": postID})

	if actor == "" {
		return community.VoteResult{}, apperrors.ErrUnauthenticated
	}
	if _, err := s.Repos.Community.GetPost(ctx, postID); err != nil {
		if repository.IsNotFound(err) {
			return community.VoteResult{}, apperrors.ErrPostNotFound
		}
		log.WithError(err).Error("failed to load post")
		return community.VoteResult{}, apperrors.ErrUpdateFailed.WithMessage("failed to update vote").Wrap(err)
	}

	var result community.VoteResult
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		removed, err := tx.Community.RemoveVote(ctx, postID, actor)
		if err != nil {
			return err
		}
		delta := -1
		if !removed {
			if err := tx.Community.AddVote(ctx, &community.Vote{PostID: postID, UserID: actor, Value: 1}); err != nil {
				return err
			}
			delta = 1
		}
		post, err := tx.Community.AdjustUpvotes(ctx, postID, delta)
		if err != nil {
			return err
		}
		result = community.VoteResult{PostID: postID, Upvotes: post.Upvotes, Voted: !removed}
		return nil
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			return community.VoteResult{}, apperrors.ErrInvalidTransition.WithMessage("vote changed concurrently")
		}
		log.WithError(err).Error("failed to toggle vote")
		return community.VoteResult{}, apperrors.ErrUpdateFailed.WithMessage("failed to update vote").Wrap(err)
	}

	log.WithField("voted", result.Voted).Info("vote toggled")
	return result, nil
}
