package repository

import (
	"context"

	"github.com/linskybing/ticketboard/internal/domain/community"
	"gorm.io/gorm"
)

type CommunityRepo interface {
	Create(ctx context.Context, c *community.Community) error
	GetBySlug(ctx context.Context, slug string) (community.Community, error)
	List(ctx context.Context) ([]community.Community, error)

	CreatePost(ctx context.Context, p *community.Post) error
	GetPost(ctx context.Context, id string) (community.Post, error)
	ListPosts(ctx context.Context, communityID string) ([]community.Post, error)
	ListTopPosts(ctx context.Context, limit int) ([]community.Post, error)

	AddVote(ctx context.Context, v *community.Vote) error
	RemoveVote(ctx context.Context, postID, userID string) (bool, error)
	AdjustUpvotes(ctx context.Context, postID string, delta int) (community.Post, error)

	WithTx(tx *gorm.DB) CommunityRepo
}

type DBCommunityRepo struct {
	db *gorm.DB
}

func NewCommunityRepo(db *gorm.DB) *DBCommunityRepo {
	return &DBCommunityRepo{
		db: db,
	}
}

func (r *DBCommunityRepo) Create(ctx context.Context, c *community.Community) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *DBCommunityRepo) GetBySlug(ctx context.Context, slug string) (community.Community, error) {
	var c community.Community
	err := r.db.WithContext(ctx).First(&c, "slug = ?", slug).Error
	return c, err
}

func (r *DBCommunityRepo) List(ctx context.Context) ([]community.Community, error) {
	var list []community.Community
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *DBCommunityRepo) CreatePost(ctx context.Context, p *community.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DBCommunityRepo) GetPost(ctx context.Context, id string) (community.Post, error) {
	var p community.Post
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

// ListPosts returns a community's posts newest first.
func (r *DBCommunityRepo) ListPosts(ctx context.Context, communityID string) ([]community.Post, error) {
	var posts []community.Post
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

// ListTopPosts returns posts across all communities, most upvoted first.
func (r *DBCommunityRepo) ListTopPosts(ctx context.Context, limit int) ([]community.Post, error) {
	var posts []community.Post
	err := r.db.WithContext(ctx).
		Order("upvotes desc").
		Order("created_at desc").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *DBCommunityRepo) AddVote(ctx context.Context, v *community.Vote) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// RemoveVote deletes the user's vote and reports whether one existed.
func (r *DBCommunityRepo) RemoveVote(ctx context.Context, postID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&community.Vote{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AdjustUpvotes adds delta to the post's counter in place and returns the
// updated row.
func (r *DBCommunityRepo) AdjustUpvotes(ctx context.Context, postID string, delta int) (community.Post, error) {
	res := r.db.WithContext(ctx).Model(&community.Post{}).
		Where("id = ?", postID).
		Update("upvotes", gorm.Expr("upvotes + ?", delta))
	if res.Error != nil {
		return community.Post{}, res.Error
	}
	if res.RowsAffected == 0 {
		return community.Post{}, gorm.ErrRecordNotFound
	}
	return r.GetPost(ctx, postID)
}

func (r *DBCommunityRepo) WithTx(tx *gorm.DB) CommunityRepo {
	if tx == nil {
		return r
	}
	return &DBCommunityRepo{db: tx}
}
