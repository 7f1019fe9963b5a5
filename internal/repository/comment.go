package repository

import (
	"context"

	"github.com/linskybing/ticketboard/internal/domain/comment"
	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(ctx context.Context, c *comment.Comment) error
	GetByID(ctx context.Context, id string) (comment.Comment, error)
	ListByTicket(ctx context.Context, ticketID string) ([]comment.Comment, error)
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{
		db: db,
	}
}

func (r *DBCommentRepo) Create(ctx context.Context, c *comment.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *DBCommentRepo) GetByID(ctx context.Context, id string) (comment.Comment, error) {
	var c comment.Comment
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (r *DBCommentRepo) ListByTicket(ctx context.Context, ticketID string) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Order("created_at asc").Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{db: tx}
}
