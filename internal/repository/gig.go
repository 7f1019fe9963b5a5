package repository

import (
	"context"

	"github.com/linskybing/ticketboard/internal/domain/gig"
	"gorm.io/gorm"
)

type GigRepo interface {
	Create(ctx context.Context, g *gig.Gig) error
	GetByID(ctx context.Context, id string) (gig.Gig, error)
	List(ctx context.Context, filter gig.ListFilter) ([]gig.Gig, error)
	WithTx(tx *gorm.DB) GigRepo
}

type DBGigRepo struct {
	db *gorm.DB
}

func NewGigRepo(db *gorm.DB) *DBGigRepo {
	return &DBGigRepo{
		db: db,
	}
}

func (r *DBGigRepo) Create(ctx context.Context, g *gig.Gig) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *DBGigRepo) GetByID(ctx context.Context, id string) (gig.Gig, error) {
	var g gig.Gig
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	return g, err
}

func (r *DBGigRepo) List(ctx context.Context, filter gig.ListFilter) ([]gig.Gig, error) {
	var gigs []gig.Gig
	query := r.db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.FreelancerID != "" {
		query = query.Where("freelancer_id = ?", filter.FreelancerID)
	}
	err := query.Order("created_at desc").Find(&gigs).Error
	return gigs, err
}

func (r *DBGigRepo) WithTx(tx *gorm.DB) GigRepo {
	if tx == nil {
		return r
	}
	return &DBGigRepo{db: tx}
}
