package repository

import (
	"context"
	"time"

	"github.com/linskybing/ticketboard/internal/domain/bid"
	"gorm.io/gorm"
)

type BidRepo interface {
	Create(ctx context.Context, b *bid.Bid) error
	GetByID(ctx context.Context, id string) (bid.Bid, error)
	ListByTicket(ctx context.Context, ticketID string) ([]bid.Bid, error)
	FindByTicketAndBidder(ctx context.Context, ticketID, bidderID string) (bid.Bid, error)
	UpdateStatus(ctx context.Context, id string, from, to bid.Status) (bid.Bid, error)
	WithTx(tx *gorm.DB) BidRepo
}

type DBBidRepo struct {
	db *gorm.DB
}

func NewBidRepo(db *gorm.DB) *DBBidRepo {
	return &DBBidRepo{
		db: db,
	}
}

// Create inserts b. A second bid by the same bidder on the same ticket
// fails with gorm.ErrDuplicatedKey.
func (r *DBBidRepo) Create(ctx context.Context, b *bid.Bid) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *DBBidRepo) GetByID(ctx context.Context, id string) (bid.Bid, error) {
	var b bid.Bid
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return b, err
}

func (r *DBBidRepo) ListByTicket(ctx context.Context, ticketID string) ([]bid.Bid, error) {
	var bids []bid.Bid
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Order("created_at desc").Find(&bids).Error
	return bids, err
}

func (r *DBBidRepo) FindByTicketAndBidder(ctx context.Context, ticketID, bidderID string) (bid.Bid, error) {
	var b bid.Bid
	err := r.db.WithContext(ctx).Where("ticket_id = ? AND bidder_id = ?", ticketID, bidderID).First(&b).Error
	return b, err
}

// UpdateStatus re-checks the current status inside the write itself, so
// two concurrent decisions on the same bid cannot both succeed.
func (r *DBBidRepo) UpdateStatus(ctx context.Context, id string, from, to bid.Status) (bid.Bid, error) {
	res := r.db.WithContext(ctx).Model(&bid.Bid{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return bid.Bid{}, res.Error
	}
	if res.RowsAffected == 0 {
		return bid.Bid{}, ErrConditionFailed
	}
	return r.GetByID(ctx, id)
}

func (r *DBBidRepo) WithTx(tx *gorm.DB) BidRepo {
	if tx == nil {
		return r
	}
	return &DBBidRepo{db: tx}
}
