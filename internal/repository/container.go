package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrConditionFailed is returned by conditional writes when the row was
// not in the expected state at the time of the write.
var ErrConditionFailed = errors.New("repository: row not in expected state")

type Repos struct {
	Ticket    TicketRepo
	Bid       BidRepo
	Comment   CommentRepo
	Gig       GigRepo
	Community CommunityRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Ticket:    NewTicketRepo(db),
		Bid:       NewBidRepo(db),
		Comment:   NewCommentRepo(db),
		Gig:       NewGigRepo(db),
		Community: NewCommunityRepo(db),
		db:        db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Ticket:    r.Ticket.WithTx(tx),
		Bid:       r.Bid.WithTx(tx),
		Comment:   r.Comment.WithTx(tx),
		Gig:       r.Gig.WithTx(tx),
		Community: r.Community.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn against transaction-bound repositories and commits when
// fn returns nil. Repos built without a database (mocked in tests) run fn
// directly.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
