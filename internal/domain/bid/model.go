package bid

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Bid is a priced, timed proposal against a ticket. The bidder owns its
// content; the ticket owner owns its status. Version increases on every
// write and orders change events for the same row.
type Bid struct {
	ID             string                      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	TicketID       string                      `json:"ticket_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_bids_ticket_bidder;index"`
	BidderID       string                      `json:"bidder_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_bids_ticket_bidder"`
	Amount         float64                     `json:"amount" gorm:"not null;check:chk_bids_amount,amount > 0"`
	DeliveryDays   int                         `json:"delivery_days" gorm:"not null;check:chk_bids_delivery_days,delivery_days >= 1"`
	Message        string                      `json:"message" gorm:"type:text"`
	PortfolioLinks datatypes.JSONSlice[string] `json:"portfolio_links"`
	Status         Status                      `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	Version        int64                       `json:"version" gorm:"not null;default:1"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Version == 0 {
		b.Version = 1
	}
	if b.PortfolioLinks == nil {
		b.PortfolioLinks = datatypes.JSONSlice[string]{}
	}
	return nil
}
