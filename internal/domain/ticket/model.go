package ticket

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Ticket is a posted unit of work. CreatedBy is the owner and the only
// actor allowed to decide on its bids.
type Ticket struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Category    string         `json:"category" gorm:"index"`
	Budget      float64        `json:"budget"`
	Deadline    datatypes.Date `json:"deadline"`
	Status      Status         `json:"status" gorm:"type:varchar(20);default:'open';index"`
	CreatedBy   string         `json:"created_by" gorm:"type:varchar(64);index;not null"`
	Version     int64          `json:"version" gorm:"not null;default:1"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusOpen
	}
	if t.Version == 0 {
		t.Version = 1
	}
	return nil
}

func (t *Ticket) IsOwner(actorID string) bool {
	return actorID != "" && t.CreatedBy == actorID
}

// manualTransitions lists the changes an owner may make directly. Moving
// to in_progress only happens when a bid is accepted.
var manualTransitions = map[Status][]Status{
	StatusOpen:       {StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

func CanSetManually(from, to Status) bool {
	for _, s := range manualTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
