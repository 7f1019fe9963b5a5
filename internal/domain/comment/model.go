package comment

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"gorm.io/gorm"
)

const MaxContentLength = 4000

// Comment is an append-only discussion message on a ticket.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	TicketID  string    `json:"ticket_id" gorm:"type:varchar(36);not null;index"`
	AuthorID  string    `json:"author_id" gorm:"type:varchar(64);not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "ticket_comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type CreateCommentInput struct {
	Content string `json:"content" binding:"required"`
}

func (in *CreateCommentInput) Normalize() error {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return apperrors.ErrValidation.WithMessage("content is required")
	}
	if utf8.RuneCountInString(in.Content) > MaxContentLength {
		return apperrors.ErrValidation.WithMessage("content is too long")
	}
	return nil
}

// Thread is a ticket's discussion as seen live: comments oldest first,
// each id at most once.
type Thread struct {
	byID map[string]struct{}
	list []Comment
}

func NewThread(seed []Comment) *Thread {
	t := &Thread{byID: make(map[string]struct{}, len(seed))}
	for _, c := range seed {
		t.Add(c)
	}
	return t
}

// Add appends c unless it is already present and reports whether it did.
func (t *Thread) Add(c Comment) bool {
	if _, ok := t.byID[c.ID]; ok {
		return false
	}
	t.byID[c.ID] = struct{}{}
	t.list = append(t.list, c)
	sort.SliceStable(t.list, func(i, j int) bool {
		return t.list[i].CreatedAt.Before(t.list[j].CreatedAt)
	})
	return true
}

func (t *Thread) Comments() []Comment {
	out := make([]Comment, len(t.list))
	copy(out, t.list)
	return out
}
