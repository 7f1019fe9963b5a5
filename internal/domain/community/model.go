package community

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Community is a discussion board addressed by its slug.
type Community struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Slug        string    `json:"slug" gorm:"type:varchar(64);uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedBy   string    `json:"created_by" gorm:"type:varchar(64);not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Post is a message on a community board. Upvotes mirrors the number of
// rows in votes for the post and is kept in step inside one transaction.
type Post struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CommunityID string    `json:"community_id" gorm:"type:varchar(36);index;not null"`
	AuthorID    string    `json:"author_id" gorm:"type:varchar(64);index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Content     string    `json:"content" gorm:"type:text"`
	Upvotes     int       `json:"upvotes" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Vote is one user's upvote on a post. The composite key allows a single
// vote per user and post.
type Vote struct {
	PostID    string    `json:"post_id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"primaryKey;type:varchar(64)"`
	Value     int       `json:"value" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteResult reports a post's score after a vote toggle.
type VoteResult struct {
	PostID  string `json:"post_id"`
	Upvotes int    `json:"upvotes"`
	Voted   bool   `json:"voted"`
}
