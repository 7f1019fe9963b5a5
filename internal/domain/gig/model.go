package gig

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Gig is a fixed-price service a freelancer offers on the marketplace.
type Gig struct {
	ID           string                      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title        string                      `json:"title" gorm:"not null"`
	Description  string                      `json:"description" gorm:"type:text"`
	Category     string                      `json:"category" gorm:"index"`
	Price        float64                     `json:"price" gorm:"not null;check:chk_gigs_price,price >= 5"`
	DeliveryTime int                         `json:"delivery_time" gorm:"not null;check:chk_gigs_delivery_time,delivery_time >= 1"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	FreelancerID string                      `json:"freelancer_id" gorm:"type:varchar(64);index;not null"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (g *Gig) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Categories are the marketplace sections a gig can be listed under.
var Categories = []string{
	"Web Development",
	"Mobile Development",
	"Design & Creative",
	"Writing & Translation",
	"Digital Marketing",
	"Video & Animation",
	"Music & Audio",
	"Programming & Tech",
	"Business",
	"AI Services",
}
