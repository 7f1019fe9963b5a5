package gig

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/linskybing/ticketboard/internal/apperrors"
)

const (
	MinPrice          = 5
	MaxTitleLength    = 200
	maxImageURLLength = 2048
)

type CreateGigInput struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	DeliveryTime int     `json:"delivery_time" binding:"required"`
	ImageURL     string  `json:"image_url"`
}

type ListFilter struct {
	Category     string `form:"category"`
	FreelancerID string `form:"freelancer_id"`
}

func (in *CreateGigInput) Normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	if in.Title == "" {
		return apperrors.ErrValidation.WithMessage("title is required")
	}
	if utf8.RuneCountInString(in.Title) > MaxTitleLength {
		return apperrors.ErrValidation.WithMessage("title is too long")
	}
	if in.Description == "" {
		return apperrors.ErrValidation.WithMessage("description is required")
	}
	if !knownCategory(in.Category) {
		return apperrors.ErrValidation.WithMessage("unknown category " + in.Category)
	}
	if in.Price < MinPrice {
		return apperrors.ErrValidation.WithMessage("price must be at least 5")
	}
	if in.DeliveryTime < 1 {
		return apperrors.ErrValidation.WithMessage("delivery_time must be at least 1 day")
	}
	if in.ImageURL != "" && !validImageURL(in.ImageURL) {
		return apperrors.ErrValidation.WithMessage("invalid image_url")
	}
	return nil
}

// Images returns the gig's image list; a gig has at most one image on
// creation.
func (in *CreateGigInput) Images() []string {
	if in.ImageURL == "" {
		return []string{}
	}
	return []string{in.ImageURL}
}

func knownCategory(c string) bool {
	for _, s := range Categories {
		if s == c {
			return true
		}
	}
	return false
}

func validImageURL(raw string) bool {
	if len(raw) > maxImageURLLength {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
