package ticket

import (
	"strings"
	"time"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

type CreateTicketInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Budget      float64 `json:"budget" binding:"required"`
	Deadline    string  `json:"deadline" binding:"required"`
}

type UpdateTicketStatusInput struct {
	Status Status `json:"status" binding:"required"`
}

type ListFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// Normalize validates the input against the allowed categories and returns
// the parsed deadline.
func (in *CreateTicketInput) Normalize(categories []string) (datatypes.Date, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)

	if in.Title == "" {
		return datatypes.Date{}, apperrors.ErrValidation.WithMessage("title is required")
	}
	if in.Description == "" {
		return datatypes.Date{}, apperrors.ErrValidation.WithMessage("description is required")
	}
	if !contains(categories, in.Category) {
		return datatypes.Date{}, apperrors.ErrValidation.WithMessage("unknown category " + in.Category)
	}
	if in.Budget <= 0 {
		return datatypes.Date{}, apperrors.ErrValidation.WithMessage("budget must be greater than 0")
	}
	d, err := parseDeadline(in.Deadline)
	if err != nil {
		return datatypes.Date{}, apperrors.ErrValidation.WithMessage("deadline must be a date (YYYY-MM-DD)")
	}
	return datatypes.Date(d), nil
}

func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
