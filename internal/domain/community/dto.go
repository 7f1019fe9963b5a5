package community

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/linskybing/ticketboard/internal/apperrors"
)

const (
	MaxNameLength    = 80
	MaxSlugLength    = 64
	MaxTitleLength   = 300
	MaxContentLength = 10000
)

type CreateCommunityInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CreatePostInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// Normalize trims the input and derives the slug from the name when none
// is given.
func (in *CreateCommunityInput) Normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return apperrors.ErrValidation.WithMessage("name is required")
	}
	if utf8.RuneCountInString(in.Name) > MaxNameLength {
		return apperrors.ErrValidation.WithMessage("name is too long")
	}
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = in.Name
	}
	in.Slug = Slugify(in.Slug)
	if in.Slug == "" {
		return apperrors.ErrValidation.WithMessage("slug must contain letters or digits")
	}
	if len(in.Slug) > MaxSlugLength {
		return apperrors.ErrValidation.WithMessage("slug is too long")
	}
	return nil
}

func (in *CreatePostInput) Normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" {
		return apperrors.ErrValidation.WithMessage("title is required")
	}
	if utf8.RuneCountInString(in.Title) > MaxTitleLength {
		return apperrors.ErrValidation.WithMessage("title is too long")
	}
	if utf8.RuneCountInString(in.Content) > MaxContentLength {
		return apperrors.ErrValidation.WithMessage("content is too long")
	}
	return nil
}

// Slugify lowercases s and joins its ASCII letter and digit runs with
// single dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
