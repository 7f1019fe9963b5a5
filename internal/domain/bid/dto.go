package bid

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/linskybing/ticketboard/internal/apperrors"
)

const (
	MaxMessageLength   = 5000
	MaxPortfolioLinks  = 10
	maxPortfolioLinkSz = 2048
)

// SubmitBidInput is the proposal payload. Amount and DeliveryDays are
// checked by Normalize rather than binding tags so zero values produce a
// domain error instead of a generic "required" failure.
type SubmitBidInput struct {
	Amount         float64  `json:"amount"`
	DeliveryDays   int      `json:"delivery_days"`
	Message        string   `json:"message"`
	PortfolioLinks []string `json:"portfolio_links"`
}

// Normalize validates the proposal and cleans it in place: the message is
// trimmed and portfolio links are trimmed and de-duplicated.
func (in *SubmitBidInput) Normalize() error {
	if in.Amount <= 0 {
		return apperrors.ErrValidation.WithMessage("amount must be greater than 0")
	}
	if in.DeliveryDays < 1 {
		return apperrors.ErrValidation.WithMessage("delivery_days must be at least 1")
	}
	in.Message = strings.TrimSpace(in.Message)
	if in.Message == "" {
		return apperrors.ErrValidation.WithMessage("message is required")
	}
	if utf8.RuneCountInString(in.Message) > MaxMessageLength {
		return apperrors.ErrValidation.WithMessage("message is too long")
	}

	links := make([]string, 0, len(in.PortfolioLinks))
	seen := make(map[string]struct{}, len(in.PortfolioLinks))
	for _, raw := range in.PortfolioLinks {
		link := strings.TrimSpace(raw)
		if link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		if !validLink(link) {
			return apperrors.ErrValidation.WithMessage("invalid portfolio link " + link)
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	if len(links) > MaxPortfolioLinks {
		return apperrors.ErrValidation.WithMessage("too many portfolio links")
	}
	in.PortfolioLinks = links
	return nil
}

func validLink(link string) bool {
	if len(link) > maxPortfolioLinkSz {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
