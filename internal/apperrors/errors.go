package apperrors

import "net/http"

var (
	ErrUnauthenticated = &Exception{
		Code:       "unauthenticated",
		Message:    "sign in required",
		StatusCode: http.StatusUnauthorized,
	}

	ErrForbidden = &Exception{
		Code:       "forbidden",
		Message:    "not allowed for this actor",
		StatusCode: http.StatusForbidden,
	}

	ErrInvalidTransition = &Exception{
		Code:       "invalid_transition",
		Message:    "status transition not allowed",
		StatusCode: http.StatusConflict,
	}

	ErrSubmissionFailed = &Exception{
		Code:       "submission_failed",
		Message:    "failed to submit bid",
		StatusCode: http.StatusBadGateway,
	}

	ErrUpdateFailed = &Exception{
		Code:       "update_failed",
		Message:    "failed to update status",
		StatusCode: http.StatusBadGateway,
	}

	ErrValidation = &Exception{
		Code:       "validation",
		Message:    "invalid input",
		StatusCode: http.StatusBadRequest,
	}

	ErrTicketNotFound = &Exception{
		Code:       "ticket_not_found",
		Message:    "ticket not found",
		StatusCode: http.StatusNotFound,
	}

	ErrBidNotFound = &Exception{
		Code:       "bid_not_found",
		Message:    "bid not found",
		StatusCode: http.StatusNotFound,
	}

	ErrDuplicateBid = &Exception{
		Code:       "duplicate_bid",
		Message:    "you already placed a bid on this ticket",
		StatusCode: http.StatusConflict,
	}

	ErrTicketClosed = &Exception{
		Code:       "ticket_closed",
		Message:    "ticket is not accepting bids",
		StatusCode: http.StatusConflict,
	}

	ErrGigNotFound = &Exception{
		Code:       "gig_not_found",
		Message:    "gig not found",
		StatusCode: http.StatusNotFound,
	}

	ErrCommunityNotFound = &Exception{
		Code:       "community_not_found",
		Message:    "community not found",
		StatusCode: http.StatusNotFound,
	}

	ErrPostNotFound = &Exception{
		Code:       "post_not_found",
		Message:    "post not found",
		StatusCode: http.StatusNotFound,
	}

	ErrDuplicateCommunity = &Exception{
		Code:       "duplicate_community",
		Message:    "a community with this slug already exists",
		StatusCode: http.StatusConflict,
	}
)
