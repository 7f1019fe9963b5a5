package bid

import "github.com/linskybing/ticketboard/internal/apperrors"

// Accepted and rejected are terminal; only pending bids move.
var transitions = map[Status][]Status{
	StatusPending: {StatusAccepted, StatusRejected},
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Transition reports whether a bid in state from may move to state to.
func Transition(from, to Status) error {
	for _, s := range transitions[from] {
		if s == to {
			return nil
		}
	}
	return apperrors.ErrInvalidTransition.WithMessage("bid cannot move from " + string(from) + " to " + string(to))
}
