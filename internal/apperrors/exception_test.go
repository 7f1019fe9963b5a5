package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsIdentity(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrSubmissionFailed.Wrap(cause)

	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUpdateFailed)
	assert.Equal(t, "failed to submit bid: connection reset", err.Error())
	assert.Nil(t, ErrSubmissionFailed.Unwrap(), "sentinel must not be mutated")
}

func TestWithMessage(t *testing.T) {
	err := ErrValidation.WithMessage("amount must be greater than 0")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "amount must be greater than 0", err.Error())
	assert.Equal(t, "invalid input", ErrValidation.Message)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusCode(ErrInvalidTransition))
	assert.Equal(t, http.StatusForbidden, StatusCode(fmt.Errorf("accept: %w", ErrForbidden)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}
