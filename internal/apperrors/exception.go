package apperrors

import (
	"errors"
	"net/http"
)

// Exception is an error with a stable code and the HTTP status it maps to.
// Two exceptions match under errors.Is when their codes are equal, so a
// wrapped copy still matches its sentinel.
type Exception struct {
	Code       string
	Message    string
	StatusCode int

	cause error
}

func (e *Exception) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.cause
}

func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of e carrying err as its cause.
func (e *Exception) Wrap(err error) *Exception {
	cp := *e
	cp.cause = err
	return &cp
}

// WithMessage returns a copy of e with a more specific message.
func (e *Exception) WithMessage(msg string) *Exception {
	cp := *e
	cp.Message = msg
	return &cp
}

func StatusCode(err error) int {
	var exc *Exception
	if errors.As(err, &exc) {
		return exc.StatusCode
	}
	return http.StatusInternalServerError
}
