package response

import (
	"errors"

	"github.com/linskybing/ticketboard/internal/apperrors"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ListResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

// ResolveError maps a service error onto a status code and body.
// Unknown errors never leak their text to the client.
func ResolveError(err error) (int, ErrorResponse) {
	var exc *apperrors.Exception
	if errors.As(err, &exc) {
		return exc.StatusCode, ErrorResponse{Error: exc.Message, Code: exc.Code}
	}
	return apperrors.StatusCode(err), ErrorResponse{Error: "internal error", Code: "internal"}
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Count: len(items), Items: items}
}
