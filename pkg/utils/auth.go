package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/ticketboard/pkg/types"
)

var GetUserIDFromContext = func(c *gin.Context) (string, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return "", errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return "", errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

// ActorFromContext returns the caller's user id, or "" for anonymous
// requests.
func ActorFromContext(c *gin.Context) string {
	id, err := GetUserIDFromContext(c)
	if err != nil {
		return ""
	}
	return id
}

// ParseIDParam returns the named path parameter when it is a valid uuid.
func ParseIDParam(c *gin.Context, param string) (string, error) {
	raw := c.Param(param)
	if _, err := uuid.Parse(raw); err != nil {
		return "", errors.New("invalid " + param)
	}
	return raw, nil
}
