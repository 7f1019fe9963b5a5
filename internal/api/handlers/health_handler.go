package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/pkg/response"
)

type HealthHandler struct {
	ping func() error
}

// NewHealthHandler takes a store ping; nil means always healthy.
func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Healthz godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "database unavailable", Code: "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
}
