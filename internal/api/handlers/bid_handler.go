package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/internal/domain/bid"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/linskybing/ticketboard/pkg/utils"
)

type BidHandler struct {
	svc *application.BidService
}

func NewBidHandler(svc *application.BidService) *BidHandler {
	return &BidHandler{svc: svc}
}

// List godoc
// @Summary List bids on a ticket
// @Description Returns the ticket's bids filtered for the caller. Anonymous callers get an empty list.
// @Tags bids
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.ListResponse[bid.Bid]
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/bids [get]
func (h *BidHandler) List(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	bids, err := h.svc.ListVisible(c.Request.Context(), utils.ActorFromContext(c), ticketID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(bids))
}

// Submit godoc
// @Summary Submit a bid
// @Tags bids
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param input body bid.SubmitBidInput true "Proposal"
// @Success 201 {object} bid.Bid
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /tickets/{id}/bids [post]
func (h *BidHandler) Submit(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	var input bid.SubmitBidInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	b, err := h.svc.Submit(c.Request.Context(), utils.ActorFromContext(c), ticketID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// Accept godoc
// @Summary Accept a pending bid
// @Tags bids
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bid ID"
// @Success 200 {object} bid.Bid
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /bids/{id}/accept [put]
func (h *BidHandler) Accept(c *gin.Context) {
	h.decide(c, h.svc.Accept)
}

// Reject godoc
// @Summary Reject a pending bid
// @Tags bids
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bid ID"
// @Success 200 {object} bid.Bid
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /bids/{id}/reject [put]
func (h *BidHandler) Reject(c *gin.Context) {
	h.decide(c, h.svc.Reject)
}

func (h *BidHandler) decide(c *gin.Context, fn func(ctx context.Context, actor, bidID string) (bid.Bid, error)) {
	bidID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	b, err := fn(c.Request.Context(), utils.ActorFromContext(c), bidID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
