package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/internal/domain/comment"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/linskybing/ticketboard/pkg/utils"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List godoc
// @Summary List comments on a ticket
// @Tags comments
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.ListResponse[comment.Comment]
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	comments, err := h.svc.List(c.Request.Context(), ticketID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(comments))
}

// Add godoc
// @Summary Comment on a ticket
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param input body comment.CreateCommentInput true "Comment"
// @Success 201 {object} comment.Comment
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/comments [post]
func (h *CommentHandler) Add(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	var input comment.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	cm, err := h.svc.Add(c.Request.Context(), utils.ActorFromContext(c), ticketID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}
