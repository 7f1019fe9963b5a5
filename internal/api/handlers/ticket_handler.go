package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/linskybing/ticketboard/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// ListOpen godoc
// @Summary List open tickets
// @Description Returns open tickets, optionally narrowed by ?category= and ?search=.
// @Tags tickets
// @Produce json
// @Param category query string false "Category"
// @Param search query string false "Title search"
// @Success 200 {object} response.ListResponse[ticket.Ticket]
// @Failure 400 {object} response.ErrorResponse
// @Router /tickets [get]
func (h *TicketHandler) ListOpen(c *gin.Context) {
	var filter ticket.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	tickets, err := h.svc.ListOpen(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(tickets))
}

// ListMine godoc
// @Summary List tickets posted by the caller
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.ListResponse[ticket.Ticket]
// @Failure 401 {object} response.ErrorResponse
// @Router /tickets/mine [get]
func (h *TicketHandler) ListMine(c *gin.Context) {
	tickets, err := h.svc.ListByCreator(c.Request.Context(), utils.ActorFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(tickets))
}

// Create godoc
// @Summary Post a ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var input ticket.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// Get godoc
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateStatus godoc
// @Summary Change a ticket status
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param input body ticket.UpdateTicketStatusInput true "Status"
// @Success 200 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	var input ticket.UpdateTicketStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	t, err := h.svc.UpdateStatus(c.Request.Context(), utils.ActorFromContext(c), id, input.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Categories godoc
// @Summary List ticket categories
// @Tags tickets
// @Produce json
// @Success 200 {object} response.ListResponse[string]
// @Router /categories [get]
func (h *TicketHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewList(h.svc.Categories()))
}
