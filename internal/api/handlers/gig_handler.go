package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/internal/domain/gig"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/linskybing/ticketboard/pkg/utils"
)

type GigHandler struct {
	svc *application.GigService
}

func NewGigHandler(svc *application.GigService) *GigHandler {
	return &GigHandler{svc: svc}
}

// List godoc
// @Summary List marketplace gigs
// @Tags gigs
// @Produce json
// @Param category query string false "Category"
// @Param freelancer_id query string false "Freelancer ID"
// @Success 200 {object} response.ListResponse[gig.Gig]
// @Failure 400 {object} response.ErrorResponse
// @Router /gigs [get]
func (h *GigHandler) List(c *gin.Context) {
	var filter gig.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	gigs, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(gigs))
}

// Get godoc
// @Summary Get a gig
// @Tags gigs
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} gig.Gig
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /gigs/{id} [get]
func (h *GigHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	g, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// Create godoc
// @Summary Offer a gig
// @Tags gigs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body gig.CreateGigInput true "Gig"
// @Success 201 {object} gig.Gig
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /gigs [post]
func (h *GigHandler) Create(c *gin.Context) {
	var input gig.CreateGigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	g, err := h.svc.Create(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// Categories godoc
// @Summary List gig categories
// @Tags gigs
// @Produce json
// @Success 200 {object} response.ListResponse[string]
// @Router /gigs/categories [get]
func (h *GigHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewList(h.svc.Categories()))
}
