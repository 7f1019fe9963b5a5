package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/internal/domain/community"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/linskybing/ticketboard/pkg/utils"
)

type CommunityHandler struct {
	svc *application.CommunityService
}

func NewCommunityHandler(svc *application.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

// List godoc
// @Summary List communities
// @Tags community
// @Produce json
// @Success 200 {object} response.ListResponse[community.Community]
// @Router /communities [get]
func (h *CommunityHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(list))
}

// Create godoc
// @Summary Create a community
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body community.CreateCommunityInput true "Community"
// @Success 201 {object} community.Community
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /communities [post]
func (h *CommunityHandler) Create(c *gin.Context) {
	var input community.CreateCommunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	cm, err := h.svc.Create(c.Request.Context(), utils.ActorFromContext(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// Get godoc
// @Summary Get a community by slug
// @Tags community
// @Produce json
// @Param slug path string true "Community slug"
// @Success 200 {object} community.Community
// @Failure 404 {object} response.ErrorResponse
// @Router /communities/{slug} [get]
func (h *CommunityHandler) Get(c *gin.Context) {
	cm, err := h.svc.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

// ListPosts godoc
// @Summary List a community's posts, newest first
// @Tags community
// @Produce json
// @Param slug path string true "Community slug"
// @Success 200 {object} response.ListResponse[community.Post]
// @Failure 404 {object} response.ErrorResponse
// @Router /communities/{slug}/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.svc.ListPosts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(posts))
}

// CreatePost godoc
// @Summary Post in a community
// @Tags community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param slug path string true "Community slug"
// @Param input body community.CreatePostInput true "Post"
// @Success 201 {object} community.Post
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /communities/{slug}/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var input community.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	p, err := h.svc.CreatePost(c.Request.Context(), utils.ActorFromContext(c), c.Param("slug"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// TopPosts godoc
// @Summary List the most upvoted posts
// @Tags community
// @Produce json
// @Success 200 {object} response.ListResponse[community.Post]
// @Router /posts [get]
func (h *CommunityHandler) TopPosts(c *gin.Context) {
	posts, err := h.svc.TopPosts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(posts))
}

// ToggleVote godoc
// @Summary Upvote a post, or take the upvote back
// @Tags community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} community.VoteResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id}/vote [put]
func (h *CommunityHandler) ToggleVote(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	res, err := h.svc.ToggleVote(c.Request.Context(), utils.ActorFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
