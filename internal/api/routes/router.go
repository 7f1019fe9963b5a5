package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/api/handlers"
	"github.com/linskybing/ticketboard/internal/api/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, bidLimiter *middleware.RateLimiter) {
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/categories", h.Ticket.Categories)
	r.GET("/gigs/categories", h.Gig.Categories)

	public := r.Group("/")
	public.Use(middleware.OptionalJWT())
	{
		public.GET("/tickets", h.Ticket.ListOpen)
		public.GET("/tickets/:id", h.Ticket.Get)
		public.GET("/tickets/:id/bids", h.Bid.List)
		public.GET("/tickets/:id/comments", h.Comment.List)
		public.GET("/ws/tickets/:id", h.Stream.StreamTicket)

		public.GET("/gigs", h.Gig.List)
		public.GET("/gigs/:id", h.Gig.Get)
		public.GET("/communities", h.Community.List)
		public.GET("/communities/:slug", h.Community.Get)
		public.GET("/communities/:slug/posts", h.Community.ListPosts)
		public.GET("/posts", h.Community.TopPosts)
	}

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/tickets/mine", h.Ticket.ListMine)
		auth.POST("/tickets", h.Ticket.Create)
		auth.PUT("/tickets/:id/status", h.Ticket.UpdateStatus)
		auth.POST("/tickets/:id/bids", bidLimiter.Handler(), h.Bid.Submit)
		auth.POST("/tickets/:id/comments", h.Comment.Add)
		auth.PUT("/bids/:id/accept", h.Bid.Accept)
		auth.PUT("/bids/:id/reject", h.Bid.Reject)

		auth.POST("/gigs", h.Gig.Create)
		auth.POST("/communities", h.Community.Create)
		auth.POST("/communities/:slug/posts", h.Community.CreatePost)
		auth.PUT("/posts/:id/vote", h.Community.ToggleVote)
	}
}
