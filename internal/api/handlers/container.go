package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Ticket    *TicketHandler
	Bid       *BidHandler
	Comment   *CommentHandler
	Stream    *StreamHandler
	Health    *HealthHandler
	Gig       *GigHandler
	Community *CommunityHandler
}

func New(svc *application.Services, log *logrus.Logger, ping func() error) *Handlers {
	return &Handlers{
		Ticket:    NewTicketHandler(svc.Ticket),
		Bid:       NewBidHandler(svc.Bid),
		Comment:   NewCommentHandler(svc.Comment),
		Stream:    NewStreamHandler(svc.Watch, log),
		Health:    NewHealthHandler(ping),
		Gig:       NewGigHandler(svc.Gig),
		Community: NewCommunityHandler(svc.Community),
	}
}

func writeError(c *gin.Context, err error) {
	status, body := response.ResolveError(err)
	if status >= 500 {
		_ = c.Error(err)
	}
	c.JSON(status, body)
}
