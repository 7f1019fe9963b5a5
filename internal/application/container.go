package application

import (
	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Ticket    *TicketService
	Bid       *BidService
	Comment   *CommentService
	Watch     *WatchService
	Gig       *GigService
	Community *CommunityService
}

func New(repos *repository.Repos, feed changefeed.Broker, categories []string, log *logrus.Logger) *Services {
	return &Services{
		Ticket:    NewTicketService(repos, feed, categories, log),
		Bid:       NewBidService(repos, feed, log),
		Comment:   NewCommentService(repos, feed, log),
		Watch:     NewWatchService(repos, feed, log),
		Gig:       NewGigService(repos, log),
		Community: NewCommunityService(repos, log),
	}
}
