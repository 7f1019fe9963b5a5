package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/ticketboard/internal/api/middleware"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/linskybing/ticketboard/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.OriginAllowed(origin)
	},
}

// StreamMessage is one frame sent to a ticket watcher.
type StreamMessage struct {
	Type  string                `json:"type"`
	Data  *application.Snapshot `json:"data,omitempty"`
	Error string                `json:"error,omitempty"`
}

const (
	MessageSnapshot = "snapshot"
	MessageResync   = "resync"
)

type StreamHandler struct {
	svc *application.WatchService
	log *logrus.Logger
}

func NewStreamHandler(svc *application.WatchService, log *logrus.Logger) *StreamHandler {
	return &StreamHandler{svc: svc, log: log}
}

// StreamTicket godoc
// @Summary Stream live ticket snapshots over websocket
// @Description Snapshots are filtered for the caller; anonymous callers never receive bids.
// @Description When the feed drops, a resync frame is sent and the socket closes with 1013.
// @Tags tickets
// @Param id path string true "Ticket ID"
// @Param token query string false "JWT for browsers that cannot set headers"
// @Success 101 {object} StreamMessage
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /ws/tickets/{id} [get]
func (h *StreamHandler) StreamTicket(c *gin.Context) {
	const op = "StreamHandler.StreamTicket"

	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error(), Code: apperrors.ErrValidation.Code})
		return
	}
	viewer := utils.ActorFromContext(c)
	log := h.log.WithFields(logrus.Fields{"operation": op, "ticket_id": ticketID, "viewer": viewer})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watch, err := h.svc.Watch(ctx, viewer, ticketID)
	if err != nil {
		writeError(c, err)
		return
	}
	defer watch.Close()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	// Reader: only control frames are expected. Any read error means the
	// peer is gone.
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case snap, ok := <-watch.Updates():
			if !ok {
				h.closeWatch(conn, watch.Err(), log)
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(StreamMessage{Type: MessageSnapshot, Data: &snap}); err != nil {
				return
			}

		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (h *StreamHandler) closeWatch(conn *websocket.Conn, err error, log *logrus.Entry) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err == nil {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		return
	}
	log.WithError(err).Info("watch ended, asking client to resync")
	_ = conn.WriteJSON(StreamMessage{Type: MessageResync, Error: err.Error()})
	code := websocket.CloseTryAgainLater
	if errors.Is(err, context.Canceled) {
		code = websocket.CloseGoingAway
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, "resync"))
}
