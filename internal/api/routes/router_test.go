package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/ticketboard/internal/api/handlers"
	"github.com/linskybing/ticketboard/internal/api/middleware"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/config"
	"github.com/linskybing/ticketboard/internal/domain/bid"
	"github.com/linskybing/ticketboard/internal/domain/community"
	"github.com/linskybing/ticketboard/internal/domain/gig"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/linskybing/ticketboard/internal/testutils"
	"github.com/linskybing/ticketboard/pkg/response"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, _ := setupRouterWithHub(t)
	return r
}

func setupRouterWithHub(t *testing.T) (*gin.Engine, *changefeed.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	config.RateLimitPerMinute = 100
	config.AllowedOrigins = []string{"http://localhost"}
	middleware.Init()

	gdb := testutils.SetupSQLite(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	hub := changefeed.NewHub(32)
	t.Cleanup(func() { _ = hub.Close() })

	svc := application.New(repository.NewRepositories(gdb), hub, config.DefaultCategories, log)
	r := gin.New()
	RegisterRoutes(r, handlers.New(svc, log, sqlDB.Ping), middleware.NewRateLimiter(config.RateLimitPerMinute, time.Minute))
	return r, hub
}

func token(t *testing.T, user string) string {
	t.Helper()
	tok, err := middleware.GenerateToken(user, user, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, r http.Handler, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+token(t, user))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createTicket(t *testing.T, r http.Handler, owner string) ticket.Ticket {
	w := do(t, r, http.MethodPost, "/tickets", owner, map[string]any{
		"title":       "Build a React Dashboard",
		"description": "Charts and tables",
		"category":    "Web Development",
		"budget":      500,
		"deadline":    "2026-12-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[ticket.Ticket](t, w)
}

func submitBid(t *testing.T, r http.Handler, bidder, ticketID string, amount float64) *httptest.ResponseRecorder {
	return do(t, r, http.MethodPost, "/tickets/"+ticketID+"/bids", bidder, map[string]any{
		"amount":          amount,
		"delivery_days":   5,
		"message":         "I can do it",
		"portfolio_links": []string{"https://example.com/work"},
	})
}

func TestHealthAndCategories(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cats := decode[response.ListResponse[string]](t, w)
	assert.Contains(t, cats.Items, "Design")
}

func TestTicketLifecycle(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/tickets", "", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tk := createTicket(t, r, "owner")
	assert.Equal(t, ticket.StatusOpen, tk.Status)

	w = do(t, r, http.MethodGet, "/tickets?search=react", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[response.ListResponse[ticket.Ticket]](t, w).Count)

	w = do(t, r, http.MethodGet, "/tickets/mine", "owner", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[response.ListResponse[ticket.Ticket]](t, w).Count)

	w = do(t, r, http.MethodGet, "/tickets/"+tk.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPut, "/tickets/"+tk.ID+"/status", "f1", map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPut, "/tickets/"+tk.ID+"/status", "owner", map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPut, "/tickets/"+tk.ID+"/status", "owner", map[string]string{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ticket.StatusCancelled, decode[ticket.Ticket](t, w).Status)

	w = do(t, r, http.MethodGet, "/tickets/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBidFlow_SealedAndAccept(t *testing.T) {
	r := setupRouter(t)
	tk := createTicket(t, r, "owner")

	w := submitBid(t, r, "", tk.ID, 400)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = submitBid(t, r, "f1", tk.ID, 400)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b1 := decode[bid.Bid](t, w)
	assert.Equal(t, bid.StatusPending, b1.Status)

	w = submitBid(t, r, "f1", tk.ID, 300)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = submitBid(t, r, "owner", tk.ID, 300)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = submitBid(t, r, "f2", tk.ID, 0)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = submitBid(t, r, "f2", tk.ID, 450)
	require.Equal(t, http.StatusCreated, w.Code)
	b2 := decode[bid.Bid](t, w)

	list := func(user string) []bid.Bid {
		w := do(t, r, http.MethodGet, "/tickets/"+tk.ID+"/bids", user, nil)
		require.Equal(t, http.StatusOK, w.Code)
		return decode[response.ListResponse[bid.Bid]](t, w).Items
	}
	assert.Len(t, list("owner"), 2)
	require.Len(t, list("f1"), 1)
	assert.Equal(t, b1.ID, list("f1")[0].ID)
	assert.Empty(t, list("f3"))
	assert.Empty(t, list(""))

	w = do(t, r, http.MethodPut, "/bids/"+b1.ID+"/accept", "f2", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPut, "/bids/"+b1.ID+"/accept", "owner", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, bid.StatusAccepted, decode[bid.Bid](t, w).Status)

	w = do(t, r, http.MethodGet, "/tickets/"+tk.ID, "", nil)
	assert.Equal(t, ticket.StatusInProgress, decode[ticket.Ticket](t, w).Status)

	w = do(t, r, http.MethodPut, "/bids/"+b1.ID+"/reject", "owner", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPut, "/bids/"+b2.ID+"/accept", "owner", nil)
	assert.Equal(t, http.StatusConflict, w.Code, "only one bid per ticket is accepted")

	for _, b := range list("owner") {
		if b.ID == b2.ID {
			assert.Equal(t, bid.StatusPending, b.Status)
		}
	}
}

func TestComments(t *testing.T) {
	r := setupRouter(t)
	tk := createTicket(t, r, "owner")

	w := do(t, r, http.MethodPost, "/tickets/"+tk.ID+"/comments", "f1", map[string]string{"content": "When is the deadline?"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/tickets/"+tk.ID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[response.ListResponse[json.RawMessage]](t, w).Count)
}

func TestGigs(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/gigs/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[response.ListResponse[string]](t, w).Items, "Web Development")

	input := map[string]any{
		"title":         "I will build your landing page",
		"description":   "Responsive, fast, accessible",
		"category":      "Web Development",
		"price":         50,
		"delivery_time": 3,
		"image_url":     "https://example.com/cover.png",
	}
	w = do(t, r, http.MethodPost, "/gigs", "", input)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/gigs", "f1", input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	g := decode[gig.Gig](t, w)
	assert.Equal(t, "f1", g.FreelancerID)

	input["price"] = 1
	w = do(t, r, http.MethodPost, "/gigs", "f1", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/gigs?freelancer_id=f1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[response.ListResponse[gig.Gig]](t, w).Count)

	w = do(t, r, http.MethodGet, "/gigs/"+g.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, g.Title, decode[gig.Gig](t, w).Title)
}

func TestCommunityPostsAndVotes(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/communities", "alice", map[string]string{"name": "Go Freelancers"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cm := decode[community.Community](t, w)
	assert.Equal(t, "go-freelancers", cm.Slug)

	w = do(t, r, http.MethodPost, "/communities", "bob", map[string]string{"name": "Go Freelancers"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, "/communities/"+cm.Slug+"/posts", "bob", map[string]string{"title": "Pricing tips", "content": "Charge by value"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	post := decode[community.Post](t, w)

	w = do(t, r, http.MethodPut, "/posts/"+post.ID+"/vote", "carol", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[community.VoteResult](t, w)
	assert.True(t, res.Voted)
	assert.Equal(t, 1, res.Upvotes)

	w = do(t, r, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	top := decode[response.ListResponse[community.Post]](t, w)
	require.Equal(t, 1, top.Count)
	assert.Equal(t, 1, top.Items[0].Upvotes)

	w = do(t, r, http.MethodPut, "/posts/"+post.ID+"/vote", "carol", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[community.VoteResult](t, w)
	assert.False(t, res.Voted)
	assert.Equal(t, 0, res.Upvotes)

	w = do(t, r, http.MethodGet, "/communities/nope/posts", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamTicket(t *testing.T) {
	r := setupRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	tk := createTicket(t, r, "owner")

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/tickets/" + tk.ID + "?token=" + token(t, "owner")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() handlers.StreamMessage {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg handlers.StreamMessage
		require.NoError(t, conn.ReadJSON(&msg))
		return msg
	}

	first := read()
	assert.Equal(t, handlers.MessageSnapshot, first.Type)
	require.NotNil(t, first.Data)
	assert.Empty(t, first.Data.Bids)

	w := submitBid(t, r, "f1", tk.ID, 400)
	require.Equal(t, http.StatusCreated, w.Code)

	next := read()
	require.NotNil(t, next.Data)
	require.Len(t, next.Data.Bids, 1)
	assert.Equal(t, "f1", next.Data.Bids[0].BidderID)
}

func TestStreamTicket_UnknownTicket(t *testing.T) {
	r := setupRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/tickets/00000000-0000-0000-0000-000000000000"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func dialStream(t *testing.T, srv *httptest.Server, ticketID, user string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/tickets/" + ticketID
	if user != "" {
		url += "?token=" + token(t, user)
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) (handlers.StreamMessage, error) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg handlers.StreamMessage
	err := conn.ReadJSON(&msg)
	return msg, err
}

func TestStreamTicket_FiltersPerViewer(t *testing.T) {
	r := setupRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	tk := createTicket(t, r, "owner")
	require.Equal(t, http.StatusCreated, submitBid(t, r, "f1", tk.ID, 400).Code)
	require.Equal(t, http.StatusCreated, submitBid(t, r, "f2", tk.ID, 450).Code)

	cases := []struct {
		viewer  string
		bidders []string
	}{
		{viewer: "owner", bidders: []string{"f2", "f1"}},
		{viewer: "f2", bidders: []string{"f2"}},
		{viewer: "f3", bidders: nil},
		{viewer: "", bidders: nil},
	}
	for _, tc := range cases {
		t.Run("viewer="+tc.viewer, func(t *testing.T) {
			conn := dialStream(t, srv, tk.ID, tc.viewer)
			msg, err := readFrame(t, conn)
			require.NoError(t, err)
			require.Equal(t, handlers.MessageSnapshot, msg.Type)
			require.NotNil(t, msg.Data)

			var got []string
			for _, b := range msg.Data.Bids {
				got = append(got, b.BidderID)
			}
			assert.ElementsMatch(t, tc.bidders, got)
		})
	}
}

func TestStreamTicket_DisconnectReleasesSubscription(t *testing.T) {
	r, hub := setupRouterWithHub(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	tk := createTicket(t, r, "owner")
	conn := dialStream(t, srv, tk.ID, "owner")
	_, err := readFrame(t, conn)
	require.NoError(t, err)
	require.Equal(t, 1, hub.Len())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestStreamTicket_FeedResetAsksClientToResync(t *testing.T) {
	r, hub := setupRouterWithHub(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	tk := createTicket(t, r, "owner")
	conn := dialStream(t, srv, tk.ID, "owner")
	_, err := readFrame(t, conn)
	require.NoError(t, err)

	hub.Reset(changefeed.ErrFeedInterrupted)

	msg, err := readFrame(t, conn)
	for err == nil && msg.Type == handlers.MessageSnapshot {
		msg, err = readFrame(t, conn)
	}
	require.NoError(t, err)
	assert.Equal(t, handlers.MessageResync, msg.Type)
	assert.NotEmpty(t, msg.Error)

	_, err = readFrame(t, conn)
	var closeErr *websocket.CloseError
	require.True(t, errors.As(err, &closeErr), "expected close frame, got %v", err)
	assert.Equal(t, websocket.CloseTryAgainLater, closeErr.Code)
	assert.Equal(t, "resync", closeErr.Text)
}
