package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/linskybing/ticketboard/internal/config"
	"github.com/linskybing/ticketboard/internal/domain/comment"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/linskybing/ticketboard/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupTicketServiceMocks(t *testing.T) (*TicketService, *CommentService, *mock.MockTicketRepo, *mock.MockCommentRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	mockComment := mock.NewMockCommentRepo(ctrl)
	repos := &repository.Repos{
		Ticket:  mockTicket,
		Comment: mockComment,
	}
	log := testLogger()
	return NewTicketService(repos, nil, config.DefaultCategories, log),
		NewCommentService(repos, nil, log),
		mockTicket, mockComment
}

func validTicketInput() ticket.CreateTicketInput {
	return ticket.CreateTicketInput{
		Title:       "Build a landing page",
		Description: "Single page, responsive",
		Category:    "Web Development",
		Budget:      500,
		Deadline:    "2026-12-01",
	}
}

// --------------------- Create ---------------------
func TestCreateTicket_Success(t *testing.T) {
	svc, _, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
		assert.Equal(t, "owner", tk.CreatedBy)
		tk.ID = "t1"
		tk.Status = ticket.StatusOpen
		return nil
	})

	tk, err := svc.Create(context.Background(), "owner", validTicketInput())
	require.NoError(t, err)
	assert.Equal(t, "t1", tk.ID)
	assert.Equal(t, ticket.StatusOpen, tk.Status)
}

func TestCreateTicket_Unauthenticated(t *testing.T) {
	svc, _, _, _ := setupTicketServiceMocks(t)

	_, err := svc.Create(context.Background(), "", validTicketInput())
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestCreateTicket_UnknownCategory(t *testing.T) {
	svc, _, _, _ := setupTicketServiceMocks(t)
	in := validTicketInput()
	in.Category = "Gardening"

	_, err := svc.Create(context.Background(), "owner", in)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// --------------------- UpdateStatus ---------------------
func TestUpdateTicketStatus_Cancel(t *testing.T) {
	svc, _, mockTicket, _ := setupTicketServiceMocks(t)
	cancelled := openTicket()
	cancelled.Status = ticket.StatusCancelled

	mockTicket.EXPECT().GetByID(gomock.Any(), "t1").Return(openTicket(), nil)
	mockTicket.EXPECT().UpdateStatus(gomock.Any(), "t1", ticket.StatusOpen, ticket.StatusCancelled).Return(cancelled, nil)

	tk, err := svc.UpdateStatus(context.Background(), "owner", "t1", ticket.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusCancelled, tk.Status)
}

func TestUpdateTicketStatus_CannotStartManually(t *testing.T) {
	svc, _, mockTicket, _ := setupTicketServiceMocks(t)
	mockTicket.EXPECT().GetByID(gomock.Any(), "t1").Return(openTicket(), nil)

	_, err := svc.UpdateStatus(context.Background(), "owner", "t1", ticket.StatusInProgress)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestUpdateTicketStatus_NotOwner(t *testing.T) {
	svc, _, mockTicket, _ := setupTicketServiceMocks(t)
	mockTicket.EXPECT().GetByID(gomock.Any(), "t1").Return(openTicket(), nil)

	_, err := svc.UpdateStatus(context.Background(), "f1", "t1", ticket.StatusCancelled)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateTicketStatus_UnknownStatus(t *testing.T) {
	svc, _, _, _ := setupTicketServiceMocks(t)

	_, err := svc.UpdateStatus(context.Background(), "owner", "t1", ticket.Status("archived"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetTicket_NotFound(t *testing.T) {
	svc, _, mockTicket, _ := setupTicketServiceMocks(t)
	mockTicket.EXPECT().GetByID(gomock.Any(), "nope").Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}

// --------------------- Comments ---------------------
func TestAddComment(t *testing.T) {
	_, svc, mockTicket, mockComment := setupTicketServiceMocks(t)
	mockTicket.EXPECT().GetByID(gomock.Any(), "t1").Return(openTicket(), nil)
	mockComment.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *comment.Comment) error {
		assert.Equal(t, "hello", c.Content)
		c.ID = "c1"
		return nil
	})

	c, err := svc.Add(context.Background(), "f1", "t1", comment.CreateCommentInput{Content: "  hello "})
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "f1", c.AuthorID)
}

func TestAddComment_Blank(t *testing.T) {
	_, svc, _, _ := setupTicketServiceMocks(t)

	_, err := svc.Add(context.Background(), "f1", "t1", comment.CreateCommentInput{Content: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListComments_TicketNotFound(t *testing.T) {
	_, svc, mockTicket, _ := setupTicketServiceMocks(t)
	mockTicket.EXPECT().GetByID(gomock.Any(), "t1").Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

	_, err := svc.List(context.Background(), "t1")
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}
