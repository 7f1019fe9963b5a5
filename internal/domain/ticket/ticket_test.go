package ticket

import (
	"testing"
	"time"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categories = []string{"Design", "Writing"}

func TestNormalize(t *testing.T) {
	in := CreateTicketInput{
		Title:       "  Logo refresh ",
		Description: "New mark for the shop",
		Category:    "Design",
		Budget:      500,
		Deadline:    "2026-11-30",
	}
	d, err := in.Normalize(categories)
	require.NoError(t, err)
	assert.Equal(t, "Logo refresh", in.Title)
	assert.Equal(t, time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC), time.Time(d))
}

func TestNormalizeRejects(t *testing.T) {
	base := CreateTicketInput{Title: "t", Description: "d", Category: "Design", Budget: 1, Deadline: "2026-11-30"}

	cases := map[string]func(in *CreateTicketInput){
		"blank title":      func(in *CreateTicketInput) { in.Title = "  " },
		"unknown category": func(in *CreateTicketInput) { in.Category = "Plumbing" },
		"zero budget":      func(in *CreateTicketInput) { in.Budget = 0 },
		"bad deadline":     func(in *CreateTicketInput) { in.Deadline = "next week" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := in.Normalize(categories)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestCanSetManually(t *testing.T) {
	assert.True(t, CanSetManually(StatusOpen, StatusCancelled))
	assert.True(t, CanSetManually(StatusInProgress, StatusCompleted))
	assert.False(t, CanSetManually(StatusOpen, StatusInProgress))
	assert.False(t, CanSetManually(StatusCompleted, StatusOpen))
}

func TestIsOwner(t *testing.T) {
	tk := Ticket{CreatedBy: "owner"}
	assert.True(t, tk.IsOwner("owner"))
	assert.False(t, tk.IsOwner("someone"))
	assert.False(t, (&Ticket{}).IsOwner(""))
}
