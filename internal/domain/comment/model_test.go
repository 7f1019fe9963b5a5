package comment

import (
	"strings"
	"testing"
	"time"

	"github.com/linskybing/ticketboard/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestThreadDedupesAndOrders(t *testing.T) {
	now := time.Now()
	th := NewThread([]Comment{{ID: "c2", CreatedAt: now.Add(time.Minute)}})

	assert.True(t, th.Add(Comment{ID: "c1", CreatedAt: now}))
	assert.False(t, th.Add(Comment{ID: "c2", CreatedAt: now.Add(time.Minute)}))

	got := th.Comments()
	if assert.Len(t, got, 2) {
		assert.Equal(t, "c1", got[0].ID)
		assert.Equal(t, "c2", got[1].ID)
	}
}

func TestCreateCommentInput(t *testing.T) {
	in := CreateCommentInput{Content: "  when is the deadline?  "}
	assert.NoError(t, in.Normalize())
	assert.Equal(t, "when is the deadline?", in.Content)

	blank := CreateCommentInput{Content: " \n "}
	assert.ErrorIs(t, blank.Normalize(), apperrors.ErrValidation)
}

func TestCreateCommentInputCountsCharactersNotBytes(t *testing.T) {
	in := CreateCommentInput{Content: strings.Repeat("é", MaxContentLength)}
	assert.NoError(t, in.Normalize())

	in.Content = strings.Repeat("é", MaxContentLength+1)
	assert.ErrorIs(t, in.Normalize(), apperrors.ErrValidation)
}
