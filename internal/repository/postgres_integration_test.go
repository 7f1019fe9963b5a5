//go:build integration

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/ticketboard/internal/config/db"
	"github.com/linskybing/ticketboard/internal/domain/bid"
	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/linskybing/ticketboard/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestPostgresRepos(t *testing.T) {
	gdb, _ := testutils.SetupPostgres(t)
	require.NoError(t, db.Migrate(gdb))
	repos := repository.NewRepositories(gdb)
	ctx := context.Background()

	tk := &ticket.Ticket{
		Title:     "Logo",
		Category:  "Design",
		Budget:    500,
		Deadline:  datatypes.Date(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)),
		CreatedBy: "owner",
	}
	require.NoError(t, repos.Ticket.Create(ctx, tk))

	b := &bid.Bid{TicketID: tk.ID, BidderID: "f1", Amount: 400, DeliveryDays: 5, Message: "hi"}
	require.NoError(t, repos.Bid.Create(ctx, b))

	dup := &bid.Bid{TicketID: tk.ID, BidderID: "f1", Amount: 300, DeliveryDays: 5, Message: "again"}
	assert.True(t, repository.IsDuplicate(repos.Bid.Create(ctx, dup)))

	bad := &bid.Bid{TicketID: tk.ID, BidderID: "f2", Amount: -1, DeliveryDays: 5, Message: "negative"}
	assert.Error(t, repos.Bid.Create(ctx, bad), "amount check constraint")

	// Two owners racing to decide the same bid: exactly one write lands.
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		failures int
	)
	for _, to := range []bid.Status{bid.StatusAccepted, bid.StatusRejected} {
		wg.Add(1)
		go func(to bid.Status) {
			defer wg.Done()
			_, err := repos.Bid.UpdateStatus(ctx, b.ID, bid.StatusPending, to)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else {
				assert.ErrorIs(t, err, repository.ErrConditionFailed)
				failures++
			}
		}(to)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, failures)
}
