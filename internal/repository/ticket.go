package repository

import (
	"context"
	"strings"
	"time"

	"github.com/linskybing/ticketboard/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	Create(ctx context.Context, t *ticket.Ticket) error
	GetByID(ctx context.Context, id string) (ticket.Ticket, error)
	ListOpen(ctx context.Context, filter ticket.ListFilter) ([]ticket.Ticket, error)
	ListByCreator(ctx context.Context, creatorID string) ([]ticket.Ticket, error)
	UpdateStatus(ctx context.Context, id string, from, to ticket.Status) (ticket.Ticket, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *DBTicketRepo) GetByID(ctx context.Context, id string) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return t, err
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *DBTicketRepo) ListOpen(ctx context.Context, filter ticket.ListFilter) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	query := r.db.WithContext(ctx).Where("status = ?", ticket.StatusOpen)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(s))+"%")
	}
	err := query.Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListByCreator(ctx context.Context, creatorID string) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.WithContext(ctx).Where("created_by = ?", creatorID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

// UpdateStatus moves the ticket from one status to another only if it is
// still in from at the time of the write, and returns the updated row.
func (r *DBTicketRepo) UpdateStatus(ctx context.Context, id string, from, to ticket.Status) (ticket.Ticket, error) {
	res := r.db.WithContext(ctx).Model(&ticket.Ticket{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return ticket.Ticket{}, res.Error
	}
	if res.RowsAffected == 0 {
		return ticket.Ticket{}, ErrConditionFailed
	}
	return r.GetByID(ctx, id)
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
