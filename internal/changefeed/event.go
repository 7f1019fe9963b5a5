// Package changefeed carries row-level change events from the store to
// subscribers. A Broker publishes events and hands out Subscriptions scoped
// by table and column predicate, in the shape "bids where ticket_id = X".
package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
)

const (
	TableTickets  = "tickets"
	TableBids     = "bids"
	TableComments = "ticket_comments"
)

var (
	ErrClosed          = errors.New("changefeed: broker closed")
	ErrSlowConsumer    = errors.New("changefeed: subscriber fell behind")
	ErrFeedInterrupted = errors.New("changefeed: upstream connection lost")
)

// Event states "this row now looks like Record". Keys holds the columns
// subscribers may filter on. Partial events had their record stripped in
// transit and must be re-read from the store.
type Event struct {
	Table   string            `json:"table"`
	Op      Op                `json:"op"`
	ID      string            `json:"id"`
	Keys    map[string]string `json:"keys,omitempty"`
	Record  json.RawMessage   `json:"record,omitempty"`
	Partial bool              `json:"partial,omitempty"`
	At      time.Time         `json:"at"`
}

func NewEvent(table string, op Op, id string, keys map[string]string, record any) (Event, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return Event{}, err
	}
	return Event{
		Table:  table,
		Op:     op,
		ID:     id,
		Keys:   keys,
		Record: raw,
		At:     time.Now().UTC(),
	}, nil
}

func (e Event) Decode(v any) error {
	if len(e.Record) == 0 {
		return errors.New("changefeed: event has no record")
	}
	return json.Unmarshal(e.Record, v)
}

// Filter selects events of one table, optionally narrowed to rows whose
// Column equals Value. Column "id" matches the row id.
type Filter struct {
	Table  string
	Column string
	Value  string
}

func (f Filter) Match(e Event) bool {
	if f.Table != e.Table {
		return false
	}
	switch f.Column {
	case "":
		return true
	case "id":
		return e.ID == f.Value
	default:
		return e.Keys[f.Column] == f.Value
	}
}

type Broker interface {
	Publish(ctx context.Context, ev Event) error
	Subscribe(ctx context.Context, filters ...Filter) (*Subscription, error)
	Close() error
}
