package bid

import "github.com/linskybing/ticketboard/internal/changefeed"

// Projection is one viewer's live view of a ticket's bids. It is a
// last-write-wins map keyed by bid id: events say "this row now looks
// like X" and are ordered per row by Version, not by arrival.
//
// Projection is not safe for concurrent use.
type Projection struct {
	owner  string
	viewer string
	bids   map[string]Bid
}

func NewProjection(owner, viewer string) *Projection {
	return &Projection{
		owner:  owner,
		viewer: viewer,
		bids:   make(map[string]Bid),
	}
}

// Seed loads the result of a bulk fetch through the visibility filter.
// Rows already known at a newer version are kept.
func (p *Projection) Seed(all []Bid) {
	for _, b := range VisibleBids(all, p.owner, p.viewer) {
		p.upsert(b)
	}
}

// Apply folds one change into the view and reports whether it changed.
// Events for bids the viewer may not see are dropped, a repeated insert
// is a no-op, and an update older than the held row is ignored.
func (p *Projection) Apply(op changefeed.Op, b Bid) bool {
	if !CanSee(p.owner, p.viewer, b) {
		return false
	}
	if op == changefeed.OpInsert {
		if _, ok := p.bids[b.ID]; ok {
			return false
		}
		p.bids[b.ID] = b
		return true
	}
	return p.upsert(b)
}

func (p *Projection) upsert(b Bid) bool {
	if cur, ok := p.bids[b.ID]; ok && b.Version <= cur.Version {
		return false
	}
	p.bids[b.ID] = b
	return true
}

func (p *Projection) Get(id string) (Bid, bool) {
	b, ok := p.bids[id]
	return b, ok
}

func (p *Projection) Len() int {
	return len(p.bids)
}

// Bids returns the current view, newest first.
func (p *Projection) Bids() []Bid {
	all := make([]Bid, 0, len(p.bids))
	for _, b := range p.bids {
		all = append(all, b)
	}
	return VisibleBids(all, p.owner, p.viewer)
}
