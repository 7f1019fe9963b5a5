package bid

import "sort"

// CanSee reports whether viewer may see b on a ticket owned by owner.
// Bids are sealed: only the owner and the bid's own author see it.
func CanSee(owner, viewer string, b Bid) bool {
	if viewer == "" {
		return false
	}
	return viewer == owner || viewer == b.BidderID
}

// VisibleBids returns the subset of all that viewer may see. The owner
// gets every bid newest first, a bidder gets their own bid, anyone else
// (anonymous included) gets nothing.
func VisibleBids(all []Bid, owner, viewer string) []Bid {
	if viewer == "" {
		return []Bid{}
	}
	sorted := make([]Bid, len(all))
	copy(sorted, all)
	SortNewestFirst(sorted)

	if viewer == owner {
		return sorted
	}
	for _, b := range sorted {
		if b.BidderID == viewer {
			return []Bid{b}
		}
	}
	return []Bid{}
}

func SortNewestFirst(bids []Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if !bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].CreatedAt.After(bids[j].CreatedAt)
		}
		return bids[i].ID > bids[j].ID
	})
}
