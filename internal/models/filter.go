package models

import "time"

// StatusFilter selects auctions by their derived state
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterOpen
	FilterClosed
)

func (f StatusFilter) String() string {
	switch f {
	case FilterOpen:
		return "open"
	case FilterClosed:
		return "closed"
	default:
		return "all"
	}
}

// Matches reports whether the auction passes the filter at instant now
func (f StatusFilter) Matches(a *Auction, now time.Time) bool {
	switch f {
	case FilterOpen:
		return !a.IsClosedAt(now)
	case FilterClosed:
		return a.IsClosedAt(now)
	default:
		return true
	}
}
