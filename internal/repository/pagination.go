package repository

import (
	"slices"

	model "realtime-auction/internal/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ExtractResults sorts list with cmp and returns the page selected by offset and limit.
// Limits are clamped to [1, 100] (10 when unset) and to the list size. An offset past the
// end snaps back to the last non-empty page, so a non-empty list never yields an empty page.
func ExtractResults(list []*model.Auction, offset, limit int, cmp func(a, b *model.Auction) int) []*model.Auction {
	checkedLimit := checkLimit(limit, len(list))
	if checkedLimit == 0 {
		return []*model.Auction{}
	}
	checkedOffset := checkOffset(offset, checkedLimit, len(list))

	slices.SortFunc(list, cmp)

	end := min(checkedOffset+checkedLimit, len(list))
	return list[checkedOffset:end]
}

func checkLimit(limit, listSize int) int {
	switch {
	case limit <= 0:
		return min(defaultPageSize, listSize)
	case limit > maxPageSize:
		return min(maxPageSize, listSize)
	default:
		return min(limit, listSize)
	}
}

// checkOffset expects checkedLimit > 0
func checkOffset(offset, checkedLimit, listSize int) int {
	if offset <= 0 {
		return 0
	}
	if offset < listSize {
		return offset
	}

	lastPage := (listSize / checkedLimit) * checkedLimit
	if lastPage == listSize {
		lastPage -= checkedLimit
	}
	return lastPage
}
