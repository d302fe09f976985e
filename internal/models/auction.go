package models

import (
	"fmt"
	"strings"
	"time"

	"realtime-auction/internal/auctionerrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultValidity is how long an auction stays open when no ending time is given
const DefaultValidity = 5 * time.Minute

// UnluckyBuyer is reported as leader or winner when nobody has a winning bid
const UnluckyBuyer = "May be you!"

// Auction is a product offered with a starting price and a deadline.
// The bid history is append-only; open/closed is derived from the clock on every read.
// An Auction is not safe for concurrent mutation, the store serialises writers.
type Auction struct {
	id            string
	product       string
	startingPrice decimal.Decimal
	endingTime    time.Time
	bids          []Bid
	clock         Clock
}

// NewAuction creates an auction closing DefaultValidity after the clock's current time
func NewAuction(product string, startingPrice decimal.Decimal, clock Clock) (*Auction, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	return NewAuctionEndingAt(product, startingPrice, clock.Now().Add(DefaultValidity), clock)
}

// NewAuctionEndingAt creates an auction closing at endingTime
func NewAuctionEndingAt(product string, startingPrice decimal.Decimal, endingTime time.Time, clock Clock) (*Auction, error) {
	if strings.TrimSpace(product) == "" {
		return nil, fmt.Errorf("model: %w - product description should not be empty", auctionerrors.ErrInvalidAuction)
	}
	if clock == nil {
		clock = SystemClock{}
	}

	return &Auction{
		id:            uuid.NewString(),
		product:       product,
		startingPrice: NormalizePrice(startingPrice),
		endingTime:    endingTime.UTC(),
		bids:          []Bid{},
		clock:         clock,
	}, nil
}

// ID returns the auction identifier
func (a *Auction) ID() string { return a.id }

// Product returns the product description
func (a *Auction) Product() string { return a.product }

// StartingPrice returns the minimum acceptable first bid
func (a *Auction) StartingPrice() decimal.Decimal { return a.startingPrice }

// EndingTime returns when the auction closes
func (a *Auction) EndingTime() time.Time { return a.endingTime }

// Bids returns a copy of the accepted bids in acceptance order
func (a *Auction) Bids() []Bid {
	return append([]Bid(nil), a.bids...)
}

// IsClosed reports whether the ending time has been reached
func (a *Auction) IsClosed() bool {
	return a.IsClosedAt(a.clock.Now())
}

// IsOpen reports whether bids may still be placed
func (a *Auction) IsOpen() bool {
	return !a.IsClosed()
}

// IsClosedAt reports whether the auction is closed at instant t
func (a *Auction) IsClosedAt(t time.Time) bool {
	return !t.Before(a.endingTime)
}

// AddBid appends bid when it is present, not outdated and the best price.
// It returns false and leaves the auction untouched otherwise.
func (a *Auction) AddBid(bid *Bid) bool {
	if bid == nil || a.IsBidOutdated(bid) || !a.IsBestPrice(bid) {
		return false
	}
	a.bids = append(a.bids, *bid)
	return true
}

// IsBidOutdated reports whether the bid was made at or after the ending time.
// The bid's own timestamp is authoritative, not the current time.
func (a *Auction) IsBidOutdated(bid *Bid) bool {
	return a.IsClosedAt(bid.Time())
}

// IsBestPrice reports whether the bid beats the current state of the auction.
// A first bid may equal the starting price, later bids must exceed the last one.
func (a *Auction) IsBestPrice(bid *Bid) bool {
	last, ok := a.lastBid()
	if !ok {
		return bid.Price().GreaterThanOrEqual(a.startingPrice)
	}
	return bid.Price().GreaterThan(last.Price())
}

// CurrentValue is the starting price until someone bids, then the last accepted price
func (a *Auction) CurrentValue() decimal.Decimal {
	if last, ok := a.lastBid(); ok {
		return last.Price()
	}
	return a.startingPrice
}

// CurrentLeader returns the buyer of the last accepted bid or UnluckyBuyer
func (a *Auction) CurrentLeader() string {
	if last, ok := a.lastBid(); ok {
		return last.Buyer()
	}
	return UnluckyBuyer
}

// WinningBid returns the last accepted bid once the auction is closed
func (a *Auction) WinningBid() (Bid, bool) {
	if a.IsOpen() {
		return Bid{}, false
	}
	return a.lastBid()
}

// Winner returns the winning buyer, or UnluckyBuyer while open or without bids
func (a *Auction) Winner() string {
	if bid, ok := a.WinningBid(); ok {
		return bid.Buyer()
	}
	return UnluckyBuyer
}

// Equal compares identity: id, product and ending time
func (a *Auction) Equal(other *Auction) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.id == other.id && a.product == other.product && a.endingTime.Equal(other.endingTime)
}

// Clone returns a deep copy that shares nothing mutable with a
func (a *Auction) Clone() *Auction {
	c := *a
	c.bids = append(make([]Bid, 0, len(a.bids)), a.bids...)
	return &c
}

func (a *Auction) String() string {
	return fmt.Sprintf("Auction{id=%q, product=%q, endingTime=%s, startingPrice=%s}",
		a.id, a.product, a.endingTime.Format(time.RFC3339), a.startingPrice.StringFixed(PriceScale))
}

func (a *Auction) lastBid() (Bid, bool) {
	if len(a.bids) == 0 {
		return Bid{}, false
	}
	return a.bids[len(a.bids)-1], true
}

// ByEndingTimeDesc orders auctions from the latest ending time to the earliest.
// Ties fall back to the id so the order is stable across calls.
func ByEndingTimeDesc(a, b *Auction) int {
	if c := b.endingTime.Compare(a.endingTime); c != 0 {
		return c
	}
	return strings.Compare(a.id, b.id)
}
