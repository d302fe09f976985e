package models

import (
	"fmt"
	"strings"
	"time"

	"realtime-auction/internal/auctionerrors"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places kept on every price
const PriceScale int32 = 2

// Bid is an immutable offer of a price by a buyer at a point in time
type Bid struct {
	buyer string
	price decimal.Decimal
	time  time.Time
}

// NewBid creates a bid stamped with the clock's current time.
// Negative prices are coerced to zero; the rest are rounded up to PriceScale.
func NewBid(buyer string, price decimal.Decimal, clock Clock) (*Bid, error) {
	if strings.TrimSpace(buyer) == "" {
		return nil, fmt.Errorf("model: %w - the buyer should be identified", auctionerrors.ErrInvalidBid)
	}

	return &Bid{
		buyer: buyer,
		price: NormalizePrice(price),
		time:  clock.Now().UTC(),
	}, nil
}

// Buyer returns the bidder identifier
func (b Bid) Buyer() string { return b.buyer }

// Price returns the offered price
func (b Bid) Price() decimal.Decimal { return b.price }

// Time returns when the bid was made
func (b Bid) Time() time.Time { return b.time }

func (b Bid) String() string {
	return fmt.Sprintf("Bid{buyer=%q, price=%s, time=%s}", b.buyer, b.price.StringFixed(PriceScale), b.time.Format(time.RFC3339Nano))
}

// NormalizePrice clamps negative prices to zero and rounds up to PriceScale
func NormalizePrice(price decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}
	return price.RoundCeil(PriceScale)
}
