package helpers

import "time"

// Request/Response DTOs
type PlaceBidRequest struct {
	Buyer string   `json:"buyer" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

type CreateAuctionRequest struct {
	Product string     `json:"product" binding:"required"`
	Price   *float64   `json:"price" binding:"required"`
	Ending  *time.Time `json:"ending"`
}

// ListAuctionsQuery binds ?closed=&offset=&max=. A missing closed means every auction.
type ListAuctionsQuery struct {
	Closed *bool `form:"closed"`
	Offset int   `form:"offset"`
	Max    int   `form:"max"`
}

// BidExceptionType is the type of the 422 body sent when a bid is refused
const BidExceptionType = "BidException"
