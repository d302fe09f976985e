package auctionerrors

import "errors"

// Validation errors, raised when an entity cannot be built
var (
	ErrInvalidAuction = errors.New("invalid auction")
	ErrInvalidBid     = errors.New("invalid bid")
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrStoreClosed     = errors.New("auction store closed")
)
