package auction

import (
	"fmt"
	"strings"
	"time"

	"realtime-auction/internal/auctionerrors"
	"realtime-auction/internal/models"
	"realtime-auction/internal/repository"
	"realtime-auction/utils"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_notifier.go -package=auction realtime-auction/internal/auctionService Notifier

// Notifier receives the snapshot of every auction whose bid was just accepted
type Notifier interface {
	Publish(view AuctionView)
}

type noopNotifier struct{}

func (noopNotifier) Publish(AuctionView) {}

// AuctionView is the boundary representation of an auction
type AuctionView struct {
	ID      string    `json:"id"`
	Product string    `json:"product"`
	Price   float64   `json:"price"`
	Ending  time.Time `json:"ending"`
	Buyer   string    `json:"buyer"`
	Closed  bool      `json:"closed"`
}

// NewAuctionView snapshots the auction at instant now
func NewAuctionView(a *models.Auction, now time.Time) AuctionView {
	return AuctionView{
		ID:      a.ID(),
		Product: a.Product(),
		Price:   a.CurrentValue().InexactFloat64(),
		Ending:  a.EndingTime(),
		Buyer:   a.CurrentLeader(),
		Closed:  a.IsClosedAt(now),
	}
}

// RejectReason tells a bidder why their bid was refused
type RejectReason string

const (
	RejectNone          RejectReason = ""
	RejectAuctionClosed RejectReason = "auction_closed"
	RejectPriceTooLow   RejectReason = "price_too_low"
)

// Message returns the user facing explanation of the rejection
func (r RejectReason) Message() string {
	switch r {
	case RejectAuctionClosed:
		return "Sorry, the auction is closed for this product"
	case RejectPriceTooLow:
		return "Sorry, your offer is below the current product price"
	default:
		return ""
	}
}

// BidOutcome is the result of a bid submission. A rejection is an outcome, not an error.
type BidOutcome struct {
	Accepted bool
	Reason   RejectReason
	Auction  AuctionView
}

// AuctionService defines the business logic for auction bidding
type AuctionService struct {
	repo     repository.AuctionDB
	notifier Notifier
	clock    models.Clock
	validity time.Duration
}

// NewAuctionService creates a new AuctionService instance.
// A non-positive validity falls back to models.DefaultValidity.
func NewAuctionService(repo repository.AuctionDB, notifier Notifier, clock models.Clock, validity time.Duration) *AuctionService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if clock == nil {
		clock = models.SystemClock{}
	}
	if validity <= 0 {
		validity = models.DefaultValidity
	}
	return &AuctionService{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		validity: validity,
	}
}

// CreateAuction stores a new auction. Without an ending time it stays open for the configured validity.
func (s *AuctionService) CreateAuction(product string, startingPrice decimal.Decimal, endingTime *time.Time) (AuctionView, error) {
	ending := s.clock.Now().Add(s.validity)
	if endingTime != nil {
		ending = *endingTime
	}

	a, err := models.NewAuctionEndingAt(product, startingPrice, ending, s.clock)
	if err != nil {
		return AuctionView{}, fmt.Errorf("service: failed to create auction: %w", err)
	}

	stored, err := s.repo.Upsert(a)
	if err != nil {
		return AuctionView{}, fmt.Errorf("service: failed to store auction %s: %w", a.ID(), err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id": stored.ID(),
		"product":    stored.Product(),
		"price":      stored.StartingPrice().StringFixed(models.PriceScale),
		"ending":     stored.EndingTime().Format(time.RFC3339),
	})

	return NewAuctionView(stored, s.clock.Now()), nil
}

// ListAuctions returns one page of auctions matching filter, latest ending time first
func (s *AuctionService) ListAuctions(filter models.StatusFilter, offset, max int) []AuctionView {
	var auctions []*models.Auction
	switch filter {
	case models.FilterOpen:
		auctions = s.repo.ListOpen(offset, max)
	case models.FilterClosed:
		auctions = s.repo.ListClosed(offset, max)
	default:
		auctions = s.repo.ListAll(offset, max)
	}

	now := s.clock.Now()
	views := make([]AuctionView, 0, len(auctions))
	for _, a := range auctions {
		views = append(views, NewAuctionView(a, now))
	}
	return views
}

// GetAuction returns the current state of one auction
func (s *AuctionService) GetAuction(auctionID string) (AuctionView, error) {
	if strings.TrimSpace(auctionID) == "" {
		return AuctionView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrAuctionNotFound)
	}

	a, err := s.repo.Get(auctionID)
	if err != nil {
		return AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return NewAuctionView(a, s.clock.Now()), nil
}

// SubmitBid records buyerID's offer on the auction.
// Validation failures and unknown auctions are errors; a refused bid is a BidOutcome with a Reason.
func (s *AuctionService) SubmitBid(auctionID, buyerID string, price decimal.Decimal) (BidOutcome, error) {
	if strings.TrimSpace(auctionID) == "" {
		return BidOutcome{}, fmt.Errorf("service: %w - missing auctionID", auctionerrors.ErrInvalidBid)
	}

	bid, err := models.NewBid(buyerID, price, s.clock)
	if err != nil {
		return BidOutcome{}, fmt.Errorf("service: failed to build bid for auction %s: %w", auctionID, err)
	}

	snapshot, accepted, err := s.repo.RecordBid(auctionID, bid)
	if err != nil {
		return BidOutcome{}, fmt.Errorf("service: failed to record bid for auction %s by buyer %s: %w", auctionID, buyerID, err)
	}

	view := NewAuctionView(snapshot, s.clock.Now())
	if !accepted {
		reason := RejectPriceTooLow
		if snapshot.IsBidOutdated(bid) {
			reason = RejectAuctionClosed
		}
		return BidOutcome{Accepted: false, Reason: reason, Auction: view}, nil
	}

	s.notifier.Publish(view)
	return BidOutcome{Accepted: true, Auction: view}, nil
}
