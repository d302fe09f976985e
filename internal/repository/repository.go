package repository

import (
	"fmt"
	"sync"
	"sync/atomic"

	"realtime-auction/internal/auctionerrors"
	model "realtime-auction/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the auction storage interface for the auction system
type AuctionDB interface {
	Upsert(auction *model.Auction) (*model.Auction, error)
	Get(id string) (*model.Auction, error)
	ListAll(offset, limit int) []*model.Auction
	ListOpen(offset, limit int) []*model.Auction
	ListClosed(offset, limit int) []*model.Auction
	RecordBid(id string, bid *model.Bid) (*model.Auction, bool, error)
	Len() int
}

// entry holds the current snapshot of one auction.
// Stored snapshots are never mutated; writers swap in a new one while holding mu.
type entry struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[model.Auction]
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Writers are serialised per auction id; readers never block on bid evaluation.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]*entry // key: auctionID -> value: entry
	clock    model.Clock
	closed   bool
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo(clock model.Clock) *MemoryRepo {
	if clock == nil {
		clock = model.SystemClock{}
	}
	return &MemoryRepo{
		auctions: make(map[string]*entry),
		clock:    clock,
	}
}

// Upsert inserts or fully replaces the auction with the same id (last write wins)
func (r *MemoryRepo) Upsert(auction *model.Auction) (*model.Auction, error) {
	if auction == nil {
		return nil, fmt.Errorf("upsert auction: %w - nil auction", auctionerrors.ErrInvalidAuction)
	}
	stored := auction.Clone()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, fmt.Errorf("upsert auction %s: %w", stored.ID(), auctionerrors.ErrStoreClosed)
	}
	e, ok := r.auctions[stored.ID()]
	if !ok {
		e = &entry{}
		e.snapshot.Store(stored)
		r.auctions[stored.ID()] = e
		r.mu.Unlock()
		return stored.Clone(), nil
	}
	r.mu.Unlock()

	e.mu.Lock()
	e.snapshot.Store(stored)
	e.mu.Unlock()

	return stored.Clone(), nil
}

// Get returns a copy of the auction stored under id
func (r *MemoryRepo) Get(id string) (*model.Auction, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, fmt.Errorf("get auction %s: %w", id, err)
	}
	return e.snapshot.Load().Clone(), nil
}

// RecordBid evaluates bid against the auction and stores the result as one step.
// Concurrent calls on the same id are serialised; other ids are unaffected.
// It returns a copy of the auction after the decision and whether the bid was accepted.
func (r *MemoryRepo) RecordBid(id string, bid *model.Bid) (*model.Auction, bool, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, false, fmt.Errorf("record bid for auction %s: %w", id, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.snapshot.Load().Clone()
	if !working.AddBid(bid) {
		return working, false, nil
	}
	e.snapshot.Store(working)

	return working.Clone(), true, nil
}

// ListAll returns a page of every auction, latest ending time first
func (r *MemoryRepo) ListAll(offset, limit int) []*model.Auction {
	return r.list(model.FilterAll, offset, limit)
}

// ListOpen returns a page of the auctions still accepting bids
func (r *MemoryRepo) ListOpen(offset, limit int) []*model.Auction {
	return r.list(model.FilterOpen, offset, limit)
}

// ListClosed returns a page of the auctions past their ending time
func (r *MemoryRepo) ListClosed(offset, limit int) []*model.Auction {
	return r.list(model.FilterClosed, offset, limit)
}

// Len returns the number of stored auctions
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.auctions)
}

// Close drops every auction; later lookups fail with ErrStoreClosed
func (r *MemoryRepo) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.auctions = make(map[string]*entry)
}

func (r *MemoryRepo) lookup(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, auctionerrors.ErrStoreClosed
	}
	e, ok := r.auctions[id]
	if !ok {
		return nil, auctionerrors.ErrAuctionNotFound
	}
	return e, nil
}

func (r *MemoryRepo) list(filter model.StatusFilter, offset, limit int) []*model.Auction {
	r.mu.RLock()
	entries := make([]*entry, 0, len(r.auctions))
	for _, e := range r.auctions {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	now := r.clock.Now()
	matching := make([]*model.Auction, 0, len(entries))
	for _, e := range entries {
		if a := e.snapshot.Load(); filter.Matches(a, now) {
			matching = append(matching, a)
		}
	}

	page := ExtractResults(matching, offset, limit, model.ByEndingTimeDesc)

	result := make([]*model.Auction, len(page))
	for i, a := range page {
		result[i] = a.Clone()
	}
	return result
}
