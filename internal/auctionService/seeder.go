package auction

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"realtime-auction/utils"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// CatalogItem is a product the seeder may put up for auction
type CatalogItem struct {
	Product string
	Price   decimal.Decimal
}

// DefaultCatalog is the demo catalog inserted at startup
var DefaultCatalog = []CatalogItem{
	{Product: "Google TV", Price: decimal.NewFromInt(1000)},
	{Product: "Honda Civic 1989", Price: decimal.NewFromInt(2000)},
	{Product: "100 pairs of socks", Price: decimal.NewFromInt(100)},
	{Product: "Potatoes", Price: decimal.NewFromInt(20)},
}

// RandSource picks catalog entries. Injected so tests stay deterministic.
type RandSource interface {
	// IntN returns a random integer in [0, n)
	IntN(n int) int
}

type mathRandSource struct{}

func (mathRandSource) IntN(n int) int { return rand.IntN(n) }

// Seeder keeps the store populated with auctions from a catalog
type Seeder struct {
	service  *AuctionService
	catalog  []CatalogItem
	interval time.Duration
	rnd      RandSource
	cron     *cron.Cron
}

// NewSeeder creates a Seeder inserting a random catalog auction every interval
func NewSeeder(service *AuctionService, catalog []CatalogItem, interval time.Duration, rnd RandSource) *Seeder {
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}
	if rnd == nil {
		rnd = mathRandSource{}
	}
	return &Seeder{
		service:  service,
		catalog:  catalog,
		interval: interval,
		rnd:      rnd,
		cron:     cron.New(),
	}
}

// SeedAll inserts one auction per catalog entry
func (s *Seeder) SeedAll() ([]AuctionView, error) {
	views := make([]AuctionView, 0, len(s.catalog))
	for _, item := range s.catalog {
		view, err := s.service.CreateAuction(item.Product, item.Price, nil)
		if err != nil {
			return views, fmt.Errorf("seeder: failed to seed %q: %w", item.Product, err)
		}
		views = append(views, view)
	}
	return views, nil
}

// SeedRandom inserts one auction for a random catalog entry
func (s *Seeder) SeedRandom() (AuctionView, error) {
	item := s.catalog[s.rnd.IntN(len(s.catalog))]
	view, err := s.service.CreateAuction(item.Product, item.Price, nil)
	if err != nil {
		return AuctionView{}, fmt.Errorf("seeder: failed to seed %q: %w", item.Product, err)
	}
	return view, nil
}

// Start seeds the whole catalog then schedules periodic random inserts
func (s *Seeder) Start() error {
	if s.interval <= 0 {
		return errors.New("seeder: interval must be positive")
	}

	if _, err := s.SeedAll(); err != nil {
		return err
	}

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		if _, err := s.SeedRandom(); err != nil {
			utils.Error("seeder: periodic insert failed", map[string]any{"error": err.Error()})
		}
	})
	if err != nil {
		return fmt.Errorf("seeder: failed to schedule: %w", err)
	}

	s.cron.Start()
	utils.Info("seeder started", map[string]any{"interval": s.interval.String(), "catalog_size": len(s.catalog)})
	return nil
}

// Stop halts the schedule; the returned context is done once a running insert finishes
func (s *Seeder) Stop() context.Context {
	utils.Info("seeder stopping", nil)
	return s.cron.Stop()
}
