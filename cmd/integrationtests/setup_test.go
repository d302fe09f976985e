package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "realtime-auction/internal/auctionService"
	"realtime-auction/internal/models"
	"realtime-auction/internal/notifier"
	"realtime-auction/internal/repository"
	"realtime-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// testEnv is a fully wired server on an in-memory store and a manual clock
type testEnv struct {
	router  *gin.Engine
	service *auction.AuctionService
	repo    *repository.MemoryRepo
	clock   *models.ManualClock
	hub     *notifier.Hub
}

// SetupTestEnv initializes the router with in-memory repository for integration testing.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := models.NewManualClock(testEpoch)
	repo := repository.NewMemoryRepo(clock)
	t.Cleanup(repo.Close)

	hub := notifier.NewHub()
	service := auction.NewAuctionService(repo, hub, clock, 0)

	return &testEnv{
		router:  server.SetupRouter(service, hub),
		service: service,
		repo:    repo,
		clock:   clock,
		hub:     hub,
	}
}

// SeedAuction stores an auction that stays open for d
func (e *testEnv) SeedAuction(t *testing.T, product string, price int64, d time.Duration) auction.AuctionView {
	t.Helper()
	ending := e.clock.Now().Add(d)
	view, err := e.service.CreateAuction(product, decimal.NewFromInt(price), &ending)
	require.NoError(t, err)
	return view
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// dataList extracts the data array of a list response
func dataList(t *testing.T, resp map[string]any) []map[string]any {
	t.Helper()
	raw, ok := resp["data"].([]any)
	require.True(t, ok, "data should be a list, got %T", resp["data"])
	out := make([]map[string]any, len(raw))
	for i, v := range raw {
		out[i] = v.(map[string]any)
	}
	return out
}
