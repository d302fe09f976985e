package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realtime-auction/internal/auctionerrors"
	auction "realtime-auction/internal/auctionService"
	"realtime-auction/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testEnding = time.Date(2024, time.March, 1, 12, 5, 0, 0, time.UTC)

// decimalEq matches a decimal.Decimal by value rather than representation
type decimalEq string

func (d decimalEq) Matches(x any) bool {
	v, ok := x.(decimal.Decimal)
	return ok && v.Equal(decimal.RequireFromString(string(d)))
}

func (d decimalEq) String() string { return "decimal equal to " + string(d) }

func newView(id, buyer string, price float64) auction.AuctionView {
	return auction.AuctionView{
		ID:      id,
		Product: "Google TV",
		Price:   price,
		Ending:  testEnding,
		Buyer:   buyer,
	}
}

func encodeBody(t *testing.T, body any) []byte {
	t.Helper()
	if s, ok := body.(string); ok {
		return []byte(s)
	}
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return b
}

// Test SubmitBidHandler
func TestSubmitBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auctions/:auction_id/bids", handler.SubmitBidHandler)

	auctionID := uuid.NewString()

	tests := []struct {
		name           string
		auctionID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		validate       func(t *testing.T, resp map[string]any)
	}{
		{
			name:        "accepted_bid",
			auctionID:   auctionID,
			requestBody: map[string]any{"buyer": "John Doe", "price": 150},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(auctionID, "John Doe", decimalEq("150")).
					Return(auction.BidOutcome{Accepted: true, Auction: newView(auctionID, "John Doe", 150)}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "bid accepted", resp["message"])
				data := resp["data"].(map[string]any)
				require.Equal(t, auctionID, data["id"])
				require.Equal(t, "John Doe", data["buyer"])
				require.Equal(t, 150.0, data["price"])
				require.Equal(t, false, data["closed"])
			},
		},
		{
			name:        "rejected_price_too_low",
			auctionID:   auctionID,
			requestBody: map[string]any{"buyer": "Jane Doe", "price": 99.99},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(auctionID, "Jane Doe", decimalEq("99.99")).
					Return(auction.BidOutcome{Reason: auction.RejectPriceTooLow, Auction: newView(auctionID, models.UnluckyBuyer, 100)}, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "BidException", resp["type"])
				require.Equal(t, "Sorry, your offer is below the current product price", resp["message"])
			},
		},
		{
			name:        "rejected_auction_closed",
			auctionID:   auctionID,
			requestBody: map[string]any{"buyer": "Jane Doe", "price": 5000},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(auctionID, "Jane Doe", decimalEq("5000")).
					Return(auction.BidOutcome{Reason: auction.RejectAuctionClosed, Auction: newView(auctionID, models.UnluckyBuyer, 100)}, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "BidException", resp["type"])
				require.Equal(t, "Sorry, the auction is closed for this product", resp["message"])
			},
		},
		{
			name:        "zero_price_reaches_service",
			auctionID:   auctionID,
			requestBody: map[string]any{"buyer": "Jane Doe", "price": 0},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(auctionID, "Jane Doe", decimalEq("0")).
					Return(auction.BidOutcome{Reason: auction.RejectPriceTooLow}, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:        "unknown_auction",
			auctionID:   "missing",
			requestBody: map[string]any{"buyer": "John Doe", "price": 150},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid("missing", "John Doe", gomock.Any()).
					Return(auction.BidOutcome{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotFound))
			},
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "auction not found", resp["message"])
			},
		},
		{
			name:        "service_invalid_bid",
			auctionID:   auctionID,
			requestBody: map[string]any{"buyer": " ", "price": 150},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(auctionID, " ", gomock.Any()).
					Return(auction.BidOutcome{}, auctionerrors.ErrInvalidBid)
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "invalid bid details", resp["message"])
			},
		},
		{
			name:        "store_closed",
			auctionID:   auctionID,
			requestBody: map[string]any{"buyer": "Late Buyer", "price": 150},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(auctionID, "Late Buyer", gomock.Any()).
					Return(auction.BidOutcome{}, auctionerrors.ErrStoreClosed)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:        "service_generic_error",
			auctionID:   auctionID,
			requestBody: map[string]any{"buyer": "Unlucky Buyer", "price": 150},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(auctionID, "Unlucky Buyer", gomock.Any()).
					Return(auction.BidOutcome{}, errors.New("unexpected failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "internal server error", resp["message"])
			},
		},
		{
			name:           "invalid_json",
			auctionID:      auctionID,
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "invalid request payload", resp["message"])
			},
		},
		{
			name:           "missing_buyer",
			auctionID:      auctionID,
			requestBody:    map[string]any{"price": 150},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_price",
			auctionID:      auctionID,
			requestBody:    map[string]any{"buyer": "John Doe"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			url := fmt.Sprintf("/api/auctions/%s/bids", tc.auctionID)
			req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(encodeBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tc.validate != nil {
				tc.validate(t, resp)
			}
		})
	}
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/auctions", handler.ListAuctionsHandler)

	views := []auction.AuctionView{newView("a1", models.UnluckyBuyer, 1000), newView("a2", "John Doe", 25)}

	tests := []struct {
		name           string
		query          string
		mockSetup      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "no_filter_defaults",
			query: "",
			mockSetup: func() {
				mockService.EXPECT().ListAuctions(models.FilterAll, 0, 0).Return(views)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:  "open_only",
			query: "?closed=false&offset=10&max=5",
			mockSetup: func() {
				mockService.EXPECT().ListAuctions(models.FilterOpen, 10, 5).Return(views[:1])
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:  "closed_only",
			query: "?closed=true",
			mockSetup: func() {
				mockService.EXPECT().ListAuctions(models.FilterClosed, 0, 0).Return([]auction.AuctionView{})
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:  "negative_values_passed_through",
			query: "?offset=-4&max=-1",
			mockSetup: func() {
				mockService.EXPECT().ListAuctions(models.FilterAll, -4, -1).Return(views)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "invalid_closed",
			query:          "?closed=maybe",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid_offset",
			query:          "?offset=ten",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/auctions"+tc.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			if w.Code == http.StatusOK {
				require.Equal(t, "auctions retrieved successfully", resp["message"])
				require.Len(t, resp["data"].([]any), tc.expectedCount)
			}
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/auctions/:auction_id", handler.GetAuctionHandler)

	tests := []struct {
		name           string
		auctionID      string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:      "existing_auction",
			auctionID: "a1",
			mockSetup: func() {
				mockService.EXPECT().GetAuction("a1").Return(newView("a1", models.UnluckyBuyer, 1000), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "unknown_auction",
			auctionID: "missing",
			mockSetup: func() {
				mockService.EXPECT().GetAuction("missing").Return(auction.AuctionView{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/auctions/"+tc.auctionID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			if w.Code == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, tc.auctionID, data["id"])
				require.Equal(t, testEnding.Format(time.RFC3339), data["ending"])
			}
		})
	}
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auctions", handler.CreateAuctionHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:        "default_ending",
			requestBody: map[string]any{"product": "Potatoes", "price": 20},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("Potatoes", decimalEq("20"), nil).
					Return(newView("a1", models.UnluckyBuyer, 20), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "explicit_ending",
			requestBody: map[string]any{"product": "Potatoes", "price": 20, "ending": testEnding.Format(time.RFC3339)},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("Potatoes", decimalEq("20"), gomock.Not(gomock.Nil())).
					Return(newView("a2", models.UnluckyBuyer, 20), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "service_invalid_auction",
			requestBody: map[string]any{"product": "  ", "price": 20},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction("  ", gomock.Any(), nil).
					Return(auction.AuctionView{}, auctionerrors.ErrInvalidAuction)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_product",
			requestBody:    map[string]any{"price": 20},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_price",
			requestBody:    map[string]any{"product": "Potatoes"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/auctions", bytes.NewReader(encodeBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
