package handler

import (
	"fmt"
	"net/http"
	"time"

	auction "realtime-auction/internal/auctionService"
	"realtime-auction/internal/models"
	"realtime-auction/services/auction/helpers"
	"realtime-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

type AuctionServiceInterface interface {
	CreateAuction(product string, startingPrice decimal.Decimal, endingTime *time.Time) (auction.AuctionView, error)
	ListAuctions(filter models.StatusFilter, offset, max int) []auction.AuctionView
	GetAuction(auctionID string) (auction.AuctionView, error)
	SubmitBid(auctionID, buyerID string, price decimal.Decimal) (auction.BidOutcome, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	var q helpers.ListAuctionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	filter := helpers.StatusFilterFromQuery(q.Closed)
	views := h.service.ListAuctions(filter, q.Offset, q.Max)

	utils.JSONResponse(c, http.StatusOK, views, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"filter": filter.String(),
		"offset": q.Offset,
		"max":    q.Max,
		"count":  len(views),
	})
}

// GetAuctionHandler handles GET /api/auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	view, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction retrieved successfully")
}

// CreateAuctionHandler handles POST /api/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	view, err := h.service.CreateAuction(req.Product, decimal.NewFromFloat(*req.Price), req.Ending)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler": "CreateAuctionHandler",
			"product": req.Product,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, view, "auction created successfully")
}

// SubmitBidHandler handles POST /api/auctions/:auction_id/bids
func (h *AuctionHandler) SubmitBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	outcome, err := h.service.SubmitBid(auctionID, req.Buyer, decimal.NewFromFloat(*req.Price))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitBidHandler: failed to submit bid", map[string]any{
			"handler":    "SubmitBidHandler",
			"auction_id": auctionID,
			"buyer":      req.Buyer,
			"error":      err.Error(),
		})
		return
	}

	if !outcome.Accepted {
		utils.JSONException(c, http.StatusUnprocessableEntity, helpers.BidExceptionType, outcome.Reason.Message())
		utils.Info("SubmitBidHandler: bid rejected", map[string]any{
			"auction_id": auctionID,
			"buyer":      req.Buyer,
			"price":      *req.Price,
			"reason":     string(outcome.Reason),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, outcome.Auction, "bid accepted")
	helpers.LogSuccess("SubmitBidHandler", "bid accepted", map[string]any{
		"auction_id": auctionID,
		"buyer":      req.Buyer,
		"price":      outcome.Auction.Price,
	})
}
