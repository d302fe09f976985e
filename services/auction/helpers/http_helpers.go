package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"realtime-auction/internal/auctionerrors"
	"realtime-auction/internal/models"
	"realtime-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrStoreClosed):
		return http.StatusServiceUnavailable, "service shutting down"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// StatusFilterFromQuery turns the optional closed flag into a store filter
func StatusFilterFromQuery(closed *bool) models.StatusFilter {
	switch {
	case closed == nil:
		return models.FilterAll
	case *closed:
		return models.FilterClosed
	default:
		return models.FilterOpen
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
