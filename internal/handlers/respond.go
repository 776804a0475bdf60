package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickstock/shop_ledger_app/internal/apperrors"
)

// respondServiceError translates a service error into an HTTP response.
// Conflict-class errors carry their structured detail so the caller can
// retry with corrected input.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	var stockErr *apperrors.InsufficientStockError
	if errors.As(err, &stockErr) {
		logger.Warn("Insufficient stock", slog.String("product_id", stockErr.ProductID), slog.Int64("requested", stockErr.Requested), slog.Int64("available", stockErr.Available))
		c.JSON(http.StatusConflict, gin.H{
			"error":     stockErr.Error(),
			"productID": stockErr.ProductID,
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		})
		return
	}

	var limitErr *apperrors.ReturnExceedsLimitError
	if errors.As(err, &limitErr) {
		logger.Warn("Return exceeds limit", slog.String("transaction_id", limitErr.TransactionID), slog.Int64("requested", limitErr.Requested), slog.Int64("remaining_max", limitErr.RemainingMax))
		c.JSON(http.StatusConflict, gin.H{
			"error":         limitErr.Error(),
			"transactionID": limitErr.TransactionID,
			"requested":     limitErr.Requested,
			"remainingMax":  limitErr.RemainingMax,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrReferenceNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
