package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickstock/shop_ledger_app/internal/core/domain"
	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

// ledgerHandler handles manual adjustments and entry lookups by
// originating transaction.
type ledgerHandler struct {
	ledgerSvc portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerSvc portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerSvc: ledgerSvc}
}

// createAdjustment godoc
// @Summary Post a manual balanced adjustment
// @Description Appends one debit and one credit entry outside the trade workflows
// @Tags ledger
// @Accept json
// @Produce json
// @Param adjustment body dto.CreateAdjustmentRequest true "Adjustment"
// @Success 201 {array} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /adjustments [post]
func (h *ledgerHandler) createAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	entries, err := h.ledgerSvc.PostAdjustment(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponses(entries))
}

// getTransactionEntries godoc
// @Summary Get the ledger entries posted for a business record
// @Tags ledger
// @Produce json
// @Param transactionType path string true "Transaction type" Enums(PURCHASE, SALE, PAYMENT, SALES_RETURN, PURCHASE_RETURN)
// @Param transactionID path string true "Transaction ID"
// @Success 200 {array} dto.LedgerEntryResponse
// @Router /entries/{transactionType}/{transactionID} [get]
func (h *ledgerHandler) getTransactionEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txnType := domain.TransactionType(c.Param("transactionType"))
	entries, err := h.ledgerSvc.GetEntriesByTransaction(c.Request.Context(), txnType, c.Param("transactionID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// registerLedgerRoutes registers adjustment and entry lookup routes.
func registerLedgerRoutes(group *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerSvc)

	group.POST("/adjustments", h.createAdjustment)
	group.GET("/entries/:transactionType/:transactionID", h.getTransactionEntries)
}
