package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

// accountHandler handles HTTP requests for accounts and their ledger entries.
type accountHandler struct {
	accountSvc   portssvc.AccountSvcFacade
	ledgerSvc    portssvc.LedgerSvcFacade
	reportingSvc portssvc.ReportingSvcFacade
}

func newAccountHandler(accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSvcFacade, reportingSvc portssvc.ReportingSvcFacade) *accountHandler {
	return &accountHandler{accountSvc: accountSvc, ledgerSvc: ledgerSvc, reportingSvc: reportingSvc}
}

// listAccounts godoc
// @Summary List all accounts with current balances
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountSvc.ListAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountSvc.GetAccountByID(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccountEntries godoc
// @Summary List an account's ledger entries
// @Description Entries newest first with token pagination
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountID}/entries [get]
func (h *accountHandler) listAccountEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listAccountEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.ledgerSvc.ListAccountEntries(c.Request.Context(), c.Param("accountID"), params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getAccountStatement godoc
// @Summary Get an account statement
// @Description Ordered entries over an optional date range with debit/credit totals and the current balance
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountStatementResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountID}/statement [get]
func (h *accountHandler) getAccountStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getAccountStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	statement, err := h.reportingSvc.AccountStatement(c.Request.Context(), c.Param("accountID"), params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountStatementResponse(statement))
}

// registerAccountRoutes registers account specific routes.
func registerAccountRoutes(group *gin.RouterGroup, accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSvcFacade, reportingSvc portssvc.ReportingSvcFacade) {
	h := newAccountHandler(accountSvc, ledgerSvc, reportingSvc)

	accounts := group.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/entries", h.listAccountEntries)
		accounts.GET("/:accountID/statement", h.getAccountStatement)
	}
}
