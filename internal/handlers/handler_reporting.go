package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

// reportingHandler handles the summary report views.
type reportingHandler struct {
	reportingSvc portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingSvc portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingSvc: reportingSvc}
}

// getFinancialSummary godoc
// @Summary Get the headline trading totals
// @Description Total revenue, total expenses, outstanding receivables, net and gross profit
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FinancialSummaryResponse
// @Router /reports/financial-summary [get]
func (h *reportingHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingSvc.FinancialSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

// getAccountsSummary godoc
// @Summary Get current balances across the chart of accounts
// @Description Cash and bank balances plus receivables and payables totals
// @Tags reports
// @Produce json
// @Success 200 {object} dto.AccountsSummaryResponse
// @Router /reports/accounts-summary [get]
func (h *reportingHandler) getAccountsSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingSvc.AccountsSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountsSummaryResponse(summary))
}

// registerReportingRoutes registers report specific routes.
func registerReportingRoutes(group *gin.RouterGroup, reportingSvc portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingSvc)

	reports := group.Group("/reports")
	{
		reports.GET("/financial-summary", h.getFinancialSummary)
		reports.GET("/accounts-summary", h.getAccountsSummary)
	}
}
