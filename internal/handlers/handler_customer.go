package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

// customerHandler handles HTTP requests for customers and their statements.
type customerHandler struct {
	customerSvc  portssvc.CustomerSvcFacade
	reportingSvc portssvc.ReportingSvcFacade
}

func newCustomerHandler(customerSvc portssvc.CustomerSvcFacade, reportingSvc portssvc.ReportingSvcFacade) *customerHandler {
	return &customerHandler{customerSvc: customerSvc, reportingSvc: reportingSvc}
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	customer, err := h.customerSvc.CreateCustomer(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customer, err := h.customerSvc.GetCustomerByID(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List active customers
// @Tags customers
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.CustomerResponse
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	customers, err := h.customerSvc.ListCustomers(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// getCustomerStatement godoc
// @Summary Get a customer's account statement
// @Description Ledger entries for the customer's account over an optional date range, with sales, payments and returns subtotals
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.PartyStatementResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{customerID}/statement [get]
func (h *customerHandler) getCustomerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getCustomerStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	statement, err := h.reportingSvc.CustomerStatement(c.Request.Context(), c.Param("customerID"), params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyStatementResponse(statement))
}

// registerCustomerRoutes registers customer specific routes.
func registerCustomerRoutes(group *gin.RouterGroup, customerSvc portssvc.CustomerSvcFacade, reportingSvc portssvc.ReportingSvcFacade) {
	h := newCustomerHandler(customerSvc, reportingSvc)

	customers := group.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customerID", h.getCustomer)
		customers.GET("/:customerID/statement", h.getCustomerStatement)
	}
}
