package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

// saleHandler handles HTTP requests for sales, payments and sales returns.
type saleHandler struct {
	saleSvc    portssvc.SaleSvcFacade
	paymentSvc portssvc.PaymentSvcFacade
	returnSvc  portssvc.ReturnSvcFacade
}

func newSaleHandler(saleSvc portssvc.SaleSvcFacade, paymentSvc portssvc.PaymentSvcFacade, returnSvc portssvc.ReturnSvcFacade) *saleHandler {
	return &saleHandler{saleSvc: saleSvc, paymentSvc: paymentSvc, returnSvc: returnSvc}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale: stock out, sale record, the customer/income double entry and any counter cash settlement
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Customer or product not found"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	sale, err := h.saleSvc.CreateSale(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale with its payments and returns
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	sale, err := h.saleSvc.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	payments, err := h.paymentSvc.ListPaymentsBySale(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	returns, err := h.returnSvc.ListSalesReturns(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	resp := dto.ToSaleResponse(sale)
	resp.Payments = dto.ToPaymentResponses(payments)
	resp.Returns = dto.ToSalesReturnResponses(returns)
	c.JSON(http.StatusOK, resp)
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListSalesResponse
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.saleSvc.ListSales(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recordPayment godoc
// @Summary Record a payment against a sale
// @Description Applies a payment: payment record, sale totals update, and the cash-or-bank/customer double entry
// @Tags sales
// @Accept json
// @Produce json
// @Param saleID path string true "Sale ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID}/payments [post]
func (h *saleHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	payment, err := h.paymentSvc.RecordPayment(c.Request.Context(), c.Param("saleID"), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments recorded against a sale
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID}/payments [get]
func (h *saleHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.paymentSvc.ListPaymentsBySale(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// createSalesReturn godoc
// @Summary Record a sales return
// @Description Returns stock from the customer: stock in, sale totals adjusted, and the return postings
// @Tags sales
// @Accept json
// @Produce json
// @Param saleID path string true "Sale ID"
// @Param return body dto.CreateSalesReturnRequest true "Return"
// @Success 201 {object} dto.SalesReturnResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 409 {object} map[string]string "Return exceeds limit"
// @Router /sales/{saleID}/returns [post]
func (h *saleHandler) createSalesReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSalesReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSalesReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	ret, err := h.returnSvc.CreateSalesReturn(c.Request.Context(), c.Param("saleID"), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSalesReturnResponse(ret))
}

// listSalesReturns godoc
// @Summary List returns recorded against a sale
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {array} dto.SalesReturnResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID}/returns [get]
func (h *saleHandler) listSalesReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	returns, err := h.returnSvc.ListSalesReturns(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesReturnResponses(returns))
}

// registerSaleRoutes registers sale specific routes.
func registerSaleRoutes(group *gin.RouterGroup, saleSvc portssvc.SaleSvcFacade, paymentSvc portssvc.PaymentSvcFacade, returnSvc portssvc.ReturnSvcFacade) {
	h := newSaleHandler(saleSvc, paymentSvc, returnSvc)

	sales := group.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSale)
		sales.POST("/:saleID/payments", h.recordPayment)
		sales.GET("/:saleID/payments", h.listPayments)
		sales.POST("/:saleID/returns", h.createSalesReturn)
		sales.GET("/:saleID/returns", h.listSalesReturns)
	}
}
