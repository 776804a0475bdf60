package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quickstock/shop_ledger_app/internal/core/ports/services"
	"github.com/quickstock/shop_ledger_app/internal/dto"
	"github.com/quickstock/shop_ledger_app/internal/middleware"
)

// purchaseHandler handles HTTP requests for purchases and purchase returns.
type purchaseHandler struct {
	purchaseSvc portssvc.PurchaseSvcFacade
	returnSvc   portssvc.ReturnSvcFacade
}

func newPurchaseHandler(purchaseSvc portssvc.PurchaseSvcFacade, returnSvc portssvc.ReturnSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseSvc: purchaseSvc, returnSvc: returnSvc}
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Records a purchase: stock in, purchase record, and the expense/supplier double entry
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Supplier or product not found"
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	purchase, err := h.purchaseSvc.CreatePurchase(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// getPurchase godoc
// @Summary Get a purchase with its returns
// @Tags purchases
// @Produce json
// @Param purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Router /purchases/{purchaseID} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	purchase, err := h.purchaseSvc.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	returns, err := h.returnSvc.ListPurchaseReturns(c.Request.Context(), purchaseID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	resp := dto.ToPurchaseResponse(purchase)
	resp.Returns = dto.ToPurchaseReturnResponses(returns)
	c.JSON(http.StatusOK, resp)
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListPurchasesResponse
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPurchasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listPurchases", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.purchaseSvc.ListPurchases(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// createPurchaseReturn godoc
// @Summary Record a purchase return
// @Description Returns stock to the supplier: stock out, purchase total reduced, and the return postings
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchaseID path string true "Purchase ID"
// @Param return body dto.CreatePurchaseReturnRequest true "Return"
// @Success 201 {object} dto.PurchaseReturnResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 409 {object} map[string]string "Return exceeds limit or insufficient stock"
// @Router /purchases/{purchaseID}/returns [post]
func (h *purchaseHandler) createPurchaseReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPurchaseReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	ret, err := h.returnSvc.CreatePurchaseReturn(c.Request.Context(), c.Param("purchaseID"), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseReturnResponse(ret))
}

// listPurchaseReturns godoc
// @Summary List returns recorded against a purchase
// @Tags purchases
// @Produce json
// @Param purchaseID path string true "Purchase ID"
// @Success 200 {array} dto.PurchaseReturnResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Router /purchases/{purchaseID}/returns [get]
func (h *purchaseHandler) listPurchaseReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	returns, err := h.returnSvc.ListPurchaseReturns(c.Request.Context(), c.Param("purchaseID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseReturnResponses(returns))
}

// registerPurchaseRoutes registers purchase specific routes.
func registerPurchaseRoutes(group *gin.RouterGroup, purchaseSvc portssvc.PurchaseSvcFacade, returnSvc portssvc.ReturnSvcFacade) {
	h := newPurchaseHandler(purchaseSvc, returnSvc)

	purchases := group.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:purchaseID", h.getPurchase)
		purchases.POST("/:purchaseID/returns", h.createPurchaseReturn)
		purchases.GET("/:purchaseID/returns", h.listPurchaseReturns)
	}
}
