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

// supplierHandler handles HTTP requests for suppliers and their statements.
type supplierHandler struct {
	supplierSvc  portssvc.SupplierSvcFacade
	reportingSvc portssvc.ReportingSvcFacade
}

func newSupplierHandler(supplierSvc portssvc.SupplierSvcFacade, reportingSvc portssvc.ReportingSvcFacade) *supplierHandler {
	return &supplierHandler{supplierSvc: supplierSvc, reportingSvc: reportingSvc}
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorIDFromCtx(c.Request.Context())
	supplier, err := h.supplierSvc.CreateSupplier(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// getSupplier godoc
// @Summary Get a supplier
// @Tags suppliers
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Router /suppliers/{supplierID} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	supplier, err := h.supplierSvc.GetSupplierByID(c.Request.Context(), c.Param("supplierID"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List active suppliers
// @Tags suppliers
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.SupplierResponse
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	suppliers, err := h.supplierSvc.ListSuppliers(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponses(suppliers))
}

// getSupplierStatement godoc
// @Summary Get a supplier's account statement
// @Description Ledger entries for the supplier's account over an optional date range, with purchases, payments and returns subtotals
// @Tags suppliers
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.PartyStatementResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Router /suppliers/{supplierID}/statement [get]
func (h *supplierHandler) getSupplierStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getSupplierStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	statement, err := h.reportingSvc.SupplierStatement(c.Request.Context(), c.Param("supplierID"), params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyStatementResponse(statement))
}

// registerSupplierRoutes registers supplier specific routes.
func registerSupplierRoutes(group *gin.RouterGroup, supplierSvc portssvc.SupplierSvcFacade, reportingSvc portssvc.ReportingSvcFacade) {
	h := newSupplierHandler(supplierSvc, reportingSvc)

	suppliers := group.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:supplierID", h.getSupplier)
		suppliers.GET("/:supplierID/statement", h.getSupplierStatement)
	}
}
