package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices.
// Reads are open, writes need CanWrite and deletes CanDelete.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, auth gin.HandlerFunc) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/statistics", h.getInvoiceStatistics)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("", auth, middleware.RequirePolicy(domain.PolicyCanWrite), h.createInvoice)
		invoices.PUT("/:id", auth, middleware.RequirePolicy(domain.PolicyCanWrite), h.updateInvoice)
		invoices.DELETE("/:id", auth, middleware.RequirePolicy(domain.PolicyCanDelete), h.deleteInvoice)
	}

	identification := rg.Group("/identification/:identificationNumber")
	{
		identification.GET("/sales", h.listSales)
		identification.GET("/purchases", h.listPurchases)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description All filters are optional and combined with AND
// @Tags invoices
// @Produce json
// @Param buyerId query int false "Buyer person ID"
// @Param sellerId query int false "Seller person ID"
// @Param product query string false "Product substring"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param limit query int false "Maximum number of results" default(3)
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} ValidationProblem
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListInvoices", slog.String("error", err.Error()))
		handleBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondWithError(c, logger, err, "Invalid invoice filter")
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// createInvoice godoc
// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.InvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ValidationProblem
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		handleBindError(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created", slog.Int64("invoice_id", invoice.InvoiceID))
	c.Header("Location", fmt.Sprintf("/api/invoices/%d", invoice.InvoiceID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 "Invoice not found"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Updates scalar fields. Buyer and seller are not reassigned.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param invoice body dto.InvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ValidationProblem
// @Failure 404 "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		handleBindError(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Param id path int true "Invoice ID"
// @Success 204
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		respondWithError(c, logger, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// getInvoiceStatistics godoc
// @Summary Invoice totals
// @Tags invoices
// @Produce json
// @Success 200 {object} dto.InvoiceStatisticsResponse
// @Router /invoices/statistics [get]
func (h *invoiceHandler) getInvoiceStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.invoiceService.GetInvoiceStatistics(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute invoice statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceStatisticsResponse(stats))
}

// listSales godoc
// @Summary Invoices issued by a subject
// @Description Newest first
// @Tags identification
// @Produce json
// @Param identificationNumber path string true "Identification number"
// @Param limit query int false "Maximum number of results (1-20)" default(3)
// @Success 200 {array} dto.InvoiceResponse
// @Router /identification/{identificationNumber}/sales [get]
func (h *invoiceHandler) listSales(c *gin.Context) {
	h.listByIdentification(c, domain.SubjectSeller)
}

// listPurchases godoc
// @Summary Invoices received by a subject
// @Description Newest first
// @Tags identification
// @Produce json
// @Param identificationNumber path string true "Identification number"
// @Param limit query int false "Maximum number of results (1-20)" default(3)
// @Success 200 {array} dto.InvoiceResponse
// @Router /identification/{identificationNumber}/purchases [get]
func (h *invoiceHandler) listPurchases(c *gin.Context) {
	h.listByIdentification(c, domain.SubjectBuyer)
}

func (h *invoiceHandler) listByIdentification(c *gin.Context, subject domain.Subject) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.IdentificationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		handleBindError(c, err)
		return
	}

	invoices, err := h.invoiceService.ListInvoicesByIdentification(c.Request.Context(), strings.TrimSpace(c.Param("identificationNumber")), subject, params.Limit)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}
