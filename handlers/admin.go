package handlers

import (
	"errors"
	"net/http"

	"coachly/services/admin"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes legal documents, GDPR exports and invoicing.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler builds the handler.
func NewAdminHandler(service admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: service}
}

// GetLegalSectionsHandler handles GET /api/legal (public).
func (h *AdminHandler) GetLegalSectionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.LegalSections())
}

// CreateExportHandler handles POST /api/admin/exports.
func (h *AdminHandler) CreateExportHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req admin.DataExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid export request", err.Error())
		return
	}
	result, err := h.Service.CreateDataExport(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create data export", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create data export", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DownloadExportHandler handles GET /api/admin/exports/:id?token=...
// The link is emailed to the client; access is gated by the signed
// expiring token, not by a session.
func (h *AdminHandler) DownloadExportHandler(c *gin.Context) {
	logger := utils.GetLogger()
	exportID := c.Param("id")
	token := c.Query("token")

	raw, err := h.Service.FetchExport(c.Request.Context(), exportID, token)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrExportTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Download link invalid or expired"})
		case errors.Is(err, admin.ErrExportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Export not found or expired"})
		default:
			logger.Error("Failed to fetch export", zap.String("exportId", exportID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch export", err.Error())
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="export-`+exportID+`.json"`)
	c.Data(http.StatusOK, "application/json", raw)
}

// IssueInvoiceHandler handles POST /api/admin/invoices.
func (h *AdminHandler) IssueInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req admin.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid invoice request", err.Error())
		return
	}
	invoice, err := h.Service.IssueInvoice(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to issue invoice", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue invoice", err.Error())
		return
	}
	c.JSON(http.StatusCreated, invoice)
}
