package handlers

import (
	"net/http"

	catalogRepo "coachly/database/repository/catalog"
	"coachly/models"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogHandler administers job offers and products.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// CreateJobOfferHandler handles POST /api/admin/job-offers.
func (h *CatalogHandler) CreateJobOfferHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var offer models.JobOffer
	if err := c.ShouldBindJSON(&offer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid job offer payload", err.Error())
		return
	}
	if offer.ID == "" {
		offer.ID = uuid.NewString()
	}
	if err := h.Repo.CreateJobOffer(c.Request.Context(), &offer); err != nil {
		logger.Error("Failed to create job offer", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create job offer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// DeleteJobOfferHandler handles DELETE /api/admin/job-offers/:id.
func (h *CatalogHandler) DeleteJobOfferHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Repo.DeleteJobOffer(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete job offer", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete job offer", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job offer deleted"})
}

// CreateProductHandler handles POST /api/admin/products.
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid product payload", err.Error())
		return
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := h.Repo.CreateProduct(c.Request.Context(), &product); err != nil {
		logger.Error("Failed to create product", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create product", err.Error())
		return
	}
	c.JSON(http.StatusCreated, product)
}

// DeleteProductHandler handles DELETE /api/admin/products/:id.
func (h *CatalogHandler) DeleteProductHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Repo.DeleteProduct(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete product", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
