package handlers

import (
	"errors"
	"net/http"

	counselorRepo "coachly/database/repository/counselor"
	"coachly/models"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CounselorHandler exposes counselor administration.
type CounselorHandler struct {
	Repo counselorRepo.CounselorRepository
}

// NewCounselorHandler builds the handler.
func NewCounselorHandler(repo counselorRepo.CounselorRepository) *CounselorHandler {
	return &CounselorHandler{Repo: repo}
}

// ListCounselorsHandler handles GET /api/admin/counselors.
func (h *CounselorHandler) ListCounselorsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	counselors, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list counselors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list counselors", err.Error())
		return
	}
	c.JSON(http.StatusOK, counselors)
}

// GetCounselorHandler handles GET /api/admin/counselors/:id.
func (h *CounselorHandler) GetCounselorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	counselor, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, counselorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Counselor not found"})
			return
		}
		logger.Error("Failed to get counselor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get counselor", err.Error())
		return
	}
	c.JSON(http.StatusOK, counselor)
}

// CreateCounselorHandler handles POST /api/admin/counselors.
func (h *CounselorHandler) CreateCounselorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var counselor models.Counselor
	if err := c.ShouldBindJSON(&counselor); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid counselor payload", err.Error())
		return
	}
	if counselor.ID == "" {
		counselor.ID = uuid.NewString()
	}
	if err := h.Repo.Create(c.Request.Context(), &counselor); err != nil {
		logger.Error("Failed to create counselor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create counselor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, counselor)
}

// UpdateCounselorHandler handles PUT /api/admin/counselors/:id.
func (h *CounselorHandler) UpdateCounselorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var counselor models.Counselor
	if err := c.ShouldBindJSON(&counselor); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid counselor payload", err.Error())
		return
	}
	counselor.ID = c.Param("id")
	if err := h.Repo.Update(c.Request.Context(), &counselor); err != nil {
		logger.Error("Failed to update counselor", zap.String("id", counselor.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update counselor", err.Error())
		return
	}
	c.JSON(http.StatusOK, counselor)
}

// DeleteCounselorHandler handles DELETE /api/admin/counselors/:id.
func (h *CounselorHandler) DeleteCounselorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete counselor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete counselor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Counselor deleted"})
}
