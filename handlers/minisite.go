package handlers

import (
	"errors"
	"net/http"

	"coachly/services/minisite"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MiniSiteHandler serves the public per-counselor mini-site payload.
type MiniSiteHandler struct {
	Service minisite.Service
}

// NewMiniSiteHandler builds the handler.
func NewMiniSiteHandler(service minisite.Service) *MiniSiteHandler {
	return &MiniSiteHandler{Service: service}
}

// GetMiniSiteHandler handles GET /api/minisite/:publicProfileName.
func (h *MiniSiteHandler) GetMiniSiteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	name := c.Param("publicProfileName")

	resolved, err := h.Service.Resolve(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, minisite.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mini-site not found"})
			return
		}
		logger.Error("Mini-site resolution failed", zap.String("profile", name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load mini-site", err.Error())
		return
	}
	c.JSON(http.StatusOK, resolved)
}
