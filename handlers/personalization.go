package handlers

import (
	"net/http"

	personalizationRepo "coachly/database/repository/personalization"
	"coachly/models"
	"coachly/services/personalization"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PersonalizationHandler serves the resolved agency configuration and
// accepts administrative edits of the remote document.
type PersonalizationHandler struct {
	Service *personalization.Service
	Repo    personalizationRepo.Repository
}

// NewPersonalizationHandler builds the handler.
func NewPersonalizationHandler(service *personalization.Service, repo personalizationRepo.Repository) *PersonalizationHandler {
	return &PersonalizationHandler{Service: service, Repo: repo}
}

// GetPersonalizationHandler handles GET /api/personalization. The
// response always carries a fully-populated configuration; a remote
// read failure shows up as a non-fatal diagnostic field.
func (h *PersonalizationHandler) GetPersonalizationHandler(c *gin.Context) {
	resolved := h.Service.Snapshot()

	body := gin.H{
		"personalization": resolved.Config,
		"isLoading":       resolved.Loading,
	}
	if resolved.Err != nil {
		body["error"] = resolved.Err.Error()
	}
	c.JSON(http.StatusOK, body)
}

// UpdatePersonalizationHandler handles PUT /api/admin/personalization.
// The payload is the partial remote document; the live subscription
// picks the change up and re-resolves for every consumer.
func (h *PersonalizationHandler) UpdatePersonalizationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var patch models.AgencyConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid personalization payload", err.Error())
		return
	}

	if err := h.Repo.Set(c.Request.Context(), &patch); err != nil {
		logger.Error("Failed to write agency settings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save personalization", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Personalization saved"})
}
